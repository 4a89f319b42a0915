// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ast defines the tree produced by the parser: tokens, classes,
// attributes and nodes, plus a Walk visitor for traversing a tree.
package ast

// Kind identifies the lexical category of a Token.
type Kind int

const (
	KindEOF Kind = iota
	KindIdentifier
	KindInteger
	KindFloat
	KindString
	KindEqual
	KindBracketOpen
	KindBracketClose
	KindDocument
	KindSemicolon
	KindDot
	KindHash
	KindDollar
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "end of input"
	case KindIdentifier:
		return "identifier"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindEqual:
		return "'='"
	case KindBracketOpen:
		return "'{'"
	case KindBracketClose:
		return "'}'"
	case KindDocument:
		return "document"
	case KindSemicolon:
		return "';'"
	case KindDot:
		return "'.'"
	case KindHash:
		return "'#'"
	case KindDollar:
		return "'$'"
	default:
		return "unknown token"
	}
}

// Token is a single lexical element, with the half-open byte span [Start,
// End) it occupies in the originating source.Buffer. Exactly one of the
// payload fields is meaningful, selected by Kind: Ident for KindIdentifier,
// KindString and KindDocument, Int for KindInteger, Float for KindFloat.
type Token struct {
	Kind       Kind
	Start, End int

	Ident string
	Int   int64
	Float float64
}

// Class is a single `.name` suffix on a node, in source order.
type Class struct {
	Name       string
	Start, End int
}

// AttrValueKind identifies which field of an AttrValue is populated.
type AttrValueKind int

const (
	AttrValueNone AttrValueKind = iota
	AttrValueString
	AttrValueIdentifier
	AttrValueReference
	AttrValueInteger
	AttrValueFloat
)

// AttrValue is the tagged union of values an Attribute may carry.
type AttrValue struct {
	Kind AttrValueKind

	// Str holds the decoded string for AttrValueString, the raw identifier
	// for AttrValueIdentifier, or the referenced name for AttrValueReference.
	Str   string
	Int   int64
	Float float64
}

// Attribute is a single `key` or `key=value` pair within a node, in source
// order. Keys are not required to be unique.
type Attribute struct {
	Key        string
	Start, End int
	Value      AttrValue
}

// BodyKind identifies which variant of NodeBody is populated.
type BodyKind int

const (
	BodyEmpty BodyKind = iota
	BodyChildren
	BodyDocument
)

// NodeBody is the tagged union of a node's body: no body (terminated by
// ';'), an ordered list of child nodes (`{ ... }`), or a verbatim document
// payload (a long-bracket block).
type NodeBody struct {
	Kind BodyKind

	Children []*Node
	Document string
}

// Node is a single element in an FML tree: a name, optional classes and id,
// an ordered attribute list, and a body. Start and End are byte offsets
// into the source and always contain the spans of every class, attribute,
// and (for BodyChildren) child node.
type Node struct {
	Name       string
	Start, End int

	Classes    []Class
	ID         string
	HasID      bool
	Attributes []Attribute

	Body NodeBody
}

// NewEmptyNode returns a Node with an empty body (as produced by `name;`).
func NewEmptyNode(name string, start, end int) *Node {
	return &Node{Name: name, Start: start, End: end}
}
