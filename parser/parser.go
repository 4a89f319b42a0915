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

// Package parser builds a forest of *ast.Node from a token sequence using a
// recursive-descent parser with one token of lookahead.
package parser

import (
	"github.com/vercas/fml/ast"
	"github.com/vercas/fml/reporter"
	"github.com/vercas/fml/source"
)

// Parse consumes every token in tokens and returns the top-level forest. A
// token sequence not ending in ast.KindEOF is a programmer error in the
// caller (lexer.Lex always appends one), not something this parser
// recovers from.
func Parse(buf *source.Buffer, tokens []ast.Token, h *reporter.Handler) []*ast.Node {
	p := &parser{buf: buf, tokens: tokens, cur: -1, handler: h}

	var nodes []*ast.Node
	for {
		tk := p.peek()
		if tk.Kind == ast.KindEOF {
			break
		}
		if tk.Kind != ast.KindIdentifier {
			if p.reportTok(tk, "expected identifier to start top-level node") {
				return nodes
			}
			p.consume()
			continue
		}
		nodes = append(nodes, p.parseNode())
	}
	return nodes
}

type parser struct {
	buf     *source.Buffer
	tokens  []ast.Token
	cur     int
	handler *reporter.Handler
}

func (p *parser) consume() ast.Token {
	if p.cur+1 < len(p.tokens) {
		p.cur++
	}
	return p.tokens[p.cur]
}

func (p *parser) peek() ast.Token {
	if p.cur+1 < len(p.tokens) {
		return p.tokens[p.cur+1]
	}
	return p.tokens[len(p.tokens)-1]
}

// reportTok reports a diagnostic positioned at tk's span and returns whether
// the handler asked the parser to halt.
func (p *parser) reportTok(tk ast.Token, msg string) bool {
	err := p.handler.HandleError(reporter.Errorf(p.buf.Pos(tk.Start), tk.End-tk.Start, msg))
	return err != nil
}

// parseNode parses one node. The caller (Parse, or the child-node loop below)
// has only peeked at the name identifier; parseNode consumes it.
func (p *parser) parseNode() *ast.Node {
	nameTk := p.consume()
	n := &ast.Node{Name: nameTk.Ident, Start: nameTk.Start}

	tk := p.consume()
	for tk.Kind == ast.KindDot {
		dotStart := tk.Start
		tk = p.consume()
		if tk.Kind != ast.KindIdentifier {
			n.End = tk.End
			halted := p.reportTok(tk, "expected identifier after dot")
			if halted || tk.Kind == ast.KindEOF {
				return n
			}
			continue
		}
		n.Classes = append(n.Classes, ast.Class{Name: tk.Ident, Start: dotStart, End: tk.End})
		tk = p.consume()
	}

	if tk.Kind == ast.KindHash {
		tk = p.consume()
		if tk.Kind != ast.KindIdentifier {
			n.End = tk.End
			halted := p.reportTok(tk, "expected identifier after hash")
			if halted || tk.Kind == ast.KindEOF {
				return n
			}
		} else {
			n.ID = tk.Ident
			n.HasID = true
		}
		tk = p.consume()
	}

	for tk.Kind == ast.KindIdentifier {
		attr := ast.Attribute{Key: tk.Ident, Start: tk.Start, End: tk.End}
		tk = p.consume()

		switch tk.Kind {
		case ast.KindIdentifier, ast.KindSemicolon, ast.KindBracketOpen, ast.KindDocument:
			// tk is the token after the bare key and is not consumed again.
			attr.Value = ast.AttrValue{Kind: ast.AttrValueNone}
			n.Attributes = append(n.Attributes, attr)
			continue

		case ast.KindEqual:
			tk = p.consume()
			switch tk.Kind {
			case ast.KindInteger:
				attr.Value = ast.AttrValue{Kind: ast.AttrValueInteger, Int: tk.Int}
			case ast.KindFloat:
				attr.Value = ast.AttrValue{Kind: ast.AttrValueFloat, Float: tk.Float}
			case ast.KindString:
				attr.Value = ast.AttrValue{Kind: ast.AttrValueString, Str: tk.Ident}
			case ast.KindIdentifier:
				attr.Value = ast.AttrValue{Kind: ast.AttrValueIdentifier, Str: tk.Ident}
			case ast.KindDollar:
				tk = p.consume()
				if tk.Kind != ast.KindIdentifier {
					n.End = tk.End
					if p.reportTok(tk, "expected identifier after dollar sign") {
						return n
					}
					tk = p.consume()
					continue
				}
				attr.Value = ast.AttrValue{Kind: ast.AttrValueReference, Str: tk.Ident}
			case ast.KindEOF:
				n.End = tk.End
				p.reportTok(tk, "unfinished attribute")
				return n
			default:
				n.End = tk.End
				if p.reportTok(tk, "unexpected token after equal sign") {
					return n
				}
				tk = p.consume()
				continue
			}
			attr.End = tk.End

		case ast.KindEOF:
			n.End = tk.End
			p.reportTok(tk, "unclosed node")
			return n

		default:
			n.End = tk.End
			if p.reportTok(tk, "expected token after attribute key") {
				return n
			}
			tk = p.consume()
			continue
		}

		n.Attributes = append(n.Attributes, attr)
		tk = p.consume()
	}

	switch tk.Kind {
	case ast.KindDocument:
		n.Body = ast.NodeBody{Kind: ast.BodyDocument, Document: tk.Ident}
		n.End = tk.End

	case ast.KindSemicolon:
		n.Body = ast.NodeBody{Kind: ast.BodyEmpty}
		n.End = tk.End

	case ast.KindBracketOpen:
		n.Body.Kind = ast.BodyChildren
		for {
			next := p.peek()
			if next.Kind == ast.KindBracketClose {
				n.End = next.End
				p.consume()
				break
			}
			if next.Kind != ast.KindIdentifier {
				if p.reportTok(next, "expected identifier to start child node") || next.Kind == ast.KindEOF {
					n.End = next.End
					return n
				}
				p.consume()
				continue
			}
			n.Body.Children = append(n.Body.Children, p.parseNode())
		}

	case ast.KindEOF:
		n.End = tk.End
		p.reportTok(tk, "unclosed node")

	default:
		n.End = tk.End
		p.reportTok(tk, "unexpected token in node")
	}

	return n
}
