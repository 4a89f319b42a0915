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

package ast

// Visitor is implemented by callers that want to traverse a tree of Nodes.
// Visit is called on entry to each node; if it returns nil, the node's
// children are skipped. Before/After bracket every node, including ones
// whose children are skipped.
type Visitor interface {
	Visit(n *Node) Visitor
	Before(n *Node)
	After(n *Node)
}

// Walk performs a pre-order traversal of n and its descendants (following
// BodyChildren only; BodyDocument and BodyEmpty are leaves).
func Walk(v Visitor, n *Node) {
	if n == nil {
		return
	}

	v.Before(n)
	defer v.After(n)

	child := v.Visit(n)
	if child == nil {
		return
	}

	if n.Body.Kind == BodyChildren {
		for _, c := range n.Body.Children {
			Walk(child, c)
		}
	}
}

// WalkForest walks every node in a top-level forest with the same visitor.
func WalkForest(v Visitor, forest []*Node) {
	for _, n := range forest {
		Walk(v, n)
	}
}

// Inspect calls f for every node in the tree rooted at n, in pre-order. If f
// returns false, the node's children are not visited.
func Inspect(n *Node, f func(*Node) bool) {
	Walk(inspector(f), n)
}

// InspectForest is Inspect applied to each root of a forest.
func InspectForest(forest []*Node, f func(*Node) bool) {
	for _, n := range forest {
		Inspect(n, f)
	}
}

type inspector func(*Node) bool

func (f inspector) Before(*Node) {}
func (f inspector) After(*Node)  {}

func (f inspector) Visit(n *Node) Visitor {
	if f(n) {
		return f
	}
	return nil
}
