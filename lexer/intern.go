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

package lexer

import (
	art "github.com/kralicky/go-adaptive-radix-tree"
)

// interner deduplicates identifier lexemes. FML source frequently repeats
// the same node names, attribute keys and class names; the radix tree
// (the same data structure the teacher's linker uses as a descriptor symbol
// table) lets the lexer hand back a shared string instead of allocating a
// fresh one for every occurrence.
type interner struct {
	tree art.Tree
}

func newInterner() *interner {
	return &interner{tree: art.New()}
}

// intern returns a canonical string for raw, reusing a previously interned
// value with the same bytes if one exists.
func (in *interner) intern(raw []byte) string {
	if v, found := in.tree.Search(art.Key(raw)); found {
		return v.(string)
	}
	s := string(raw)
	in.tree.Insert(art.Key(s), s)
	return s
}
