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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vercas/fml/source"
)

func TestPosFirstLine(t *testing.T) {
	b := source.New("t", []byte("abc\ndef\n"))

	assert.Equal(t, source.Position{Offset: 0, Line: 1, Column: 1}, b.Pos(0))
	assert.Equal(t, source.Position{Offset: 2, Line: 1, Column: 3}, b.Pos(2))
}

func TestPosSecondLine(t *testing.T) {
	b := source.New("t", []byte("abc\ndef\n"))

	assert.Equal(t, source.Position{Offset: 4, Line: 2, Column: 1}, b.Pos(4))
	assert.Equal(t, source.Position{Offset: 6, Line: 2, Column: 3}, b.Pos(6))
}

func TestPosClampsToBounds(t *testing.T) {
	b := source.New("t", []byte("abc"))

	assert.Equal(t, 1, b.Pos(-5).Line)
	assert.Equal(t, len("abc")+1, b.Pos(1000).Column)
}

func TestSliceClamps(t *testing.T) {
	b := source.New("t", []byte("hello"))

	assert.Equal(t, "hello", b.Slice(0, 1000))
	assert.Equal(t, "", b.Slice(3, 1))
}

func TestNewCopiesInput(t *testing.T) {
	data := []byte("hello")
	b := source.New("t", data)
	data[0] = 'X'

	assert.Equal(t, "hello", b.Slice(0, 5))
}

func TestLineSpan(t *testing.T) {
	b := source.New("t", []byte("abc\ndefgh\n"))

	start, end := b.LineSpan(6)
	assert.Equal(t, "defgh", b.Slice(start, end))
}
