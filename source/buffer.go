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

// Package source owns the byte buffer that a lexer scans and whose byte
// offsets a parser's tokens and tree nodes record, and turns those offsets
// into human-readable line/column positions.
package source

import "sort"

// Buffer owns a copy of an input and tracks where each line begins, so that
// any byte offset within it can be turned into a line/column Position.
type Buffer struct {
	name string
	data []byte

	// lines[i] is the byte offset at which line i+1 (1-based) begins.
	// lines[0] is always 0.
	lines []int
}

// New copies data into a new Buffer. The caller's slice is not retained.
func New(name string, data []byte) *Buffer {
	cp := make([]byte, len(data))
	copy(cp, data)

	b := &Buffer{name: name, data: cp, lines: []int{0}}
	for i, c := range cp {
		if c == '\n' {
			b.lines = append(b.lines, i+1)
		}
	}
	return b
}

// Name returns the name the Buffer was created with (typically a filename,
// or empty for anonymous input).
func (b *Buffer) Name() string { return b.name }

// Bytes returns the buffer's contents. The caller must not modify it.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// Slice returns the substring [start, end) as a string. Both bounds are
// clamped to the buffer's extent.
func (b *Buffer) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(b.data) {
		end = len(b.data)
	}
	if start > end {
		start = end
	}
	return string(b.data[start:end])
}

// Position is a 1-based line and column for a byte offset.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Pos computes the line/column Position of the given byte offset. Offsets
// past the end of the buffer resolve to the position just after the last
// byte.
func (b *Buffer) Pos(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.data) {
		offset = len(b.data)
	}

	// lines is sorted ascending; find the last line start <= offset.
	line := sort.Search(len(b.lines), func(i int) bool { return b.lines[i] > offset }) - 1
	if line < 0 {
		line = 0
	}

	return Position{
		Offset: offset,
		Line:   line + 1,
		Column: offset - b.lines[line] + 1,
	}
}

// LineSpan returns the byte span [start, end) of the line that contains
// offset, not including its terminating newline.
func (b *Buffer) LineSpan(offset int) (start, end int) {
	pos := b.Pos(offset)
	start = b.lines[pos.Line-1]

	end = len(b.data)
	for i := start; i < len(b.data); i++ {
		if b.data[i] == '\n' {
			end = i
			break
		}
	}
	return start, end
}
