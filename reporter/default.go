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

package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/vercas/fml/source"
)

// Format renders a human-readable diagnostic for err against buf: the
// line/column, the offending source line, and a caret (extended to a tilde
// run for spans longer than one byte) pointing at the span. This mirrors
// the original C implementation's ReportLexerErrorDefault/
// ReportParserErrorDefault, but is not on the critical path of correctness
// — it is purely a rendering convenience for NewDefaultHandler.
func Format(buf *source.Buffer, err ErrorWithPos) string {
	pos := err.Position()
	start, end := buf.LineSpan(pos.Offset)
	line := buf.Slice(start, end)

	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d: %v\n", pos.Line, pos.Column, err.Unwrap())
	b.WriteString(line)
	b.WriteByte('\n')

	// Reproduce the line's leading whitespace so that tabs in the caret
	// line land under the tabs of the source line.
	indent := leadingWhitespace(line)
	col := pos.Column - 1
	if col <= len(indent) {
		b.WriteString(indent[:col])
	} else {
		b.WriteString(indent)
		b.WriteString(strings.Repeat(" ", col-len(indent)))
	}

	span := err.Span()
	if span <= 1 {
		b.WriteByte('^')
	} else {
		b.WriteString(strings.Repeat("~", span-1))
		b.WriteByte('^')
	}
	b.WriteByte('\n')

	return b.String()
}

func leadingWhitespace(line string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i]
}

// NewDefaultHandler returns a Handler whose ErrorReporter writes a
// Format-rendered diagnostic to w for every error and never halts (FML's
// stages are soft-by-default; see spec §4.1), and whose WarningReporter
// does the same for warnings.
func NewDefaultHandler(buf *source.Buffer, w io.Writer) *Handler {
	return NewHandler(
		func(err ErrorWithPos) error {
			fmt.Fprint(w, Format(buf, err))
			return nil
		},
		func(err ErrorWithPos) {
			fmt.Fprint(w, Format(buf, err))
		},
	)
}

// NewHaltingHandler returns a Handler that halts on the first error it is
// given, returning ErrInvalidSource from ReporterError.
func NewHaltingHandler() *Handler {
	return NewHandler(
		func(ErrorWithPos) error { return ErrInvalidSource },
		nil,
	)
}
