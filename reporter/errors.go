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

// Package reporter defines the error-sink contract shared by the lexer and
// parser: a positioned diagnostic is handed to a Handler, which decides
// whether the calling stage should halt or attempt to recover.
package reporter

import (
	"errors"
	"fmt"

	"github.com/vercas/fml/source"
)

// ErrInvalidSource is the error returned by the ErrorReporter of
// NewHaltingHandler, and so what Handler.ReporterError returns once such a
// handler has halted. A reporter that returns nil never halts, and
// ReporterError then stays nil.
var ErrInvalidSource = errors.New("invalid FML source")

// ErrorWithPos is an error about FML source that carries the span that
// caused it.
type ErrorWithPos interface {
	error
	// Position returns the source position at which the error begins.
	Position() source.Position
	// Span returns the byte length of the offending span (0 or 1 for most
	// lexical errors, the full token length for syntactic errors).
	Span() int
	// Unwrap returns the underlying error.
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and source span.
func Error(pos source.Position, span int, err error) ErrorWithPos {
	return errorWithPos{pos: pos, span: span, underlying: err}
}

// Errorf is like Error but builds the underlying error with fmt.Errorf.
func Errorf(pos source.Position, span int, format string, args ...any) ErrorWithPos {
	return errorWithPos{pos: pos, span: span, underlying: fmt.Errorf(format, args...)}
}

type errorWithPos struct {
	underlying error
	pos        source.Position
	span       int
}

func (e errorWithPos) Error() string {
	return fmt.Sprintf("%d:%d: %v", e.pos.Line, e.pos.Column, e.underlying)
}

func (e errorWithPos) Position() source.Position { return e.pos }
func (e errorWithPos) Span() int                 { return e.span }
func (e errorWithPos) Unwrap() error              { return e.underlying }

var _ ErrorWithPos = errorWithPos{}
