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

// Package fml parses and canonically re-serializes FML documents: the HTML-
// like markup/configuration language whose grammar is a tree of named nodes
// carrying classes, an id, attributes, and either no body, a document blob,
// or children.
//
// Two calls run the three stages over one source buffer: ParseString lexes
// and parses, and Beautify re-serializes the resulting forest:
//
//	forest, buf, err := fml.ParseString("greeting.fml", src, fml.Options{})
//	out, err := fml.Beautify(forest)
package fml

import (
	"io"
	"log/slog"
	"strings"

	"github.com/vercas/fml/ast"
	"github.com/vercas/fml/beautify"
	"github.com/vercas/fml/lexer"
	"github.com/vercas/fml/parser"
	"github.com/vercas/fml/reporter"
	"github.com/vercas/fml/source"
)

// Options configures a parse. The zero value halts parsing on the first
// reported error and logs through slog.Default().
type Options struct {
	// Reporter receives lexical and syntactic diagnostics. If nil, a handler
	// that halts on the first error is used.
	Reporter *reporter.Handler
	// Logger receives a debug-level trace of the stages run. If nil,
	// slog.Default() is used.
	Logger *slog.Logger
}

func (o Options) handler() *reporter.Handler {
	if o.Reporter != nil {
		return o.Reporter
	}
	return reporter.NewHaltingHandler()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Parse lexes and parses the given source bytes, returning the top-level
// node forest and the buffer the returned nodes' offsets are relative to.
// A non-nil error means the configured reporter asked parsing to halt;
// the forest and buffer returned alongside it reflect whatever was
// recovered before the halt.
func Parse(name string, data []byte, opts Options) ([]*ast.Node, *source.Buffer, error) {
	log := opts.logger()
	h := opts.handler()
	buf := source.New(name, data)

	log.Debug("fml: lexing", "file", name, "bytes", len(data))
	tokens := lexer.New(buf, h).Lex()
	if err := h.ReporterError(); err != nil {
		return nil, buf, err
	}

	log.Debug("fml: parsing", "file", name, "tokens", len(tokens))
	forest := parser.Parse(buf, tokens, h)
	if err := h.ReporterError(); err != nil {
		return forest, buf, err
	}

	return forest, buf, nil
}

// ParseString is Parse over a string source.
func ParseString(name, src string, opts Options) ([]*ast.Node, *source.Buffer, error) {
	return Parse(name, []byte(src), opts)
}

// Beautify returns the canonical textual form of forest.
func Beautify(forest []*ast.Node) (string, error) {
	var b strings.Builder
	if err := BeautifyTo(&b, forest); err != nil {
		return "", err
	}
	return b.String(), nil
}

// BeautifyTo writes the canonical textual form of forest to w.
func BeautifyTo(w io.Writer, forest []*ast.Node) error {
	return beautify.Beautify(w, forest)
}
