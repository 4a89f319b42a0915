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

// Package beautify canonically re-serializes a node forest back into FML
// source text. Re-beautifying already-beautified output is idempotent.
package beautify

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vercas/fml/ast"
)

// Beautify writes the canonical textual form of forest to w.
func Beautify(w io.Writer, forest []*ast.Node) error {
	sc := &sink{w: w}
	for _, n := range forest {
		if err := sc.node(n); err != nil {
			return err
		}
	}
	return nil
}

// String returns the canonical textual form of forest.
func String(forest []*ast.Node) (string, error) {
	var b strings.Builder
	if err := Beautify(&b, forest); err != nil {
		return "", err
	}
	return b.String(), nil
}

type sink struct {
	w      io.Writer
	indent int
}

func (s *sink) raw(str string) error {
	_, err := io.WriteString(s.w, str)
	return err
}

func (s *sink) indentation() error {
	if s.indent <= 0 {
		return nil
	}
	return s.raw(strings.Repeat("\t", s.indent))
}

func (s *sink) newline() error { return s.raw("\n") }
func (s *sink) space() error   { return s.raw(" ") }

func (s *sink) integer(v int64) error {
	return s.raw(strconv.FormatInt(v, 10))
}

func (s *sink) float(v float64) error {
	return s.raw(fmt.Sprintf("%f", v))
}

var stringEscapes = map[byte]string{
	0x07: `\a`, 0x08: `\b`, 0x0C: `\f`, 0x0A: `\n`,
	0x0D: `\r`, 0x09: `\t`, 0x0B: `\v`, 0x00: `\0`,
	'\\': `\\`, '"': `\"`,
}

func (s *sink) string(str string) error {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(str); i++ {
		if esc, ok := stringEscapes[str[i]]; ok {
			b.WriteString(esc)
		} else {
			b.WriteByte(str[i])
		}
	}
	b.WriteByte('"')
	return s.raw(b.String())
}

// chooseClosingLength finds the shortest run of `=` signs (possibly zero)
// that does not already appear as a closing sequence `]=*]` inside body,
// so that the chosen long-bracket delimiter cannot be confused with text
// the document itself contains. A trailing `]=*` run at the end of body is
// counted too, since the delimiter's own `]` would complete it.
func chooseClosingLength(body string) int {
	seen := map[int]bool{}
	seqLen := -1
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case ']':
			if seqLen >= 0 {
				seen[seqLen] = true
			}
			seqLen = 0
		case '=':
			if seqLen >= 0 {
				seqLen++
			}
		default:
			seqLen = -1
		}
	}
	if seqLen >= 0 {
		seen[seqLen] = true
	}

	n := 0
	for seen[n] {
		n++
	}
	return n
}

func (s *sink) document(body string) error {
	n := chooseClosingLength(body)
	lineCount := strings.Count(body, "\n") + 1
	eq := strings.Repeat("=", n)

	if err := s.raw("[" + eq + "["); err != nil {
		return err
	}

	inline := n < 5 && lineCount == 1 && len(body) < 30
	if inline {
		if err := s.raw(body); err != nil {
			return err
		}
	} else {
		if err := s.newline(); err != nil {
			return err
		}
		if err := s.raw(body); err != nil {
			return err
		}
		if err := s.newline(); err != nil {
			return err
		}
	}

	return s.raw("]" + eq + "]")
}

func (s *sink) node(n *ast.Node) error {
	if err := s.indentation(); err != nil {
		return err
	}
	if err := s.raw(n.Name); err != nil {
		return err
	}

	for _, cl := range n.Classes {
		if err := s.raw("." + cl.Name); err != nil {
			return err
		}
	}

	if n.HasID {
		if err := s.raw("#" + n.ID); err != nil {
			return err
		}
	}

	for _, a := range n.Attributes {
		if err := s.space(); err != nil {
			return err
		}
		if err := s.raw(a.Key); err != nil {
			return err
		}

		if a.Value.Kind == ast.AttrValueNone {
			continue
		}

		if err := s.raw("="); err != nil {
			return err
		}

		switch a.Value.Kind {
		case ast.AttrValueString:
			if err := s.string(a.Value.Str); err != nil {
				return err
			}
		case ast.AttrValueReference:
			if err := s.raw("$"); err != nil {
				return err
			}
			if err := s.raw(a.Value.Str); err != nil {
				return err
			}
		case ast.AttrValueIdentifier:
			if err := s.raw(a.Value.Str); err != nil {
				return err
			}
		case ast.AttrValueInteger:
			if err := s.integer(a.Value.Int); err != nil {
				return err
			}
		case ast.AttrValueFloat:
			if err := s.float(a.Value.Float); err != nil {
				return err
			}
		default:
			return fmt.Errorf("beautify: attribute %q has unknown value kind %d", a.Key, a.Value.Kind)
		}
	}

	switch n.Body.Kind {
	case ast.BodyEmpty:
		if err := s.raw(";"); err != nil {
			return err
		}

	case ast.BodyDocument:
		if err := s.space(); err != nil {
			return err
		}
		if err := s.document(n.Body.Document); err != nil {
			return err
		}

	case ast.BodyChildren:
		if len(n.Body.Children) == 0 {
			if err := s.raw(" { }"); err != nil {
				return err
			}
			break
		}

		if err := s.newline(); err != nil {
			return err
		}
		if err := s.indentation(); err != nil {
			return err
		}
		if err := s.raw("{"); err != nil {
			return err
		}
		if err := s.newline(); err != nil {
			return err
		}

		s.indent++
		for _, c := range n.Body.Children {
			if err := s.node(c); err != nil {
				return err
			}
		}
		s.indent--

		if err := s.indentation(); err != nil {
			return err
		}
		if err := s.raw("}"); err != nil {
			return err
		}
	}

	return s.newline()
}
