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

package reporter_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vercas/fml/reporter"
	"github.com/vercas/fml/source"
)

func TestHandlerContinuesWhenReporterReturnsNil(t *testing.T) {
	h := reporter.NewHandler(func(reporter.ErrorWithPos) error { return nil }, nil)

	err := h.HandleError(reporter.Errorf(source.Position{Line: 1, Column: 1}, 1, "boom"))
	assert.NoError(t, err)
	assert.NoError(t, h.ReporterError())
	assert.Equal(t, 1, h.ErrorCount())
}

func TestHandlerHaltsAndLatches(t *testing.T) {
	sentinel := errors.New("fatal")
	calls := 0
	h := reporter.NewHandler(func(reporter.ErrorWithPos) error {
		calls++
		return sentinel
	}, nil)

	err1 := h.HandleError(reporter.Errorf(source.Position{Line: 1, Column: 1}, 1, "first"))
	err2 := h.HandleError(reporter.Errorf(source.Position{Line: 2, Column: 1}, 1, "second"))

	require.ErrorIs(t, err1, sentinel)
	require.ErrorIs(t, err2, sentinel)
	assert.Equal(t, 1, calls, "reporter should not be invoked again once halted")
	assert.Equal(t, 2, h.ErrorCount())
}

func TestNilReporterHaltsImmediately(t *testing.T) {
	h := reporter.NewHandler(nil, nil)
	err := h.HandleError(reporter.Errorf(source.Position{Line: 1, Column: 1}, 1, "boom"))
	assert.Error(t, err)
	assert.Error(t, h.ReporterError())
}

func TestWarningsNeverHalt(t *testing.T) {
	var warned []string
	h := reporter.NewHandler(nil, func(e reporter.ErrorWithPos) {
		warned = append(warned, e.Unwrap().Error())
	})

	h.HandleWarning(reporter.Errorf(source.Position{Line: 1, Column: 1}, 0, "careful"))
	assert.NoError(t, h.ReporterError())
	assert.Equal(t, []string{"careful"}, warned)
	assert.Equal(t, 1, h.WarningCount())
}

func TestFormatRendersCaretUnderColumn(t *testing.T) {
	buf := source.New("t", []byte("btn label=\"unterminated\n"))
	e := reporter.Errorf(buf.Pos(11), 1, "unterminated string")

	out := reporter.Format(buf, e)
	assert.Contains(t, out, "1:12: unterminated string")
	assert.Contains(t, out, "btn label=\"unterminated")
}

func TestDefaultHandlerNeverHalts(t *testing.T) {
	var out bytes.Buffer
	buf := source.New("t", []byte("a;"))
	h := reporter.NewDefaultHandler(buf, &out)

	err := h.HandleError(reporter.Errorf(buf.Pos(0), 1, "oops"))
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "oops")
}
