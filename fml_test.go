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

package fml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vercas/fml"
	"github.com/vercas/fml/reporter"
)

func TestParseStringAndBeautifyRoundTrip(t *testing.T) {
	src := `html { head { title [[My Page]]; } body.main { p label="hi"; } }`

	forest, _, err := fml.ParseString("page.fml", src, fml.Options{})
	require.NoError(t, err)
	require.Len(t, forest, 1)

	out, err := fml.Beautify(forest)
	require.NoError(t, err)
	assert.Contains(t, out, "html\n{\n")
	assert.Contains(t, out, "title [[My Page]];\n")
}

func TestParseDefaultOptionsHaltsOnFirstError(t *testing.T) {
	_, _, err := fml.ParseString("bad.fml", `; a;`, fml.Options{})
	require.Error(t, err)
}

func TestParseWithCustomReporterCollectsAllErrors(t *testing.T) {
	var errs []string
	h := reporter.NewHandler(func(e reporter.ErrorWithPos) error {
		errs = append(errs, e.Unwrap().Error())
		return nil
	}, nil)

	forest, _, err := fml.ParseString("multi.fml", `; a; ; b;`, fml.Options{Reporter: h})
	require.NoError(t, err)
	require.Len(t, forest, 2)
	assert.Len(t, errs, 2)
}
