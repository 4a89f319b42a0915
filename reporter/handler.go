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

// ErrorReporter is called once per reported error. A nil return requests
// that the calling stage continue (best-effort recovery); a non-nil return
// requests it halt, and that return value becomes Handler.ReporterError().
type ErrorReporter func(ErrorWithPos) error

// WarningReporter is called once per reported warning. Warnings never halt
// a stage.
type WarningReporter func(ErrorWithPos)

// Handler is the injected capability the lexer and parser report diagnostics
// through. It is passed by value as a pointer (not a global), so the core
// stays free of any ambient error-handling policy.
type Handler struct {
	errorReporter   ErrorReporter
	warningReporter WarningReporter

	errorCount   int
	warningCount int
	halted       error
}

// NewHandler builds a Handler around the given reporter callbacks. Either
// may be nil: a nil ErrorReporter halts on the very first error (treating
// every error as fatal); a nil WarningReporter discards warnings.
func NewHandler(errRep ErrorReporter, warnRep WarningReporter) *Handler {
	return &Handler{errorReporter: errRep, warningReporter: warnRep}
}

// HandleError reports err. It returns nil if the caller should continue, or
// a non-nil error if the caller should halt; once halted, HandleError keeps
// returning the same error without invoking the reporter again.
func (h *Handler) HandleError(err ErrorWithPos) error {
	h.errorCount++

	if h.halted != nil {
		return h.halted
	}

	var reported error
	if h.errorReporter != nil {
		reported = h.errorReporter(err)
	} else {
		reported = err
	}

	if reported != nil {
		h.halted = reported
	}
	return reported
}

// HandleWarning reports a non-fatal diagnostic.
func (h *Handler) HandleWarning(err ErrorWithPos) {
	h.warningCount++
	if h.warningReporter != nil {
		h.warningReporter(err)
	}
}

// ReporterError returns the error that caused the most recent halt, or nil
// if no stage has halted yet.
func (h *Handler) ReporterError() error { return h.halted }

// ErrorCount returns the number of errors reported so far, including ones
// that did not halt.
func (h *Handler) ErrorCount() int { return h.errorCount }

// WarningCount returns the number of warnings reported so far.
func (h *Handler) WarningCount() int { return h.warningCount }
