// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package output

import (
	stderrors "errors"

	"vrooli/cli/internal/errors"
	"vrooli/cli/internal/logging"
)

// Failure is the report of a command that failed.
type Failure struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Kind    string   `json:"kind,omitempty"`
	Hints   []string `json:"hints,omitempty"`
}

// NewFailure builds the failure report for err. Secrets in the message are masked.
func NewFailure(err error) *Failure {
	f := &Failure{Error: logging.PresentError("", err)}
	var e *errors.E
	if stderrors.As(err, &e) {
		f.Kind = string(e.Kind)
		f.Hints = append(f.Hints, e.Hints...)
	}
	return f
}

func (f *Failure) Passed() bool { return false }

func (f *Failure) Lines() []Line {
	lines := []Line{Error("%s", f.Error)}
	for _, h := range f.Hints {
		lines = append(lines, Hint("%s", h))
	}
	return lines
}
