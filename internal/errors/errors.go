// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages. Commands map every kind to an exit code and to the
// dual JSON/text rendering, so callers never have to parse error strings.
//
// The package supports wrapping underlying errors while maintaining error kind information,
// making it easier to handle different types of failures appropriately.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// Transport indicates a network or HTTP failure reported by the backend client.
	Transport Kind = "transport"
	// DataIntegrity indicates the backend answered but the expected data was missing.
	DataIntegrity Kind = "data_integrity"
	// Validation indicates user input failed a local check.
	Validation Kind = "validation"
	// Store indicates local credential/config persistence failed.
	Store Kind = "store"
	// Input indicates interactive input could not be read at all (closed stdin, no TTY).
	Input Kind = "input"
)

// E wraps an error with kind and human-friendly message.
// Hints are actionable next steps shown to the user under the message.
type E struct {
	Kind    Kind
	Message string
	Err     error
	Hints   []string
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *E) Unwrap() error { return e.Err }

// WithHints returns e with the hints appended.
func (e *E) WithHints(hints ...string) *E {
	e.Hints = append(e.Hints, hints...)
	return e
}

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the kind of the first *E in err's chain, or "" when there is none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
