// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"io"
	"log/slog"

	"github.com/pterm/pterm"
)

// New returns a structured logger that renders through pterm to w.
// Debug records are only emitted when debug is true; otherwise the
// threshold is warn so that diagnostics stay out of normal output.
func New(w io.Writer, debug bool) *slog.Logger {
	level := pterm.LogLevelWarn
	if debug {
		level = pterm.LogLevelDebug
	}
	pl := pterm.DefaultLogger.WithWriter(w).WithLevel(level)
	return slog.New(pterm.NewSlogHandler(pl))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Err is the attribute used for errors in log records. The message is masked.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", Mask(err.Error()))
}
