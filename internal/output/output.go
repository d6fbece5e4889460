// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package output renders command results either as JSON for scripts or as
// colored text for people. Both renderings are derived from the same Report,
// so they always agree on whether the command succeeded.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// Level classifies one line of text output.
type Level int

const (
	LevelSuccess Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelDetail
	LevelHint
)

// Line is one line of text output.
type Line struct {
	Level Level
	Text  string
}

// Report is the result of a command. Implementations are plain structs whose
// JSON encoding carries a boolean field equal to Passed. The first line of a
// report is a success line exactly when Passed returns true.
type Report interface {
	Passed() bool
	Lines() []Line
}

func Success(format string, args ...any) Line { return Line{LevelSuccess, fmt.Sprintf(format, args...)} }
func Info(format string, args ...any) Line    { return Line{LevelInfo, fmt.Sprintf(format, args...)} }
func Warning(format string, args ...any) Line { return Line{LevelWarning, fmt.Sprintf(format, args...)} }
func Error(format string, args ...any) Line   { return Line{LevelError, fmt.Sprintf(format, args...)} }
func Hint(format string, args ...any) Line    { return Line{LevelHint, fmt.Sprintf(format, args...)} }

// Detail is an indented "label: value" line.
func Detail(label string, value any) Line {
	return Line{LevelDetail, fmt.Sprintf("%-12s %v", label+":", value)}
}

// Presenter writes reports to a single destination in one format.
type Presenter struct {
	out  io.Writer
	json bool
}

// NewPresenter returns a Presenter writing to out, as JSON when asJSON is set.
func NewPresenter(out io.Writer, asJSON bool) *Presenter {
	return &Presenter{out: out, json: asJSON}
}

// JSON reports whether the presenter emits JSON.
func (p *Presenter) JSON() bool { return p.json }

// Render writes r.
func (p *Presenter) Render(r Report) error {
	if p.json {
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	var b strings.Builder
	for _, l := range r.Lines() {
		b.WriteString(formatLine(l))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(p.out, b.String())
	return err
}

func formatLine(l Line) string {
	switch l.Level {
	case LevelSuccess:
		return pterm.FgGreen.Sprint("✅ " + l.Text)
	case LevelWarning:
		return pterm.FgYellow.Sprint("⚠️  " + l.Text)
	case LevelError:
		return pterm.FgRed.Sprint("❌ " + l.Text)
	case LevelDetail:
		return "   " + l.Text
	case LevelHint:
		return pterm.FgDarkGray.Sprint("   " + l.Text)
	default:
		return l.Text
	}
}
