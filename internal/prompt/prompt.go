// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package prompt collects user input on the terminal. Every question runs a
// check on the answer and asks again until the check passes, so invalid
// input never leaves this package.
package prompt

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"vrooli/cli/internal/errors"
	"vrooli/cli/internal/terminal"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// isTerminal is a test seam for terminal.IsTerminal.
var isTerminal = terminal.IsTerminal

// Check validates one answer. A non-nil error is shown to the user and the
// question is asked again.
type Check func(string) error

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

// New returns a Prompter. fd is the file descriptor behind in, used to read
// secrets without echo when it is a terminal.
func New(in io.Reader, out io.Writer, fd int) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, fd: fd}
}

// Ask prints label and reads one line, repeating until check accepts it.
func (p *Prompter) Ask(label string, check Check) (string, error) {
	return p.loop(label, check, p.readLine)
}

// AskSecret is Ask without echo when input comes from a terminal.
func (p *Prompter) AskSecret(label string, check Check) (string, error) {
	return p.loop(label, check, p.readSecret)
}

// AskSensitive is Ask for values that may be typed visibly but should not
// stay on screen, such as emailed codes. On a terminal the echoed answer is
// cleared once accepted.
func (p *Prompter) AskSensitive(label string, check Check) (string, error) {
	v, err := p.Ask(label, check)
	if err != nil {
		return "", err
	}
	if isTerminal(p.fd) {
		terminal.ClearPreviousLines(p.out, p.fd, len(label)+2+len(v))
	}
	return v, nil
}

func (p *Prompter) loop(label string, check Check, read func() (string, error)) (string, error) {
	for {
		if _, err := fmt.Fprint(p.out, pterm.FgCyan.Sprint(label)+": "); err != nil {
			return "", errors.Wrap(errors.Input, "write prompt", err)
		}
		v, err := read()
		if err != nil {
			return "", err
		}
		if check == nil {
			return v, nil
		}
		if err := check(v); err != nil {
			fmt.Fprintln(p.out, pterm.FgRed.Sprint("✗ "+message(err)))
			continue
		}
		return v, nil
	}
}

// readLine reads one trimmed line. A final line without a newline is
// returned as is; EOF with no input ends the prompt.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if stderrors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		if stderrors.Is(err, io.EOF) {
			return "", errors.New(errors.Input, "input closed before an answer was given")
		}
		return "", errors.Wrap(errors.Input, "read input", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) readSecret() (string, error) {
	if !isTerminal(p.fd) {
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		fmt.Fprintln(p.out)
		return line, nil
	}
	b, err := readPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", errors.Wrap(errors.Input, "read password", err)
	}
	return string(b), nil
}

func message(err error) string {
	var e *errors.E
	if stderrors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
