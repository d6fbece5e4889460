// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package prompt

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vrooli/cli/internal/errors"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out, -1), &out
}

func TestAsk_RepromptsUntilValid(t *testing.T) {
	p, out := newTestPrompter("not-an-email\na@b.c\n")

	got, err := p.Ask("Email", Email)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", got)
	assert.Equal(t, 2, strings.Count(out.String(), "Email"))
	assert.Contains(t, out.String(), "enter a valid email address")
}

func TestAsk_LastLineWithoutNewline(t *testing.T) {
	p, _ := newTestPrompter("lastline")
	got, err := p.Ask("Code", nil)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)
}

func TestAsk_EOFIsInputError(t *testing.T) {
	p, _ := newTestPrompter("\n")
	_, err := p.Ask("Code", NonEmpty("code"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.Input))
}

func TestAskSecret_PipedInput(t *testing.T) {
	p, _ := newTestPrompter("\nSecret123\n")
	got, err := p.AskSecret("Password", NonEmpty("password"))
	require.NoError(t, err)
	assert.Equal(t, "Secret123", got)
}

func TestAskSecret_Terminal(t *testing.T) {
	oldRead, oldTerm := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = oldRead, oldTerm })
	isTerminal = func(int) bool { return true }

	answers := []string{"", "hunter22"}
	readPassword = func(int) ([]byte, error) {
		a := answers[0]
		answers = answers[1:]
		return []byte(a), nil
	}

	p, out := newTestPrompter("")
	got, err := p.AskSecret("Password", NonEmpty("password"))
	require.NoError(t, err)
	assert.Equal(t, "hunter22", got)
	assert.NotContains(t, out.String(), "hunter22")
}

func TestAskSecret_TerminalError(t *testing.T) {
	oldRead, oldTerm := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = oldRead, oldTerm })
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return nil, stderrors.New("boom") }

	p, _ := newTestPrompter("")
	_, err := p.AskSecret("Password", nil)
	require.Error(t, err)
	assert.Equal(t, errors.Input, errors.KindOf(err))
}

func TestAskSensitive_ClearsEcho(t *testing.T) {
	oldTerm := isTerminal
	t.Cleanup(func() { isTerminal = oldTerm })
	isTerminal = func(int) bool { return true }

	p, out := newTestPrompter("884422\n")
	got, err := p.AskSensitive("Reset code", NonEmpty("code"))
	require.NoError(t, err)
	assert.Equal(t, "884422", got)
	assert.Contains(t, out.String(), "\x1b[2K")
}
