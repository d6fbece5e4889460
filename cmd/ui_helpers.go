// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"

	"vrooli/cli/internal/backend"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 100 * time.Millisecond

// startInlineSpinner starts a simple inline spinner animation on a single line.
// It displays rotating animation frames followed by the provided text, updating
// the same line in the terminal. The spinner runs in a separate goroutine and
// can be stopped by calling the returned function, which clears the line.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) func() {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	cursor.Hide()
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				// Clear the spinner line completely, then return
				fmt.Fprintf(w, "\r%*s\r", len(line)+2, "")
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s %s", pterm.FgLightCyan.Sprint(frames[i%len(frames)]), text)
				i++
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
		cursor.Show()
	}
}

// spinningAPI shows a spinner on w while a backend call is in flight.
type spinningAPI struct {
	backend.API
	w io.Writer
}

func withSpinner(api backend.API, w io.Writer) backend.API {
	return &spinningAPI{API: api, w: w}
}

func (s *spinningAPI) spin(text string) func() {
	return startInlineSpinner(s.w, text, spinnerFrames, spinnerInterval)
}

func (s *spinningAPI) Login(ctx context.Context, email, password string) (*backend.Session, error) {
	defer s.spin("Signing in")()
	return s.API.Login(ctx, email, password)
}

func (s *spinningAPI) Logout(ctx context.Context) error {
	defer s.spin("Signing out")()
	return s.API.Logout(ctx)
}

func (s *spinningAPI) Profile(ctx context.Context) (*backend.Session, error) {
	defer s.spin("Checking session")()
	return s.API.Profile(ctx)
}

func (s *spinningAPI) RequestPasswordChange(ctx context.Context, email string) error {
	defer s.spin("Requesting password reset")()
	return s.API.RequestPasswordChange(ctx, email)
}

func (s *spinningAPI) ResetPassword(ctx context.Context, code, newPassword string) error {
	defer s.spin("Resetting password")()
	return s.API.ResetPassword(ctx, code, newPassword)
}

func (s *spinningAPI) VerifyEmail(ctx context.Context, code string) error {
	defer s.spin("Verifying email")()
	return s.API.VerifyEmail(ctx, code)
}
