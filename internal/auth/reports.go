// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"strings"
	"time"

	"vrooli/cli/internal/backend"
	"vrooli/cli/internal/output"
)

// UserSummary identifies a user in login and status results.
type UserSummary struct {
	ID     string `json:"id"`
	Handle string `json:"handle,omitempty"`
	Name   string `json:"name,omitempty"`
}

// Display returns the most readable identifier available.
func (u UserSummary) Display() string {
	switch {
	case u.Handle != "" && u.Name != "":
		return u.Name + " (@" + u.Handle + ")"
	case u.Handle != "":
		return "@" + u.Handle
	case u.Name != "":
		return u.Name
	default:
		return u.ID
	}
}

// UserDetails is the full account view shown by whoami.
type UserDetails struct {
	UserSummary
	Languages  []string        `json:"languages"`
	Credits    backend.Credits `json:"credits"`
	HasPremium bool            `json:"hasPremium"`
	UpdatedAt  *time.Time      `json:"updatedAt,omitempty"`
}

func summarize(u backend.User) UserSummary {
	return UserSummary{ID: u.ID, Handle: u.Handle, Name: u.Name}
}

func details(u backend.User) UserDetails {
	d := UserDetails{
		UserSummary: summarize(u),
		Languages:   u.Languages,
		Credits:     u.Credits,
		HasPremium:  u.HasPremium,
	}
	if d.Languages == nil {
		d.Languages = []string{}
	}
	if !u.UpdatedAt.IsZero() {
		t := u.UpdatedAt
		d.UpdatedAt = &t
	}
	return d
}

// LoginReport is the result of a successful login.
type LoginReport struct {
	Success bool        `json:"success"`
	User    UserSummary `json:"user"`
	// Profile is set when the session was saved.
	Profile string `json:"profile,omitempty"`
}

func (r *LoginReport) Passed() bool { return r.Success }

func (r *LoginReport) Lines() []output.Line {
	lines := []output.Line{
		output.Success("Logged in as %s", r.User.Display()),
		output.Detail("User ID", r.User.ID),
	}
	if r.Profile != "" {
		lines = append(lines, output.Detail("Profile", r.Profile))
	} else {
		lines = append(lines, output.Hint("Session not saved (--no-save)"))
	}
	return lines
}

// LogoutReport is the result of a logout.
type LogoutReport struct {
	Success bool   `json:"success"`
	Profile string `json:"profile"`
}

func (r *LogoutReport) Passed() bool { return r.Success }

func (r *LogoutReport) Lines() []output.Line {
	return []output.Line{output.Success("Logged out of profile %q", r.Profile)}
}

// StatusReport describes the session state of the active profile.
type StatusReport struct {
	Authenticated bool         `json:"authenticated"`
	Profile       string       `json:"profile"`
	Server        string       `json:"server,omitempty"`
	User          *UserSummary `json:"user,omitempty"`
	Error         string       `json:"error,omitempty"`
}

func (r *StatusReport) Passed() bool { return r.Authenticated }

func (r *StatusReport) Lines() []output.Line {
	if r.Authenticated {
		lines := []output.Line{output.Success("Logged in as %s", r.User.Display())}
		lines = append(lines, output.Detail("Profile", r.Profile), output.Detail("Server", r.Server))
		return lines
	}

	lines := []output.Line{output.Warning("Not logged in")}
	lines = append(lines, output.Detail("Profile", r.Profile))
	if r.Server != "" {
		lines = append(lines, output.Detail("Server", r.Server))
	}
	if r.Error != "" {
		lines = append(lines, output.Detail("Reason", r.Error))
	}
	return append(lines, output.Hint(loginHint))
}

// WhoAmIReport is the account behind the current session.
type WhoAmIReport struct {
	Success bool         `json:"success"`
	User    *UserDetails `json:"user,omitempty"`
	Warning string       `json:"warning,omitempty"`
}

func (r *WhoAmIReport) Passed() bool { return r.Success }

func (r *WhoAmIReport) Lines() []output.Line {
	if !r.Success {
		return []output.Line{output.Warning("%s", r.Warning), output.Hint(loginHint)}
	}
	u := r.User
	lines := []output.Line{
		output.Success("👤 Current user: %s", u.Display()),
		output.Detail("ID", u.ID),
	}
	if u.Handle != "" {
		lines = append(lines, output.Detail("Handle", "@"+u.Handle))
	}
	if u.Name != "" {
		lines = append(lines, output.Detail("Name", u.Name))
	}
	if len(u.Languages) > 0 {
		lines = append(lines, output.Detail("Languages", strings.Join(u.Languages, ", ")))
	}
	premium := "no"
	if u.HasPremium {
		premium = "yes"
	}
	lines = append(lines, output.Detail("Credits", u.Credits.String()), output.Detail("Premium", premium))
	if u.UpdatedAt != nil {
		lines = append(lines, output.Detail("Updated", u.UpdatedAt.Local().Format(time.RFC1123)))
	}
	return lines
}

// ResetRequestReport is the result of asking for a password reset email.
type ResetRequestReport struct {
	Success bool   `json:"success"`
	Email   string `json:"email"`
}

func (r *ResetRequestReport) Passed() bool { return r.Success }

func (r *ResetRequestReport) Lines() []output.Line {
	return []output.Line{
		output.Success("Password reset email sent to %s", r.Email),
		output.Hint("Check your inbox for the reset code"),
	}
}

// ResetReport is the result of completing a password reset.
type ResetReport struct {
	Success bool `json:"success"`
	// Email is set when the reset email was requested in the same run.
	Email string `json:"email,omitempty"`
}

func (r *ResetReport) Passed() bool { return r.Success }

func (r *ResetReport) Lines() []output.Line {
	return []output.Line{
		output.Success("Password has been reset"),
		output.Hint(loginHint + " with your new password"),
	}
}

// VerifyReport is the result of an email verification.
type VerifyReport struct {
	Success bool `json:"success"`
}

func (r *VerifyReport) Passed() bool { return r.Success }

func (r *VerifyReport) Lines() []output.Line {
	return []output.Line{output.Success("Email verified")}
}
