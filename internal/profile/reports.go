// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package profile

import (
	"vrooli/cli/internal/output"
)

// ListReport lists the configured profiles.
type ListReport struct {
	Success  bool   `json:"success"`
	Profiles []Info `json:"profiles"`
}

func (r *ListReport) Passed() bool { return r.Success }

func (r *ListReport) Lines() []output.Line {
	lines := []output.Line{output.Success("%d profile(s)", len(r.Profiles))}
	for _, p := range r.Profiles {
		marker := "  "
		if p.Active {
			marker = "* "
		}
		session := ""
		if p.HasSession {
			session = " (signed in)"
		}
		lines = append(lines, output.Info("  %s%-12s %s%s", marker, p.Name, p.ServerURL, session))
	}
	return lines
}

// ShowReport describes one profile.
type ShowReport struct {
	Success bool `json:"success"`
	Profile Info `json:"profile"`
}

func (r *ShowReport) Passed() bool { return r.Success }

func (r *ShowReport) Lines() []output.Line {
	session := "none"
	if r.Profile.HasSession {
		session = "stored"
	}
	return []output.Line{
		output.Success("Active profile %q", r.Profile.Name),
		output.Detail("Server", r.Profile.ServerURL),
		output.Detail("Output", r.Profile.Output),
		output.Detail("Session", session),
	}
}

// ChangeReport is the result of changing profile settings.
type ChangeReport struct {
	Success   bool   `json:"success"`
	Profile   string `json:"profile"`
	ServerURL string `json:"serverUrl"`
	message   string
}

// NewChangeReport describes the active profile of s after a change.
func NewChangeReport(s *Store, message string) *ChangeReport {
	return &ChangeReport{Success: true, Profile: s.ActiveProfileName(), ServerURL: s.ServerURL(), message: message}
}

func (r *ChangeReport) Passed() bool { return r.Success }

func (r *ChangeReport) Lines() []output.Line {
	return []output.Line{
		output.Success("%s", r.message),
		output.Detail("Profile", r.Profile),
		output.Detail("Server", r.ServerURL),
	}
}
