// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import "vrooli/cli/internal/httperrors"

// Context carries the per-invocation settings every operation needs.
// It is built once by the command layer and passed explicitly.
type Context struct {
	// Profile is the active profile name.
	Profile string
	// ServerURL is the API base URL of the active profile.
	ServerURL string
	// JSON selects machine-readable output.
	JSON bool
	// Debug enables debug logging.
	Debug bool
	// MinPasswordLength is the password policy applied when choosing a new password.
	MinPasswordLength int
}

// NewContext builds a Context from the credential store.
func NewContext(store CredentialStore, minPasswordLength int) Context {
	return Context{
		Profile:           store.ActiveProfileName(),
		ServerURL:         store.ServerURL(),
		JSON:              store.IsJSONOutput(),
		Debug:             store.IsDebug(),
		MinPasswordLength: minPasswordLength,
	}
}

// host is the server host used in hints.
func (rc Context) host() string {
	return httperrors.ExtractHostFromURL(rc.ServerURL)
}
