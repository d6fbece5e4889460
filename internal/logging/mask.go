// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides the CLI's structured logger and helpers for secure logging.
// It includes functions for masking sensitive information in log messages and
// formatting errors for user-friendly display while protecting credentials and secrets.
//
// The package helps ensure that sensitive data like passwords, reset codes, bearer
// tokens and session cookies are not accidentally exposed in logs or error messages.
package logging

import (
	"regexp"
)

var (
	reJSONSecret = regexp.MustCompile(`(?i)("(?:password|newPassword|confirmPassword|code|token|accessToken)"\s*:\s*)"(?:[^"\\]|\\.)*"`)
	rePassword   = regexp.MustCompile(`(?i)(password=)([^\s;&]+)`)
	reToken      = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._~+/=-]+)`)
	reSession    = regexp.MustCompile(`(?i)(session[A-Za-z0-9_-]*=)([^\s;]+)`)
)

// Mask replaces sensitive values in the input string with "***".
// It handles JSON request bodies as well as header- and query-style pairs.
func Mask(s string) string {
	out := s
	out = reJSONSecret.ReplaceAllString(out, `$1"***"`)
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	out = reSession.ReplaceAllString(out, "$1***")
	return out
}
