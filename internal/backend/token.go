// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"net/http"
	"strings"
)

// Credential encodings. The stored credential is opaque to everything except
// this file: "bearer <token>" or "cookie <name>=<value>".
const (
	credBearer = "bearer "
	credCookie = "cookie "
)

// sessionCookiePrefix matches the API's session cookie (e.g. "session-f234y7fdiafhdja2").
const sessionCookiePrefix = "session"

// parseBearerToken extracts token from a value like "Bearer <token>" case-insensitively.
// Returns the token string without the "Bearer " prefix, or empty string if invalid format.
func parseBearerToken(value string) string {
	v := strings.TrimSpace(value)
	if len(v) < 7 {
		return ""
	}
	if strings.EqualFold(v[0:6], "bearer") {
		if rest := strings.TrimSpace(v[6:]); rest != "" {
			return rest
		}
	}
	return ""
}

// findBearerTokenInHeaders scans all headers for a Bearer token, case-insensitively.
// It first checks the Authorization header, then falls back to scanning all headers.
// Returns the token string without the "Bearer " prefix, or empty string if not found.
func findBearerTokenInHeaders(h http.Header) string {
	if t := parseBearerToken(h.Get("Authorization")); t != "" {
		return t
	}
	for k, vals := range h {
		if strings.EqualFold(k, "set-cookie") {
			continue
		}
		for _, v := range vals {
			lower := strings.ToLower(v)
			idx := strings.Index(lower, "bearer ")
			if idx >= 0 {
				if token := strings.TrimSpace(v[idx+len("bearer "):]); token != "" {
					return token
				}
			}
		}
	}
	return ""
}

// captureCredential derives the session credential from response headers.
// A bearer token wins over a session cookie. Returns "" when neither is present.
func captureCredential(h http.Header) string {
	if t := findBearerTokenInHeaders(h); t != "" {
		return credBearer + t
	}
	resp := http.Response{Header: h}
	for _, c := range resp.Cookies() {
		if strings.HasPrefix(c.Name, sessionCookiePrefix) && c.Value != "" {
			return credCookie + c.Name + "=" + c.Value
		}
	}
	return ""
}

// applyCredential attaches a stored credential to an outgoing request.
// A bare value without a known prefix is sent as a bearer token.
func applyCredential(req *http.Request, cred string) {
	cred = strings.TrimSpace(cred)
	switch {
	case cred == "":
		return
	case strings.HasPrefix(cred, credCookie):
		name, value, ok := strings.Cut(strings.TrimPrefix(cred, credCookie), "=")
		if ok && name != "" {
			req.AddCookie(&http.Cookie{Name: name, Value: value})
		}
	case strings.HasPrefix(cred, credBearer):
		req.Header.Set("Authorization", "Bearer "+strings.TrimPrefix(cred, credBearer))
	default:
		req.Header.Set("Authorization", "Bearer "+cred)
	}
}
