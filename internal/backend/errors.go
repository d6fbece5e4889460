// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnauthorized is matched by errors.Is for any 401 response.
var ErrUnauthorized = errors.New("unauthorized")

// Error codes the API uses for a missing or expired session, even when the
// HTTP status itself is not 401.
var unauthorizedCodes = map[string]bool{
	"NotLoggedIn":    true,
	"Unauthorized":   true,
	"SessionExpired": true,
}

// StatusError is returned for every non-successful API answer.
type StatusError struct {
	Code    int
	Reason  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Code)
	}
	return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
}

// Is makes errors.Is(err, ErrUnauthorized) true for 401 answers.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized && e.Code == http.StatusUnauthorized
}

// IsUnauthorized reports whether err means the session is missing or invalid.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// apiError is one entry of the "errors" array in an API envelope.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// envelope is the optional {data, errors} wrapper around API answers.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []apiError      `json:"errors"`
}

// decodeError builds a StatusError from a failed response body.
// It understands the errors envelope, {"error": "..."} and {"message": "..."},
// and falls back to the trimmed body text.
func decodeError(code int, body []byte) *StatusError {
	se := &StatusError{Code: code}

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Errors) > 0 {
		applyAPIError(se, env.Errors[0])
		return se
	}

	var flat struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &flat); err == nil {
		se.Message = firstNonEmpty(flat.Error, flat.Message)
	}
	if se.Message == "" {
		se.Message = strings.TrimSpace(string(body))
	}
	if len(se.Message) > 300 {
		se.Message = se.Message[:300] + "..."
	}
	if se.Message == "" {
		se.Message = http.StatusText(code)
	}
	return se
}

func applyAPIError(se *StatusError, ae apiError) {
	se.Reason = ae.Code
	se.Message = firstNonEmpty(ae.Message, ae.Code)
	if unauthorizedCodes[ae.Code] {
		se.Code = http.StatusUnauthorized
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
