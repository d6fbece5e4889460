// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// User is the subset of account fields the CLI displays.
type User struct {
	ID         string    `json:"id"`
	Handle     string    `json:"handle,omitempty"`
	Name       string    `json:"name,omitempty"`
	Languages  []string  `json:"languages,omitempty"`
	Credits    Credits   `json:"credits"`
	HasPremium bool      `json:"hasPremium"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Session is the result of a successful authentication exchange.
type Session struct {
	IsLoggedIn bool   `json:"isLoggedIn"`
	TimeZone   string `json:"timeZone,omitempty"`
	Users      []User `json:"users"`

	// Credential is the opaque bearer credential captured by the transport.
	// Only the credential store reads it.
	Credential string `json:"-"`
}

// PrimaryUser returns the first user of the session.
func (s *Session) PrimaryUser() (User, bool) {
	if s == nil || len(s.Users) == 0 {
		return User{}, false
	}
	return s.Users[0], true
}

// Credits is a decimal credit balance. The server sends it either as a JSON
// number or as a string holding an arbitrarily large integer.
type Credits string

// UnmarshalJSON accepts numbers, numeric strings and null.
func (c *Credits) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*c = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
	}
	if s == "" {
		*c = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal([]byte(s), &n); err != nil {
		return fmt.Errorf("invalid credits value %q", s)
	}
	*c = Credits(s)
	return nil
}

// MarshalJSON always emits a JSON number.
func (c Credits) MarshalJSON() ([]byte, error) {
	if c == "" {
		return []byte("0"), nil
	}
	return []byte(c), nil
}

func (c Credits) String() string {
	if c == "" {
		return "0"
	}
	return string(c)
}
