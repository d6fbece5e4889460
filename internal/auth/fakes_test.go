// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"vrooli/cli/internal/backend"
	"vrooli/cli/internal/prompt"
)

// fakeAPI records calls and returns canned answers.
type fakeAPI struct {
	loginSess *backend.Session
	loginErr  error
	logoutErr error
	profile   *backend.Session
	profErr   error
	requestEr error
	resetErr  error
	verifyErr error

	loginEmails  []string
	logoutCalls  int
	profileCalls int
	resetCalls   int
	resetCode    string
	resetPass    string
	verifyCodes  []string
}

func (f *fakeAPI) Login(_ context.Context, email, _ string) (*backend.Session, error) {
	f.loginEmails = append(f.loginEmails, email)
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginSess, nil
}

func (f *fakeAPI) Logout(context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeAPI) Profile(context.Context) (*backend.Session, error) {
	f.profileCalls++
	if f.profErr != nil {
		return nil, f.profErr
	}
	return f.profile, nil
}

func (f *fakeAPI) RequestPasswordChange(context.Context, string) error { return f.requestEr }

func (f *fakeAPI) ResetPassword(_ context.Context, code, newPassword string) error {
	f.resetCalls++
	f.resetCode, f.resetPass = code, newPassword
	return f.resetErr
}

func (f *fakeAPI) VerifyEmail(_ context.Context, code string) error {
	f.verifyCodes = append(f.verifyCodes, code)
	return f.verifyErr
}

// fakeStore is an in-memory credential store.
type fakeStore struct {
	token      string
	session    *backend.Session
	setCalls   int
	clearCalls int
	clearErr   error
	setErr     error
}

func (s *fakeStore) ActiveProfileName() string { return "default" }
func (s *fakeStore) ServerURL() string { return "https://vrooli.test/api/v2/rest" }
func (s *fakeStore) IsJSONOutput() bool { return false }
func (s *fakeStore) IsDebug() bool { return false }

func (s *fakeStore) AuthToken() (string, error) { return s.token, nil }

func (s *fakeStore) SetSession(sess *backend.Session) error {
	s.setCalls++
	if s.setErr != nil {
		return s.setErr
	}
	s.session = sess
	if sess.Credential != "" {
		s.token = sess.Credential
	}
	return nil
}

func (s *fakeStore) ClearAuth() error {
	s.clearCalls++
	if s.clearErr != nil {
		return s.clearErr
	}
	s.token, s.session = "", nil
	return nil
}

var (
	unauthorized = &backend.StatusError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	serverDown   = &backend.StatusError{Code: http.StatusInternalServerError, Message: "Internal Server Error"}
	errBoom      = errors.New("boom")
)

func sessionWith(users ...backend.User) *backend.Session {
	return &backend.Session{IsLoggedIn: len(users) > 0, Users: users, Credential: "bearer fresh"}
}

var ada = backend.User{ID: "u1", Handle: "ada", Name: "Ada", Languages: []string{"en"}, Credits: "1500", HasPremium: true}

// newTestService wires a service with scripted prompt input.
func newTestService(t *testing.T, api *fakeAPI, store *fakeStore, input string) (*Service, Context) {
	t.Helper()
	var promptOut strings.Builder
	p := prompt.New(strings.NewReader(input), &promptOut, -1)
	svc := NewService(api, store, p, nil)
	return svc, NewContext(store, 8)
}
