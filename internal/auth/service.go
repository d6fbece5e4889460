// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth provides authentication services for the vrooli CLI.
// It mediates between the REST backend and the local credential store for
// login, logout, status, identity queries, password reset and email
// verification, and reports every outcome as a value the presenter renders.
package auth

import (
	"context"
	stderrors "errors"
	"log/slog"

	"vrooli/cli/internal/backend"
	"vrooli/cli/internal/errors"
	"vrooli/cli/internal/httperrors"
	"vrooli/cli/internal/logging"
	"vrooli/cli/internal/prompt"
)

// loginHint is shown wherever a session is missing or invalid.
const loginHint = "Run 'vrooli auth login' to sign in"

// CredentialStore is the persisted state of the active profile.
type CredentialStore interface {
	ActiveProfileName() string
	AuthToken() (string, error)
	ServerURL() string
	SetSession(sess *backend.Session) error
	ClearAuth() error
	IsJSONOutput() bool
	IsDebug() bool
}

// Prompter collects validated input from the user.
type Prompter interface {
	Ask(label string, check prompt.Check) (string, error)
	AskSecret(label string, check prompt.Check) (string, error)
	AskSensitive(label string, check prompt.Check) (string, error)
}

// Service centralizes authentication-related operations against the backend
// and local secure storage.
type Service struct {
	be     backend.API
	store  CredentialStore
	prompt Prompter
	log    *slog.Logger
}

// NewService constructs an auth Service.
func NewService(be backend.API, store CredentialStore, p Prompter, log *slog.Logger) *Service {
	if log == nil {
		log = logging.Discard()
	}
	return &Service{be: be, store: store, prompt: p, log: log}
}

// LoginInput holds optional pre-supplied credentials.
type LoginInput struct {
	Email    string
	Password string
	// Persist stores the session in the active profile. False leaves the
	// credential store untouched.
	Persist bool
}

// Login exchanges email and password for a session. Missing values are
// prompted for; values passed in are used as given.
func (s *Service) Login(ctx context.Context, rc Context, in LoginInput) (*LoginReport, error) {
	email, password := in.Email, in.Password
	var err error
	if email == "" {
		if email, err = s.prompt.Ask("Email", prompt.Email); err != nil {
			return nil, err
		}
	}
	if password == "" {
		if password, err = s.prompt.AskSecret("Password", prompt.NonEmpty("password")); err != nil {
			return nil, err
		}
	}

	sess, err := s.be.Login(ctx, email, password)
	if err != nil {
		e := transportError(rc, "login failed", err)
		if backend.IsUnauthorized(err) {
			e.WithHints("Check your email and password", "Forgot it? Run 'vrooli auth reset-password'")
		}
		return nil, e
	}

	user, ok := sess.PrimaryUser()
	if !ok {
		return nil, errors.New(errors.DataIntegrity, "no user data in login response")
	}

	rep := &LoginReport{Success: true, User: summarize(user)}
	if in.Persist {
		if err := s.store.SetSession(sess); err != nil {
			return nil, storeError("failed to save session", err)
		}
		rep.Profile = rc.Profile
	}
	s.log.Debug("logged in", slog.String("profile", rc.Profile), slog.Bool("saved", in.Persist))
	return rep, nil
}

// Logout ends the session of the active profile. The remote call is best
// effort; the local credentials are always cleared. Only a store failure
// makes it fail, so logging out twice succeeds.
func (s *Service) Logout(ctx context.Context, rc Context) (*LogoutReport, error) {
	tok, err := s.store.AuthToken()
	if err != nil {
		s.log.Debug("reading stored credential failed", logging.Err(err))
	}
	if tok != "" {
		if err := s.be.Logout(ctx); err != nil {
			s.log.Debug("remote logout failed", logging.Err(err))
		}
	}
	if err := s.store.ClearAuth(); err != nil {
		return nil, storeError("failed to clear stored credentials", err)
	}
	return &LogoutReport{Success: true, Profile: rc.Profile}, nil
}

// Status reports whether the active profile holds a working session.
// A session the server rejects is cleared locally; that outcome is not an
// error.
func (s *Service) Status(ctx context.Context, rc Context) (*StatusReport, error) {
	tok, err := s.store.AuthToken()
	if err != nil {
		return nil, storeError("failed to read stored credentials", err)
	}
	if tok == "" {
		return &StatusReport{Profile: rc.Profile}, nil
	}

	rep := &StatusReport{Profile: rc.Profile, Server: rc.ServerURL}
	sess, err := s.be.Profile(ctx)
	if err != nil {
		s.log.Debug("session probe failed, clearing local credentials", logging.Err(err))
		if cerr := s.store.ClearAuth(); cerr != nil {
			return nil, storeError("failed to clear stored credentials", cerr)
		}
		rep.Error = logging.PresentError("", err)
		return rep, nil
	}

	user, ok := sess.PrimaryUser()
	if !ok {
		rep.Error = "no user data in session"
		return rep, nil
	}
	sum := summarize(user)
	rep.Authenticated = true
	rep.User = &sum
	return rep, nil
}

// WhoAmI fetches the full account of the current session from the server.
func (s *Service) WhoAmI(ctx context.Context, rc Context) (*WhoAmIReport, error) {
	sess, err := s.be.Profile(ctx)
	if err != nil {
		if backend.IsUnauthorized(err) {
			return nil, errors.Wrap(errors.Transport, "not authenticated", err).WithHints(loginHint)
		}
		return nil, transportError(rc, "failed to get user info", err)
	}

	user, ok := sess.PrimaryUser()
	if !ok {
		return &WhoAmIReport{Warning: "no user data in session"}, nil
	}
	d := details(user)
	return &WhoAmIReport{Success: true, User: &d}, nil
}

// RequestPasswordReset asks the server to email a reset code. It is the
// first half of a password reset; CompletePasswordReset is the second.
func (s *Service) RequestPasswordReset(ctx context.Context, rc Context, email string) (*ResetRequestReport, error) {
	if email == "" {
		var err error
		if email, err = s.prompt.Ask("Email", prompt.Email); err != nil {
			return nil, err
		}
	}
	if err := s.be.RequestPasswordChange(ctx, email); err != nil {
		return nil, transportError(rc, "failed to request password reset", err)
	}
	return &ResetRequestReport{Success: true, Email: email}, nil
}

// CompletePasswordReset sets a new password using an emailed reset code.
// The new password and its confirmation are validated before anything is
// sent to the server.
func (s *Service) CompletePasswordReset(ctx context.Context, rc Context, code string) (*ResetReport, error) {
	var err error
	if code == "" {
		if code, err = s.prompt.AskSensitive("Reset code", prompt.NonEmpty("reset code")); err != nil {
			return nil, err
		}
	}
	minLen := rc.MinPasswordLength
	if minLen <= 0 {
		minLen = 1
	}
	newPassword, err := s.prompt.AskSecret("New password", prompt.MinLength(minLen))
	if err != nil {
		return nil, err
	}
	if _, err := s.prompt.AskSecret("Confirm password", prompt.Equals(newPassword, "passwords")); err != nil {
		return nil, err
	}

	if err := s.be.ResetPassword(ctx, code, newPassword); err != nil {
		e := transportError(rc, "failed to reset password", err)
		if !isNetworkFailure(err) {
			e.WithHints("The reset code may be wrong or expired", "Run 'vrooli auth reset-password' to get a new code")
		}
		return nil, e
	}
	return &ResetReport{Success: true}, nil
}

// VerifyEmail confirms the account email with an emailed code.
func (s *Service) VerifyEmail(ctx context.Context, rc Context, code string) (*VerifyReport, error) {
	if code == "" {
		var err error
		if code, err = s.prompt.AskSensitive("Verification code", prompt.NonEmpty("verification code")); err != nil {
			return nil, err
		}
	}
	if err := s.be.VerifyEmail(ctx, code); err != nil {
		e := transportError(rc, "failed to verify email", err)
		if !isNetworkFailure(err) {
			e.WithHints(
				"The verification code may be wrong or expired",
				"Check that you copied the whole code from the latest email",
			)
		}
		return nil, e
	}
	return &VerifyReport{Success: true}, nil
}

// transportError wraps a backend failure, adding network troubleshooting
// hints when the failure is a connectivity problem.
func transportError(rc Context, msg string, err error) *errors.E {
	return errors.Wrap(errors.Transport, msg, err).WithHints(httperrors.Hints(err, rc.host())...)
}

// storeError keeps a store failure that already carries its own message.
func storeError(msg string, err error) *errors.E {
	var e *errors.E
	if stderrors.As(err, &e) && e.Kind == errors.Store {
		return e
	}
	return errors.Wrap(errors.Store, msg, err)
}

func isNetworkFailure(err error) bool {
	return httperrors.Classify(err) != httperrors.ClassNone
}
