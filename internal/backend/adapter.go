// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides interfaces and implementations for communicating with the Vrooli REST API.
// It defines the API contract for authentication and session probing used by the auth commands.
// The package includes both interface definitions and HTTP-based implementations.
package backend

import "context"

// API defines backend operations the CLI depends on.
// Implementations may call real HTTP endpoints or provide mocks for tests.
type API interface {
	// Login exchanges email and password for a session. The returned session
	// carries the credential issued by the server, if any.
	Login(ctx context.Context, email, password string) (*Session, error)
	// Logout invalidates the current session on the backend.
	Logout(ctx context.Context) error
	// Profile returns the session behind the current credential.
	Profile(ctx context.Context) (*Session, error)
	// RequestPasswordChange asks the backend to email a reset code.
	RequestPasswordChange(ctx context.Context, email string) error
	// ResetPassword completes a reset with the emailed code.
	ResetPassword(ctx context.Context, code, newPassword string) error
	// VerifyEmail confirms an email address with the emailed code.
	VerifyEmail(ctx context.Context, code string) error
}

// Endpoints contains REST API endpoint paths relative to the server URL.
type Endpoints struct {
	Login                 string
	Logout                string
	Profile               string
	RequestPasswordChange string
	ResetPassword         string
	VerifyEmail           string
}

// DefaultEndpoints returns the paths served by the Vrooli REST API.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Login:                 "/auth/email/login",
		Logout:                "/auth/logout",
		Profile:               "/profile",
		RequestPasswordChange: "/auth/email/requestPasswordChange",
		ResetPassword:         "/auth/email/resetPassword",
		VerifyEmail:           "/email/verify",
	}
}
