// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/http"
)

// Login posts the email and password to the login endpoint.
// The credential issued by the server is captured into Session.Credential and
// kept in memory so later calls on this client are authenticated.
func (h *HTTP) Login(ctx context.Context, email, password string) (*Session, error) {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var sess Session
	headers, err := h.do(ctx, http.MethodPost, h.endpoints.Login, in, &sess)
	if err != nil {
		return nil, err
	}
	if cred := captureCredential(headers); cred != "" {
		sess.Credential = cred
		h.setCredential(cred)
	}
	return &sess, nil
}

// Logout invalidates the current session on the backend and forgets the
// in-memory credential.
func (h *HTTP) Logout(ctx context.Context) error {
	_, err := h.do(ctx, http.MethodPost, h.endpoints.Logout, struct{}{}, nil)
	h.setCredential("")
	return err
}

// RequestPasswordChange asks the backend to email a password reset code.
func (h *HTTP) RequestPasswordChange(ctx context.Context, email string) error {
	in := struct {
		Email string `json:"email"`
	}{Email: email}
	_, err := h.do(ctx, http.MethodPost, h.endpoints.RequestPasswordChange, in, nil)
	return err
}

// ResetPassword completes a password reset using the emailed code.
func (h *HTTP) ResetPassword(ctx context.Context, code, newPassword string) error {
	in := struct {
		Code        string `json:"code"`
		NewPassword string `json:"newPassword"`
	}{Code: code, NewPassword: newPassword}
	_, err := h.do(ctx, http.MethodPost, h.endpoints.ResetPassword, in, nil)
	return err
}

// VerifyEmail confirms the account email with the emailed code.
func (h *HTTP) VerifyEmail(ctx context.Context, code string) error {
	in := struct {
		Code string `json:"code"`
	}{Code: code}
	_, err := h.do(ctx, http.MethodPost, h.endpoints.VerifyEmail, in, nil)
	return err
}
