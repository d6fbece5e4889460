// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/http"
)

// Profile calls GET on the profile endpoint with the current credential and
// returns the session it describes. A missing or expired session yields an
// error matching ErrUnauthorized.
func (h *HTTP) Profile(ctx context.Context) (*Session, error) {
	var sess Session
	if _, err := h.do(ctx, http.MethodGet, h.endpoints.Profile, nil, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}
