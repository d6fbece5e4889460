// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

// New creates a backend API implementation for the server at baseURL.
// Returns HTTP client (real backend).
func New(baseURL string, opts Options) *HTTP {
	return newHTTP(baseURL, opts)
}

var _ API = (*HTTP)(nil)
