// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"vrooli/cli/internal/logging"
)

// DefaultTimeout bounds every request made by the HTTP client.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// CredentialSource supplies the stored credential for authenticated calls.
type CredentialSource interface {
	AuthToken() (string, error)
}

// Options configures the HTTP client.
type Options struct {
	// Endpoints overrides the default API paths.
	Endpoints *Endpoints
	// Credentials supplies the stored credential. May be nil.
	Credentials CredentialSource
	// Client replaces the default *http.Client.
	Client *http.Client
	// Logger receives request traces at debug level.
	Logger *slog.Logger
	// UserAgent is sent with every request.
	UserAgent string
}

// HTTP implements API over the Vrooli REST endpoints.
// A credential captured during Login is used for later calls on the same
// client, ahead of the stored one.
type HTTP struct {
	// baseURL is the base URL for all HTTP requests (e.g., "https://vrooli.com/api/v2/rest")
	baseURL string
	// endpoints contains the URL paths for the API operations
	endpoints Endpoints
	// client is the underlying HTTP client with configured timeout
	client *http.Client
	log    *slog.Logger
	creds  CredentialSource

	mu         sync.Mutex
	credential string
	userAgent  string
}

// newHTTP creates a new HTTP client with the given base URL and options.
func newHTTP(baseURL string, opts Options) *HTTP {
	h := &HTTP{
		baseURL:   strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		endpoints: DefaultEndpoints(),
		client:    opts.Client,
		log:       opts.Logger,
		creds:     opts.Credentials,
		userAgent: opts.UserAgent,
	}
	if opts.Endpoints != nil {
		h.endpoints = *opts.Endpoints
	}
	if h.client == nil {
		h.client = &http.Client{Timeout: DefaultTimeout}
	}
	if h.log == nil {
		h.log = logging.Discard()
	}
	if h.userAgent == "" {
		h.userAgent = "vrooli-cli"
	}
	return h
}

// currentCredential prefers the in-memory credential over the stored one.
func (h *HTTP) currentCredential() string {
	h.mu.Lock()
	cred := h.credential
	h.mu.Unlock()
	if cred != "" || h.creds == nil {
		return cred
	}
	stored, err := h.creds.AuthToken()
	if err != nil {
		h.log.Debug("credential lookup failed", logging.Err(err))
		return ""
	}
	return stored
}

func (h *HTTP) setCredential(cred string) {
	h.mu.Lock()
	h.credential = cred
	h.mu.Unlock()
}

// setStandardHeaders sets the headers every API request carries.
func (h *HTTP) setStandardHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
}

// do performs one API call. A non-nil in is sent as JSON. On success the
// response data, unwrapped from its envelope when present, is decoded into out.
// The response headers are returned so callers can capture credentials.
func (h *HTTP) do(ctx context.Context, method, path string, in, out any) (http.Header, error) {
	var body io.Reader
	var payload []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		payload = b
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	h.setStandardHeaders(req)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	applyCredential(req, h.currentCredential())

	h.log.Debug("api request",
		slog.String("method", method),
		slog.String("url", req.URL.String()),
		slog.String("request_id", req.Header.Get("X-Request-ID")),
		slog.String("body", logging.Mask(string(payload))),
	)

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.Header, fmt.Errorf("read response: %w", err)
	}

	h.log.Debug("api response",
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
		slog.String("body", logging.Mask(string(raw))),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.Header, decodeError(resp.StatusCode, raw)
	}
	if err := decodeData(raw, out); err != nil {
		return resp.Header, err
	}
	return resp.Header, nil
}

// decodeData unwraps an optional {data, errors} envelope into out.
// An envelope carrying errors is reported even on a 2xx status.
func decodeData(raw []byte, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}

	var probe map[string]json.RawMessage
	if json.Unmarshal(trimmed, &probe) == nil {
		_, hasData := probe["data"]
		_, hasErrors := probe["errors"]
		if hasData || hasErrors {
			var env envelope
			if err := json.Unmarshal(trimmed, &env); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
			if len(env.Errors) > 0 {
				se := &StatusError{Code: http.StatusOK}
				applyAPIError(se, env.Errors[0])
				return se
			}
			trimmed = bytes.TrimSpace(env.Data)
		}
	}

	if out == nil || len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
