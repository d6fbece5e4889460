// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package httperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"
	"testing"
)

func TestClassify(t *testing.T) {
	refused := &url.Error{Op: "Get", URL: "http://localhost:1", Err: &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}}
	dns := &url.Error{Op: "Get", URL: "http://nope.invalid", Err: &net.DNSError{Err: "no such host", Name: "nope.invalid"}}

	tests := []struct {
		name string
		err  error
		want Class
	}{
		{"nil", nil, ClassNone},
		{"deadline", fmt.Errorf("request: %w", context.DeadlineExceeded), ClassTimeout},
		{"dns", dns, ClassDNS},
		{"refused", refused, ClassConnectionRefused},
		{"tls", errors.New("x509: certificate signed by unknown authority"), ClassTLS},
		{"server", errors.New("server returned 503: Service Unavailable"), ClassServer},
		{"reset", &url.Error{Op: "Post", URL: "http://x", Err: errors.New("EOF")}, ClassNetwork},
		{"client error", errors.New("server returned 400: bad input"), ClassNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHints(t *testing.T) {
	if got := Hints(errors.New("server returned 400: bad"), "vrooli.com"); got != nil {
		t.Errorf("Hints() = %v, want nil", got)
	}
	got := Hints(&net.DNSError{Err: "no such host", Name: "vrooli.com"}, "vrooli.com")
	if len(got) == 0 || got[0] != "Unable to look up vrooli.com" {
		t.Errorf("Hints() = %v, want DNS hint for vrooli.com", got)
	}
}

func TestExtractHostFromURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://vrooli.com/api/v2/rest", "vrooli.com"},
		{"http://localhost:5329", "localhost:5329"},
		{"not a url", "server"},
	}
	for _, tt := range tests {
		if got := ExtractHostFromURL(tt.in); got != tt.want {
			t.Errorf("ExtractHostFromURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
