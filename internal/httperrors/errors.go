// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors turns HTTP and network failures into user-facing guidance.
package httperrors

import (
	"errors"
	"net"
	"net/url"
	"strings"
	"syscall"
)

// Class names the broad reason a request failed.
type Class string

const (
	ClassNone              Class = ""
	ClassTimeout           Class = "timeout"
	ClassDNS               Class = "dns"
	ClassConnectionRefused Class = "connection_refused"
	ClassTLS               Class = "tls"
	ClassServer            Class = "server"
	ClassNetwork           Class = "network"
)

// Classify inspects err and reports which kind of network failure it is.
// Errors that are not network related (e.g. a 400 with a message) yield ClassNone.
func Classify(err error) Class {
	if err == nil {
		return ClassNone
	}
	errStr := err.Error()

	switch {
	case isTimeoutError(err):
		return ClassTimeout
	case isDNSError(err):
		return ClassDNS
	case isConnectionRefusedError(err):
		return ClassConnectionRefused
	case isSSLError(err):
		return ClassTLS
	case isServerError(errStr):
		return ClassServer
	}

	var urlErr *url.Error
	var opErr *net.OpError
	if errors.As(err, &urlErr) || errors.As(err, &opErr) {
		return ClassNetwork
	}
	return ClassNone
}

// Hints returns troubleshooting steps for err, or nil when it is not a
// network failure. host is shown where the address matters.
func Hints(err error, host string) []string {
	if host == "" {
		host = "the server"
	}
	switch Classify(err) {
	case ClassTimeout:
		return []string{
			"The server took too long to respond",
			"Check your internet connection and try again in a few moments",
		}
	case ClassDNS:
		return []string{
			"Unable to look up " + host,
			"Check your internet connection and DNS settings",
			"Verify the server URL with 'vrooli profile show'",
		}
	case ClassConnectionRefused:
		return []string{
			"The server is not accepting connections at " + host,
			"Check the server address and port with 'vrooli profile show'",
		}
	case ClassTLS:
		return []string{
			"Cannot establish a secure HTTPS connection",
			"Check your system date and time",
			"Verify network proxy settings",
		}
	case ClassServer:
		return []string{
			"The server encountered an internal error. This is not a problem with your setup",
			"Please try again in a few minutes",
		}
	case ClassNetwork:
		return []string{
			"Check your internet connection",
			"Check whether " + host + " is reachable from your network",
		}
	}
	return nil
}

// isTimeoutError checks if the error is a timeout error.
func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}

	// Check for timeout in error message
	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return true
	}

	// Check for net.Error with Timeout()
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}

// isDNSError checks if the error is a DNS resolution error.
func isDNSError(err error) bool {
	if err == nil {
		return false
	}

	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isConnectionRefusedError checks if the error is a connection refused error.
func isConnectionRefusedError(err error) bool {
	if err == nil {
		return false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if errors.Is(opErr.Err, syscall.ECONNREFUSED) {
			return true
		}
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused")
}

// isSSLError checks if the error is an SSL/TLS error.
func isSSLError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "handshake")
}

// isServerError checks if the error indicates a server-side problem (5xx errors).
func isServerError(errStr string) bool {
	lower := strings.ToLower(errStr)
	return strings.Contains(lower, "server returned 500") ||
		strings.Contains(lower, "server returned 502") ||
		strings.Contains(lower, "server returned 503") ||
		strings.Contains(lower, "server returned 504") ||
		strings.Contains(lower, "internal server error") ||
		strings.Contains(lower, "bad gateway") ||
		strings.Contains(lower, "service unavailable") ||
		strings.Contains(lower, "gateway timeout")
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
