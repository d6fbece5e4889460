// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe keychain operations for vrooli.
// This module manages all interactions with the OS keychain/credential store,
// providing a unified interface for storing and retrieving the per-profile
// session credential and cached session metadata.
//
// The package supports macOS Keychain, Windows Credential Manager and the Linux
// Secret Service/KWallet/pass stores, with an encrypted file store as the last
// resort on headless machines.
package keychain

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/99designs/keyring"

	"vrooli/cli/internal/xdg"
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "vrooli"

// Key suffixes stored under each profile.
const (
	keyToken   = "token"
	keySession = "session"
)

// BackendFile forces the encrypted file backend when passed as Options.Backend.
const BackendFile = "file"

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu      sync.RWMutex
	ring    keyring.Keyring
	backend keychainBackend
}

// keychainBackend defines the interface for keychain operations.
type keychainBackend interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// Options configures how the keyring is opened.
type Options struct {
	// Backend forces a specific backend; only BackendFile is recognised.
	Backend string
	// FilePassword unlocks the file backend without prompting.
	FilePassword string
	Logger       *slog.Logger
}

// NewManager creates a new keychain manager with the OS keyring initialized.
func NewManager(opts Options) (*Manager, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	// Native security command first on macOS; it avoids repeated keychain ACL prompts.
	if runtime.GOOS == "darwin" && opts.Backend != BackendFile {
		backend, err := newSecurityBackend(log)
		if err == nil {
			return &Manager{backend: backend}, nil
		}
		log.Debug("security command unavailable, falling back to keyring", "error", err)
	}

	ring, err := openRing(opts)
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// NewManagerWithRing wraps an already opened keyring (used with keyring.NewArrayKeyring in tests).
func NewManagerWithRing(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring}
}

// openRing opens the OS keyring, preferring the platform's native store.
func openRing(opts Options) (keyring.Keyring, error) {
	var allowedBackends []keyring.BackendType
	switch {
	case opts.Backend == BackendFile:
		allowedBackends = []keyring.BackendType{keyring.FileBackend}
	case runtime.GOOS == "darwin":
		// Pass requires 'pass' utility installed: brew install pass
		allowedBackends = []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}
	case runtime.GOOS == "windows":
		allowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	default:
		allowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		}
	}

	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowedBackends,
		PassPrefix:      ServiceName,
		WinCredPrefix:   ServiceName,
		KWalletAppID:    ServiceName,
		KWalletFolder:   ServiceName,
	}

	for _, b := range allowedBackends {
		if b != keyring.FileBackend {
			continue
		}
		dir, err := xdg.KeyringDir()
		if err != nil {
			return nil, err
		}
		cfg.FileDir = dir
		if opts.FilePassword != "" {
			cfg.FilePasswordFunc = keyring.FixedStringPrompt(opts.FilePassword)
		} else {
			cfg.FilePasswordFunc = keyring.TerminalPrompt
		}
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		if runtime.GOOS == "darwin" {
			return nil, errors.New("macOS Keychain unavailable. On macOS 26.0+, install 'pass': brew install pass gnupg && gpg --generate-key && pass init <gpg-key-id>")
		}
		return nil, fmt.Errorf("open credential store: %w", err)
	}
	return ring, nil
}

// profileKey namespaces a key under a profile, e.g. "profile/default/token".
func profileKey(profile, name string) string {
	return "profile/" + strings.TrimSpace(profile) + "/" + name
}

// SaveToken stores the opaque session credential for a profile.
// This method is thread-safe.
func (m *Manager) SaveToken(profile, token string) error {
	return m.set(profileKey(profile, keyToken), []byte(token))
}

// LoadToken retrieves the session credential for a profile.
// A missing credential yields "" and no error.
func (m *Manager) LoadToken(profile string) (string, error) {
	data, err := m.get(profileKey(profile, keyToken))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// SaveSession stores serialized session metadata for a profile.
func (m *Manager) SaveSession(profile string, data []byte) error {
	return m.set(profileKey(profile, keySession), data)
}

// LoadSession retrieves serialized session metadata; missing data yields nil.
func (m *Manager) LoadSession(profile string) ([]byte, error) {
	return m.get(profileKey(profile, keySession))
}

// ClearAuth removes the credential and session metadata of a profile.
// Missing entries are not an error, so clearing twice is harmless.
func (m *Manager) ClearAuth(profile string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for _, k := range []string{profileKey(profile, keyToken), profileKey(profile, keySession)} {
		if err := m.remove(k); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Manager) set(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		return m.backend.Set(key, string(data))
	}
	return m.ring.Set(keyring.Item{Key: key, Data: data, Label: ServiceName + " " + key})
}

func (m *Manager) get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.backend != nil {
		v, err := m.backend.Get(key)
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return []byte(v), nil
	}

	it, err := m.ring.Get(key)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return it.Data, nil
}

// remove deletes a key; the caller holds m.mu.
func (m *Manager) remove(key string) error {
	var err error
	if m.backend != nil {
		err = m.backend.Delete(key)
	} else {
		err = m.ring.Remove(key)
	}
	if err == nil || errors.Is(err, keyring.ErrKeyNotFound) || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
