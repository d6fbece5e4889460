// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package profile implements the credential store behind the auth commands.
// It resolves the active profile from the config file, environment and flags,
// keeps non-secret profile settings in the config file and the session
// credential plus cached session metadata in the OS keychain.
package profile

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"vrooli/cli/internal/backend"
	"vrooli/cli/internal/config"
	"vrooli/cli/internal/errors"
)

// Secrets is the per-profile secret storage. *keychain.Manager implements it.
type Secrets interface {
	SaveToken(profile, token string) error
	LoadToken(profile string) (string, error)
	SaveSession(profile string, data []byte) error
	LoadSession(profile string) ([]byte, error)
	ClearAuth(profile string) error
}

// Info describes one profile for listing.
type Info struct {
	Name       string `json:"name"`
	ServerURL  string `json:"serverUrl"`
	Output     string `json:"output"`
	Active     bool   `json:"active"`
	HasSession bool   `json:"hasSession"`
}

// Store is the credential store for one invocation. It always operates on
// the profile selected when it was opened.
type Store struct {
	mu       sync.Mutex
	path     string
	file     config.File
	settings config.Settings
	secrets  Secrets
}

// Open returns a Store over an already loaded config file. path is where
// profile changes are written back.
func Open(path string, file config.File, settings config.Settings, secrets Secrets) *Store {
	if file.Profiles == nil {
		file.Profiles = map[string]config.Profile{}
	}
	return &Store{path: path, file: file, settings: settings, secrets: secrets}
}

// ActiveProfileName returns the profile this store operates on.
func (s *Store) ActiveProfileName() string { return s.settings.Profile }

// ServerURL returns the API base URL of the active profile.
func (s *Store) ServerURL() string { return s.settings.ServerURL }

// IsJSONOutput reports whether results should be rendered as JSON.
func (s *Store) IsJSONOutput() bool { return s.settings.JSON }

// IsDebug reports whether debug logging is enabled.
func (s *Store) IsDebug() bool { return s.settings.Debug }

// PasswordMinLength returns the configured password policy.
func (s *Store) PasswordMinLength() int { return s.settings.PasswordMinLength }

// AuthToken returns the stored credential of the active profile, or "".
func (s *Store) AuthToken() (string, error) {
	tok, err := s.secrets.LoadToken(s.settings.Profile)
	if err != nil {
		return "", errors.Wrap(errors.Store, "failed to read stored credentials", err)
	}
	return tok, nil
}

// SetSession persists the session of the active profile: the credential the
// transport captured, if any, and the session metadata.
func (s *Store) SetSession(sess *backend.Session) error {
	if sess == nil {
		return errors.New(errors.Store, "no session to save")
	}
	if sess.Credential != "" {
		if err := s.secrets.SaveToken(s.settings.Profile, sess.Credential); err != nil {
			return errors.Wrap(errors.Store, "failed to save credentials", err)
		}
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(errors.Store, "failed to encode session", err)
	}
	if err := s.secrets.SaveSession(s.settings.Profile, data); err != nil {
		return errors.Wrap(errors.Store, "failed to save session", err)
	}
	return nil
}

// Session returns the cached session metadata of the active profile, or nil.
func (s *Store) Session() (*backend.Session, error) {
	data, err := s.secrets.LoadSession(s.settings.Profile)
	if err != nil {
		return nil, errors.Wrap(errors.Store, "failed to read session", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var sess backend.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, errors.Wrap(errors.Store, "stored session is corrupt", err)
	}
	return &sess, nil
}

// ClearAuth removes the credential and session metadata of the active profile.
func (s *Store) ClearAuth() error {
	if err := s.secrets.ClearAuth(s.settings.Profile); err != nil {
		return errors.Wrap(errors.Store, "failed to clear stored credentials", err)
	}
	return nil
}

// List returns every configured profile, sorted by name. The active profile
// is included even when it only exists implicitly.
func (s *Store) List() ([]Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := s.file.ProfileNames()
	if _, ok := s.file.Profiles[s.settings.Profile]; !ok {
		names = append([]string{s.settings.Profile}, names...)
	}

	out := make([]Info, 0, len(names))
	for _, name := range names {
		info, err := s.info(name)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, nil
}

// Show describes the active profile.
func (s *Store) Show() (Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info(s.settings.Profile)
}

// Use makes name the active profile in the config file, creating it with
// the default server URL when it does not exist.
func (s *Store) Use(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, "/ \t") {
		return errors.New(errors.Validation, fmt.Sprintf("invalid profile name %q", name))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.file.Profiles[name]; !ok {
		s.file.Profiles[name] = config.Profile{ServerURL: config.DefaultServerURL, Output: config.OutputText}
	}
	s.file.ActiveProfile = name
	if err := s.save(); err != nil {
		return err
	}
	s.settings.Profile = name
	s.settings.ServerURL = s.file.Profiles[name].ServerURL
	return nil
}

// SetServer changes the server URL of the active profile.
func (s *Store) SetServer(raw string) error {
	u, err := url.ParseRequestURI(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New(errors.Validation, fmt.Sprintf("invalid server URL %q (expected http(s)://host[/path])", raw))
	}
	serverURL := strings.TrimRight(u.String(), "/")

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.file.Profiles[s.settings.Profile]
	if p.Output == "" {
		p.Output = config.OutputText
	}
	p.ServerURL = serverURL
	s.file.Profiles[s.settings.Profile] = p
	if err := s.save(); err != nil {
		return err
	}
	s.settings.ServerURL = serverURL
	return nil
}

// info builds the description of a profile; the caller holds s.mu.
func (s *Store) info(name string) (Info, error) {
	p, ok := s.file.Profiles[name]
	info := Info{
		Name:      name,
		ServerURL: p.ServerURL,
		Output:    p.Output,
		Active:    name == s.settings.Profile,
	}
	if !ok || info.ServerURL == "" {
		info.ServerURL = config.DefaultServerURL
	}
	if info.Output == "" {
		info.Output = config.OutputText
	}
	if info.Active {
		info.ServerURL = s.settings.ServerURL
	}

	tok, err := s.secrets.LoadToken(name)
	if err != nil {
		return Info{}, errors.Wrap(errors.Store, "failed to read stored credentials", err)
	}
	info.HasSession = tok != ""
	if !info.HasSession {
		data, err := s.secrets.LoadSession(name)
		if err != nil {
			return Info{}, errors.Wrap(errors.Store, "failed to read session", err)
		}
		info.HasSession = len(data) > 0
	}
	return info, nil
}

// save writes the config file; the caller holds s.mu.
func (s *Store) save() error {
	if err := config.Save(s.path, s.file); err != nil {
		return errors.Wrap(errors.Store, "failed to write config", err)
	}
	return nil
}
