// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package profile

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vrooli/cli/internal/backend"
	"vrooli/cli/internal/config"
	vrerrors "vrooli/cli/internal/errors"
	"vrooli/cli/internal/keychain"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	f, err := config.Load(path)
	require.NoError(t, err)
	settings := config.Resolve(f, config.Env{}, config.Flags{})
	return Open(path, f, settings, keychain.NewManagerWithRing(keyring.NewArrayKeyring(nil))), path
}

func TestStore_SetSessionAndClear(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Equal(t, config.DefaultProfile, s.ActiveProfileName())
	assert.Equal(t, config.DefaultServerURL, s.ServerURL())

	tok, err := s.AuthToken()
	require.NoError(t, err)
	assert.Empty(t, tok)

	sess := &backend.Session{IsLoggedIn: true, Users: []backend.User{{ID: "u1", Handle: "ada"}}, Credential: "bearer abc"}
	require.NoError(t, s.SetSession(sess))

	tok, err = s.AuthToken()
	require.NoError(t, err)
	assert.Equal(t, "bearer abc", tok)

	got, err := s.Session()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ada", got.Users[0].Handle)
	assert.Empty(t, got.Credential, "credential must not be cached with the metadata")

	require.NoError(t, s.ClearAuth())
	require.NoError(t, s.ClearAuth())
	tok, err = s.AuthToken()
	require.NoError(t, err)
	assert.Empty(t, tok)
	got, err = s.Session()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SetSessionWithoutCredential(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.SetSession(&backend.Session{Users: []backend.User{{ID: "u1"}}}))

	tok, err := s.AuthToken()
	require.NoError(t, err)
	assert.Empty(t, tok)

	info, err := s.Show()
	require.NoError(t, err)
	assert.True(t, info.HasSession)
}

func TestStore_UseCreatesAndPersists(t *testing.T) {
	s, path := newTestStore(t)

	require.NoError(t, s.Use("staging"))
	assert.Equal(t, "staging", s.ActiveProfileName())

	f, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "staging", f.ActiveProfile)
	assert.Equal(t, config.DefaultServerURL, f.Profiles["staging"].ServerURL)

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "default", list[0].Name)
	assert.False(t, list[0].Active)
	assert.Equal(t, "staging", list[1].Name)
	assert.True(t, list[1].Active)
}

func TestStore_UseRejectsBadNames(t *testing.T) {
	s, _ := newTestStore(t)
	for _, name := range []string{"", "a/b", "with space"} {
		err := s.Use(name)
		require.Error(t, err, name)
		assert.True(t, vrerrors.Is(err, vrerrors.Validation))
	}
}

func TestStore_SetServer(t *testing.T) {
	s, path := newTestStore(t)

	require.NoError(t, s.SetServer("http://localhost:5329/api/v2/rest/"))
	assert.Equal(t, "http://localhost:5329/api/v2/rest", s.ServerURL())

	f, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5329/api/v2/rest", f.Profiles["default"].ServerURL)

	for _, bad := range []string{"", "localhost:5329", "ftp://example.com", "https://"} {
		assert.Error(t, s.SetServer(bad), bad)
	}
}

type brokenSecrets struct{}

func (brokenSecrets) SaveToken(string, string) error { return errors.New("locked") }
func (brokenSecrets) LoadToken(string) (string, error) { return "", errors.New("locked") }
func (brokenSecrets) SaveSession(string, []byte) error { return errors.New("locked") }
func (brokenSecrets) LoadSession(string) ([]byte, error) { return nil, errors.New("locked") }
func (brokenSecrets) ClearAuth(string) error { return errors.New("locked") }

func TestStore_SecretFailuresAreStoreErrors(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "config.yaml"), config.File{}, config.Settings{Profile: "default"}, brokenSecrets{})

	_, err := s.AuthToken()
	assert.Equal(t, vrerrors.Store, vrerrors.KindOf(err))
	assert.Equal(t, vrerrors.Store, vrerrors.KindOf(s.SetSession(&backend.Session{Credential: "bearer x"})))
	assert.Equal(t, vrerrors.Store, vrerrors.KindOf(s.ClearAuth()))
}
