// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package keychain

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManagerWithRing(keyring.NewArrayKeyring(nil))
}

func TestManager_TokenRoundTrip(t *testing.T) {
	m := newTestManager()

	tok, err := m.LoadToken("default")
	require.NoError(t, err)
	assert.Empty(t, tok, "missing token must read as empty")

	require.NoError(t, m.SaveToken("default", "bearer abc"))
	tok, err = m.LoadToken("default")
	require.NoError(t, err)
	assert.Equal(t, "bearer abc", tok)
}

func TestManager_ProfilesAreIsolated(t *testing.T) {
	m := newTestManager()
	require.NoError(t, m.SaveToken("default", "bearer one"))
	require.NoError(t, m.SaveToken("staging", "bearer two"))

	require.NoError(t, m.ClearAuth("default"))

	tok, err := m.LoadToken("default")
	require.NoError(t, err)
	assert.Empty(t, tok)

	tok, err = m.LoadToken("staging")
	require.NoError(t, err)
	assert.Equal(t, "bearer two", tok)
}

func TestManager_ClearAuthIsIdempotent(t *testing.T) {
	m := newTestManager()
	require.NoError(t, m.SaveToken("default", "bearer abc"))
	require.NoError(t, m.SaveSession("default", []byte(`{"users":[]}`)))

	require.NoError(t, m.ClearAuth("default"))
	require.NoError(t, m.ClearAuth("default"))

	data, err := m.LoadSession("default")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestProfileKey(t *testing.T) {
	assert.Equal(t, "profile/default/token", profileKey(" default ", keyToken))
}
