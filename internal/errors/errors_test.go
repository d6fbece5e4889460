// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *E
		want string
	}{
		{
			name: "message only",
			err:  New(DataIntegrity, "no user data in login response"),
			want: "no user data in login response",
		},
		{
			name: "wrapped cause",
			err:  Wrap(Transport, "login failed", stderrors.New("connection refused")),
			want: "login failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKindOf_FollowsChain(t *testing.T) {
	cause := stderrors.New("disk full")
	err := fmt.Errorf("saving: %w", Wrap(Store, "cannot write session", cause))

	assert.Equal(t, Store, KindOf(err))
	assert.True(t, Is(err, Store))
	assert.False(t, Is(err, Transport))
	assert.ErrorIs(t, err, cause)
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(stderrors.New("plain")))
	assert.False(t, Is(nil, Store))
}

func TestWithHints(t *testing.T) {
	err := New(Transport, "not authenticated").WithHints("Run 'vrooli auth login'")
	require.Len(t, err.Hints, 1)
	assert.Equal(t, "Run 'vrooli auth login'", err.Hints[0])
}
