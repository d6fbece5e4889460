// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DebugThreshold(t *testing.T) {
	var quiet, loud bytes.Buffer

	New(&quiet, false).Debug("remote logout failed")
	New(&loud, true).Debug("remote logout failed")

	assert.Empty(t, quiet.String())
	assert.Contains(t, loud.String(), "remote logout failed")
}

func TestNew_WarnAlwaysShown(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Warn("keychain fallback")
	assert.Contains(t, buf.String(), "keychain fallback")
}

func TestErr_MasksSecrets(t *testing.T) {
	a := Err(errors.New("request failed: Bearer abc.def"))
	assert.Equal(t, "error", a.Key)
	assert.Equal(t, "request failed: Bearer ***", a.Value.String())
	assert.Equal(t, "", Err(nil).Value.String())
}

func TestPresentError(t *testing.T) {
	assert.Equal(t, "", PresentError("login failed", nil))
	assert.Equal(t, "login failed: password=***", PresentError("login failed", errors.New("password=hunter2")))
	assert.Equal(t, "boom", PresentError("", errors.New("boom")))
}
