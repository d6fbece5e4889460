// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"vrooli/cli/internal/output"
)

// renderBoth renders the outcome of an operation in both modes and returns
// the JSON truth value and whether the text leads with a success line.
func renderBoth(t *testing.T, rep output.Report, err error) (jsonOK, textOK bool) {
	t.Helper()
	if err != nil {
		rep = output.NewFailure(err)
	}

	var jb bytes.Buffer
	require.NoError(t, output.NewPresenter(&jb, true).Render(rep))
	var payload map[string]any
	require.NoError(t, json.Unmarshal(jb.Bytes(), &payload))
	v, ok := payload["success"]
	if !ok {
		v, ok = payload["authenticated"]
	}
	require.True(t, ok, "payload must carry success or authenticated: %s", jb.String())
	jsonOK = v.(bool)

	var tb bytes.Buffer
	require.NoError(t, output.NewPresenter(&tb, false).Render(rep))
	first, _, _ := strings.Cut(tb.String(), "\n")
	textOK = strings.Contains(first, "✅")
	if !textOK {
		require.NotContains(t, tb.String(), "✅")
	}
	return jsonOK, textOK
}

func TestJSONAndTextAgree(t *testing.T) {
	ctx := context.Background()

	type op func(*Service, Context) (output.Report, error)
	wrap := func(r output.Report, err error) (output.Report, error) { return r, err }

	login := func(s *Service, rc Context) (output.Report, error) {
		r, err := s.Login(ctx, rc, LoginInput{Email: "a@b.c", Password: "pw", Persist: true})
		return wrap(r, err)
	}
	logout := func(s *Service, rc Context) (output.Report, error) {
		r, err := s.Logout(ctx, rc)
		return wrap(r, err)
	}
	status := func(s *Service, rc Context) (output.Report, error) {
		r, err := s.Status(ctx, rc)
		return wrap(r, err)
	}
	whoami := func(s *Service, rc Context) (output.Report, error) {
		r, err := s.WhoAmI(ctx, rc)
		return wrap(r, err)
	}
	request := func(s *Service, rc Context) (output.Report, error) {
		r, err := s.RequestPasswordReset(ctx, rc, "a@b.c")
		return wrap(r, err)
	}
	reset := func(s *Service, rc Context) (output.Report, error) {
		r, err := s.CompletePasswordReset(ctx, rc, "884422")
		return wrap(r, err)
	}
	verify := func(s *Service, rc Context) (output.Report, error) {
		r, err := s.VerifyEmail(ctx, rc, "123456")
		return wrap(r, err)
	}

	tests := []struct {
		name  string
		run   op
		api   *fakeAPI
		store *fakeStore
		want  bool
	}{
		{"login ok", login, &fakeAPI{loginSess: sessionWith(ada)}, &fakeStore{}, true},
		{"login transport", login, &fakeAPI{loginErr: serverDown}, &fakeStore{}, false},
		{"login no user", login, &fakeAPI{loginSess: sessionWith()}, &fakeStore{}, false},
		{"logout ok", logout, &fakeAPI{logoutErr: serverDown}, &fakeStore{token: "t"}, true},
		{"logout store", logout, &fakeAPI{}, &fakeStore{clearErr: errBoom}, false},
		{"status ok", status, &fakeAPI{profile: sessionWith(ada)}, &fakeStore{token: "t"}, true},
		{"status no token", status, &fakeAPI{}, &fakeStore{}, false},
		{"status stale", status, &fakeAPI{profErr: unauthorized}, &fakeStore{token: "t"}, false},
		{"status no user", status, &fakeAPI{profile: sessionWith()}, &fakeStore{token: "t"}, false},
		{"whoami ok", whoami, &fakeAPI{profile: sessionWith(ada)}, &fakeStore{}, true},
		{"whoami no user", whoami, &fakeAPI{profile: sessionWith()}, &fakeStore{}, false},
		{"whoami unauthorized", whoami, &fakeAPI{profErr: unauthorized}, &fakeStore{}, false},
		{"request ok", request, &fakeAPI{}, &fakeStore{}, true},
		{"request transport", request, &fakeAPI{requestEr: serverDown}, &fakeStore{}, false},
		{"reset ok", reset, &fakeAPI{}, &fakeStore{}, true},
		{"reset transport", reset, &fakeAPI{resetErr: serverDown}, &fakeStore{}, false},
		{"verify ok", verify, &fakeAPI{}, &fakeStore{}, true},
		{"verify transport", verify, &fakeAPI{verifyErr: unauthorized}, &fakeStore{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, rc := newTestService(t, tt.api, tt.store, "Abcdef12\nAbcdef12\n")
			rep, err := tt.run(svc, rc)
			jsonOK, textOK := renderBoth(t, rep, err)
			if jsonOK != tt.want {
				t.Errorf("json truth = %v, want %v", jsonOK, tt.want)
			}
			if textOK != jsonOK {
				t.Errorf("text truth = %v, json truth = %v", textOK, jsonOK)
			}
		})
	}
}
