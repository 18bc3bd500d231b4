package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI serves the handful of endpoints the commands call, accepting a
// single bearer token
func fakeAPI(t *testing.T, validToken string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	authorized := func(r *http.Request) bool {
		return r.Header.Get("Authorization") == "Bearer "+validToken
	}

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "ana@example.com" || body["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"` + validToken + `","user":{"id":"u1","name":"Ana","email":"ana@example.com"}}`))
	})
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /recurring-expenses", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"token expired"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"1","name":"Rent","value":"1500.00","category":"housing","frequency":"monthly","day_of_month":5,"is_active":true,"start_date":"2025-01-01"},
			{"id":"2","name":"Gym","value":80,"category":"health","frequency":"monthly","day_of_month":1,"is_active":false,"start_date":"2025-01-01","end_date":"2025-05-31"}
		]`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands_LoginSummaryLogout(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	srv := fakeAPI(t, "tok-1")
	sessionFile := filepath.Join(t.TempDir(), "session.json")
	global := []string{"--api-url", srv.URL, "--session-file", sessionFile}

	_, err := execute(t, append(global, "recurring", "summary")...)
	assert.ErrorIs(t, err, errNotSignedIn)

	out, err := execute(t, append(global, "login", "--email", "ana@example.com", "--password", "secret")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as Ana")

	info, err := os.Stat(sessionFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	out, err = execute(t, append(global, "recurring", "summary")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Active (1)")
	assert.Contains(t, out, "Inactive (1)")
	assert.Contains(t, out, "1500.00")
	assert.Contains(t, out, "18000.00")

	out, err = execute(t, append(global, "logout")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out")

	_, err = os.Stat(sessionFile)
	assert.True(t, os.IsNotExist(err))
}

func TestCommands_RejectedTokenClearsSession(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	srv := fakeAPI(t, "tok-1")
	sessionFile := filepath.Join(t.TempDir(), "session.json")
	global := []string{"--api-url", srv.URL, "--session-file", sessionFile}

	_, err := execute(t, append(global, "login", "--email", "ana@example.com", "--password", "secret")...)
	require.NoError(t, err)

	// The API starts rejecting the stored token
	other := fakeAPI(t, "tok-2")
	global[1] = other.URL

	_, err = execute(t, append(global, "recurring", "summary")...)
	assert.ErrorIs(t, err, errSessionExpired)

	_, err = os.Stat(sessionFile)
	assert.True(t, os.IsNotExist(err), "rejected sign-in is forgotten")
}

func TestCommands_WrongPassword(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	srv := fakeAPI(t, "tok-1")
	sessionFile := filepath.Join(t.TempDir(), "session.json")

	_, err := execute(t, "--api-url", srv.URL, "--session-file", sessionFile, "login", "--email", "ana@example.com", "--password", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")

	_, err = os.Stat(sessionFile)
	assert.True(t, os.IsNotExist(err))
}
