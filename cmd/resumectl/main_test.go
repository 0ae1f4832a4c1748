package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"resume-builder/internal/bootstrap"
	"resume-builder/internal/draft"
	"resume-builder/internal/shared/config"
)

// testStore points the data-dir flag at a temp directory and returns a
// store over it so tests can seed and inspect the draft directly.
func testStore(t *testing.T) *draft.Store {
	t.Helper()
	dir := t.TempDir()
	prev := dataDir
	dataDir = dir
	t.Cleanup(func() { dataDir = prev })
	return draft.NewStore(draft.NewFileBackend(dir))
}

// testAPIServer runs the real service router on a test listener and points
// the server flag at it.
func testAPIServer(t *testing.T) {
	t.Helper()
	app, err := bootstrap.Build(config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	})
	require.NoError(t, err)

	srv := httptest.NewServer(app.Router)
	prev := serverURL
	serverURL = srv.URL + "/api"
	t.Cleanup(func() {
		serverURL = prev
		srv.Close()
	})
}

// testRawServer points the server flag at a bare handler, for commands
// that only need canned responses.
func testRawServer(t *testing.T, handler http.Handler) {
	t.Helper()
	srv := httptest.NewServer(handler)
	prev := serverURL
	serverURL = srv.URL
	t.Cleanup(func() {
		serverURL = prev
		srv.Close()
	})
}

// captureStdout runs fn with os.Stdout redirected and returns what it
// printed alongside fn's error.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	prev := os.Stdout
	os.Stdout = w
	runErr := fn()
	os.Stdout = prev

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	return string(out), runErr
}

func strPtr(s string) *string { return &s }
