package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type received struct {
	path string
	body map[string]any
}

func newBoardServer(t *testing.T, status int) (*httptest.Server, <-chan received) {
	t.Helper()

	requests := make(chan received, 4)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)

		var body map[string]any
		_ = json.Unmarshal(data, &body)

		requests <- received{path: r.URL.Path, body: body}
		w.WriteHeader(status)
		_, _ = w.Write([]byte("recorded"))
	}))
	t.Cleanup(server.Close)

	return server, requests
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd(&stderr)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--env", filepath.Join(t.TempDir(), "missing.env")))

	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func TestLogCommand(t *testing.T) {
	t.Parallel()

	server, requests := newBoardServer(t, http.StatusOK)

	stdout, _, err := run(t, "log", "10.0.0.5", "ssh", "shell obtained", "--level", "loot", "--uri", server.URL)
	require.NoError(t, err)

	req := <-requests
	assert.Equal(t, "/pwn/log", req.path)
	assert.Equal(t, map[string]any{
		"ip":      "10.0.0.5",
		"service": "ssh",
		"message": "shell obtained",
		"level":   "loot",
	}, req.body)
	assert.Equal(t, "200 recorded\n", stdout)
}

func TestLogCommand_InvalidLevel(t *testing.T) {
	t.Parallel()

	server, requests := newBoardServer(t, http.StatusOK)

	_, _, err := run(t, "log", "10.0.0.5", "ssh", "msg", "--level", "critical", "--uri", server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
	assert.Empty(t, requests)
}

func TestCredentialCommand(t *testing.T) {
	t.Parallel()

	server, requests := newBoardServer(t, http.StatusOK)

	_, _, err := run(t, "credential", "10.0.0.5", "ftp", "hunter2", "--uri", server.URL)
	require.NoError(t, err)

	req := <-requests
	assert.Equal(t, "/pwn/credential", req.path)
	assert.Equal(t, map[string]any{
		"ip":       "10.0.0.5",
		"service":  "ftp",
		"password": "hunter2",
	}, req.body)
}

func TestCredentialCommand_OptionalFlags(t *testing.T) {
	t.Parallel()

	server, requests := newBoardServer(t, http.StatusOK)

	_, _, err := run(t, "cred", "10.0.0.5", "ssh", "toor", "-u", "root", "--message", "", "--uri", server.URL)
	require.NoError(t, err)

	req := <-requests
	assert.Equal(t, "root", req.body["username"])
	assert.Contains(t, req.body, "message")
	assert.Equal(t, "", req.body["message"])
}

func TestBoxAccessCommand(t *testing.T) {
	t.Parallel()

	server, requests := newBoardServer(t, http.StatusOK)

	_, _, err := run(t, "boxaccess", "10.0.0.7", "beacon",
		"--ips", "10.0.0.8,10.0.0.9",
		"--access-type", "shell",
		"--uri", server.URL,
	)
	require.NoError(t, err)

	req := <-requests
	assert.Equal(t, "/pwn/boxaccess", req.path)
	assert.Equal(t, map[string]any{
		"ip":          "10.0.0.7",
		"application": "beacon",
		"ips":         []any{"10.0.0.8", "10.0.0.9"},
		"access_type": "shell",
	}, req.body)
}

func TestCommand_ErrorStatusFails(t *testing.T) {
	t.Parallel()

	server, _ := newBoardServer(t, http.StatusBadRequest)

	stdout, _, err := run(t, "log", "10.0.0.5", "ssh", "msg", "--uri", server.URL)
	require.Error(t, err)
	assert.Equal(t, "pwnboard returned HTTP 400", err.Error())
	assert.Equal(t, "400 recorded\n", stdout)
}

func TestCommand_TrailingSlashRejected(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "log", "10.0.0.5", "ssh", "msg", "--uri", "https://board.test/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trailing slash")
}

func TestCommand_WrongArgCount(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "credential", "10.0.0.5", "ftp", "--uri", "https://board.test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 3 arg(s)")
}

func TestCommand_DebugLogging(t *testing.T) {
	t.Parallel()

	server, _ := newBoardServer(t, http.StatusOK)

	_, stderr, err := run(t, "log", "10.0.0.5", "ssh", "msg", "--uri", server.URL, "--log-level", "debug")
	require.NoError(t, err)

	assert.True(t, strings.Contains(stderr, server.URL+"/pwn/log"), "expected request to be logged, got: %s", stderr)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pwnboard version 0.1.0 (commit: unknown)\n", stdout)
}
