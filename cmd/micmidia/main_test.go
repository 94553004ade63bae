package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/micmidia/landing/contact"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	stdout, _ := executeWithStderr(t, args...)
	return stdout
}

func executeWithStderr(t *testing.T, args ...string) (string, string) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String(), errOut.String()
}

func TestVersionCommand(t *testing.T) {
	assert.Equal(t, "micmidia dev\n", execute(t, "version"))
}

func TestMessagesCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "contact.db")
	t.Setenv("DATABASE_PATH", dbPath)

	store, err := contact.NewStore(dbPath)
	require.NoError(t, err)
	base := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"Ana", "Bruno", "Carla"} {
		require.NoError(t, store.Save(context.Background(), contact.Message{
			ID:        name,
			Name:      name,
			Email:     strings.ToLower(name) + "@example.com",
			Body:      "Olá,\nquero um orçamento.",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, store.Close())

	out := execute(t, "messages", "--limit", "2")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "EMAIL")
	assert.Contains(t, lines[1], "carla@example.com")
	assert.Contains(t, lines[1], "Olá, quero um orçamento.")
	assert.Contains(t, lines[2], "bruno@example.com")
}

func TestMessagesCommandEmpty(t *testing.T) {
	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "contact.db"))
	assert.Equal(t, "no messages\n", execute(t, "messages"))
}

func TestExportCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dist")
	assert.Contains(t, execute(t, "export", "--out", out), "exported to "+out)
	assert.FileExists(t, filepath.Join(out, "index.html"))
	assert.FileExists(t, filepath.Join(out, "portfolio", "6.png"))
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "a b", preview(" a\n b ", 10))
	assert.Equal(t, "abcd…", preview("abcdefgh", 5))
}

func TestDotEnvConfiguresLogging(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_FORMAT=json\nSITE_NAME=Exemplo\n"), 0o600))
	t.Chdir(dir)
	for _, key := range []string{"LOG_FORMAT", "LOG_LEVEL", "SITE_NAME"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	out := filepath.Join(dir, "dist")
	_, stderr := executeWithStderr(t, "export", "--out", out)

	line := strings.TrimSpace(strings.SplitN(stderr, "\n", 2)[0])
	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &record), "stderr: %s", stderr)
	assert.Equal(t, "exported site", record["msg"])

	page, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "Exemplo")
}
