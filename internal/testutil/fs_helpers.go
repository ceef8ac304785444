package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// WriteFile writes content to a file, creating parent directories if needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads file content, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}

	return string(content)
}

// WriteLock writes a slot lock file owned by pid and returns its path.
func WriteLock(t *testing.T, dir string, slot, pid int) string {
	t.Helper()
	path := filepath.Join(dir, strconv.Itoa(slot)+".lock")
	WriteFile(t, path, strconv.Itoa(pid))
	return path
}

// WriteEditors writes an editors file with the given lines into a temp dir and returns its path.
func WriteEditors(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	WriteFile(t, path, content)
	return path
}

// envVars are the variables that redirect claude-notify's files or change its behavior.
var envVars = []string{
	"CLAUDE_NOTIFY_CONFIG_DIR",
	"CLAUDE_NOTIFY_CACHE_DIR",
	"CLAUDE_NOTIFY_TIMEOUT",
	"CLAUDE_NOTIFY_OPEN_DELAY",
	"CLAUDE_NOTIFY_SLOT_COUNT",
	"CLAUDE_NOTIFY_SLOT_DIR",
	"CLAUDE_NOTIFY_EDITORS_FILE",
	"CLAUDE_NOTIFY_PRESENTER",
	"CLAUDE_NOTIFY_SOUND_ENABLED",
	"CLAUDE_NOTIFY_COMPLETION_SOUND",
	"CLAUDE_NOTIFY_PERMISSION_SOUND",
	"CLAUDE_NOTIFY_LOG_LEVEL",
}

// IsolateEnv clears claude-notify overrides and points the config and cache dirs at a
// fresh temp dir, which it returns. Uses t.Setenv, so callers cannot run in parallel.
func IsolateEnv(t *testing.T) string {
	t.Helper()
	for _, key := range envVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	root := t.TempDir()
	t.Setenv("CLAUDE_NOTIFY_CONFIG_DIR", filepath.Join(root, "config"))
	t.Setenv("CLAUDE_NOTIFY_CACHE_DIR", filepath.Join(root, "cache"))
	return root
}
