// Package paths provides centralized path resolution for claude-notify's config and cache files.
//
// Layout (XDG-style):
//
//	Config: ~/.config/claude-notify/            (override: CLAUDE_NOTIFY_CONFIG_DIR, XDG_CONFIG_HOME)
//	Cache:  ~/.cache/claude-notify/slots/       (override: CLAUDE_NOTIFY_CACHE_DIR, XDG_CACHE_HOME)
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName is the directory name used under the XDG roots.
const AppName = "claude-notify"

// ConfigDir resolves the config directory.
// Priority: CLAUDE_NOTIFY_CONFIG_DIR > $XDG_CONFIG_HOME/claude-notify > ~/.config/claude-notify
func ConfigDir() string {
	if env := os.Getenv("CLAUDE_NOTIFY_CONFIG_DIR"); env != "" {
		return env
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+AppName)
	}
	return filepath.Join(home, ".config", AppName)
}

// CacheDir resolves the cache directory.
// Priority: CLAUDE_NOTIFY_CACHE_DIR > $XDG_CACHE_HOME/claude-notify > ~/.cache/claude-notify
func CacheDir() string {
	if env := os.Getenv("CLAUDE_NOTIFY_CACHE_DIR"); env != "" {
		return env
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppName)
	}
	return filepath.Join(home, ".cache", AppName)
}

// EditorsFile returns the line-oriented EDITOR=/EDITORS= file.
func EditorsFile() string {
	return filepath.Join(ConfigDir(), "config")
}

// SettingsFile returns the JSON settings file.
func SettingsFile() string {
	return filepath.Join(ConfigDir(), "settings.json")
}

// SlotDir returns the shared lock-file directory used for alert stacking.
func SlotDir() string {
	return filepath.Join(CacheDir(), "slots")
}

// ExpandHome expands a leading ~/ to the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}
