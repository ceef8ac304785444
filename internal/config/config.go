// Package config loads claude-notify settings.
//
// Settings are layered: built-in defaults, then the JSON settings file, then
// CLAUDE_NOTIFY_* environment variables. The editors file (EDITOR=/EDITORS=) is a
// separate line-oriented format owned by the target package.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ariel-frischer/claude-notify/internal/paths"
)

// EnvPrefix prefixes every environment override, e.g. CLAUDE_NOTIFY_TIMEOUT=45s.
const EnvPrefix = "CLAUDE_NOTIFY_"

// Settings is the effective claude-notify configuration.
type Settings struct {
	// Timeout dismisses an unanswered alert.
	Timeout time.Duration `koanf:"timeout" yaml:"timeout" validate:"min=1s,max=10m"`
	// OpenDelay separates application activation from the project launch.
	OpenDelay time.Duration `koanf:"open_delay" yaml:"open_delay" validate:"min=0s,max=5s"`
	// SlotCount is the number of stacking slots shared by concurrent alerts.
	SlotCount int `koanf:"slot_count" yaml:"slot_count" validate:"min=1,max=100"`
	// SlotDir holds the <index>.lock files.
	SlotDir string `koanf:"slot_dir" yaml:"slot_dir" validate:"required"`
	// EditorsFile is the EDITOR=/EDITORS= file read when no editor argument is given.
	EditorsFile string `koanf:"editors_file" yaml:"editors_file" validate:"required"`
	// Presenter selects how alerts are shown.
	Presenter string `koanf:"presenter" yaml:"presenter" validate:"oneof=auto dialog notify-send terminal none"`

	SoundEnabled    bool   `koanf:"sound_enabled" yaml:"sound_enabled"`
	CompletionSound string `koanf:"completion_sound" yaml:"completion_sound"`
	PermissionSound string `koanf:"permission_sound" yaml:"permission_sound"`

	LogLevel string `koanf:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Load loads settings from the JSON file at path (the default settings file when empty)
// and the environment.
// Priority: Environment variables > Settings file > Defaults
func Load(path string) (*Settings, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	if path == "" {
		path = paths.SettingsFile()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return nil, &ValidationError{FilePath: path, Message: err.Error()}
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, &ValidationError{FilePath: path, Message: err.Error()}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, &ValidationError{FilePath: path, Message: err.Error()}
	}

	s.SlotDir = paths.ExpandHome(s.SlotDir)
	s.EditorsFile = paths.ExpandHome(s.EditorsFile)
	s.CompletionSound = paths.ExpandHome(s.CompletionSound)
	s.PermissionSound = paths.ExpandHome(s.PermissionSound)

	if err := ValidateSettings(&s, path); err != nil {
		return nil, err
	}
	return &s, nil
}

// Default returns the built-in settings. It never fails; the alert path falls back to it
// when the settings file is broken.
func Default() *Settings {
	return &Settings{
		Timeout:         DefaultTimeout,
		OpenDelay:       DefaultOpenDelay,
		SlotCount:       DefaultSlotCount,
		SlotDir:         paths.SlotDir(),
		EditorsFile:     paths.EditorsFile(),
		Presenter:       DefaultPresenter,
		SoundEnabled:    true,
		CompletionSound: DefaultCompletionSound,
		PermissionSound: DefaultPermissionSound,
		LogLevel:        DefaultLogLevel,
	}
}

// envTransform converts environment variable names to config keys
// Example: CLAUDE_NOTIFY_SLOT_COUNT -> slot_count
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
