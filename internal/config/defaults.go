package config

import (
	"time"

	"github.com/ariel-frischer/claude-notify/internal/paths"
)

const (
	DefaultTimeout         = 30 * time.Second
	DefaultOpenDelay       = 300 * time.Millisecond
	DefaultSlotCount       = 20
	DefaultPresenter       = "auto"
	DefaultCompletionSound = "Glass"
	DefaultPermissionSound = "Ping"
	DefaultLogLevel        = "warn"
)

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"timeout":          DefaultTimeout,
		"open_delay":       DefaultOpenDelay,
		"slot_count":       DefaultSlotCount,
		"slot_dir":         paths.SlotDir(),
		"editors_file":     paths.EditorsFile(),
		"presenter":        DefaultPresenter,
		"sound_enabled":    true,
		"completion_sound": DefaultCompletionSound,
		"permission_sound": DefaultPermissionSound,
		"log_level":        DefaultLogLevel,
	}
}
