package shared

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/claude-notify/internal/config"
	"github.com/ariel-frischer/claude-notify/internal/logging"
)

// LoadSettings loads settings honoring the persistent --settings and --debug flags.
// A broken settings file is logged and replaced by defaults so the alert still shows;
// the load error is returned for commands that want to report it.
func LoadSettings(cmd *cobra.Command) (*config.Settings, *log.Logger, error) {
	path, _ := cmd.Flags().GetString("settings")
	debug, _ := cmd.Flags().GetBool("debug")

	settings, err := config.Load(path)
	if err != nil {
		settings = config.Default()
	}

	level := settings.LogLevel
	if debug {
		level = "debug"
	}
	logger := logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		logger.Warn("settings ignored, using defaults", "err", err)
	}
	return settings, logger, err
}
