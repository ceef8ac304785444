package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/claude-notify/internal/cli/shared"
	"github.com/ariel-frischer/claude-notify/internal/health"
	"github.com/ariel-frischer/claude-notify/internal/notify"
	"github.com/ariel-frischer/claude-notify/internal/runner"
	"github.com/ariel-frischer/claude-notify/internal/target"
)

// Replaced in tests.
var doctorEnv = notify.DefaultEnv

var doctorCmd = &cobra.Command{
	Use:     "doctor",
	Aliases: []string{"doc"},
	Short:   "Check that alerts can be shown (doc)",
	Long: `Run health checks to verify that alerts can be shown and acted on.

This command checks:
  - Settings: the settings file loads and validates
  - Presenter: which presenter an alert would use
  - Slot directory: lock files can be created, so alerts stack
  - Sound: a sound player is available (when sound is enabled)
  - Editors: the command-line launchers of the configured editors are in PATH

Each check displays a checkmark if passed or an X with the problem if failed.`,
	Example: `  # Check everything
  claude-notify doctor`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, logger, loadErr := shared.LoadSettings(cmd)
		r := runner.New()
		env := doctorEnv(r, logger)

		report := health.RunHealthChecks(health.Inputs{
			Settings:    settings,
			SettingsErr: loadErr,
			Env:         env,
			Sender:      notify.NewSender(r, logger),
			Editors:     target.LoadEditors(settings.EditorsFile),
		})
		fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

		if !report.Passed {
			return fmt.Errorf("health checks failed")
		}
		return nil
	},
}

func init() {
	doctorCmd.GroupID = shared.GroupConfiguration
}
