// claude-notify - stacking desktop alerts for finished agent tasks
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/claude-notify

// Package cli provides Cobra-based CLI commands for claude-notify.
// The root command shows one alert from hook arguments; subcommands inspect the target
// registry, the slot directory, and the effective configuration.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/claude-notify/internal/cli/admin"
	"github.com/ariel-frischer/claude-notify/internal/cli/config"
	"github.com/ariel-frischer/claude-notify/internal/cli/shared"
	"github.com/ariel-frischer/claude-notify/internal/cli/util"
)

// Command group IDs for organizing help output (re-exported from shared)
const (
	GroupAlerts        = shared.GroupAlerts
	GroupMaintenance   = shared.GroupMaintenance
	GroupConfiguration = shared.GroupConfiguration
)

const alertUse = "[runtime] [project] [project-path] [editor] [tty] [mode]"

var rootCmd = &cobra.Command{
	Use:   "claude-notify " + alertUse,
	Short: "Stacking desktop alerts for finished agent tasks",
	Long: `claude-notify shows one alert when an agent finishes or needs approval.

Every argument is optional:
  runtime       label in the header, e.g. "Claude" (default "Claude")
  project       project name (default "Project")
  project-path  directory opened by "Open Project"
  editor        editor or terminal to open; omit to offer the editors file
  tty           the agent's terminal device, e.g. /dev/ttys003 or "none"
  mode          "permission" for an approval request

Concurrent alerts stack instead of overlapping. Choosing a target brings it
to the front, focuses the agent's terminal tab when possible, and opens the
project.

Source: https://github.com/ariel-frischer/claude-notify`,
	Example: `  # Task finished in ~/src/api, offer the configured editors
  claude-notify Claude api ~/src/api

  # Open in Zed, focusing the agent's iTerm tab
  claude-notify Claude api ~/src/api iterm /dev/ttys003

  # Permission request
  claude-notify Claude api ~/src/api zed none permission`,
	Args:         cobra.MaximumNArgs(6),
	RunE:         runAlert,
	SilenceUsage: true,
}

var alertCmd = &cobra.Command{
	Use:   "alert " + alertUse,
	Short: "Show one alert (same as the root command)",
	Long: `Show one alert. Identical to running claude-notify with arguments, but safe
when the project name collides with a subcommand name.`,
	Example: `  claude-notify alert Claude slots ~/src/slots`,
	Args:    cobra.MaximumNArgs(6),
	RunE:    runAlert,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	shared.AddGroups(rootCmd)

	// Assign built-in help and completion to configuration group
	rootCmd.SetHelpCommandGroupID(GroupConfiguration)
	rootCmd.SetCompletionCommandGroupID(GroupConfiguration)

	// Global flags
	rootCmd.PersistentFlags().StringP("settings", "s", "", "Path to settings file (default ~/.config/claude-notify/settings.json)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")

	addAlertFlags(rootCmd)
	addAlertFlags(alertCmd)
	alertCmd.GroupID = GroupAlerts
	rootCmd.AddCommand(alertCmd)

	// Register commands from subpackages
	admin.Register(rootCmd)
	config.Register(rootCmd)
	util.Register(rootCmd)
}
