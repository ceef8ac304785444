package config

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ariel-frischer/claude-notify/internal/cli/shared"
	"github.com/ariel-frischer/claude-notify/internal/config"
	"github.com/ariel-frischer/claude-notify/internal/paths"
	"github.com/ariel-frischer/claude-notify/internal/target"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect claude-notify configuration",
	Long: `Inspect claude-notify configuration.

Settings are loaded with the following priority (highest to lowest):
  1. Environment variables (CLAUDE_NOTIFY_*)
  2. Settings file (~/.config/claude-notify/settings.json)
  3. Built-in defaults

The editors file (~/.config/claude-notify/config) lists the targets offered
when no editor argument is given, as EDITORS=zed,vscode or EDITOR=zed.`,
	Example: `  # Show the effective configuration
  claude-notify config show

  # Show it as JSON
  claude-notify config show --json

  # Print the files claude-notify reads
  claude-notify config path`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current effective configuration",
	Long: `Display the effective settings and the targets the editors file resolves to.

A settings file that fails to load is reported, and the defaults an alert
would fall back to are shown instead.`,
	Example: `  claude-notify config show
  claude-notify config show --json`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print configuration file locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, _, _ := shared.LoadSettings(cmd)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "settings: %s\n", settingsFile(cmd))
		fmt.Fprintf(out, "editors:  %s\n", settings.EditorsFile)
		fmt.Fprintf(out, "slots:    %s\n", settings.SlotDir)
		return nil
	},
}

func init() {
	configCmd.GroupID = shared.GroupConfiguration
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)

	configShowCmd.Flags().Bool("json", false, "Output in JSON format")
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	useJSON, _ := cmd.Flags().GetBool("json")

	settings, _, loadErr := shared.LoadSettings(cmd)
	view := settingsView(settings)

	fmt.Fprintf(out, "# Configuration Sources\n")
	fmt.Fprintf(out, "# Settings file: %s\n", settingsFile(cmd))
	fmt.Fprintf(out, "# Editors file:  %s\n", settings.EditorsFile)
	if loadErr != nil {
		fmt.Fprintf(out, "# Settings error (defaults shown): %v\n", loadErr)
	}
	fmt.Fprintf(out, "\n")

	if useJSON {
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize config: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	data, err := yaml.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	fmt.Fprint(out, string(data))
	return nil
}

// settingsFile returns the --settings path or the default settings file.
func settingsFile(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("settings"); path != "" {
		return path
	}
	return paths.SettingsFile()
}

// settingsView renders durations as strings and lists the editors-file targets.
func settingsView(s *config.Settings) map[string]interface{} {
	var editors []string
	for _, t := range target.LoadEditors(s.EditorsFile) {
		editors = append(editors, t.ID)
	}

	return map[string]interface{}{
		"timeout":          s.Timeout.String(),
		"open_delay":       s.OpenDelay.String(),
		"slot_count":       s.SlotCount,
		"slot_dir":         s.SlotDir,
		"editors_file":     s.EditorsFile,
		"editors":          editors,
		"presenter":        s.Presenter,
		"sound_enabled":    s.SoundEnabled,
		"completion_sound": s.CompletionSound,
		"permission_sound": s.PermissionSound,
		"log_level":        s.LogLevel,
	}
}
