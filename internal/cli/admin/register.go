// Package admin provides maintenance CLI commands for claude-notify.
// Includes: targets, slots
package admin

import (
	"github.com/spf13/cobra"
)

// Register adds all maintenance commands to the root command.
// This function is called from the root CLI package during initialization.
func Register(rootCmd *cobra.Command) {
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(slotsCmd)
}
