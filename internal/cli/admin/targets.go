package admin

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/claude-notify/internal/cli/shared"
	"github.com/ariel-frischer/claude-notify/internal/notify"
	"github.com/ariel-frischer/claude-notify/internal/target"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List known editors and terminals",
	Long: `List every editor and terminal claude-notify can open or focus.

The output shows:
- ID: The canonical identifier accepted in the editors file and the editor argument
- NAME: The label shown on alert buttons
- APP: The application name used for activation
- STRATEGY: How a project is opened (cli:<command>, url:<scheme>, focus)
- CLASS: editor or terminal

With no editor argument, alerts offer the targets listed in the editors file.
Run "claude-notify config show" to see which file that is.`,
	Example: `  # List all targets
  claude-notify targets

  # Show what an identifier resolves to
  claude-notify targets resolve "Visual Studio Code" iTerm.app`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		printTargetTable(cmd.OutOrStdout(), target.Default().All())
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <identifier>...",
	Short: "Resolve editor identifiers to targets",
	Long: `Resolve raw editor identifiers the way an alert would.

Resolution tries an exact match on ID, display name, or alias first, then
substring rules (e.g. anything containing "code" is VS Code), and finally
falls back to the terminal target. It never fails.`,
	Example: `  claude-notify targets resolve cursor
  claude-notify targets resolve "Apple_Terminal" "my-zed-build"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := target.Default()
		out := cmd.OutOrStdout()
		for _, raw := range args {
			t, how := reg.Explain(raw)
			fmt.Fprintf(out, "%-24s -> %s (%s)\n", quoteBlank(raw), notify.Brand(t).Sprint(t.ID), how)
		}
		return nil
	},
}

func init() {
	targetsCmd.GroupID = shared.GroupMaintenance
	targetsCmd.AddCommand(resolveCmd)
}

func printTargetTable(w io.Writer, targets []target.Target) {
	fmt.Fprintf(w, "%-10s %-12s %-20s %-28s %s\n", "ID", "NAME", "APP", "STRATEGY", "CLASS")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, t := range targets {
		fmt.Fprintf(w, "%s %-12s %-20s %-28s %s\n",
			notify.Brand(t).Sprintf("%-10s", t.ID),
			t.DisplayName,
			t.AppName,
			t.Strategy.String(),
			t.Class(),
		)
	}
	fmt.Fprintf(w, "\n%d targets (registry v%d)\n", len(targets), target.RegistryVersion)
}

func quoteBlank(s string) string {
	if strings.TrimSpace(s) == "" {
		return fmt.Sprintf("%q", s)
	}
	return s
}
