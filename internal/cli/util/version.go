package util

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/claude-notify/internal/build"
	"github.com/ariel-frischer/claude-notify/internal/cli/shared"
)

var versionPlain bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information (v)",
	Long:    "Display version, commit, build date, and Go version information for claude-notify",
	Example: `  # Show version info
  claude-notify version

  # Plain output (for scripts)
  claude-notify version --plain`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if versionPlain {
			printPlainVersion(cmd.OutOrStdout())
		} else {
			printPrettyVersion(cmd.OutOrStdout())
		}
	},
}

var sauceCmd = &cobra.Command{
	Use:   "sauce",
	Short: "Display the source URL",
	Long:  "Display the source URL for the claude-notify project",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), build.SourceURL)
	},
}

func init() {
	versionCmd.GroupID = shared.GroupConfiguration
	versionCmd.Flags().BoolVar(&versionPlain, "plain", false, "Plain output without formatting")
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(w io.Writer) {
	fmt.Fprintf(w, "claude-notify %s\n", build.Version)
	fmt.Fprintf(w, "commit: %s\n", build.Commit)
	fmt.Fprintf(w, "built: %s\n", build.BuildDate)
	fmt.Fprintf(w, "go: %s\n", runtime.Version())
	fmt.Fprintf(w, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// printPrettyVersion prints the version details in a rounded box.
func printPrettyVersion(w io.Writer) {
	dim := color.New(color.Faint).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	info := []struct {
		label string
		value string
	}{
		{"Version", build.Version},
		{"Commit", build.ShortCommit()},
		{"Built", build.BuildDate},
		{"Go", runtime.Version()},
		{"Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
	}

	const boxWidth = 44
	inner := boxWidth - 2

	fmt.Fprintln(w, shared.BoxTopLeft+strings.Repeat(shared.BoxHorizontal, inner)+shared.BoxTopRight)
	for _, item := range info {
		// Padding is computed on the uncolored text.
		plain := fmt.Sprintf("  %10s    %s", item.label, item.value)
		fill := ""
		if n := inner - len(plain); n > 0 {
			fill = strings.Repeat(" ", n)
		}
		line := fmt.Sprintf("  %s    %s", yellow(fmt.Sprintf("%10s", item.label)), white(item.value))
		fmt.Fprintln(w, shared.BoxVertical+line+fill+shared.BoxVertical)
	}
	fmt.Fprintln(w, shared.BoxBottomLeft+strings.Repeat(shared.BoxHorizontal, inner)+shared.BoxBottomRight)
	fmt.Fprintln(w, dim("  "+build.SourceURL))
}
