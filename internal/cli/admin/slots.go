package admin

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/claude-notify/internal/cli/shared"
	"github.com/ariel-frischer/claude-notify/internal/slot"
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Show which stacking slots are held",
	Long: `Show the lock files that position concurrent alerts.

Each alert claims the lowest free slot and releases it when it closes.
A lock whose owning process has exited is abandoned; the next alert that
scans past it reclaims it, and "slots prune" removes all of them at once.`,
	Example: `  # Show held slots
  claude-notify slots

  # Keep the table on screen while alerts come and go
  claude-notify slots --watch

  # Remove locks left behind by crashed alerts
  claude-notify slots prune`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		alloc := newAllocator(cmd)
		if watch, _ := cmd.Flags().GetBool("watch"); watch {
			return watchSlots(cmd, alloc)
		}

		entries, err := alloc.List()
		if err != nil {
			return fmt.Errorf("listing slots: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintf(out, "No slots held in %s\n", alloc.Dir())
			return nil
		}
		printSlotTable(out, entries)
		return nil
	},
}

var slotsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove abandoned slot locks",
	Long: `Remove lock files whose owning process is no longer running.

Locks held by live alerts are never touched.`,
	Example: `  claude-notify slots prune`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		freed, err := newAllocator(cmd).Prune()
		if err != nil {
			return fmt.Errorf("pruning slots: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(freed) == 0 {
			fmt.Fprintln(out, "No abandoned slots found.")
			return nil
		}
		fmt.Fprintf(out, "✓ Pruned %d abandoned %s\n", len(freed), pluralize("slot", len(freed)))
		return nil
	},
}

func init() {
	slotsCmd.GroupID = shared.GroupMaintenance
	slotsCmd.AddCommand(slotsPruneCmd)

	slotsCmd.Flags().BoolP("watch", "w", false, "Reprint the table whenever a slot changes (Ctrl-C to stop)")
}

// watchSlots reprints the slot table on every lock change until interrupted.
func watchSlots(cmd *cobra.Command, alloc *slot.Allocator) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	dim := color.New(color.Faint)
	err := alloc.Watch(ctx, func(entries []slot.Entry) {
		fmt.Fprintln(out, dim.Sprintf("# %s  %s", time.Now().Format("15:04:05"), alloc.Dir()))
		if len(entries) == 0 {
			fmt.Fprintln(out, "No slots held.")
			return
		}
		printSlotTable(out, entries)
	})
	if err != nil {
		return fmt.Errorf("watching slots: %w", err)
	}
	return nil
}

func newAllocator(cmd *cobra.Command) *slot.Allocator {
	settings, logger, _ := shared.LoadSettings(cmd)
	return slot.New(settings.SlotDir, slot.WithSize(settings.SlotCount), slot.WithLogger(logger))
}

func printSlotTable(w io.Writer, entries []slot.Entry) {
	fmt.Fprintf(w, "%-6s %-10s %s\n", "SLOT", "PID", "STATUS")
	fmt.Fprintln(w, strings.Repeat("-", 30))

	for _, e := range entries {
		status, c := "live", color.New(color.FgGreen)
		if !e.Alive {
			status, c = "abandoned", color.New(color.FgYellow)
		}
		fmt.Fprintf(w, "%-6d %-10d %s\n", e.Slot, e.PID, c.Sprint(status))
	}
}

func pluralize(singular string, count int) string {
	if count == 1 {
		return singular
	}
	return singular + "s"
}
