// Package shared provides constants and helpers used across CLI subpackages.
// This package has no dependencies on other CLI packages to avoid circular imports.
package shared

import "github.com/spf13/cobra"

// Command group IDs for organizing help output
const (
	GroupAlerts        = "alerts"
	GroupMaintenance   = "maintenance"
	GroupConfiguration = "configuration"
)

// Box drawing characters
const (
	BoxTopLeft     = "╭"
	BoxTopRight    = "╮"
	BoxBottomLeft  = "╰"
	BoxBottomRight = "╯"
	BoxHorizontal  = "─"
	BoxVertical    = "│"
)

// AddGroups defines the command groups in display order.
func AddGroups(root *cobra.Command) {
	root.AddGroup(&cobra.Group{ID: GroupAlerts, Title: "Alerts:"})
	root.AddGroup(&cobra.Group{ID: GroupMaintenance, Title: "Maintenance:"})
	root.AddGroup(&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"})
}
