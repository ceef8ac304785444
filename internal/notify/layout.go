package notify

const (
	panelWidth      = 320
	panelBaseHeight = 230
	buttonRowHeight = 44
	buttonsPerRow   = 3
	stackMargin     = 12
	stackGap        = 8
)

// Placement positions an alert panel relative to the top-right corner of the screen.
type Placement struct {
	Width  int
	Height int
	// Top is the distance from the top edge.
	Top int
	// Right is the distance from the right edge.
	Right int
}

// Layout sizes a panel with n target buttons and stacks it below the panels of lower slots.
// A single target uses the base height; more targets add one row per three buttons
// beyond the first plus a separate dismiss row.
func Layout(n, slot int) Placement {
	extraRows := 0
	if n > 1 {
		extraRows = (n-1)/buttonsPerRow + 1
	}
	height := panelBaseHeight + extraRows*buttonRowHeight
	if slot < 0 {
		slot = 0
	}
	return Placement{
		Width:  panelWidth,
		Height: height,
		Top:    stackMargin + slot*(height+stackGap),
		Right:  stackMargin,
	}
}
