package notify

import (
	"errors"
	"fmt"

	"github.com/ariel-frischer/claude-notify/internal/target"
)

// ErrUnavailable is returned when a presenter's backing tool is missing.
var ErrUnavailable = errors.New("presenter unavailable")

// Kind is the event an alert reports.
type Kind string

const (
	// KindCompletion means the runtime finished and is waiting for input.
	KindCompletion Kind = "completion"
	// KindPermission means the runtime is blocked on an approval.
	KindPermission Kind = "permission"
)

// OpenProjectLabel is the button label used when only one target is offered.
const OpenProjectLabel = "Open Project"

// DismissLabel is the label of the dismiss button.
const DismissLabel = "Dismiss"

// Alert is everything a presenter needs to draw one notification.
type Alert struct {
	Kind        Kind
	Runtime     string
	Project     string
	ProjectPath string
	Targets     []target.Target
	Slot        int
	Placement   Placement
}

// Header is the bold first line, e.g. "Claude Complete".
func (a Alert) Header() string {
	if a.Kind == KindPermission {
		return fmt.Sprintf("%s Needs Approval", a.Runtime)
	}
	return fmt.Sprintf("%s Complete", a.Runtime)
}

// Subtitle is the secondary line under the project name.
func (a Alert) Subtitle() string {
	if a.Kind == KindPermission {
		return "Permission required to continue"
	}
	return "Ready for your input"
}

// Sound is the system sound name for the alert kind.
func (a Alert) Sound() string {
	if a.Kind == KindPermission {
		return "Ping"
	}
	return "Glass"
}

// Buttons returns one label per target in order.
func (a Alert) Buttons() []string {
	if len(a.Targets) == 1 {
		return []string{OpenProjectLabel}
	}
	labels := make([]string, len(a.Targets))
	for i, t := range a.Targets {
		labels[i] = t.DisplayName
	}
	return labels
}

// TargetForLabel maps a button label back to its target.
func (a Alert) TargetForLabel(label string) (target.Target, bool) {
	for i, l := range a.Buttons() {
		if l == label {
			return a.Targets[i], true
		}
	}
	return target.Target{}, false
}

// Choice is the user's answer to an alert.
type Choice struct {
	// Open is false for dismiss and timeout.
	Open   bool
	Target target.Target
}

// Dismissed is the zero choice.
var Dismissed = Choice{}

// OpenChoice selects t.
func OpenChoice(t target.Target) Choice {
	return Choice{Open: true, Target: t}
}
