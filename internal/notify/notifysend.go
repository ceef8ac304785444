package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/ariel-frischer/claude-notify/internal/runner"
)

const dismissAction = "dismiss"

// NotifySend presents alerts through libnotify's notify-send with action buttons.
// notify-send --wait prints the key of the invoked action and nothing when closed.
type NotifySend struct {
	runner runner.Runner
}

// NewNotifySend returns a notify-send presenter running through r.
func NewNotifySend(r runner.Runner) *NotifySend {
	return &NotifySend{runner: r}
}

func (n *NotifySend) Name() string { return PresenterNotifySend }

func (n *NotifySend) Show(ctx context.Context, a Alert) (Choice, error) {
	out, _, err := n.runner.Run(ctx, "notify-send", notifySendArgs(a)...)
	if ctx.Err() != nil {
		return Dismissed, nil
	}
	if err != nil {
		return Dismissed, fmt.Errorf("notify-send: %w", err)
	}

	key := strings.TrimSpace(string(out))
	if key == "" || key == dismissAction {
		return Dismissed, nil
	}
	for _, t := range a.Targets {
		if t.ID == key {
			return OpenChoice(t), nil
		}
	}
	return Dismissed, nil
}

func notifySendArgs(a Alert) []string {
	urgency := "normal"
	if a.Kind == KindPermission {
		urgency = "critical"
	}
	args := []string{
		"--app-name=claude-notify",
		"--urgency=" + urgency,
		"--wait",
	}
	// The daemon stacks its own bubbles; x/y hints are only honoured as a pair and
	// need absolute screen coordinates, which Placement does not carry.
	if len(a.Targets) > 0 && a.Targets[0].Icon != "" {
		args = append(args, "--icon="+a.Targets[0].Icon)
	}
	labels := a.Buttons()
	for i, t := range a.Targets {
		args = append(args, "--action="+t.ID+"="+labels[i])
	}
	args = append(args, "--action="+dismissAction+"="+DismissLabel)

	body := a.Project + "\n" + a.Subtitle()
	return append(args, a.Header(), body)
}
