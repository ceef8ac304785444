package notify

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ariel-frischer/claude-notify/internal/runner"
)

// display dialog accepts at most three buttons: Dismiss plus two targets.
const maxDialogTargets = 2

const gaveUp = "gave up"

// noDeadlineSeconds bounds a dialog shown without a context deadline.
const noDeadlineSeconds = 30

// dialogScript: argv = title, message, seconds, buttons...; the last button is the default.
const dialogScript = `
on run argv
	set theTitle to item 1 of argv
	set theMessage to item 2 of argv
	set theSeconds to (item 3 of argv) as integer
	set theButtons to items 4 thru -1 of argv
	set reply to display dialog theMessage with title theTitle buttons theButtons default button (count of theButtons) giving up after theSeconds
	if gave up of reply then return "gave up"
	return button returned of reply
end run
`

// chooseScript: argv = title, prompt, items...; Dismiss is the cancel button.
const chooseScript = `
on run argv
	set theTitle to item 1 of argv
	set thePrompt to item 2 of argv
	set theItems to items 3 thru -1 of argv
	set picked to choose from list theItems with title theTitle with prompt thePrompt OK button name "Open" cancel button name "Dismiss"
	if picked is false then return ""
	return item 1 of picked
end run
`

// Dialog presents alerts as macOS AppleScript dialogs.
type Dialog struct {
	runner runner.Runner
}

// NewDialog returns a dialog presenter running osascript through r.
func NewDialog(r runner.Runner) *Dialog {
	return &Dialog{runner: r}
}

func (d *Dialog) Name() string { return PresenterDialog }

func (d *Dialog) Show(ctx context.Context, a Alert) (Choice, error) {
	title := a.Header()
	message := dialogMessage(a)

	var args []string
	if len(a.Targets) > maxDialogTargets {
		args = append([]string{"-e", chooseScript, "--", title, message}, a.Buttons()...)
	} else {
		args = append([]string{"-e", dialogScript, "--", title, message, givingUpAfter(ctx)}, DismissLabel)
		args = append(args, a.Buttons()...)
	}

	out, _, err := d.runner.Run(ctx, "osascript", args...)
	if ctx.Err() != nil {
		return Dismissed, nil
	}
	if err != nil {
		return Dismissed, fmt.Errorf("dialog: %w", err)
	}
	return parseReply(a, strings.TrimSpace(string(out))), nil
}

func dialogMessage(a Alert) string {
	lines := []string{a.Project, a.Subtitle()}
	if a.ProjectPath != "" {
		lines = append(lines, a.ProjectPath)
	}
	return strings.Join(lines, "\n")
}

// givingUpAfter converts the context deadline into whole seconds for "giving up after".
func givingUpAfter(ctx context.Context) string {
	deadline, ok := ctx.Deadline()
	if !ok {
		return strconv.Itoa(noDeadlineSeconds)
	}
	secs := int(math.Ceil(timeUntil(deadline).Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

var timeUntil = time.Until

// parseReply maps a button label printed by a script to a choice.
func parseReply(a Alert, reply string) Choice {
	switch reply {
	case "", gaveUp, DismissLabel:
		return Dismissed
	}
	if t, ok := a.TargetForLabel(reply); ok {
		return OpenChoice(t)
	}
	return Dismissed
}
