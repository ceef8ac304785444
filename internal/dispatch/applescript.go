package dispatch

import (
	"context"
	"errors"
	"strings"

	"github.com/ariel-frischer/claude-notify/internal/runner"
	"github.com/ariel-frischer/claude-notify/internal/target"
)

// ErrNoTTYScript is returned when a terminal exposes no scriptable TTY metadata.
var ErrNoTTYScript = errors.New("terminal has no tty focus script")

// ErrTTYNotFound is returned when no window/tab of the terminal matches the TTY.
var ErrTTYNotFound = errors.New("no terminal tab matches tty")

// ErrNotRunning is returned when the terminal application is not running.
var ErrNotRunning = errors.New("terminal application not running")

// Script outputs that the TTY scripts print.
const (
	outFound      = "found"
	outNotFound   = "not found"
	outNotRunning = "not running"
)

// Arguments are passed through argv so paths and names are never spliced into source.
const activateScript = `
on run argv
	tell application (item 1 of argv) to activate
end run
`

// Terminal.app exposes a tty property on each tab.
const terminalTTYScript = `
on run argv
	set ttyKey to item 1 of argv
	if application "Terminal" is not running then return "not running"
	tell application "Terminal"
		repeat with w in windows
			repeat with t in tabs of w
				if (tty of t) contains ttyKey then
					set selected of t to true
					set index of w to 1
					activate
					return "found"
				end if
			end repeat
		end repeat
	end tell
	return "not found"
end run
`

// iTerm2 exposes a tty property on each session.
const itermTTYScript = `
on run argv
	set ttyKey to item 1 of argv
	if application "iTerm" is not running then return "not running"
	tell application "iTerm"
		repeat with w in windows
			repeat with t in tabs of w
				repeat with s in sessions of t
					if (tty of s) contains ttyKey then
						select w
						tell t to select
						tell s to select
						activate
						return "found"
					end if
				end repeat
			end repeat
		end repeat
	end tell
	return "not found"
end run
`

// ttyScripts are keyed by target ID. Terminals missing here cannot be focused by TTY.
var ttyScripts = map[string]string{
	"terminal": terminalTTYScript,
	"iterm":    itermTTYScript,
}

// Scripter drives applications through osascript.
type Scripter struct {
	runner runner.Runner
}

// NewScripter returns a Scripter that runs osascript through r.
func NewScripter(r runner.Runner) *Scripter {
	return &Scripter{runner: r}
}

// Run executes an AppleScript with argv and returns its trimmed stdout.
func (s *Scripter) Run(ctx context.Context, script string, args ...string) (string, error) {
	argv := append([]string{"-e", script, "--"}, args...)
	out, _, err := s.runner.Run(ctx, "osascript", argv...)
	return strings.TrimSpace(string(out)), err
}

// Activate brings the named application to the foreground.
func (s *Scripter) Activate(ctx context.Context, appName string) error {
	_, err := s.Run(ctx, activateScript, appName)
	return err
}

// FocusTTY selects the window/tab of t whose TTY contains key and raises it.
func (s *Scripter) FocusTTY(ctx context.Context, t target.Target, key string) error {
	script, ok := ttyScripts[t.ID]
	if !ok {
		return ErrNoTTYScript
	}
	out, err := s.Run(ctx, script, key)
	if err != nil {
		return err
	}
	switch out {
	case outFound:
		return nil
	case outNotRunning:
		return ErrNotRunning
	default:
		return ErrTTYNotFound
	}
}

// HasTTYScript reports whether t can be focused by TTY.
func HasTTYScript(t target.Target) bool {
	_, ok := ttyScripts[t.ID]
	return ok
}
