// Package dispatch routes an "open this project" action to a concrete editor or terminal.
//
// The dispatcher is a linear fallback state machine:
//
//	Entry ──terminal && tty──▶ TTYFocus ──found──▶ Terminate
//	  │                          │
//	  └──────────otherwise───────┴──failed──▶ Activate ──path && cli/url──▶ ProjectOpen ──▶ Terminate
//	                                             │
//	                                             └──otherwise──▶ Terminate
//
// Every step is best effort. Activation and project launch outcomes are logged but do not
// change the path through the machine, and Terminate is always the last state.
package dispatch

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ariel-frischer/claude-notify/internal/runner"
	"github.com/ariel-frischer/claude-notify/internal/target"
)

// DefaultOpenDelay separates application activation from the project launch.
const DefaultOpenDelay = 300 * time.Millisecond

// State names a step of the dispatch machine.
type State string

const (
	StateEntry       State = "entry"
	StateTTYFocus    State = "tty-focus"
	StateActivate    State = "activate"
	StateProjectOpen State = "project-open"
	StateTerminate   State = "terminate"
)

// Trace is the ordered list of states a dispatch visited.
type Trace []State

// String renders the trace as "entry > activate > terminate".
func (t Trace) String() string {
	parts := make([]string, len(t))
	for i, s := range t {
		parts[i] = string(s)
	}
	return strings.Join(parts, " > ")
}

// Request is one "open" action.
type Request struct {
	Target      target.Target
	ProjectPath string
	// TTY is the tab lookup key with the /dev/ prefix already removed; empty means absent.
	TTY string
}

// Dispatcher runs the fallback chain.
type Dispatcher struct {
	runner    runner.Runner
	scripts   *Scripter
	delay     time.Duration
	after     func(time.Duration) <-chan time.Time
	terminate func()
	goos      string
	logger    *log.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithOpenDelay overrides the pause between activation and project launch.
func WithOpenDelay(d time.Duration) Option {
	return func(x *Dispatcher) {
		if d >= 0 {
			x.delay = d
		}
	}
}

// WithClock replaces time.After, letting tests observe or skip the delay.
func WithClock(after func(time.Duration) <-chan time.Time) Option {
	return func(x *Dispatcher) {
		if after != nil {
			x.after = after
		}
	}
}

// WithTerminate sets the hook run in the Terminate state. The owner of the process
// supplies it (release the slot, then exit).
func WithTerminate(fn func()) Option {
	return func(x *Dispatcher) {
		if fn != nil {
			x.terminate = fn
		}
	}
}

// WithGOOS selects which platform's URL opener to use.
func WithGOOS(goos string) Option {
	return func(x *Dispatcher) { x.goos = goos }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(x *Dispatcher) {
		if l != nil {
			x.logger = l
		}
	}
}

// New creates a dispatcher that runs external commands through r.
func New(r runner.Runner, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		runner:    r,
		scripts:   NewScripter(r),
		delay:     DefaultOpenDelay,
		after:     time.After,
		terminate: func() {},
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Open walks the state machine for req and returns the visited states. It never fails;
// the Terminate hook runs exactly once, as the final step.
func (d *Dispatcher) Open(ctx context.Context, req Request) Trace {
	var trace Trace
	state := StateEntry
	for {
		trace = append(trace, state)
		d.logger.Debug("dispatch", "state", state, "target", req.Target.ID)
		if state == StateTerminate {
			d.terminate()
			return trace
		}
		state = d.step(ctx, state, req)
	}
}

func (d *Dispatcher) step(ctx context.Context, state State, req Request) State {
	switch state {
	case StateEntry:
		if wantsTTYFocus(req) {
			return StateTTYFocus
		}
		return StateActivate

	case StateTTYFocus:
		if err := d.scripts.FocusTTY(ctx, req.Target, req.TTY); err != nil {
			d.logger.Debug("tty focus failed", "target", req.Target.ID, "tty", req.TTY, "err", err)
			return StateActivate
		}
		return StateTerminate

	case StateActivate:
		if err := d.scripts.Activate(ctx, req.Target.AppName); err != nil {
			d.logger.Debug("activate failed", "app", req.Target.AppName, "err", err)
		}
		if wantsProjectOpen(req) {
			return StateProjectOpen
		}
		return StateTerminate

	case StateProjectOpen:
		d.openProject(ctx, req)
		return StateTerminate
	}
	return StateTerminate
}

// wantsTTYFocus: only terminal-class targets with a TTY key try scoped focus.
func wantsTTYFocus(req Request) bool {
	return req.Target.Terminal && req.TTY != ""
}

// wantsProjectOpen: a project path and a cli or url strategy are both required.
func wantsProjectOpen(req Request) bool {
	return req.ProjectPath != "" && req.Target.CanOpenProject()
}

func (d *Dispatcher) openProject(ctx context.Context, req Request) {
	select {
	case <-d.after(d.delay):
	case <-ctx.Done():
		d.logger.Debug("project open cancelled", "target", req.Target.ID)
		return
	}

	strategy := req.Target.Strategy
	switch strategy.Kind {
	case target.CommandLineLaunch:
		if _, _, err := d.runner.Run(ctx, strategy.Value, req.ProjectPath); err != nil {
			d.logger.Debug("cli launch failed", "command", strategy.Value, "err", err)
		}
	case target.URLSchemeLaunch:
		name, args := defaultOpenCommand()
		if d.goos != "" {
			name, args = openCommand(d.goos)
		}
		u := SchemeURL(strategy.Value, req.ProjectPath)
		if _, _, err := d.runner.Run(ctx, name, append(args, u)...); err != nil {
			d.logger.Debug("url open failed", "url", u, "err", err)
		}
	}
}

// TTYKey normalizes a raw TTY argument into a lookup key: "none" and blanks mean absent,
// and a /dev/ prefix is stripped.
func TTYKey(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "none") {
		return ""
	}
	return strings.TrimPrefix(raw, "/dev/")
}
