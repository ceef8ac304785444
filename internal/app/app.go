// Package app runs one alert from start to exit:
// resolve targets, claim a slot, present, then open or dismiss, always releasing the slot.
package app

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ariel-frischer/claude-notify/internal/dispatch"
	"github.com/ariel-frischer/claude-notify/internal/notify"
	"github.com/ariel-frischer/claude-notify/internal/runner"
	"github.com/ariel-frischer/claude-notify/internal/slot"
	"github.com/ariel-frischer/claude-notify/internal/target"
)

// DefaultTimeout dismisses an unanswered alert.
const DefaultTimeout = 30 * time.Second

// Reason says how an alert ended.
type Reason string

const (
	ReasonOpen      Reason = "open"
	ReasonDismiss   Reason = "dismiss"
	ReasonTimeout   Reason = "timeout"
	ReasonCancelled Reason = "cancelled"
)

// Deps are the collaborators of one alert run.
type Deps struct {
	Registry  *target.Registry
	Runner    runner.Runner
	Presenter notify.Presenter
	Sender    notify.Sender
	Allocator *slot.Allocator
	Logger    *log.Logger

	// EditorsFile is read when no editor argument is given.
	EditorsFile string
	Timeout     time.Duration

	SoundEnabled    bool
	CompletionSound string
	PermissionSound string

	// DispatchOptions configure the dispatcher; the terminate hook is always set by App.
	DispatchOptions []dispatch.Option

	// Exit ends the process after the slot is released. Defaults to os.Exit(0).
	Exit func()
}

// App runs alerts.
type App struct {
	deps Deps
}

// New creates an App, filling unset collaborators with defaults.
func New(deps Deps) *App {
	if deps.Registry == nil {
		deps.Registry = target.Default()
	}
	if deps.Runner == nil {
		deps.Runner = runner.New()
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	if deps.Presenter == nil {
		deps.Presenter = notify.None{}
	}
	if deps.Timeout <= 0 {
		deps.Timeout = DefaultTimeout
	}
	if deps.Exit == nil {
		deps.Exit = func() { os.Exit(0) }
	}
	return &App{deps: deps}
}

// Outcome records what one run did.
type Outcome struct {
	Targets   []target.Target
	Slot      int
	Placement notify.Placement
	Choice    notify.Choice
	Reason    Reason
	// Trace is empty unless a target was opened.
	Trace dispatch.Trace
}

// session owns the claimed slot of one run. finish releases it and exits exactly once.
type session struct {
	app  *App
	slot int
	once sync.Once
}

func (s *session) finish() {
	s.once.Do(func() {
		if s.app.deps.Allocator != nil {
			s.app.deps.Allocator.Release(s.slot)
		}
		s.app.deps.Logger.Debug("slot released", "slot", s.slot)
		s.app.deps.Exit()
	})
}

// Run shows one alert and acts on the answer. Every path ends in the exit hook.
func (a *App) Run(ctx context.Context, p Params) Outcome {
	d := a.deps
	out := Outcome{Targets: a.Targets(p)}

	if d.Allocator != nil {
		out.Slot = d.Allocator.Claim()
	}
	s := &session{app: a, slot: out.Slot}
	out.Placement = notify.Layout(len(out.Targets), out.Slot)
	d.Logger.Debug("alert", "slot", out.Slot, "targets", len(out.Targets), "kind", p.Kind, "presenter", d.Presenter.Name())

	alert := notify.Alert{
		Kind:        p.Kind,
		Runtime:     p.Runtime,
		Project:     p.Project,
		ProjectPath: p.ProjectPath,
		Targets:     out.Targets,
		Slot:        out.Slot,
		Placement:   out.Placement,
	}
	a.playSound(ctx, alert)

	alertCtx, cancel := context.WithTimeout(ctx, d.Timeout)
	choice, err := d.Presenter.Show(alertCtx, alert)
	expired := alertCtx.Err()
	cancel()
	if err != nil {
		d.Logger.Debug("presenter failed", "presenter", d.Presenter.Name(), "err", err)
		choice = notify.Dismissed
	}
	out.Choice = choice

	if !choice.Open {
		switch {
		case ctx.Err() != nil:
			out.Reason = ReasonCancelled
		case expired != nil:
			out.Reason = ReasonTimeout
		default:
			out.Reason = ReasonDismiss
		}
		d.Logger.Debug("alert closed", "reason", out.Reason)
		s.finish()
		return out
	}

	out.Reason = ReasonOpen
	opts := append(append([]dispatch.Option(nil), d.DispatchOptions...),
		dispatch.WithLogger(d.Logger),
		dispatch.WithTerminate(s.finish),
	)
	out.Trace = dispatch.New(d.Runner, opts...).Open(ctx, dispatch.Request{
		Target:      choice.Target,
		ProjectPath: p.ProjectPath,
		TTY:         dispatch.TTYKey(p.TTY),
	})
	d.Logger.Debug("dispatched", "target", choice.Target.ID, "trace", out.Trace.String())
	return out
}

// Targets resolves the alert's targets: an explicit editor argument resolves to one
// target, otherwise the editors file lists them (see "Editor source" in DESIGN.md).
func (a *App) Targets(p Params) []target.Target {
	if p.Editor != "" {
		return []target.Target{a.deps.Registry.Resolve(p.Editor)}
	}
	return a.deps.Registry.LoadEditors(a.deps.EditorsFile)
}

// playSound starts the alert sound before the alert is shown. The player is spawned
// synchronously so an immediate dismiss and exit cannot drop it; playback is not awaited.
func (a *App) playSound(ctx context.Context, alert notify.Alert) {
	d := a.deps
	if !d.SoundEnabled || d.Sender == nil {
		return
	}
	sound := d.CompletionSound
	if alert.Kind == notify.KindPermission {
		sound = d.PermissionSound
	}
	if sound == "" {
		sound = alert.Sound()
	}
	// The player outlives cancellation of the alert.
	if err := d.Sender.SendSound(context.WithoutCancel(ctx), sound); err != nil {
		d.Logger.Debug("sound failed", "sound", sound, "err", err)
	}
}
