package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/ariel-frischer/claude-notify/internal/runner"
)

// Presenter shows an alert and blocks until the user answers or ctx ends.
// A context that ends before an answer yields Dismissed with a nil error.
type Presenter interface {
	Name() string
	Show(ctx context.Context, a Alert) (Choice, error)
}

// Presenter names accepted by Select and the presenter setting.
const (
	PresenterAuto       = "auto"
	PresenterDialog     = "dialog"
	PresenterNotifySend = "notify-send"
	PresenterTerminal   = "terminal"
	PresenterNone       = "none"
)

// PresenterNames lists every selectable presenter.
var PresenterNames = []string{PresenterAuto, PresenterDialog, PresenterNotifySend, PresenterTerminal, PresenterNone}

// Env is what presenter selection may depend on.
type Env struct {
	GOOS      string
	Runner    runner.Runner
	Available func(name string) bool
	HasTTY    bool
	In        io.Reader
	Out       io.Writer
	Logger    *log.Logger
}

// DefaultEnv describes the running process.
func DefaultEnv(r runner.Runner, logger *log.Logger) Env {
	caps := DetectTerminalCapabilities()
	return Env{
		GOOS:      runtime.GOOS,
		Runner:    r,
		Available: runner.Available,
		HasTTY:    caps.IsTTY && stdinIsTerminal(),
		In:        os.Stdin,
		Out:       os.Stderr,
		Logger:    logger,
	}
}

// Select builds the named presenter. "auto" picks the first usable one:
// dialog on macOS, notify-send on Linux desktops, terminal on a TTY, else none.
func Select(name string, env Env) (Presenter, error) {
	if env.Logger == nil {
		env.Logger = log.New(io.Discard)
	}
	switch name {
	case "", PresenterAuto:
		return selectAuto(env), nil
	case PresenterDialog:
		if !env.Available("osascript") {
			return nil, fmt.Errorf("%s: %w", name, ErrUnavailable)
		}
		return NewDialog(env.Runner), nil
	case PresenterNotifySend:
		if !env.Available("notify-send") {
			return nil, fmt.Errorf("%s: %w", name, ErrUnavailable)
		}
		return NewNotifySend(env.Runner), nil
	case PresenterTerminal:
		return NewTerminal(env.In, env.Out, env.HasTTY), nil
	case PresenterNone:
		return None{}, nil
	default:
		return nil, fmt.Errorf("unknown presenter %q", name)
	}
}

func selectAuto(env Env) Presenter {
	switch {
	case env.GOOS == "darwin" && env.Available("osascript"):
		return NewDialog(env.Runner)
	case env.GOOS == "linux" && env.Available("notify-send") && hasDisplay():
		return NewNotifySend(env.Runner)
	case env.HasTTY:
		return NewTerminal(env.In, env.Out, true)
	default:
		return None{}
	}
}

// hasDisplay checks if a display environment is available
func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// None shows nothing and waits for ctx to end.
type None struct{}

func (None) Name() string { return PresenterNone }

func (None) Show(ctx context.Context, _ Alert) (Choice, error) {
	<-ctx.Done()
	return Dismissed, nil
}
