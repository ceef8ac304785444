// Package notify presents a claude-notify alert and plays its sound.
//
// An Alert carries the header, project and target buttons; a Presenter shows it and
// blocks until the user picks a target, dismisses it, or the context ends. Presenters
// shell out to native tools through runner.Runner so the package stays CGO-free.
//
// # Presenters
//
//   - dialog: osascript "display dialog" (macOS); more than two targets use "choose from list"
//   - notify-send: libnotify actions with --wait (Linux desktops)
//   - terminal: an inline card with a spinner countdown and single-key answers
//   - none: shows nothing and waits for the timeout
//
// # Sound
//
//   - macOS: afplay with the Glass/Ping system sounds
//   - Linux: paplay with freedesktop theme sounds
//   - Windows: PowerShell system sounds
//
// # Usage
//
//	p, _ := notify.Select(notify.PresenterAuto, notify.DefaultEnv(runner.New(), logger))
//	choice, err := p.Show(ctx, notify.Alert{Kind: notify.KindCompletion, Runtime: "Claude", ...})
package notify
