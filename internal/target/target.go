// Package target maps loosely specified editor and terminal identifiers to concrete
// activation targets.
//
// A Target describes how to bring an application to the foreground and, for editors,
// how to open a project path in it. Identifiers arrive from argv, environment or the
// editors file in whatever spelling the caller used, so resolution is forgiving:
// exact match first, then fixed-priority substring rules, then the Terminal fallback.
package target

import "fmt"

// StrategyKind identifies how a target opens a project or focuses a window.
type StrategyKind string

const (
	// CommandLineLaunch runs a CLI tool with the project path as its sole argument.
	CommandLineLaunch StrategyKind = "cli"
	// URLSchemeLaunch opens scheme+percent-encoded-path via the OS URL handler.
	URLSchemeLaunch StrategyKind = "url"
	// TerminalWindowFocus re-focuses an existing terminal window/tab by TTY.
	TerminalWindowFocus StrategyKind = "focus"
)

// Strategy is a target's activation strategy.
// Value holds the command for CommandLineLaunch and the URL prefix for URLSchemeLaunch.
type Strategy struct {
	Kind  StrategyKind
	Value string
}

// CLI returns a CommandLineLaunch strategy.
func CLI(command string) Strategy { return Strategy{Kind: CommandLineLaunch, Value: command} }

// URLScheme returns a URLSchemeLaunch strategy.
func URLScheme(prefix string) Strategy { return Strategy{Kind: URLSchemeLaunch, Value: prefix} }

// WindowFocus returns a TerminalWindowFocus strategy.
func WindowFocus() Strategy { return Strategy{Kind: TerminalWindowFocus} }

// String renders the strategy for listings, e.g. "cli:zed".
func (s Strategy) String() string {
	if s.Value == "" {
		return string(s.Kind)
	}
	return fmt.Sprintf("%s:%s", s.Kind, s.Value)
}

// Target is an immutable editor or terminal descriptor.
type Target struct {
	// ID is the canonical lowercase key, e.g. "zed" or "iterm".
	ID string
	// DisplayName is the short human label used on buttons.
	DisplayName string
	// AppName addresses the application through the OS activation interface.
	AppName string
	// Strategy is how a project path is opened or a window is focused.
	Strategy Strategy
	// Terminal marks terminal-class targets, which support TTY-scoped focus.
	Terminal bool
	// BrandColor is a hex color presenters may use for the target's button.
	BrandColor string
	// Icon is a freedesktop icon-theme name shown by notification daemons.
	Icon string
}

// CanOpenProject reports whether the target can open a project path
// (command-line or URL-scheme strategy).
func (t Target) CanOpenProject() bool {
	return t.Strategy.Kind == CommandLineLaunch || t.Strategy.Kind == URLSchemeLaunch
}

// Class returns "terminal" or "editor".
func (t Target) Class() string {
	if t.Terminal {
		return "terminal"
	}
	return "editor"
}
