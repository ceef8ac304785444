// Package logging builds the structured logger shared by claude-notify components.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix tags every line so hook output is attributable in a shared terminal.
const Prefix = "claude-notify"

// New returns a logger writing to w at the named level ("debug", "info", "warn", "error").
// Unknown names fall back to warn.
func New(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  ParseLevel(level),
	})
}

// ParseLevel maps a level name to a log.Level.
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
