// Package runner is the "run an external command, wait for it, capture stdout" primitive
// shared by the dispatcher, the presenters and the AppleScript helpers.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Run waits for output pipes after the context kills the process.
const waitDelay = 500 * time.Millisecond

// Runner executes external commands.
type Runner interface {
	// Run executes a command to completion.
	Run(ctx context.Context, name string, args ...string) (stdout []byte, stderr []byte, err error)
	// Start launches a command and returns once it is running. wait blocks until it exits.
	Start(ctx context.Context, name string, args ...string) (wait func() error, err error)
}

// Exec runs commands with os/exec.
type Exec struct{}

// New returns the os/exec backed runner.
func New() Runner {
	return Exec{}
}

// Run starts name with args and waits for it to exit. The process is killed when ctx ends.
func (Exec) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return stdout.Bytes(), stderr.Bytes(), fmt.Errorf("%s: %w", name, ctx.Err())
		}
		return stdout.Bytes(), stderr.Bytes(), &Error{Name: name, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}
	return stdout.Bytes(), stderr.Bytes(), nil
}

// Start launches name with args without waiting for it. Output is discarded.
func (Exec) Start(ctx context.Context, name string, args ...string) (func() error, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay
	if err := cmd.Start(); err != nil {
		return nil, &Error{Name: name, Err: err}
	}
	return func() error {
		if err := cmd.Wait(); err != nil {
			return &Error{Name: name, Stderr: strings.TrimSpace(stderr.String()), Err: err}
		}
		return nil
	}, nil
}

// Error is a failed command with its captured stderr.
type Error struct {
	Name   string
	Stderr string
	Err    error
}

func (e *Error) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %v: %s", e.Name, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ExitCode returns the exit status carried by err, or -1 when err is not an exit error.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// Available reports whether name resolves on PATH.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
