// Package testutil provides test utilities and helpers for claude-notify tests.
package testutil

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Call records a single runner invocation.
type Call struct {
	Name      string
	Args      []string
	Timestamp time.Time
}

// Joined returns the command line as one string, for substring assertions.
func (c Call) Joined() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

type mockResponse struct {
	match   func(Call) bool
	respond func(ctx context.Context, c Call) ([]byte, error)
}

// MockRunner is a recording runner.Runner with a fluent API for configuring responses.
// Unmatched calls succeed with empty output.
type MockRunner struct {
	mu        sync.Mutex
	responses []mockResponse
	calls     []Call
}

// NewMockRunner creates a runner that records calls and returns empty success.
func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

// OnCommand responds to every call of the named command.
func (m *MockRunner) OnCommand(name, stdout string, err error) *MockRunner {
	return m.OnFunc(
		func(c Call) bool { return c.Name == name },
		func(context.Context, Call) ([]byte, error) { return []byte(stdout), err },
	)
}

// OnArgContaining responds to calls whose command line contains fragment.
func (m *MockRunner) OnArgContaining(fragment, stdout string, err error) *MockRunner {
	return m.OnFunc(
		func(c Call) bool { return strings.Contains(c.Joined(), fragment) },
		func(context.Context, Call) ([]byte, error) { return []byte(stdout), err },
	)
}

// OnFunc registers a custom matcher and responder. Earlier registrations win.
func (m *MockRunner) OnFunc(match func(Call) bool, respond func(ctx context.Context, c Call) ([]byte, error)) *MockRunner {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, mockResponse{match: match, respond: respond})
	return m
}

// Run records the call and returns the first matching response.
func (m *MockRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	out, err := m.record(ctx, name, args)
	return out, nil, err
}

// Start records the call like Run. A configured error is reported as a failure to start.
func (m *MockRunner) Start(ctx context.Context, name string, args ...string) (func() error, error) {
	if _, err := m.record(ctx, name, args); err != nil {
		return nil, err
	}
	return func() error { return nil }, nil
}

func (m *MockRunner) record(ctx context.Context, name string, args []string) ([]byte, error) {
	call := Call{Name: name, Args: append([]string(nil), args...), Timestamp: time.Now()}

	m.mu.Lock()
	m.calls = append(m.calls, call)
	responses := append([]mockResponse(nil), m.responses...)
	m.mu.Unlock()

	for _, r := range responses {
		if r.match(call) {
			return r.respond(ctx, call)
		}
	}
	return nil, nil
}

// Calls returns a copy of every recorded call in order.
func (m *MockRunner) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// CallsTo returns the recorded calls of the named command.
func (m *MockRunner) CallsTo(name string) []Call {
	var out []Call
	for _, c := range m.Calls() {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the command name of each recorded call in order.
func (m *MockRunner) Names() []string {
	calls := m.Calls()
	out := make([]string, 0, len(calls))
	for _, c := range calls {
		out = append(out, c.Name)
	}
	return out
}

// Reset clears recorded calls but keeps configured responses.
func (m *MockRunner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}
