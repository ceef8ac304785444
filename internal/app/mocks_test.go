// Package app_test provides mock presenters and sound senders for lifecycle tests.
// Related: internal/notify/presenter.go, internal/notify/sender.go
// Tags: app, mocks, testing
package app

import (
	"context"
	"errors"
	"sync"

	"github.com/ariel-frischer/claude-notify/internal/notify"
)

// MockSender is a recording notify.Sender.
type MockSender struct {
	mu sync.Mutex

	SoundError     error
	soundAvailable bool

	SoundCalls []string
	played     chan string
}

// NewMockSender creates a mock sender with default behavior (available, no errors)
func NewMockSender() *MockSender {
	return &MockSender{
		soundAvailable: true,
		played:         make(chan string, 8),
	}
}

// WithSoundError configures the mock to return an error on SendSound
func (m *MockSender) WithSoundError(err error) *MockSender {
	m.SoundError = err
	return m
}

// SendSound records the call and returns configured error
func (m *MockSender) SendSound(_ context.Context, sound string) error {
	m.mu.Lock()
	m.SoundCalls = append(m.SoundCalls, sound)
	m.mu.Unlock()
	m.played <- sound
	return m.SoundError
}

// SoundAvailable returns whether sound notifications are available
func (m *MockSender) SoundAvailable() bool {
	return m.soundAvailable
}

// Played returns the channel that receives every played sound.
func (m *MockSender) Played() <-chan string {
	return m.played
}

// MockPresenter answers alerts from a script instead of a user.
type MockPresenter struct {
	mu sync.Mutex

	// Answer picks the choice for an alert; nil waits for the context.
	Answer func(notify.Alert) (notify.Choice, error)
	Shown  []notify.Alert
}

// Name implements notify.Presenter.
func (m *MockPresenter) Name() string { return "mock" }

// Show records the alert and returns the scripted answer.
func (m *MockPresenter) Show(ctx context.Context, a notify.Alert) (notify.Choice, error) {
	m.mu.Lock()
	m.Shown = append(m.Shown, a)
	answer := m.Answer
	m.mu.Unlock()

	if answer == nil {
		<-ctx.Done()
		return notify.Dismissed, nil
	}
	return answer(a)
}

// pick opens the target with the given ID.
func pick(id string) func(notify.Alert) (notify.Choice, error) {
	return func(a notify.Alert) (notify.Choice, error) {
		for _, t := range a.Targets {
			if t.ID == id {
				return notify.OpenChoice(t), nil
			}
		}
		return notify.Dismissed, errors.New("no such target on alert: " + id)
	}
}

func dismiss(notify.Alert) (notify.Choice, error) { return notify.Dismissed, nil }
