package slot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReportsClaimAndRelease(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "slots")
	procs := newFakeProcs(100)
	watched := newTestAllocator(dir, 1, procs)
	owner := newTestAllocator(dir, 100, procs)

	ctx, cancel := context.WithCancel(context.Background())
	updates := make(chan []Entry, 64)
	done := make(chan error, 1)
	go func() {
		done <- watched.Watch(ctx, func(e []Entry) { updates <- e })
	}()

	// The initial table is empty.
	select {
	case e := <-updates:
		assert.Empty(t, e)
	case <-time.After(5 * time.Second):
		t.Fatal("no initial report")
	}

	waitFor := func(want int) {
		t.Helper()
		deadline := time.After(5 * time.Second)
		for {
			select {
			case e := <-updates:
				if len(e) == want {
					return
				}
			case <-deadline:
				t.Fatalf("never saw %d entries", want)
			}
		}
	}

	slot := owner.Claim()
	require.Equal(t, 0, slot)
	waitFor(1)

	owner.Release(slot)
	waitFor(0)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_BadDir(t *testing.T) {
	t.Parallel()
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	a := New(filepath.Join(blocker, "slots"))
	err := a.Watch(context.Background(), func([]Entry) {})
	assert.Error(t, err)
}
