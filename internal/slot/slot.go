// Package slot lets unrelated, short-lived alert processes agree on non-overlapping
// screen positions without a daemon.
//
// The shared table is a directory of lock files, one per slot index, each holding the
// decimal pid of its claimant. A lock whose owner is no longer alive is abandoned and may
// be reclaimed by the next process that scans past it.
//
// Claim is a check-then-act scan with no cross-process lock around it. Two processes can
// race for the same empty slot; the cost is a cosmetic overlap of two alerts, so the race
// is accepted. Every filesystem failure degrades to slot 0 instead of an error, because a
// misplaced alert is better than a missing one.
package slot

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultSize is the number of slots in the pool.
const DefaultSize = 20

// FallbackSlot is returned when no slot could be claimed.
const FallbackSlot = 0

const lockSuffix = ".lock"

// Allocator claims and releases slot indices in a shared lock directory.
type Allocator struct {
	dir    string
	size   int
	pid    int
	alive  func(pid int) bool
	logger *log.Logger
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithSize overrides the pool size.
func WithSize(n int) Option {
	return func(a *Allocator) {
		if n > 0 {
			a.size = n
		}
	}
}

// WithPID overrides the pid recorded in claimed lock files.
func WithPID(pid int) Option {
	return func(a *Allocator) { a.pid = pid }
}

// WithLiveness replaces the owner liveness probe (tests simulate dead owners with it).
func WithLiveness(alive func(pid int) bool) Option {
	return func(a *Allocator) {
		if alive != nil {
			a.alive = alive
		}
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(a *Allocator) {
		if l != nil {
			a.logger = l
		}
	}
}

// New creates an allocator over dir.
func New(dir string, opts ...Option) *Allocator {
	a := &Allocator{
		dir:    dir,
		size:   DefaultSize,
		pid:    os.Getpid(),
		alive:  ProcessAlive,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Dir returns the lock directory.
func (a *Allocator) Dir() string { return a.dir }

// Size returns the pool size.
func (a *Allocator) Size() int { return a.size }

// Claim returns the lowest slot that is free or abandoned and records this process as
// its owner. If every slot has a live owner, or any I/O fails, it returns FallbackSlot
// without claiming it.
func (a *Allocator) Claim() int {
	if err := os.MkdirAll(a.dir, 0755); err != nil {
		a.logger.Debug("slot dir unavailable", "dir", a.dir, "err", err)
		return FallbackSlot
	}

	for i := 0; i < a.size; i++ {
		path := a.path(i)

		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			created, err := a.create(path)
			if err != nil {
				a.logger.Debug("slot create failed", "slot", i, "err", err)
				return FallbackSlot
			}
			if created {
				a.logger.Debug("slot claimed", "slot", i, "pid", a.pid)
				return i
			}
			// Lost the creation race for this index; keep scanning.
			continue
		}
		if err != nil {
			a.logger.Debug("slot read failed", "slot", i, "err", err)
			return FallbackSlot
		}

		owner, ok := parsePID(data)
		if ok && a.alive(owner) {
			continue
		}

		if err := a.write(path); err != nil {
			a.logger.Debug("slot reclaim failed", "slot", i, "err", err)
			return FallbackSlot
		}
		a.logger.Debug("slot reclaimed", "slot", i, "pid", a.pid, "previous", owner)
		return i
	}

	a.logger.Debug("slot pool exhausted", "size", a.size)
	return FallbackSlot
}

// Release deletes the lock for slot if this process owns it. It never fails:
// releasing an unclaimed or already released slot is a no-op, and a lock left behind
// is reclaimed later through the liveness check.
func (a *Allocator) Release(slot int) {
	if slot < 0 || slot >= a.size {
		return
	}
	path := a.path(slot)
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	if owner, ok := parsePID(data); ok && owner != a.pid {
		// Degenerate fallback slot owned by someone else.
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		a.logger.Debug("slot release failed", "slot", slot, "err", err)
		return
	}
	a.logger.Debug("slot released", "slot", slot, "pid", a.pid)
}

// create publishes a lock file that already holds our pid. The body is written to a
// temp file first and hard-linked into place, so a concurrent scan never sees an empty
// lock and only one creator's link succeeds.
func (a *Allocator) create(path string) (bool, error) {
	tmp, err := a.writeTemp()
	if err != nil {
		return false, err
	}
	defer os.Remove(tmp)

	if err := os.Link(tmp, path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// write replaces an abandoned lock in one rename.
func (a *Allocator) write(path string) error {
	tmp, err := a.writeTemp()
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// writeTemp stores our pid in a scratch file next to the locks. The name never ends in
// the lock suffix, so List and Watch ignore it.
func (a *Allocator) writeTemp() (string, error) {
	f, err := os.CreateTemp(a.dir, ".claim-*.tmp")
	if err != nil {
		return "", err
	}
	_, werr := f.WriteString(strconv.Itoa(a.pid))
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		os.Remove(f.Name())
		return "", werr
	}
	return f.Name(), nil
}

func (a *Allocator) path(slot int) string {
	return filepath.Join(a.dir, strconv.Itoa(slot)+lockSuffix)
}

// parsePID reads a lock file body. Empty or garbled bodies report ok=false and are
// treated as abandoned.
func parsePID(data []byte) (int, bool) {
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

// Entry describes one lock file found in the slot directory.
type Entry struct {
	Slot  int
	PID   int
	Alive bool
	Path  string
}

// List returns the current lock files ordered by slot.
func (a *Allocator) List() ([]Entry, error) {
	files, err := os.ReadDir(a.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading slot dir: %w", err)
	}

	var entries []Entry
	for _, f := range files {
		name := f.Name()
		if f.IsDir() || !strings.HasSuffix(name, lockSuffix) {
			continue
		}
		slot, err := strconv.Atoi(strings.TrimSuffix(name, lockSuffix))
		if err != nil || slot < 0 {
			continue
		}
		path := filepath.Join(a.dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		pid, ok := parsePID(data)
		entries = append(entries, Entry{
			Slot:  slot,
			PID:   pid,
			Alive: ok && a.alive(pid),
			Path:  path,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Slot < entries[j].Slot })
	return entries, nil
}

// Prune removes abandoned locks and returns the slots it freed.
func (a *Allocator) Prune() ([]int, error) {
	entries, err := a.List()
	if err != nil {
		return nil, err
	}
	var freed []int
	for _, e := range entries {
		if e.Alive {
			continue
		}
		if err := os.Remove(e.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return freed, fmt.Errorf("removing %s: %w", e.Path, err)
		}
		freed = append(freed, e.Slot)
	}
	return freed, nil
}
