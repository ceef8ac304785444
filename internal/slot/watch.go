package slot

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watch reports the slot table to onChange once immediately and again whenever a lock
// file is created, rewritten or removed. It returns when ctx ends.
func (a *Allocator) Watch(ctx context.Context, onChange func([]Entry)) error {
	if err := os.MkdirAll(a.dir, 0755); err != nil {
		return fmt.Errorf("creating slot dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(a.dir); err != nil {
		return fmt.Errorf("watching %s: %w", a.dir, err)
	}

	emit := func() {
		entries, err := a.List()
		if err != nil {
			a.logger.Debug("slot list failed", "err", err)
			return
		}
		onChange(entries)
	}
	emit()

	const lockOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if strings.HasSuffix(event.Name, lockSuffix) && event.Op&lockOps != 0 {
				emit()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Debug("slot watch error", "err", err)
		}
	}
}
