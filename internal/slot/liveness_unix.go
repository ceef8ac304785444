//go:build !windows

package slot

import (
	"errors"

	"golang.org/x/sys/unix"
)

// ProcessAlive probes pid with signal 0. EPERM means the process exists but belongs to
// someone else, so it counts as alive.
func ProcessAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := unix.Kill(pid, 0)
	if err == nil {
		return true
	}
	return errors.Is(err, unix.EPERM)
}
