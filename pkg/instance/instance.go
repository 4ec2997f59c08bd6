// Package instance enforces single-instance semantics through a well-known
// PID file: a newer launcher gracefully terminates an older one before it
// takes over.
package instance

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// PIDFile is the well-known marker path.
const PIDFile = "/tmp/radial-menu.pid"

// gracePolls and gracePollInterval bound how long the new instance waits
// for the old one to exit after SIGTERM before escalating to SIGKILL.
const (
	gracePolls        = 10
	gracePollInterval = 50 * time.Millisecond
)

// Lock is the held single-instance marker.
type Lock struct {
	path string
}

// Acquire terminates any previous instance recorded in the PID file, then
// writes the current PID. A stale file (dead process) is simply removed.
func Acquire() (*Lock, error) {
	return acquire(PIDFile)
}

func acquire(path string) (*Lock, error) {
	killExisting(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("instance: create pid file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, os.Getpid()); err != nil {
		return nil, fmt.Errorf("instance: write pid file: %w", err)
	}
	return &Lock{path: path}, nil
}

// Release removes the PID file. Safe to call more than once.
func (l *Lock) Release() {
	if l == nil || l.path == "" {
		return
	}
	_ = os.Remove(l.path)
	l.path = ""
}

// killExisting reads the PID file and, when the recorded process is alive,
// sends SIGTERM, waits briefly, and escalates to SIGKILL. It returns true
// when a previous instance was terminated.
func killExisting(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		_ = os.Remove(path)
		return false
	}

	if !alive(pid) {
		_ = os.Remove(path)
		return false
	}

	if err := syscall.Kill(pid, syscall.SIGTERM); err == nil {
		for i := 0; i < gracePolls; i++ {
			time.Sleep(gracePollInterval)
			if !alive(pid) {
				_ = os.Remove(path)
				return true
			}
		}
		_ = syscall.Kill(pid, syscall.SIGKILL)
		time.Sleep(2 * gracePollInterval)
		_ = os.Remove(path)
	}
	return true
}

// alive probes a PID with signal 0.
func alive(pid int) bool {
	return syscall.Kill(pid, 0) == nil
}
