package instance

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestAcquireWritesPID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radial-menu.pid")

	l, err := acquire(path)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer l.Release()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("pid file missing: %v", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid != os.Getpid() {
		t.Fatalf("pid file holds %q, want %d", data, os.Getpid())
	}
}

func TestReleaseRemovesPIDFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radial-menu.pid")

	l, err := acquire(path)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	l.Release()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("pid file should be gone after release, stat err %v", err)
	}
}

func TestAcquireCleansStalePIDFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radial-menu.pid")
	// A long-dead PID: nothing to signal, just stale state to clear.
	if err := os.WriteFile(path, []byte("999999"), 0o644); err != nil {
		t.Fatalf("seed pid file: %v", err)
	}

	l, err := acquire(path)
	if err != nil {
		t.Fatalf("acquire over a stale pid file: %v", err)
	}
	defer l.Release()

	data, _ := os.ReadFile(path)
	if strings.TrimSpace(string(data)) != strconv.Itoa(os.Getpid()) {
		t.Fatalf("pid file holds %q, want our own pid", data)
	}
}

func TestAcquireIgnoresGarbagePIDFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radial-menu.pid")
	if err := os.WriteFile(path, []byte("not-a-pid"), 0o644); err != nil {
		t.Fatalf("seed pid file: %v", err)
	}

	l, err := acquire(path)
	if err != nil {
		t.Fatalf("acquire over a garbage pid file: %v", err)
	}
	l.Release()
}
