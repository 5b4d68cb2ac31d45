//go:build unix

package process

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestAlive(t *testing.T) {
	t.Parallel()

	if !Alive(os.Getpid()) {
		t.Fatalf("expected current process to be alive")
	}
	if Alive(0) || Alive(-1) {
		t.Fatalf("expected non-positive pids to be dead")
	}
}

func TestLauncher_SpawnWritesLogAndReaps(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	launcher, err := NewLauncher(LauncherConfig{
		Binary:   "/bin/sh",
		StateDir: dir,
		Args:     []string{"-c", "echo worker-started"},
	}, nil)
	if err != nil {
		t.Fatalf("new launcher: %v", err)
	}

	pid, err := launcher.Spawn(context.Background())
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if pid <= 0 {
		t.Fatalf("unexpected pid %d", pid)
	}

	deadline := time.Now().Add(5 * time.Second)
	for Alive(pid) {
		if time.Now().After(deadline) {
			t.Fatalf("worker pid %d still alive after deadline", pid)
		}
		time.Sleep(20 * time.Millisecond)
	}

	var raw []byte
	for {
		raw, err = os.ReadFile(filepath.Join(dir, LogFileName))
		if err == nil && strings.Contains(string(raw), "worker-started") {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected worker output in log, got %q (err=%v)", string(raw), err)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestLauncher_SpawnMissingBinary(t *testing.T) {
	t.Parallel()

	launcher, err := NewLauncher(LauncherConfig{
		Binary:   filepath.Join(t.TempDir(), "missing-worker"),
		StateDir: t.TempDir(),
	}, nil)
	if err != nil {
		t.Fatalf("new launcher: %v", err)
	}
	if _, err := launcher.Spawn(context.Background()); err == nil {
		t.Fatalf("expected spawn of missing binary to fail")
	}
}

func TestNewLauncher_RequiresBinaryAndDir(t *testing.T) {
	t.Parallel()

	if _, err := NewLauncher(LauncherConfig{StateDir: "/tmp"}, nil); err == nil {
		t.Fatalf("expected missing binary to fail")
	}
	if _, err := NewLauncher(LauncherConfig{Binary: "/bin/true"}, nil); err == nil {
		t.Fatalf("expected missing state dir to fail")
	}
}
