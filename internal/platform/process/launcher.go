// Package process starts the scrape worker as a detached OS process and
// probes whether a recorded worker pid is still alive.
package process

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/riskibarqy/matchboard/internal/platform/logging"
)

// LogFileName is the worker output file inside the state directory.
const LogFileName = "scraper.log"

type LauncherConfig struct {
	Binary   string
	StateDir string
	// Args replaces the default "run --state-dir <dir>" arguments when set.
	Args []string
}

// Launcher spawns one worker per call. The child runs in its own session and
// is reaped in the background, so Alive turns false once it exits.
type Launcher struct {
	binary   string
	stateDir string
	args     []string
	logger   *logging.Logger
}

func NewLauncher(cfg LauncherConfig, logger *logging.Logger) (*Launcher, error) {
	if logger == nil {
		logger = logging.Default()
	}
	binary := strings.TrimSpace(cfg.Binary)
	if binary == "" {
		return nil, fmt.Errorf("worker binary is required")
	}
	if strings.TrimSpace(cfg.StateDir) == "" {
		return nil, fmt.Errorf("state dir is required")
	}

	args := cfg.Args
	if len(args) == 0 {
		args = []string{"run", "--state-dir", cfg.StateDir}
	}

	return &Launcher{
		binary:   binary,
		stateDir: cfg.StateDir,
		args:     args,
		logger:   logger,
	}, nil
}

// Spawn starts the worker and returns its pid. The request context only
// scopes logging; the worker outlives it.
func (l *Launcher) Spawn(ctx context.Context) (int, error) {
	if err := os.MkdirAll(l.stateDir, 0o755); err != nil {
		return 0, fmt.Errorf("create state dir: %w", err)
	}
	logPath := filepath.Join(l.stateDir, LogFileName)
	out, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open worker log: %w", err)
	}

	cmd := exec.Command(l.binary, l.args...)
	cmd.Stdout = out
	cmd.Stderr = out
	cmd.SysProcAttr = detachedAttr()

	if err := cmd.Start(); err != nil {
		_ = out.Close()
		return 0, fmt.Errorf("start worker %s: %w", l.binary, err)
	}

	pid := cmd.Process.Pid
	go func() {
		waitErr := cmd.Wait()
		_ = out.Close()
		if waitErr != nil {
			l.logger.Warn("scrape worker exited", "pid", pid, "error", waitErr)
			return
		}
		l.logger.Info("scrape worker exited", "pid", pid)
	}()

	l.logger.InfoContext(ctx, "scrape worker spawned", "pid", pid, "binary", l.binary, "log", logPath)
	return pid, nil
}

// Prober answers liveness questions with Alive.
type Prober struct{}

func (Prober) Alive(pid int) bool {
	return Alive(pid)
}
