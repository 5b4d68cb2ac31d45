package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchboard/internal/domain/scrape"
	"github.com/riskibarqy/matchboard/internal/platform/logging"
)

// ProcessProber reports whether a process id still refers to a live process.
type ProcessProber interface {
	Alive(pid int) bool
}

// LivenessMonitor resets a running status whose worker process has died.
type LivenessMonitor struct {
	store  scrape.Store
	prober ProcessProber
	logger *logging.Logger
}

func NewLivenessMonitor(store scrape.Store, prober ProcessProber, logger *logging.Logger) *LivenessMonitor {
	if logger == nil {
		logger = logging.Default()
	}
	return &LivenessMonitor{store: store, prober: prober, logger: logger}
}

// Tick runs one check and reports whether the status was reset to idle.
func (m *LivenessMonitor) Tick(ctx context.Context) (bool, error) {
	status, err := m.store.ReadRunStatus(ctx)
	if err != nil {
		return false, fmt.Errorf("read run status: %w", err)
	}
	if !status.IsRunning() || status.WorkerPID == nil {
		return false, nil
	}
	if m.prober.Alive(*status.WorkerPID) {
		return false, nil
	}

	// The worker may have written its terminal status and exited while the
	// probe ran. Only reset the record that was actually probed.
	pid := *status.WorkerPID
	current, err := m.store.ReadRunStatus(ctx)
	if err != nil {
		return false, fmt.Errorf("re-read run status: %w", err)
	}
	if !current.IsRunning() || current.WorkerPID == nil || *current.WorkerPID != pid {
		return false, nil
	}

	current.Status = scrape.StatusIdle
	if err := m.store.WriteRunStatus(ctx, current); err != nil {
		return false, fmt.Errorf("write run status: %w", err)
	}

	m.logger.WarnContext(ctx, "scrape worker gone without terminal status, reset to idle", "pid", pid)
	return true, nil
}
