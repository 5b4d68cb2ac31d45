// Package jobs runs the periodic maintenance tasks of the API process.
package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/matchboard/internal/platform/logging"
	"github.com/robfig/cron/v3"
)

// LivenessChecker resets a running status whose worker died.
type LivenessChecker interface {
	Tick(ctx context.Context) (bool, error)
}

// Sweeper removes finished matches.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

type Config struct {
	LivenessInterval time.Duration
	ExpiryInterval   time.Duration
	// RunTimeout bounds a single task run.
	RunTimeout time.Duration
}

type Scheduler struct {
	cron       *cron.Cron
	liveness   LivenessChecker
	sweeper    Sweeper
	runTimeout time.Duration
	logger     *logging.Logger

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

func NewScheduler(cfg Config, liveness LivenessChecker, sweeper Sweeper, logger *logging.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.LivenessInterval <= 0 {
		cfg.LivenessInterval = 5 * time.Second
	}
	if cfg.ExpiryInterval <= 0 {
		cfg.ExpiryInterval = time.Minute
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = 2 * time.Minute
	}

	cronLog := cronLogger{logger: logger}
	s := &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLog),
			cron.SkipIfStillRunning(cronLog),
		)),
		liveness:   liveness,
		sweeper:    sweeper,
		runTimeout: cfg.RunTimeout,
		logger:     logger,
		ctx:        context.Background(),
	}

	if _, err := s.cron.AddFunc("@every "+cfg.LivenessInterval.String(), s.checkLiveness); err != nil {
		return nil, fmt.Errorf("schedule liveness monitor: %w", err)
	}
	if _, err := s.cron.AddFunc("@every "+cfg.ExpiryInterval.String(), s.sweepExpired); err != nil {
		return nil, fmt.Errorf("schedule expiry sweeper: %w", err)
	}

	return s, nil
}

// Start runs the schedule in the background. Task contexts derive from ctx
// without its cancellation; Stop cancels them.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))
	s.mu.Unlock()

	s.cron.Start()
	s.logger.Info("periodic jobs started", "entries", len(s.cron.Entries()))
}

// Stop halts the schedule and waits for running tasks until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()

	defer func() {
		s.mu.Lock()
		if s.cancel != nil {
			s.cancel()
		}
		s.mu.Unlock()
	}()

	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for periodic jobs: %w", ctx.Err())
	}
}

func (s *Scheduler) taskContext() (context.Context, context.CancelFunc) {
	s.mu.Lock()
	base := s.ctx
	s.mu.Unlock()
	return context.WithTimeout(base, s.runTimeout)
}

func (s *Scheduler) checkLiveness() {
	ctx, cancel := s.taskContext()
	defer cancel()

	if _, err := s.liveness.Tick(ctx); err != nil {
		s.logger.WarnContext(ctx, "liveness check failed", "error", err)
	}
}

func (s *Scheduler) sweepExpired() {
	ctx, cancel := s.taskContext()
	defer cancel()

	if _, err := s.sweeper.Sweep(ctx); err != nil {
		s.logger.WarnContext(ctx, "expiry sweep failed", "error", err)
	}
}

type cronLogger struct {
	logger *logging.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
