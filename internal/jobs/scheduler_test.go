package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingLiveness struct {
	calls atomic.Int32
	panic bool
}

func (c *countingLiveness) Tick(ctx context.Context) (bool, error) {
	c.calls.Add(1)
	if c.panic {
		panic("probe exploded")
	}
	if _, ok := ctx.Deadline(); !ok {
		return false, errors.New("expected task deadline")
	}
	return false, nil
}

type countingSweeper struct {
	calls atomic.Int32
}

func (c *countingSweeper) Sweep(context.Context) (int, error) {
	c.calls.Add(1)
	return 0, errors.New("database unavailable")
}

func TestNewScheduler_RegistersBothTasks(t *testing.T) {
	t.Parallel()

	scheduler, err := NewScheduler(Config{}, &countingLiveness{}, &countingSweeper{}, nil)
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}
	if got := len(scheduler.cron.Entries()); got != 2 {
		t.Fatalf("unexpected entry count: got=%d want=2", got)
	}
}

func TestScheduler_WrappedJobsRecoverAndRun(t *testing.T) {
	t.Parallel()

	liveness := &countingLiveness{panic: true}
	sweeper := &countingSweeper{}
	scheduler, err := NewScheduler(Config{}, liveness, sweeper, nil)
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}

	for _, entry := range scheduler.cron.Entries() {
		entry.WrappedJob.Run()
	}

	if liveness.calls.Load() != 1 || sweeper.calls.Load() != 1 {
		t.Fatalf("unexpected calls: liveness=%d sweeper=%d", liveness.calls.Load(), sweeper.calls.Load())
	}
}

func TestScheduler_StartAndStop(t *testing.T) {
	t.Parallel()

	liveness := &countingLiveness{}
	scheduler, err := NewScheduler(Config{LivenessInterval: time.Second, ExpiryInterval: time.Hour}, liveness, &countingSweeper{}, nil)
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}

	scheduler.Start(context.Background())

	deadline := time.Now().Add(5 * time.Second)
	for liveness.calls.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("liveness task never ran")
		}
		time.Sleep(50 * time.Millisecond)
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := scheduler.Stop(stopCtx); err != nil {
		t.Fatalf("stop scheduler: %v", err)
	}
}
