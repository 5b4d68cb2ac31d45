package scrape

import (
	"testing"
	"time"
)

func TestRunStatus_HoldsLease(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-2 * time.Minute).UnixMilli()
	stale := now.Add(-11 * time.Minute).UnixMilli()

	cases := []struct {
		name   string
		status RunStatus
		want   bool
	}{
		{name: "idle", status: RunStatus{Status: StatusIdle, LastRunStartedAt: &recent}, want: false},
		{name: "running recent", status: RunStatus{Status: StatusRunning, LastRunStartedAt: &recent}, want: true},
		{name: "running stale", status: RunStatus{Status: StatusRunning, LastRunStartedAt: &stale}, want: false},
		{name: "running without start", status: RunStatus{Status: StatusRunning}, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.status.HoldsLease(now, 10*time.Minute); got != tc.want {
				t.Fatalf("unexpected lease: got=%v want=%v", got, tc.want)
			}
		})
	}
}
