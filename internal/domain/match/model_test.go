package match

import (
	"testing"
	"time"
)

func TestMatch_EndsAtAndIsExpired(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		duration int
		now      time.Time
		wantEnd  time.Time
		expired  bool
	}{
		{name: "explicit duration running", duration: 90, now: kickoff.Add(89 * time.Minute), wantEnd: kickoff.Add(90 * time.Minute)},
		{name: "explicit duration finished", duration: 90, now: kickoff.Add(91 * time.Minute), wantEnd: kickoff.Add(90 * time.Minute), expired: true},
		{name: "default duration", now: kickoff.Add(119 * time.Minute), wantEnd: kickoff.Add(120 * time.Minute)},
		{name: "exact end is not expired", duration: 60, now: kickoff.Add(time.Hour), wantEnd: kickoff.Add(time.Hour)},
	}

	for _, tc := range tests {
		item := Match{Timestamp: kickoff.UnixMilli(), Duration: tc.duration}
		if !item.EndsAt().Equal(tc.wantEnd) {
			t.Fatalf("%s: unexpected end: got=%s want=%s", tc.name, item.EndsAt(), tc.wantEnd)
		}
		if got := item.IsExpired(tc.now); got != tc.expired {
			t.Fatalf("%s: unexpected expiry: got=%v want=%v", tc.name, got, tc.expired)
		}
	}
}
