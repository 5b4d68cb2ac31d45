package tz

import (
	"errors"
	"testing"
	"time"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"England":          "Europe/London",
		"  spain ":         "Europe/Madrid",
		"United States":    "America/New_York",
		"BRAZIL":           "America/Sao_Paulo",
		"Northern Ireland": "Europe/London",
	}
	for country, want := range cases {
		got, err := Resolve(country)
		if err != nil {
			t.Fatalf("resolve %q: %v", country, err)
		}
		if got != want {
			t.Fatalf("unexpected zone for %q: got=%s want=%s", country, got, want)
		}
	}
}

func TestResolve_Unknown(t *testing.T) {
	t.Parallel()

	for _, country := range []string{"", "Atlantis"} {
		if _, err := Resolve(country); !errors.Is(err, ErrUnknownCountry) {
			t.Fatalf("expected ErrUnknownCountry for %q, got %v", country, err)
		}
	}
}

func TestEveryZoneLoads(t *testing.T) {
	t.Parallel()

	for country, zone := range countryZones {
		if _, err := time.LoadLocation(zone); err != nil {
			t.Fatalf("zone %s for %s does not load: %v", zone, country, err)
		}
	}
}

func TestNaiveUTC(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC).UnixMilli()
	for _, clock := range []string{"19:00", "19:00:00", "19:00:00+01:00", "19:00:00Z"} {
		got, err := NaiveUTC("2024-05-01", clock)
		if err != nil {
			t.Fatalf("naive utc %q: %v", clock, err)
		}
		if got != want {
			t.Fatalf("unexpected naive timestamp for %q: got=%d want=%d", clock, got, want)
		}
	}
}

func TestZonedTimestamp(t *testing.T) {
	t.Parallel()

	// London is on BST (UTC+1) in May.
	got, err := ZonedTimestamp("2024-05-01", "19:00:00", "Europe/London")
	if err != nil {
		t.Fatalf("zoned timestamp: %v", err)
	}
	want := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC).UnixMilli()
	if got != want {
		t.Fatalf("unexpected zoned timestamp: got=%d want=%d", got, want)
	}

	got, err = ZonedTimestamp("2024-01-15", "20:30", "Europe/Madrid")
	if err != nil {
		t.Fatalf("zoned timestamp winter: %v", err)
	}
	want = time.Date(2024, 1, 15, 19, 30, 0, 0, time.UTC).UnixMilli()
	if got != want {
		t.Fatalf("unexpected winter timestamp: got=%d want=%d", got, want)
	}
}

func TestZonedTimestamp_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := ZonedTimestamp("2024-02-30", "10:00", "Europe/London"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := ZonedTimestamp("2024-02-10", "25:00", "Europe/London"); !errors.Is(err, ErrInvalidClock) {
		t.Fatalf("expected ErrInvalidClock, got %v", err)
	}
	if _, err := ZonedTimestamp("2024-02-10", "", "Europe/London"); !errors.Is(err, ErrInvalidClock) {
		t.Fatalf("expected ErrInvalidClock for empty clock, got %v", err)
	}
	if _, err := ZonedTimestamp("2024-02-10", "10:00", "Mars/Olympus"); err == nil {
		t.Fatalf("expected error for unknown zone")
	}
}

func TestFixedOffsetTimestamp(t *testing.T) {
	t.Parallel()

	got, err := FixedOffsetTimestamp("2024-05-01", "12:00", -120)
	if err != nil {
		t.Fatalf("fixed offset timestamp: %v", err)
	}
	want := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC).UnixMilli()
	if got != want {
		t.Fatalf("unexpected fixed offset timestamp: got=%d want=%d", got, want)
	}
}
