// Package tz resolves country names to IANA zones and turns provider date/time
// literals into epoch milliseconds.
package tz

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

var (
	ErrUnknownCountry = errors.New("unknown country")
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidClock   = errors.New("invalid time")
)

const dateLayout = "2006-01-02"

// Resolve returns the IANA zone for a country name. Matching ignores case and
// surrounding whitespace.
func Resolve(country string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(country))
	if key == "" {
		return "", fmt.Errorf("%w: empty name", ErrUnknownCountry)
	}
	zone, ok := countryZones[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCountry, country)
	}
	return zone, nil
}

// ZonedTimestamp interprets date (YYYY-MM-DD) and clock (HH:MM[:SS]) as wall
// time in zone and returns the instant in milliseconds since the epoch.
// Any "+hh:mm" or "Z" suffix on the clock is ignored.
func ZonedTimestamp(date, clock, zone string) (int64, error) {
	loc, err := time.LoadLocation(strings.TrimSpace(zone))
	if err != nil {
		return 0, fmt.Errorf("load location %q: %w", zone, err)
	}
	return wallTime(date, clock, loc)
}

// NaiveUTC treats the literal date and clock as UTC.
func NaiveUTC(date, clock string) (int64, error) {
	return wallTime(date, clock, time.UTC)
}

// FixedOffsetTimestamp is NaiveUTC shifted by offsetMinutes. It is used for
// manually entered schedule rows where the operator supplies the offset.
func FixedOffsetTimestamp(date, clock string, offsetMinutes int) (int64, error) {
	base, err := NaiveUTC(date, clock)
	if err != nil {
		return 0, err
	}
	return base + int64(offsetMinutes)*int64(time.Minute/time.Millisecond), nil
}

func wallTime(date, clock string, loc *time.Location) (int64, error) {
	day, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	hour, minute, second, err := parseClock(clock)
	if err != nil {
		return 0, err
	}

	at := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, second, 0, loc)
	return at.UnixMilli(), nil
}

func parseClock(raw string) (int, int, int, error) {
	value := strings.TrimSpace(raw)
	if idx := strings.IndexByte(value, '+'); idx >= 0 {
		value = value[:idx]
	}
	value = strings.TrimSuffix(value, "Z")

	parts := strings.Split(value, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, raw)
	}

	limits := []int{23, 59, 59}
	out := [3]int{}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > limits[i] {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, raw)
		}
		out[i] = n
	}
	return out[0], out[1], out[2], nil
}
