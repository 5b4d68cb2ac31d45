package match

import "time"

// DefaultDuration is the assumed match length in minutes.
const DefaultDuration = 120

// Match is a row in the public schedule.
type Match struct {
	ID            string
	Slug          string
	League        string
	LeagueSlug    string
	LeagueImage   string
	LeagueCountry string
	LeagueID      string
	Sport         string
	SportSlug     string
	Team1         string
	Team1Image    string
	Team2         string
	Team2Image    string
	Venue         string
	Timestamp     int64
	Duration      int
	ExternalID    string
}

// StartsAt returns the kickoff instant.
func (m Match) StartsAt() time.Time {
	return time.UnixMilli(m.Timestamp).UTC()
}

// EndsAt returns kickoff plus the configured duration.
func (m Match) EndsAt() time.Time {
	duration := m.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}
	return m.StartsAt().Add(time.Duration(duration) * time.Minute)
}

// IsExpired reports whether the match has finished by now.
func (m Match) IsExpired(now time.Time) bool {
	return m.EndsAt().Before(now)
}
