package scrape

import "time"

const (
	StatusIdle     = "idle"
	StatusRunning  = "running"
	StatusFinished = "finished"
	StatusErrored  = "errored"
)

// DateLayout is the calendar-date format used by run configs and the provider.
const DateLayout = "2006-01-02"

// RunConfig is the input of a single sweep.
type RunConfig struct {
	Sports []string `json:"sports" validate:"required,min=1,dive,required"`
	Dates  []string `json:"dates" validate:"required,min=1,dive,required,datetime=2006-01-02"`
}

// RunStatus is the persisted state of the most recent sweep.
// WorkerPID is only meaningful while Status is StatusRunning.
type RunStatus struct {
	Status           string  `json:"status"`
	WorkerPID        *int    `json:"pid,omitempty"`
	LastRunStartedAt *int64  `json:"lastRanAt,omitempty"`
	LastErrorMessage *string `json:"lastErrorMessage,omitempty"`
}

// IdleStatus is the status reported before any sweep ran.
func IdleStatus() RunStatus {
	return RunStatus{Status: StatusIdle}
}

func (s RunStatus) IsRunning() bool {
	return s.Status == StatusRunning
}

// HoldsLease reports whether a running sweep started within window of now.
func (s RunStatus) HoldsLease(now time.Time, window time.Duration) bool {
	if !s.IsRunning() || s.LastRunStartedAt == nil {
		return false
	}
	startedAt := time.UnixMilli(*s.LastRunStartedAt)
	return startedAt.Add(window).After(now)
}

// StagedMatch is a candidate match collected by a sweep.
type StagedMatch struct {
	ID            string  `json:"id" validate:"required"`
	Slug          string  `json:"slug"`
	League        string  `json:"league"`
	LeagueSlug    string  `json:"league_slug"`
	LeagueImage   string  `json:"league_image"`
	LeagueCountry *string `json:"league_country"`
	LeagueID      string  `json:"league_id"`
	Sport         string  `json:"sport"`
	SportSlug     string  `json:"sport_slug"`
	Team1         string  `json:"team1" validate:"required"`
	Team1Image    string  `json:"team1_image"`
	Team2         string  `json:"team2"`
	Team2Image    string  `json:"team2_image"`
	Venue         string  `json:"venue"`
	Timestamp     int64   `json:"timestamp"`
	STTimestamp   *int64  `json:"stTimestamp,omitempty"`
	LTTimestamp   *int64  `json:"ltTimestamp,omitempty"`
	TimeStr       string  `json:"timeStr"`
	DateStr       string  `json:"dateStr"`
	Duration      int     `json:"duration" validate:"gte=0"`
	ExternalID    string  `json:"external_id"`
}

// Country returns the resolved league country or an empty string.
func (m StagedMatch) Country() string {
	if m.LeagueCountry == nil {
		return ""
	}
	return *m.LeagueCountry
}

// ProviderEvent is one event returned by the schedule provider, with optional
// fields flattened to "".
type ProviderEvent struct {
	ID            string
	LeagueID      string
	League        string
	LeagueBadge   string
	Title         string
	HomeTeam      string
	HomeTeamBadge string
	AwayTeam      string
	AwayTeamBadge string
	Date          string
	Time          string
	Venue         string
	Country       string
}

// LeagueCountries maps provider league ids to country names.
type LeagueCountries map[string]string
