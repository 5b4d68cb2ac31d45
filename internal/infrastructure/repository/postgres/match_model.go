package postgres

import "database/sql"

type matchTableModel struct {
	ID            string         `db:"id"`
	Slug          string         `db:"slug"`
	League        string         `db:"league"`
	LeagueSlug    string         `db:"league_slug"`
	LeagueImage   string         `db:"league_image"`
	LeagueCountry sql.NullString `db:"league_country"`
	LeagueID      string         `db:"league_id"`
	Sport         string         `db:"sport"`
	SportSlug     string         `db:"sport_slug"`
	Team1         string         `db:"team1"`
	Team1Image    string         `db:"team1_image"`
	Team2         string         `db:"team2"`
	Team2Image    string         `db:"team2_image"`
	Venue         string         `db:"venue"`
	Timestamp     int64          `db:"timestamp"`
	Duration      int            `db:"duration"`
	ExternalID    sql.NullString `db:"external_id"`
}

type matchInsertModel struct {
	ID            string  `db:"id"`
	Slug          string  `db:"slug"`
	League        string  `db:"league"`
	LeagueSlug    string  `db:"league_slug"`
	LeagueImage   string  `db:"league_image"`
	LeagueCountry *string `db:"league_country"`
	LeagueID      string  `db:"league_id"`
	Sport         string  `db:"sport"`
	SportSlug     string  `db:"sport_slug"`
	Team1         string  `db:"team1"`
	Team1Image    string  `db:"team1_image"`
	Team2         string  `db:"team2"`
	Team2Image    string  `db:"team2_image"`
	Venue         string  `db:"venue"`
	Timestamp     int64   `db:"timestamp"`
	Duration      int     `db:"duration"`
	ExternalID    *string `db:"external_id"`
}

var matchColumns = []string{
	"id",
	"slug",
	"league",
	"league_slug",
	"league_image",
	"league_country",
	"league_id",
	"sport",
	"sport_slug",
	"team1",
	"team1_image",
	"team2",
	"team2_image",
	"venue",
	"timestamp",
	"duration",
	"external_id",
}
