package thesportsdb

type eventsEnvelope struct {
	Events []eventItem `json:"events"`
}

type eventItem struct {
	ID            string  `json:"idEvent"`
	LeagueID      string  `json:"idLeague"`
	League        string  `json:"strLeague"`
	LeagueBadge   *string `json:"strLeagueBadge"`
	Title         *string `json:"strEvent"`
	HomeTeam      *string `json:"strHomeTeam"`
	HomeTeamBadge *string `json:"strHomeTeamBadge"`
	AwayTeam      *string `json:"strAwayTeam"`
	AwayTeamBadge *string `json:"strAwayTeamBadge"`
	Date          *string `json:"dateEvent"`
	Time          *string `json:"strTime"`
	Venue         *string `json:"strVenue"`
	Country       *string `json:"strCountry"`
}

type leaguesEnvelope struct {
	Leagues []leagueItem `json:"leagues"`
}

type leagueItem struct {
	ID      string  `json:"idLeague"`
	Country *string `json:"strCountry"`
}

type sportsEnvelope struct {
	Sports []sportItem `json:"sports"`
}

type sportItem struct {
	Name string `json:"strSport"`
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
