package scrape

import "context"

// Store persists the documents shared between the API process and the worker.
// Each write replaces the whole document.
type Store interface {
	ReadRunConfig(ctx context.Context) (RunConfig, error)
	WriteRunConfig(ctx context.Context, cfg RunConfig) error
	ReadRunStatus(ctx context.Context) (RunStatus, error)
	WriteRunStatus(ctx context.Context, status RunStatus) error
	ReadStagedMatches(ctx context.Context) ([]StagedMatch, error)
	WriteStagedMatches(ctx context.Context, items []StagedMatch) error
	ReadLeagueCountries(ctx context.Context) (LeagueCountries, error)
	WriteLeagueCountries(ctx context.Context, countries LeagueCountries) error
}
