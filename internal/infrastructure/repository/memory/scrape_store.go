package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/matchboard/internal/domain/scrape"
)

// ScrapeStore keeps scrape state in process memory. It backs tests and
// single-process development setups.
type ScrapeStore struct {
	mu            sync.RWMutex
	config        scrape.RunConfig
	status        scrape.RunStatus
	staged        []scrape.StagedMatch
	countries     scrape.LeagueCountries
	stagedWrites  int
	statusHistory []scrape.RunStatus
}

func NewScrapeStore() *ScrapeStore {
	return &ScrapeStore{
		status:    scrape.IdleStatus(),
		staged:    []scrape.StagedMatch{},
		countries: scrape.LeagueCountries{},
	}
}

func (s *ScrapeStore) ReadRunConfig(_ context.Context) (scrape.RunConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return scrape.RunConfig{
		Sports: append([]string(nil), s.config.Sports...),
		Dates:  append([]string(nil), s.config.Dates...),
	}, nil
}

func (s *ScrapeStore) WriteRunConfig(_ context.Context, cfg scrape.RunConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config = scrape.RunConfig{
		Sports: append([]string(nil), cfg.Sports...),
		Dates:  append([]string(nil), cfg.Dates...),
	}
	return nil
}

func (s *ScrapeStore) ReadRunStatus(_ context.Context) (scrape.RunStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.status, nil
}

func (s *ScrapeStore) WriteRunStatus(_ context.Context, status scrape.RunStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = status
	s.statusHistory = append(s.statusHistory, status)
	return nil
}

func (s *ScrapeStore) ReadStagedMatches(_ context.Context) ([]scrape.StagedMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]scrape.StagedMatch, 0, len(s.staged))
	out = append(out, s.staged...)
	return out, nil
}

func (s *ScrapeStore) WriteStagedMatches(_ context.Context, items []scrape.StagedMatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.staged = append(make([]scrape.StagedMatch, 0, len(items)), items...)
	s.stagedWrites++
	return nil
}

func (s *ScrapeStore) ReadLeagueCountries(_ context.Context) (scrape.LeagueCountries, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(scrape.LeagueCountries, len(s.countries))
	for k, v := range s.countries {
		out[k] = v
	}
	return out, nil
}

func (s *ScrapeStore) WriteLeagueCountries(_ context.Context, countries scrape.LeagueCountries) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.countries = make(scrape.LeagueCountries, len(countries))
	for k, v := range countries {
		s.countries[k] = v
	}
	return nil
}

// StagedWrites counts WriteStagedMatches calls.
func (s *ScrapeStore) StagedWrites() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.stagedWrites
}

// StatusHistory returns every status written so far, oldest first.
func (s *ScrapeStore) StatusHistory() []scrape.RunStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]scrape.RunStatus(nil), s.statusHistory...)
}
