package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/matchboard/internal/domain/match"
	"github.com/riskibarqy/matchboard/internal/domain/scrape"
	"github.com/riskibarqy/matchboard/internal/platform/logging"
)

const (
	TimestampChoiceLocal    = "lt"
	TimestampChoiceStandard = "st"
)

type AcceptMatchesInput struct {
	LeagueIDs []string `json:"selectedLeagueIds" validate:"required,dive,required"`
	MatchIDs  []string `json:"selectedMatchIds" validate:"required,dive,required"`
	// TimestampChoice maps match id to "lt" or "st". Missing entries mean "st".
	TimestampChoice map[string]string `json:"selectedMatchStampTypes" validate:"omitempty,dive,oneof=lt st"`
	// CountryInclusion maps country name to an include flag. Missing entries mean include.
	CountryInclusion map[string]bool `json:"selectedMatchCountries"`
}

type AcceptMatchesResult struct {
	Inserted          int `json:"inserted"`
	ExcludedByCountry int `json:"excluded_by_country"`
	NotSelected       int `json:"not_selected"`
	Duplicates        int `json:"duplicates"`
	Expired           int `json:"expired"`
}

type MatchAcceptanceService struct {
	store    scrape.Store
	repo     match.Repository
	validate *validator.Validate
	logger   *logging.Logger
	now      func() time.Time
}

func NewMatchAcceptanceService(store scrape.Store, repo match.Repository, logger *logging.Logger) *MatchAcceptanceService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchAcceptanceService{
		store:    store,
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

// AcceptMatches commits the selected staged matches in one batch and clears
// the stage. When the batch fails nothing is inserted and the stage is kept.
func (s *MatchAcceptanceService) AcceptMatches(ctx context.Context, input AcceptMatchesInput) (AcceptMatchesResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchAcceptanceService.AcceptMatches")
	defer span.End()

	if err := s.validate.StructCtx(ctx, input); err != nil {
		return AcceptMatchesResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	staged, err := s.store.ReadStagedMatches(ctx)
	if err != nil {
		return AcceptMatchesResult{}, fmt.Errorf("read staged matches: %w", err)
	}
	existing, err := s.repo.ListAll(ctx)
	if err != nil {
		return AcceptMatchesResult{}, fmt.Errorf("list matches: %w", err)
	}

	selection := newAcceptSelection(input)
	known := make(map[string]struct{}, len(existing)*2)
	for _, item := range existing {
		markKnown(known, item)
	}

	// Within one batch only a repeated provider id is a duplicate; two
	// fixtures between the same teams are distinct games.
	batchExternal := externalIDs{}
	var result AcceptMatchesResult
	now := s.now()
	accepted := make([]match.Match, 0, len(staged))
	for _, candidate := range staged {
		if selection.excludesCountry(candidate.Country()) {
			result.ExcludedByCountry++
			continue
		}
		if !selection.selected(candidate) {
			result.NotSelected++
			continue
		}

		item := toPersistedMatch(candidate, input.TimestampChoice[candidate.ID])
		if isKnown(known, item) || batchExternal.has(item.ExternalID) {
			result.Duplicates++
			continue
		}
		// Expiry is judged on the naive timestamp, before the operator's choice.
		naive := item
		naive.Timestamp = candidate.Timestamp
		if naive.IsExpired(now) {
			result.Expired++
			continue
		}

		batchExternal.add(item.ExternalID)
		accepted = append(accepted, item)
	}

	if err := s.repo.InsertMany(ctx, accepted); err != nil {
		return AcceptMatchesResult{}, fmt.Errorf("insert accepted matches: %w", err)
	}
	result.Inserted = len(accepted)

	if err := s.store.WriteStagedMatches(ctx, []scrape.StagedMatch{}); err != nil {
		return result, fmt.Errorf("clear staged matches: %w", err)
	}

	s.logger.InfoContext(ctx, "staged matches accepted",
		"inserted", result.Inserted,
		"duplicates", result.Duplicates,
		"expired", result.Expired,
		"excluded_by_country", result.ExcludedByCountry,
	)
	return result, nil
}

type acceptSelection struct {
	leagues   map[string]struct{}
	matches   map[string]struct{}
	countries map[string]bool
}

func newAcceptSelection(input AcceptMatchesInput) acceptSelection {
	out := acceptSelection{
		leagues:   make(map[string]struct{}, len(input.LeagueIDs)),
		matches:   make(map[string]struct{}, len(input.MatchIDs)),
		countries: input.CountryInclusion,
	}
	for _, id := range input.LeagueIDs {
		out.leagues[id] = struct{}{}
	}
	for _, id := range input.MatchIDs {
		out.matches[id] = struct{}{}
	}
	return out
}

func (s acceptSelection) excludesCountry(country string) bool {
	include, ok := s.countries[country]
	return ok && !include
}

func (s acceptSelection) selected(item scrape.StagedMatch) bool {
	_, leagueOK := s.leagues[item.LeagueID]
	_, matchOK := s.matches[item.ID]
	return leagueOK && matchOK
}

// resolveTimestamp picks the committed instant. Staged rows without any
// computed variant keep their naive timestamp. A missing local variant falls
// back to the standard one.
func resolveTimestamp(item scrape.StagedMatch, choice string) int64 {
	if item.STTimestamp == nil && item.LTTimestamp == nil {
		return item.Timestamp
	}
	if choice == TimestampChoiceLocal && item.LTTimestamp != nil {
		return *item.LTTimestamp
	}
	if item.STTimestamp != nil {
		return *item.STTimestamp
	}
	return item.Timestamp
}

func toPersistedMatch(item scrape.StagedMatch, choice string) match.Match {
	duration := item.Duration
	if duration <= 0 {
		duration = match.DefaultDuration
	}

	return match.Match{
		ID:            item.ID,
		Slug:          item.Slug,
		League:        item.League,
		LeagueSlug:    item.LeagueSlug,
		LeagueImage:   item.LeagueImage,
		LeagueCountry: item.Country(),
		LeagueID:      item.LeagueID,
		Sport:         item.Sport,
		SportSlug:     item.SportSlug,
		Team1:         item.Team1,
		Team1Image:    item.Team1Image,
		Team2:         item.Team2,
		Team2Image:    item.Team2Image,
		Venue:         item.Venue,
		Timestamp:     resolveTimestamp(item, choice),
		Duration:      duration,
		ExternalID:    item.ExternalID,
	}
}

func markKnown(known map[string]struct{}, item match.Match) {
	if item.ExternalID != "" {
		known["ext:"+item.ExternalID] = struct{}{}
	}
	known[teamsKey(item)] = struct{}{}
}

func isKnown(known map[string]struct{}, item match.Match) bool {
	if item.ExternalID != "" {
		if _, ok := known["ext:"+item.ExternalID]; ok {
			return true
		}
	}
	_, ok := known[teamsKey(item)]
	return ok
}

type externalIDs map[string]struct{}

func (ids externalIDs) add(id string) {
	if id != "" {
		ids[id] = struct{}{}
	}
}

func (ids externalIDs) has(id string) bool {
	_, ok := ids[id]
	return id != "" && ok
}

func teamsKey(item match.Match) string {
	return "teams:" + item.Team1 + "\x00" + item.Team2 + "\x00" + item.League
}
