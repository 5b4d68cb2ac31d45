package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"github.com/riskibarqy/matchboard/internal/domain/match"
	idgen "github.com/riskibarqy/matchboard/internal/platform/id"
	"github.com/riskibarqy/matchboard/internal/platform/logging"
	"github.com/riskibarqy/matchboard/internal/platform/tz"
)

type ManualMatchInput struct {
	League        string `json:"league" validate:"required"`
	LeagueImage   string `json:"league_image"`
	LeagueCountry string `json:"league_country"`
	Sport         string `json:"sport" validate:"required"`
	Team1         string `json:"team1" validate:"required"`
	Team1Image    string `json:"team1_image"`
	Team2         string `json:"team2"`
	Team2Image    string `json:"team2_image"`
	Venue         string `json:"venue"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string `json:"time" validate:"required"`
	OffsetMinutes int    `json:"offset_minutes" validate:"gte=-840,lte=840"`
	Duration      int    `json:"duration" validate:"gte=0,lte=1440"`
}

// ScheduleService is the admin surface over the authoritative match store.
type ScheduleService struct {
	repo     match.Repository
	ids      idgen.Generator
	validate *validator.Validate
	logger   *logging.Logger
}

func NewScheduleService(repo match.Repository, ids idgen.Generator, logger *logging.Logger) *ScheduleService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScheduleService{repo: repo, ids: ids, validate: validator.New(), logger: logger}
}

func (s *ScheduleService) ListSchedule(ctx context.Context) ([]match.Match, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

func (s *ScheduleService) DeleteMatch(ctx context.Context, matchID string) error {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if err := s.repo.DeleteWithLinks(ctx, matchID); err != nil {
		return fmt.Errorf("delete match id=%s: %w", matchID, err)
	}
	return nil
}

func (s *ScheduleService) DeleteMatches(ctx context.Context, matchIDs []string) error {
	ids := make([]string, 0, len(matchIDs))
	for _, id := range matchIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return fmt.Errorf("%w: at least one match id is required", ErrInvalidInput)
	}
	if err := s.repo.DeleteManyWithLinks(ctx, ids); err != nil {
		return fmt.Errorf("delete matches: %w", err)
	}
	return nil
}

// AddManualMatch stores an operator-entered match. The kickoff is the literal
// date and time shifted by OffsetMinutes.
func (s *ScheduleService) AddManualMatch(ctx context.Context, input ManualMatchInput) (match.Match, error) {
	if err := s.validate.StructCtx(ctx, input); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	timestamp, err := tz.FixedOffsetTimestamp(input.Date, input.Time, input.OffsetMinutes)
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	matchID, err := s.ids.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	duration := input.Duration
	if duration == 0 {
		duration = match.DefaultDuration
	}

	item := match.Match{
		ID:            matchID,
		Slug:          matchSlug(matchID, input.League, input.Team1, input.Team2),
		League:        input.League,
		LeagueSlug:    slug.Make(input.League),
		LeagueImage:   input.LeagueImage,
		LeagueCountry: input.LeagueCountry,
		Sport:         input.Sport,
		SportSlug:     slug.Make(input.Sport),
		Team1:         input.Team1,
		Team1Image:    input.Team1Image,
		Team2:         input.Team2,
		Team2Image:    input.Team2Image,
		Venue:         input.Venue,
		Timestamp:     timestamp,
		Duration:      duration,
	}
	if err := s.repo.InsertMany(ctx, []match.Match{item}); err != nil {
		return match.Match{}, fmt.Errorf("insert manual match: %w", err)
	}

	s.logger.InfoContext(ctx, "manual match added", "match_id", item.ID, "league", item.League)
	return item, nil
}
