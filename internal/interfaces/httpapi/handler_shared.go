package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/matchboard/internal/domain/match"
	"github.com/riskibarqy/matchboard/internal/platform/logging"
	"github.com/riskibarqy/matchboard/internal/usecase"
)

type Handler struct {
	scrapeOrchestrator *usecase.ScrapeOrchestrator
	matchAcceptance    *usecase.MatchAcceptanceService
	scheduleService    *usecase.ScheduleService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	scrapeOrchestrator *usecase.ScrapeOrchestrator,
	matchAcceptance *usecase.MatchAcceptanceService,
	scheduleService *usecase.ScheduleService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		scrapeOrchestrator: scrapeOrchestrator,
		matchAcceptance:    matchAcceptance,
		scheduleService:    scheduleService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeJSON rejects unknown fields. An empty body decodes as the zero value
// when allowEmpty is set.
func decodeJSON(r *http.Request, dst any, allowEmpty bool) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type dateSelectionRequest struct {
	Type  string `json:"type" validate:"required,oneof=single interval"`
	Date  string `json:"date" validate:"required_if=Type single"`
	Start string `json:"start" validate:"required_if=Type interval"`
	End   string `json:"end" validate:"required_if=Type interval"`
}

type submitRunConfigRequest struct {
	Sports []string               `json:"sports" validate:"required,min=1,dive,required"`
	Dates  []dateSelectionRequest `json:"dates" validate:"required,min=1,dive"`
}

type acceptMatchesRequest struct {
	SelectedLeagueIDs       []string          `json:"selectedLeagueIds" validate:"required"`
	SelectedMatchIDs        []string          `json:"selectedMatchIds" validate:"required"`
	SelectedMatchStampTypes map[string]string `json:"selectedMatchStampTypes"`
	SelectedMatchCountries  map[string]bool   `json:"selectedMatchCountries"`
}

type manualMatchRequest struct {
	League        string `json:"league" validate:"required,max=200"`
	LeagueImage   string `json:"league_image" validate:"omitempty,url"`
	LeagueCountry string `json:"league_country"`
	Sport         string `json:"sport" validate:"required"`
	Team1         string `json:"team1" validate:"required,max=200"`
	Team1Image    string `json:"team1_image" validate:"omitempty,url"`
	Team2         string `json:"team2" validate:"max=200"`
	Team2Image    string `json:"team2_image" validate:"omitempty,url"`
	Venue         string `json:"venue"`
	Date          string `json:"date" validate:"required"`
	Time          string `json:"time" validate:"required"`
	OffsetMinutes int    `json:"offset_minutes"`
	Duration      int    `json:"duration"`
}

type deleteMatchesRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

type matchDTO struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	League        string `json:"league"`
	LeagueSlug    string `json:"league_slug"`
	LeagueImage   string `json:"league_image"`
	LeagueCountry string `json:"league_country,omitempty"`
	LeagueID      string `json:"league_id,omitempty"`
	Sport         string `json:"sport"`
	SportSlug     string `json:"sport_slug"`
	Team1         string `json:"team1"`
	Team1Image    string `json:"team1_image"`
	Team2         string `json:"team2"`
	Team2Image    string `json:"team2_image"`
	Venue         string `json:"venue"`
	Timestamp     int64  `json:"timestamp"`
	Duration      int    `json:"duration"`
	ExternalID    string `json:"external_id,omitempty"`
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:            v.ID,
		Slug:          v.Slug,
		League:        v.League,
		LeagueSlug:    v.LeagueSlug,
		LeagueImage:   v.LeagueImage,
		LeagueCountry: v.LeagueCountry,
		LeagueID:      v.LeagueID,
		Sport:         v.Sport,
		SportSlug:     v.SportSlug,
		Team1:         v.Team1,
		Team1Image:    v.Team1Image,
		Team2:         v.Team2,
		Team2Image:    v.Team2Image,
		Venue:         v.Venue,
		Timestamp:     v.Timestamp,
		Duration:      v.Duration,
		ExternalID:    v.ExternalID,
	}
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	return out
}
