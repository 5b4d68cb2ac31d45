package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/matchboard/internal/domain/scrape"
	"github.com/riskibarqy/matchboard/internal/platform/logging"
)

const (
	DateSelectionSingle   = "single"
	DateSelectionInterval = "interval"

	maxIntervalDays = 366
)

// WorkerLauncher starts a detached scrape worker and returns its process id.
type WorkerLauncher interface {
	Spawn(ctx context.Context) (int, error)
}

// SportsCatalog lists the sports the schedule provider can be queried for.
type SportsCatalog interface {
	ListSports(ctx context.Context) ([]string, error)
}

type DateSelection struct {
	Type  string `json:"type" validate:"required,oneof=single interval"`
	Date  string `json:"date,omitempty"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type SubmitRunConfigInput struct {
	Sports []string        `json:"sports" validate:"required,min=1,dive,required"`
	Dates  []DateSelection `json:"dates" validate:"required,min=1,dive"`
}

// ScrapePool is the operator view of the latest sweep.
type ScrapePool struct {
	Status  scrape.RunStatus     `json:"status"`
	Matches []scrape.StagedMatch `json:"matches"`
}

type ScrapeOrchestratorConfig struct {
	LeaseWindow time.Duration
}

type ScrapeOrchestrator struct {
	store       scrape.Store
	launcher    WorkerLauncher
	sports      SportsCatalog
	validate    *validator.Validate
	leaseWindow time.Duration
	logger      *logging.Logger
	now         func() time.Time
}

func NewScrapeOrchestrator(
	store scrape.Store,
	launcher WorkerLauncher,
	sports SportsCatalog,
	cfg ScrapeOrchestratorConfig,
	logger *logging.Logger,
) *ScrapeOrchestrator {
	if logger == nil {
		logger = logging.Default()
	}
	window := cfg.LeaseWindow
	if window <= 0 {
		window = 10 * time.Minute
	}

	return &ScrapeOrchestrator{
		store:       store,
		launcher:    launcher,
		sports:      sports,
		validate:    validator.New(),
		leaseWindow: window,
		logger:      logger,
		now:         time.Now,
	}
}

// SubmitRunConfig persists a new RunConfig and starts a worker for it. The
// lease check is advisory: a running status older than the lease window is
// treated as abandoned without verifying the old process is gone.
func (s *ScrapeOrchestrator) SubmitRunConfig(ctx context.Context, input SubmitRunConfigInput) (scrape.RunStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScrapeOrchestrator.SubmitRunConfig")
	defer span.End()

	if err := s.validate.StructCtx(ctx, input); err != nil {
		return scrape.RunStatus{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	sports := normalizeSports(input.Sports)
	if len(sports) == 0 {
		return scrape.RunStatus{}, fmt.Errorf("%w: no sports selected", ErrInvalidInput)
	}
	dates, err := ExpandDateSelections(input.Dates)
	if err != nil {
		return scrape.RunStatus{}, err
	}

	current, err := s.store.ReadRunStatus(ctx)
	if err != nil {
		return scrape.RunStatus{}, fmt.Errorf("read run status: %w", err)
	}
	now := s.now()
	if current.HoldsLease(now, s.leaseWindow) {
		return scrape.RunStatus{}, fmt.Errorf("%w: started at %d", ErrAlreadyRunning, *current.LastRunStartedAt)
	}

	if err := s.store.WriteRunConfig(ctx, scrape.RunConfig{Sports: sports, Dates: dates}); err != nil {
		return scrape.RunStatus{}, fmt.Errorf("write run config: %w", err)
	}

	startedAt := now.UnixMilli()
	running := scrape.RunStatus{Status: scrape.StatusRunning, LastRunStartedAt: &startedAt}
	if err := s.store.WriteRunStatus(ctx, running); err != nil {
		return scrape.RunStatus{}, fmt.Errorf("write run status: %w", err)
	}

	pid, err := s.launcher.Spawn(ctx)
	if err != nil {
		message := fmt.Sprintf("spawn scrape worker: %v", err)
		failed := scrape.RunStatus{Status: scrape.StatusErrored, LastRunStartedAt: &startedAt, LastErrorMessage: &message}
		if writeErr := s.store.WriteRunStatus(ctx, failed); writeErr != nil {
			s.logger.ErrorContext(ctx, "write failed run status", "error", writeErr)
		}
		return scrape.RunStatus{}, fmt.Errorf("%w: %s", ErrDependencyUnavailable, message)
	}

	// The worker may already have written its terminal status.
	latest, err := s.store.ReadRunStatus(ctx)
	if err != nil {
		return scrape.RunStatus{}, fmt.Errorf("read run status: %w", err)
	}
	if latest.IsRunning() && latest.LastRunStartedAt != nil && *latest.LastRunStartedAt == startedAt {
		latest.WorkerPID = &pid
		if err := s.store.WriteRunStatus(ctx, latest); err != nil {
			return scrape.RunStatus{}, fmt.Errorf("write run status: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "scrape worker started",
		"pid", pid,
		"sports", len(sports),
		"dates", len(dates),
	)
	return latest, nil
}

func (s *ScrapeOrchestrator) GetRunStatus(ctx context.Context) (scrape.RunStatus, error) {
	status, err := s.store.ReadRunStatus(ctx)
	if err != nil {
		return scrape.RunStatus{}, fmt.Errorf("read run status: %w", err)
	}
	return status, nil
}

func (s *ScrapeOrchestrator) GetStagedMatches(ctx context.Context) ([]scrape.StagedMatch, error) {
	items, err := s.store.ReadStagedMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("read staged matches: %w", err)
	}
	return items, nil
}

func (s *ScrapeOrchestrator) GetPool(ctx context.Context) (ScrapePool, error) {
	status, err := s.GetRunStatus(ctx)
	if err != nil {
		return ScrapePool{}, err
	}
	items, err := s.GetStagedMatches(ctx)
	if err != nil {
		return ScrapePool{}, err
	}
	return ScrapePool{Status: status, Matches: items}, nil
}

// PreviousConfig returns the last submitted RunConfig, empty if none.
func (s *ScrapeOrchestrator) PreviousConfig(ctx context.Context) (scrape.RunConfig, error) {
	cfg, err := s.store.ReadRunConfig(ctx)
	if err != nil {
		return scrape.RunConfig{}, fmt.Errorf("read run config: %w", err)
	}
	if cfg.Sports == nil {
		cfg.Sports = []string{}
	}
	if cfg.Dates == nil {
		cfg.Dates = []string{}
	}
	return cfg, nil
}

func (s *ScrapeOrchestrator) ListSports(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScrapeOrchestrator.ListSports")
	defer span.End()

	sports, err := s.sports.ListSports(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list sports: %v", ErrDependencyUnavailable, err)
	}
	return sports, nil
}

// ExpandDateSelections turns single dates and inclusive intervals into a
// de-duplicated list that keeps first-seen order.
func ExpandDateSelections(selections []DateSelection) ([]string, error) {
	out := make([]string, 0, len(selections))
	seen := make(map[string]struct{}, len(selections))
	add := func(day time.Time) {
		value := day.Format(scrape.DateLayout)
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}

	for idx, selection := range selections {
		switch strings.TrimSpace(selection.Type) {
		case DateSelectionSingle:
			day, err := parseCalendarDate(selection.Date)
			if err != nil {
				return nil, fmt.Errorf("%w: dates[%d].date: %v", ErrInvalidInput, idx, err)
			}
			add(day)
		case DateSelectionInterval:
			start, err := parseCalendarDate(selection.Start)
			if err != nil {
				return nil, fmt.Errorf("%w: dates[%d].start: %v", ErrInvalidInput, idx, err)
			}
			end, err := parseCalendarDate(selection.End)
			if err != nil {
				return nil, fmt.Errorf("%w: dates[%d].end: %v", ErrInvalidInput, idx, err)
			}
			if start.After(end) {
				return nil, fmt.Errorf("%w: dates[%d]: start %s is after end %s", ErrInvalidInput, idx, selection.Start, selection.End)
			}
			if end.Sub(start) > maxIntervalDays*24*time.Hour {
				return nil, fmt.Errorf("%w: dates[%d]: interval longer than %d days", ErrInvalidInput, idx, maxIntervalDays)
			}
			for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
				add(day)
			}
		default:
			return nil, fmt.Errorf("%w: dates[%d]: unknown selection type %q", ErrInvalidInput, idx, selection.Type)
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no dates selected", ErrInvalidInput)
	}
	return out, nil
}

func parseCalendarDate(value string) (time.Time, error) {
	day, err := time.Parse(scrape.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD, got %q", value)
	}
	return day, nil
}

func normalizeSports(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		sport := strings.TrimSpace(value)
		if sport == "" {
			continue
		}
		if _, ok := seen[sport]; ok {
			continue
		}
		seen[sport] = struct{}{}
		out = append(out, sport)
	}
	return out
}
