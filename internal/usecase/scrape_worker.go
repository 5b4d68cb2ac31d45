package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/matchboard/internal/domain/match"
	"github.com/riskibarqy/matchboard/internal/domain/scrape"
	idgen "github.com/riskibarqy/matchboard/internal/platform/id"
	"github.com/riskibarqy/matchboard/internal/platform/logging"
	"github.com/riskibarqy/matchboard/internal/platform/tz"
)

// ScheduleProvider is the external sports schedule API.
type ScheduleProvider interface {
	EventsByDay(ctx context.Context, date, sport string) ([]scrape.ProviderEvent, error)
	// LeagueCountry returns an empty string when the league has no country.
	LeagueCountry(ctx context.Context, leagueID string) (string, error)
}

const (
	PhaseLoadingConfig        = "loading-config"
	PhaseFetchingEvents       = "fetching-events"
	PhaseBackfillingCountries = "backfilling-countries"
	PhaseComputingLocalTimes  = "computing-local-times"
	PhaseWritingOutput        = "writing-output"
)

// PhaseError names the sweep phase a fatal error escaped from.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return e.Phase + ": " + e.Err.Error()
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

type ScrapeWorkerConfig struct {
	EnrichWorkers int
}

// ScrapeWorker runs one sweep over the persisted RunConfig.
type ScrapeWorker struct {
	store         scrape.Store
	provider      ScheduleProvider
	ids           idgen.Generator
	validate      *validator.Validate
	enrichWorkers int
	logger        *logging.Logger
}

func NewScrapeWorker(
	store scrape.Store,
	provider ScheduleProvider,
	ids idgen.Generator,
	cfg ScrapeWorkerConfig,
	logger *logging.Logger,
) *ScrapeWorker {
	if logger == nil {
		logger = logging.Default()
	}
	workers := cfg.EnrichWorkers
	if workers <= 0 {
		workers = 4
	}

	return &ScrapeWorker{
		store:         store,
		provider:      provider,
		ids:           ids,
		validate:      validator.New(),
		enrichWorkers: workers,
		logger:        logger,
	}
}

// Run executes every phase in order and always finishes by writing a
// terminal status, including when a phase fails or panics.
func (w *ScrapeWorker) Run(ctx context.Context) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScrapeWorker.Run")
	defer span.End()

	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("scrape worker panic: %v", recovered)
		}
		w.writeTerminalStatus(context.WithoutCancel(ctx), err)
	}()

	cfg, countries, err := w.loadConfig(ctx)
	if err != nil {
		return &PhaseError{Phase: PhaseLoadingConfig, Err: err}
	}

	matches, pending, err := w.fetchEvents(ctx, cfg, countries)
	if err != nil {
		return &PhaseError{Phase: PhaseFetchingEvents, Err: err}
	}

	if err := w.backfillCountries(ctx, matches, pending, countries); err != nil {
		return &PhaseError{Phase: PhaseBackfillingCountries, Err: err}
	}

	enriched, err := w.EnrichLocalTimes(ctx, matches)
	if err != nil {
		return &PhaseError{Phase: PhaseComputingLocalTimes, Err: err}
	}

	if err := w.store.WriteStagedMatches(ctx, matches); err != nil {
		return &PhaseError{Phase: PhaseWritingOutput, Err: fmt.Errorf("write staged matches: %w", err)}
	}
	if err := w.store.WriteLeagueCountries(ctx, countries); err != nil {
		return &PhaseError{Phase: PhaseWritingOutput, Err: fmt.Errorf("write league countries: %w", err)}
	}

	w.logger.InfoContext(ctx, "scrape sweep finished",
		"staged", len(matches),
		"backfilled_leagues", len(pending),
		"local_times", enriched,
	)
	return nil
}

func (w *ScrapeWorker) loadConfig(ctx context.Context) (scrape.RunConfig, scrape.LeagueCountries, error) {
	cfg, err := w.store.ReadRunConfig(ctx)
	if err != nil {
		return scrape.RunConfig{}, nil, fmt.Errorf("read run config: %w", err)
	}
	if len(cfg.Sports) == 0 || len(cfg.Dates) == 0 {
		return scrape.RunConfig{}, nil, fmt.Errorf("%w: no sports or dates selected", ErrInvalidInput)
	}
	if err := w.validate.StructCtx(ctx, cfg); err != nil {
		return scrape.RunConfig{}, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	countries, err := w.store.ReadLeagueCountries(ctx)
	if err != nil {
		return scrape.RunConfig{}, nil, fmt.Errorf("read league countries: %w", err)
	}
	if countries == nil {
		countries = scrape.LeagueCountries{}
	}

	return cfg, countries, nil
}

// fetchEvents walks sport/date pairs strictly in sequence. It returns the
// staged matches and the league ids whose country is still unknown.
func (w *ScrapeWorker) fetchEvents(
	ctx context.Context,
	cfg scrape.RunConfig,
	countries scrape.LeagueCountries,
) ([]scrape.StagedMatch, []string, error) {
	matches := make([]scrape.StagedMatch, 0, 64)
	pending := make([]string, 0, 8)
	queued := make(map[string]struct{})

	for _, sport := range cfg.Sports {
		for _, date := range cfg.Dates {
			events, err := w.provider.EventsByDay(ctx, date, sport)
			if err != nil {
				return nil, nil, fmt.Errorf("fetch events sport=%s date=%s: %w", sport, date, err)
			}

			for _, event := range events {
				item, ok, err := w.stageEvent(sport, event)
				if err != nil {
					return nil, nil, err
				}
				if !ok {
					continue
				}

				country := event.Country
				if country == "" {
					country = countries[event.LeagueID]
				}
				if country != "" {
					item.LeagueCountry = &country
				} else if event.LeagueID != "" {
					if _, seen := queued[event.LeagueID]; !seen {
						queued[event.LeagueID] = struct{}{}
						pending = append(pending, event.LeagueID)
					}
				}

				matches = append(matches, item)
			}

			w.logger.DebugContext(ctx, "fetched events", "sport", sport, "date", date, "events", len(events))
		}
	}

	return matches, pending, nil
}

func (w *ScrapeWorker) stageEvent(sport string, event scrape.ProviderEvent) (scrape.StagedMatch, bool, error) {
	if event.Time == "" || event.Date == "" {
		return scrape.StagedMatch{}, false, nil
	}
	if event.Title == "" && event.HomeTeam == "" && event.AwayTeam == "" {
		return scrape.StagedMatch{}, false, nil
	}

	naive, err := tz.NaiveUTC(event.Date, event.Time)
	if err != nil {
		w.logger.Debug("skip event with unparseable date", "event_id", event.ID, "error", err)
		return scrape.StagedMatch{}, false, nil
	}

	matchID, err := w.ids.NewID()
	if err != nil {
		return scrape.StagedMatch{}, false, fmt.Errorf("generate match id: %w", err)
	}

	team1, team1Image, team2, team2Image := eventTeams(event)
	stTimestamp := naive

	return scrape.StagedMatch{
		ID:          matchID,
		Slug:        matchSlug(matchID, event.League, team1, team2),
		League:      event.League,
		LeagueSlug:  slug.Make(event.League),
		LeagueImage: event.LeagueBadge,
		LeagueID:    event.LeagueID,
		Sport:       sport,
		SportSlug:   slug.Make(sport),
		Team1:       team1,
		Team1Image:  team1Image,
		Team2:       team2,
		Team2Image:  team2Image,
		Venue:       event.Venue,
		Timestamp:   naive,
		STTimestamp: &stTimestamp,
		TimeStr:     event.Time,
		DateStr:     event.Date,
		Duration:    match.DefaultDuration,
		ExternalID:  event.ID,
	}, true, nil
}

// eventTeams picks the staged team columns. team1 is never empty for an event
// that passed the title/home/away check: an away-only event moves its away
// side into team1.
func eventTeams(event scrape.ProviderEvent) (team1, team1Image, team2, team2Image string) {
	switch {
	case event.HomeTeam != "":
		return event.HomeTeam, event.HomeTeamBadge, event.AwayTeam, event.AwayTeamBadge
	case event.Title != "":
		return event.Title, "", event.AwayTeam, event.AwayTeamBadge
	default:
		return event.AwayTeam, event.AwayTeamBadge, "", ""
	}
}

func (w *ScrapeWorker) backfillCountries(
	ctx context.Context,
	matches []scrape.StagedMatch,
	pending []string,
	countries scrape.LeagueCountries,
) error {
	for _, leagueID := range pending {
		country, err := w.provider.LeagueCountry(ctx, leagueID)
		if err != nil {
			return fmt.Errorf("lookup league country league_id=%s: %w", leagueID, err)
		}
		if country == "" {
			w.logger.DebugContext(ctx, "league country unresolved", "league_id", leagueID)
			continue
		}

		countries[leagueID] = country
		for i := range matches {
			if matches[i].LeagueID == leagueID {
				value := country
				matches[i].LeagueCountry = &value
			}
		}
	}

	return nil
}

// EnrichLocalTimes sets LTTimestamp on every match that has a date, a time and
// a country but no local timestamp yet. Matches whose zone cannot be resolved
// are skipped. It returns how many matches gained a local timestamp.
func (w *ScrapeWorker) EnrichLocalTimes(ctx context.Context, matches []scrape.StagedMatch) (int, error) {
	pool, err := ants.NewPool(w.enrichWorkers)
	if err != nil {
		return 0, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		workers  sync.WaitGroup
		enriched atomic.Int32
	)
	for i := range matches {
		item := &matches[i]
		if item.DateStr == "" || item.TimeStr == "" || item.Country() == "" || item.LTTimestamp != nil {
			continue
		}

		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			zone, err := tz.Resolve(item.Country())
			if err != nil {
				w.logger.DebugContext(ctx, "skip local time", "match_id", item.ID, "error", err)
				return
			}
			local, err := tz.ZonedTimestamp(item.DateStr, item.TimeStr, zone)
			if err != nil {
				w.logger.WarnContext(ctx, "skip local time", "match_id", item.ID, "zone", zone, "error", err)
				return
			}
			item.LTTimestamp = &local
			enriched.Add(1)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return int(enriched.Load()), fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	return int(enriched.Load()), nil
}

func (w *ScrapeWorker) writeTerminalStatus(ctx context.Context, runErr error) {
	if runErr != nil {
		w.logger.ErrorContext(ctx, "scrape sweep failed", "error", runErr)
	}
	if err := finishRun(ctx, w.store, runErr); err != nil {
		w.logger.ErrorContext(ctx, "write terminal run status failed", "error", err)
	}
}

// RecordRunFailure marks the current run errored when the worker process
// fails before a sweep can start. The pid is cleared and the start time kept.
func RecordRunFailure(ctx context.Context, store scrape.Store, cause error) error {
	if cause == nil {
		return nil
	}
	return finishRun(ctx, store, cause)
}

func finishRun(ctx context.Context, store scrape.Store, runErr error) error {
	status, err := store.ReadRunStatus(ctx)
	if err != nil {
		// Still write the terminal record over an unreadable one.
		status = scrape.RunStatus{}
	}

	status.WorkerPID = nil
	if runErr != nil {
		message := runErr.Error()
		status.Status = scrape.StatusErrored
		status.LastErrorMessage = &message
	} else {
		status.Status = scrape.StatusFinished
		status.LastErrorMessage = nil
	}

	if err := store.WriteRunStatus(ctx, status); err != nil {
		return fmt.Errorf("write %s run status: %w", status.Status, err)
	}
	return nil
}

func matchSlug(matchID, league, team1, team2 string) string {
	value := idgen.Short(matchID) + "-" + league + "-" + team1
	if team2 != "" {
		value += "-" + team2
	}
	return slug.Make(value)
}
