package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchboard/external/thesportsdb"
	"github.com/riskibarqy/matchboard/internal/config"
	"github.com/riskibarqy/matchboard/internal/domain/match"
	"github.com/riskibarqy/matchboard/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/matchboard/internal/infrastructure/repository/filestore"
	"github.com/riskibarqy/matchboard/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/matchboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/matchboard/internal/jobs"
	basecache "github.com/riskibarqy/matchboard/internal/platform/cache"
	idgen "github.com/riskibarqy/matchboard/internal/platform/id"
	"github.com/riskibarqy/matchboard/internal/platform/logging"
	"github.com/riskibarqy/matchboard/internal/platform/process"
	"github.com/riskibarqy/matchboard/internal/usecase"
)

const defaultWorkerBinaryName = "scraper"

// API is the HTTP process: the admin router plus the background jobs.
type API struct {
	Server    *http.Server
	Scheduler *jobs.Scheduler

	db     *sqlx.DB
	logger *logging.Logger
}

func NewAPI(ctx context.Context, cfg config.Config, logger *logging.Logger) (*API, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	store, err := filestore.New(cfg.ScrapeStateDir)
	if err != nil {
		return nil, fmt.Errorf("open scrape state dir: %w", err)
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var matchRepo match.Repository = postgres.NewMatchRepository(db)
	if cfg.CacheEnabled {
		matchRepo = cache.NewMatchRepository(matchRepo, basecache.NewStore[[]match.Match](cfg.CacheTTL))
	}

	sportsDB := newSportsDBClient(cfg, logger)
	var sports usecase.SportsCatalog = sportsDB
	if cfg.CacheEnabled {
		sports = cache.NewSportsCatalog(sportsDB, basecache.NewStore[[]string](cfg.CacheTTL))
	}

	binary, err := resolveWorkerBinary(cfg.ScrapeWorkerBinary)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	launcher, err := process.NewLauncher(process.LauncherConfig{
		Binary:   binary,
		StateDir: store.Dir(),
	}, logger.Named("launcher"))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("build worker launcher: %w", err)
	}

	orchestrator := usecase.NewScrapeOrchestrator(store, launcher, sports, usecase.ScrapeOrchestratorConfig{
		LeaseWindow: cfg.ScrapeLeaseWindow,
	}, logger)
	acceptance := usecase.NewMatchAcceptanceService(store, matchRepo, logger)
	schedule := usecase.NewScheduleService(matchRepo, idgen.NewUUIDGenerator(), logger)

	scheduler, err := jobs.NewScheduler(jobs.Config{
		LivenessInterval: cfg.ScrapeLivenessInterval,
		ExpiryInterval:   cfg.ScrapeExpiryInterval,
	},
		usecase.NewLivenessMonitor(store, process.Prober{}, logger),
		usecase.NewExpirySweeper(matchRepo, cfg.ScrapeExpiryWorkers, logger),
		logger.Named("jobs"),
	)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("build scheduler: %w", err)
	}

	handler := httpapi.NewHandler(orchestrator, acceptance, schedule, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminToken:         cfg.AdminAPIToken,
	})

	return &API{
		Server: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      cfg.WriteTimeout,
		},
		Scheduler: scheduler,
		db:        db,
		logger:    logger,
	}, nil
}

// Shutdown drains HTTP traffic, stops the jobs and closes the database.
func (a *API) Shutdown(ctx context.Context) error {
	var errs []error
	if err := a.Server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	if err := a.Scheduler.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("stop scheduler: %w", err))
	}
	if err := a.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	return errors.Join(errs...)
}

// NewScrapeWorker builds the worker run by the scraper binary against the
// state directory shared with the API.
func NewScrapeWorker(cfg config.Config, stateDir string, logger *logging.Logger) (*usecase.ScrapeWorker, error) {
	if strings.TrimSpace(stateDir) == "" {
		stateDir = cfg.ScrapeStateDir
	}
	store, err := filestore.New(stateDir)
	if err != nil {
		return nil, fmt.Errorf("open scrape state dir: %w", err)
	}

	return usecase.NewScrapeWorker(
		store,
		newSportsDBClient(cfg, logger),
		idgen.NewUUIDGenerator(),
		usecase.ScrapeWorkerConfig{EnrichWorkers: cfg.ScrapeEnrichWorkers},
		logger,
	), nil
}

// RecordWorkerBootstrapFailure marks the run in stateDir errored when the
// worker process fails before its sweep starts.
func RecordWorkerBootstrapFailure(ctx context.Context, stateDir string, cause error) error {
	store, err := filestore.New(stateDir)
	if err != nil {
		return fmt.Errorf("open scrape state dir: %w", err)
	}
	return usecase.RecordRunFailure(ctx, store, cause)
}

func newSportsDBClient(cfg config.Config, logger *logging.Logger) *thesportsdb.Client {
	return thesportsdb.NewClient(thesportsdb.ClientConfig{
		BaseURL:           cfg.TheSportsDBBaseURL,
		APIKey:            cfg.TheSportsDBAPIKey,
		Timeout:           cfg.TheSportsDBTimeout,
		DefaultRetryAfter: cfg.TheSportsDBRetryAfter,
		Logger:            logger.Named("thesportsdb"),
	})
}

// resolveWorkerBinary falls back to a "scraper" binary next to the running
// executable.
func resolveWorkerBinary(configured string) (string, error) {
	if configured = strings.TrimSpace(configured); configured != "" {
		return configured, nil
	}

	self, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(self), defaultWorkerBinaryName), nil
}
