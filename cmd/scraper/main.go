package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/riskibarqy/matchboard/internal/app"
	"github.com/riskibarqy/matchboard/internal/config"
	"github.com/riskibarqy/matchboard/internal/observability"
	"github.com/riskibarqy/matchboard/internal/platform/logging"
	"github.com/spf13/cobra"
)

const serviceName = "matchboard-scraper"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "scraper",
		Short:         "Scrape worker for the match ingestion pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCommand())
	return root
}

func newRunCommand() *cobra.Command {
	var (
		stateDir string
		envFile  string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one sweep over the persisted run configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd.Context(), stateDir, envFile)
		},
	}

	cmd.Flags().StringVar(&stateDir, "state-dir", "", "directory holding the shared scrape state (defaults to SCRAPE_STATE_DIR)")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "optional dotenv file")
	return cmd
}

// runSweep boots the worker and runs it. Failures before the sweep starts are
// recorded as an errored run so the status does not sit in running.
func runSweep(ctx context.Context, stateDir, envFile string) error {
	if err := config.LoadDotEnv(envFile); err != nil {
		return bootstrapFailed(ctx, stateDir, err)
	}
	cfg, err := config.Load()
	if err != nil {
		return bootstrapFailed(ctx, stateDir, fmt.Errorf("load config: %w", err))
	}
	if strings.TrimSpace(stateDir) == "" {
		stateDir = cfg.ScrapeStateDir
	}

	// stdout is the scraper.log file opened by the launcher.
	logger := logging.NewJSON(cfg.LogLevel).With("service", serviceName, "pid", os.Getpid())
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	cfg.ServiceName = serviceName
	cfg.PyroscopeAppName = serviceName
	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return bootstrapFailed(ctx, stateDir, fmt.Errorf("init uptrace: %w", err))
	}
	defer func() { _ = shutdownTracing(context.WithoutCancel(ctx)) }()
	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		return bootstrapFailed(ctx, stateDir, err)
	}
	defer func() { _ = stopProfiler() }()

	worker, err := app.NewScrapeWorker(cfg, stateDir, logger)
	if err != nil {
		return bootstrapFailed(ctx, stateDir, err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return worker.Run(ctx)
}

func bootstrapFailed(ctx context.Context, stateDir string, cause error) error {
	if strings.TrimSpace(stateDir) == "" {
		stateDir = os.Getenv("SCRAPE_STATE_DIR")
	}
	if err := app.RecordWorkerBootstrapFailure(context.WithoutCancel(ctx), stateDir, cause); err != nil {
		logging.Default().Error("record worker bootstrap failure", "cause", cause, "error", err)
	}
	return cause
}
