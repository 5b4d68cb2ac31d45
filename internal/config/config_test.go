package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	for _, key := range []string{
		"SCRAPE_LEASE_WINDOW", "SCRAPE_LIVENESS_INTERVAL", "SCRAPE_EXPIRY_INTERVAL",
		"SCRAPE_ENRICH_WORKERS", "SCRAPE_STATE_DIR", "THESPORTSDB_API_KEY",
		"THESPORTSDB_DEFAULT_RETRY_AFTER", "CACHE_TTL", "PPROF_ADDR",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ScrapeLeaseWindow != 10*time.Minute {
		t.Fatalf("unexpected lease window: %s", cfg.ScrapeLeaseWindow)
	}
	if cfg.ScrapeLivenessInterval != 5*time.Second {
		t.Fatalf("unexpected liveness interval: %s", cfg.ScrapeLivenessInterval)
	}
	if cfg.ScrapeExpiryInterval != time.Minute {
		t.Fatalf("unexpected expiry interval: %s", cfg.ScrapeExpiryInterval)
	}
	if cfg.ScrapeEnrichWorkers != 4 || cfg.ScrapeStateDir != "./data" {
		t.Fatalf("unexpected scrape defaults: %+v", cfg)
	}
	if cfg.TheSportsDBAPIKey != "123" || cfg.TheSportsDBRetryAfter != 60*time.Second {
		t.Fatalf("unexpected provider defaults: key=%q retry=%s", cfg.TheSportsDBAPIKey, cfg.TheSportsDBRetryAfter)
	}
	if cfg.CacheTTL != 60*time.Second || !cfg.CacheEnabled {
		t.Fatalf("unexpected cache defaults: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_ProdRequiresAdminToken(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("ADMIN_API_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when ADMIN_API_TOKEN is missing in prod")
	}

	t.Setenv("ADMIN_API_TOKEN", "s3cret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AdminAPIToken != "s3cret" {
		t.Fatalf("unexpected admin token")
	}
}

func TestLoad_ScrapeIntervalsValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("sub-second liveness interval", func(t *testing.T) {
		t.Setenv("SCRAPE_LIVENESS_INTERVAL", "500ms")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for sub-second liveness interval")
		}
	})

	t.Run("negative lease window", func(t *testing.T) {
		t.Setenv("SCRAPE_LEASE_WINDOW", "-1m")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative lease window")
		}
	})

	t.Run("invalid enrich workers", func(t *testing.T) {
		t.Setenv("SCRAPE_ENRICH_WORKERS", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for zero enrich workers")
		}
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("SCRAPE_LEASE_WINDOW", "15m")
		t.Setenv("THESPORTSDB_DEFAULT_RETRY_AFTER", "30s")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.ScrapeLeaseWindow != 15*time.Minute || cfg.TheSportsDBRetryAfter != 30*time.Second {
			t.Fatalf("unexpected custom values: lease=%s retry=%s", cfg.ScrapeLeaseWindow, cfg.TheSportsDBRetryAfter)
		}
	})
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "uptrace-dsn='https://token@api.uptrace.dev?grpc=4317'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "matchboard-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "matchboard-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
		t.Fatalf("unexpected CORS origins: %+v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("MATCHBOARD_DOTENV_PROBE=from-file\nAPP_LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("MATCHBOARD_DOTENV_PROBE", "")
	t.Setenv("APP_LOG_LEVEL", "warn")
	if err := os.Unsetenv("MATCHBOARD_DOTENV_PROBE"); err != nil {
		t.Fatalf("unset probe: %v", err)
	}

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("MATCHBOARD_DOTENV_PROBE"); got != "from-file" {
		t.Fatalf("expected value from file, got %q", got)
	}
	if got := os.Getenv("APP_LOG_LEVEL"); got != "warn" {
		t.Fatalf("expected existing variable to win, got %q", got)
	}

	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("missing file should be ignored: %v", err)
	}
}

func TestLoad_SwaggerDefaultsByEnvironment(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("SWAGGER_ENABLED", "")
	t.Setenv("ADMIN_API_TOKEN", "token")

	t.Setenv("APP_ENV", EnvDev)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load dev config: %v", err)
	}
	if !cfg.SwaggerEnabled {
		t.Fatalf("expected swagger enabled in dev")
	}

	t.Setenv("APP_ENV", EnvProd)
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load prod config: %v", err)
	}
	if cfg.SwaggerEnabled {
		t.Fatalf("expected swagger disabled in prod")
	}
}
