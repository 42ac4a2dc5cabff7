package config

import (
	"testing"
	"time"

	"github.com/footballower/backend/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("expected dev env, got=%q", cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":3000" {
		t.Fatalf("expected default addr :3000, got=%q", cfg.HTTPAddr)
	}
	if cfg.StandingsURL != "https://www.premierleague.com/tables" {
		t.Fatalf("unexpected standings url: %q", cfg.StandingsURL)
	}
	if cfg.ScrapeTimeout != 15*time.Second {
		t.Fatalf("unexpected scrape timeout: %v", cfg.ScrapeTimeout)
	}
	if cfg.SessionTTL != time.Hour {
		t.Fatalf("unexpected session ttl: %v", cfg.SessionTTL)
	}
	if !cfg.SessionCookieSecure {
		t.Fatal("session cookie must default to secure")
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "https://footballower.vercel.app" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.UptraceEnabled {
		t.Fatal("uptrace must default to disabled")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("APP_HTTP_ADDR", ":8080")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("SCHEDULE_FANOUT_WORKERS", "8")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AppEnv != EnvProd {
		t.Fatalf("expected prod env, got=%q", cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected addr: %q", cfg.HTTPAddr)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
	if cfg.ScheduleWorkers != 8 {
		t.Fatalf("unexpected workers: %d", cfg.ScheduleWorkers)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"bad env", "APP_ENV", "production"},
		{"bad read timeout", "APP_READ_TIMEOUT", "soon"},
		{"zero scrape timeout", "SCRAPE_TIMEOUT", "0s"},
		{"zero workers", "SCHEDULE_FANOUT_WORKERS", "0"},
		{"bad workers", "SCHEDULE_FANOUT_WORKERS", "many"},
		{"zero session ttl", "SESSION_TTL", "0s"},
		{"bad cookie flag", "SESSION_COOKIE_SECURE", "maybe"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tc.key, tc.value)
			}
		})
	}
}

func TestLoad_UptraceRequiresDSN(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when uptrace is enabled without a DSN")
	}
}
