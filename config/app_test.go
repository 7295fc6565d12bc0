package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/yoockh/workmatch/internal/logger"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestAppConfigDefaults(t *testing.T) {
	cfg := appConfigFrom(envOf(nil), logger.Discard())

	if cfg.Env != "development" || cfg.Port != "8080" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.MatchCacheTTL != time.Hour {
		t.Fatalf("MatchCacheTTL = %s, want 1h", cfg.MatchCacheTTL)
	}
	if cfg.GradedLocationFallback {
		t.Fatalf("graded fallback must be off by default")
	}
}

func TestAppConfigFromEnv(t *testing.T) {
	cfg := appConfigFrom(envOf(map[string]string{
		"APP_ENV":                        "production",
		"PORT":                           "9090",
		"MATCH_CACHE_TTL":                "15m",
		"MATCH_GRADED_LOCATION_FALLBACK": "true",
	}), logger.Discard())

	if cfg.Env != "production" || cfg.Port != "9090" || cfg.MatchCacheTTL != 15*time.Minute || !cfg.GradedLocationFallback {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestAppConfigRejectsBadTTL(t *testing.T) {
	for _, raw := range []string{"soon", "-5m", "0s"} {
		log, hook := test.NewNullLogger()
		cfg := appConfigFrom(envOf(map[string]string{"APP_ENV": "test", "MATCH_CACHE_TTL": raw}), log)
		if cfg.MatchCacheTTL != time.Hour {
			t.Errorf("%q: expected fallback to 1h, got %s", raw, cfg.MatchCacheTTL)
		}
		entry := hook.LastEntry()
		if entry == nil || entry.Level != logrus.WarnLevel || entry.Data["value"] != raw {
			t.Errorf("%q: expected a structured warning, got %+v", raw, entry)
		}
	}
}
