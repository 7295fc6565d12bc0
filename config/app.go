package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/workmatch/internal/logger"
)

const defaultMatchCacheTTL = time.Hour

type AppConfig struct {
	Env  string
	Port string

	// MatchCacheTTL bounds the redis front cache. Persisted match rows have
	// no expiry.
	MatchCacheTTL time.Duration
	// GradedLocationFallback enables the fuzzy-ratio score for locations
	// missing from the hierarchy.
	GradedLocationFallback bool
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		appConfig = appConfigFrom(os.Getenv, logger.New())
	})
	return appConfig
}

func appConfigFrom(getenv func(string) string, log logrus.FieldLogger) *AppConfig {
	env := getenv("APP_ENV")
	if env == "" {
		env = "development"
		log.WithField("app_env", env).Warn("APP_ENV not set, using default")
	}

	port := getenv("PORT")
	if port == "" {
		port = "8080"
	}

	ttl := defaultMatchCacheTTL
	if raw := getenv("MATCH_CACHE_TTL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			log.WithFields(logrus.Fields{
				"value":   raw,
				"default": defaultMatchCacheTTL.String(),
			}).Warn("invalid MATCH_CACHE_TTL, using default")
		} else {
			ttl = d
		}
	}

	graded, _ := strconv.ParseBool(strings.TrimSpace(getenv("MATCH_GRADED_LOCATION_FALLBACK")))

	return &AppConfig{
		Env:                    env,
		Port:                   port,
		MatchCacheTTL:          ttl,
		GradedLocationFallback: graded,
	}
}
