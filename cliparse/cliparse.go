// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KingLex25/innovationhub/auth"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port         int    `env:"PORT" envDefault:"3318"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	DBDebug      bool   `env:"DB_DEBUG"`

	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SecureCookies bool          `env:"SECURE_COOKIES"`
	RedisURL      string        `env:"REDIS_URL"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	SeedDemo      bool   `env:"SEED_DEMO" envDefault:"true"`

	// Browser origins allowed to make credentialed requests
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// ParseFlags reads the environment, then lets CLI flags override it
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("innovationhub", flag.ContinueOnError)

	// Network and storage
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.RedisURL, "redis", cfg.RedisURL, "Redis URL for session storage (optional)")

	// Sessions (prefer env for the secret, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Session cookie secret (prefer env)")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Session lifetime")
	fs.BoolVar(&cfg.SecureCookies, "secure-cookies", cfg.SecureCookies, "Mark session cookies Secure")
	fs.Func("origins", "Comma-separated origins allowed by CORS", func(v string) error {
		cfg.AllowedOrigins = strings.Split(v, ",")
		return nil
	})

	fs.BoolVar(&cfg.SeedDemo, "seed", cfg.SeedDemo, "Seed demo content on first start")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	cfg.DatabaseType = strings.ToLower(cfg.DatabaseType)
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q (sqlite or postgres)", cfg.DatabaseType)
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	if cfg.SessionTTL <= 0 {
		return Config{}, errors.New("session TTL must be positive")
	}

	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return Config{}, errors.New("ADMIN_USERNAME and ADMIN_PASSWORD must not be empty")
	}
	if len(cfg.AdminPassword) > auth.MaxPasswordBytes {
		return Config{}, fmt.Errorf("ADMIN_PASSWORD must be at most %d bytes", auth.MaxPasswordBytes)
	}

	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}

	origins, err := normalizeOrigins(cfg.AllowedOrigins)
	if err != nil {
		return Config{}, err
	}
	cfg.AllowedOrigins = origins

	return cfg, nil
}

// SlogLevel returns the configured log level, defaulting to info
func (c Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// normalizeOrigins trims entries, drops empty ones and rejects wildcards,
// which browsers refuse alongside credentials anyway
func normalizeOrigins(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, o := range in {
		o = strings.TrimSuffix(strings.TrimSpace(o), "/")
		switch {
		case o == "":
			continue
		case o == "*":
			return nil, errors.New("ALLOWED_ORIGINS must list explicit origins, not *")
		case !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://"):
			return nil, fmt.Errorf("invalid origin %q (want scheme://host[:port])", o)
		}
		out = append(out, o)
	}
	return out, nil
}
