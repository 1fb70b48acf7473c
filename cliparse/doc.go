// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Values are read from the environment first (see the env struct tags on
Config), then CLI flags override them.

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type (sqlite or postgres)
	-redis           Redis URL for session storage
	-session-secret  Session cookie secret
	-session-ttl     Session lifetime (e.g. 24h)
	-secure-cookies  Mark session cookies Secure
	-seed            Seed demo content on first start
	-origins         Comma-separated CORS origins
	-log-level       debug, info, warn or error

# Environment Variables

	PORT            → -p (default 3318)
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t (default sqlite)
	REDIS_URL       → -redis
	SESSION_SECRET  → -session-secret
	SESSION_TTL     → -session-ttl (default 24h)
	SECURE_COOKIES  → -secure-cookies
	SEED_DEMO       → -seed (default true)
	LOG_LEVEL       → -log-level (default info)
	ALLOWED_ORIGINS → -origins (default http://localhost:5173)
	ADMIN_USERNAME  (default admin)
	ADMIN_PASSWORD  (default admin123)
	DB_DEBUG        log every SQL query

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - SESSION_SECRET is missing
  - the database type is not sqlite or postgres
  - the session TTL is not positive
  - the log level is unknown
  - an allowed origin is "*" or lacks an http(s) scheme

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	bunDB, err := db.Open(ctx, cfg)
	// ...
	handler := router.NewRouter(bunDB, cfg, sessions, m)
*/
package cliparse
