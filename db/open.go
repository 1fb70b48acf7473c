// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/extra/bundebug"
	_ "modernc.org/sqlite"

	"github.com/KingLex25/innovationhub/cliparse"
)

// Open connects to the configured database and verifies the connection
func Open(ctx context.Context, cfg cliparse.Config) (*bun.DB, error) {
	var db *bun.DB

	switch cfg.DatabaseType {
	case cliparse.DatabasePostgres:
		sqldb, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		db = bun.NewDB(sqldb, pgdialect.New())

	case cliparse.DatabaseSQLite:
		sqldb, err := sql.Open("sqlite", SQLiteDSN(cfg.DatabaseURL))
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// Every connection to an in-memory database is a separate database
		if isMemory(cfg.DatabaseURL) {
			sqldb.SetMaxOpenConns(1)
		}
		db = bun.NewDB(sqldb, sqlitedialect.New())

	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if cfg.DBDebug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	return db, nil
}

// SQLiteDSN adds the pragmas the app relies on to a sqlite path or URI
func SQLiteDSN(url string) string {
	pragmas := []string{"_pragma=foreign_keys(1)", "_pragma=busy_timeout(5000)"}
	if !isMemory(url) {
		pragmas = append(pragmas, "_pragma=journal_mode(WAL)")
	}

	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + strings.Join(pragmas, "&")
}

func isMemory(url string) bool {
	return strings.Contains(url, ":memory:") || strings.Contains(url, "mode=memory")
}
