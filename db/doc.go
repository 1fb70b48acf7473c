// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database, creates the schema and seeds first-run data.

# Connecting

Open picks the driver and bun dialect from the config:

	conn, err := db.Open(ctx, cfg)

  - postgres: lib/pq with pgdialect
  - sqlite: modernc.org/sqlite with sqlitedialect, foreign keys on,
    WAL journaling for file databases

Set DB_DEBUG to log every query through bundebug.

# Schema Creation

CreateSchema creates every table from the bun models in one transaction:

	if err := db.CreateSchema(ctx, conn); err != nil {
		return err
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: admin accounts (bcrypt password hashes)
  - sessions: login sessions (unused when sessions live in Redis)
  - events, team_members, innovators, notices, content_articles
  - about, about_features
  - contact, contact_messages
  - settings

about, contact and settings hold a single row.

# Indexes

  - innovators.featured
  - sessions.expires_at
  - events.created_at

# Seeding

Seed creates the configured admin user when it does not exist. With
SEED_DEMO enabled it also fills about, about_features, contact and
settings on a database that has no about row yet.
*/
package db
