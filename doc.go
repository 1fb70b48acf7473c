// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the innovationhub API server.

innovationhub is the JSON backend of a school innovation club's website:
public pages read events, team members, innovators, notices, articles and
the about/contact/settings rows, while signed-in editors manage them from
an admin dashboard.

# Starting the Server

SQLite is the default database:

	DATABASE_URL=innovationhub.db SESSION_SECRET=change-me go run .

Or with flags against PostgreSQL:

	go run . -p 3318 -t postgres -d "postgres://..." -session-secret change-me

A .env file in the working directory is loaded first when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string or SQLite path
  - SESSION_SECRET (-session-secret): HMAC key for session cookies

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - REDIS_URL (-redis): store sessions in Redis instead of the database
  - SESSION_TTL (-session-ttl): fixed session lifetime (default: 24h)
  - SECURE_COOKIES (-secure-cookies): mark the cookie Secure
  - ADMIN_USERNAME / ADMIN_PASSWORD: first admin account
  - SEED_DEMO (-seed): insert default about, contact and settings rows
  - LOG_LEVEL (-log-level): debug, info, warn or error

# Architecture

  - handlers: HTTP request handlers (CRUD resources, site rows, auth)
  - router: Route definitions using Go 1.22+ routing
  - middleware: sessions, access control, CORS, logging, JSON helpers
  - models: Records and request/response types
  - store: bun repositories and the featured-innovator rule
  - session: Signed cookie sessions over SQL or Redis
  - auth: Password hashing and cookie signing
  - validation: Request validation with JSON field names
  - metrics: Prometheus request and query metrics
  - db: Connection, schema creation and seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
