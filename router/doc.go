// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the innovationhub API.

# Route Registration

NewRouter returns the complete handler, already wrapped in session
resolution and CORS:

	handler := router.NewRouter(db, cfg, sessions, metrics.New())

Each API route is logged by middleware.WithLogging and counted and timed
under its pattern by metrics.Instrument.

# Endpoints

Public reads:

	GET /api/{events,team,innovators,notices,content}[/{id}]
	GET /api/innovators/featured
	GET /api/about, /api/contact, /api/settings
	POST /api/contact/message

Session (A = any signed-in user):

	POST /api/auth/login
	POST /api/auth/logout
	GET  /api/auth/me

	A POST/PATCH/DELETE on every content resource
	A PATCH /api/about, /api/contact, /api/settings
	A GET/PATCH/DELETE /api/contact/messages[/{id}[/read]]

Admin only:

	GET/POST /api/users, DELETE /api/users/{id}

Operational:

	GET /health   - "OK"
	GET /metrics  - Prometheus exposition
	GET /         - version banner
*/
package router
