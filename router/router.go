// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/uptrace/bun"

	"github.com/KingLex25/innovationhub/cliparse"
	"github.com/KingLex25/innovationhub/handlers"
	"github.com/KingLex25/innovationhub/metrics"
	"github.com/KingLex25/innovationhub/middleware"
	"github.com/KingLex25/innovationhub/session"
)

// NewRouter builds the API handler: routes, access control, sessions and CORS
func NewRouter(db *bun.DB, cfg cliparse.Config, sessions *session.Manager, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()

	handle := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, m.Instrument(pattern, middleware.WithLogging(h)))
	}
	auth := middleware.RequireAuth
	admin := middleware.RequireAdmin

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, sessions)
	userHandler := handlers.NewUserHandler(db, sessions)
	eventHandler := handlers.NewEventHandler(db)
	teamHandler := handlers.NewTeamHandler(db)
	innovatorHandler := handlers.NewInnovatorHandler(db)
	noticeHandler := handlers.NewNoticeHandler(db)
	aboutHandler := handlers.NewAboutHandler(db)
	contactHandler := handlers.NewContactHandler(db)
	settingsHandler := handlers.NewSettingsHandler(db)
	articleHandler := handlers.NewArticleHandler(db)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", m.Handler())

	// Authentication
	handle("POST /api/auth/login", authHandler.Login)
	handle("POST /api/auth/logout", authHandler.Logout)
	handle("GET /api/auth/me", authHandler.Me)

	// User management (admin only)
	handle("GET /api/users", admin(userHandler.List))
	handle("POST /api/users", admin(userHandler.Create))
	handle("DELETE /api/users/{id}", admin(userHandler.Delete))

	// Events
	handle("GET /api/events", eventHandler.List)
	handle("GET /api/events/{id}", eventHandler.Get)
	handle("POST /api/events", auth(eventHandler.Create))
	handle("PATCH /api/events/{id}", auth(eventHandler.Update))
	handle("DELETE /api/events/{id}", auth(eventHandler.Delete))

	// Team
	handle("GET /api/team", teamHandler.List)
	handle("GET /api/team/{id}", teamHandler.Get)
	handle("POST /api/team", auth(teamHandler.Create))
	handle("PATCH /api/team/{id}", auth(teamHandler.Update))
	handle("DELETE /api/team/{id}", auth(teamHandler.Delete))

	// Innovators
	handle("GET /api/innovators", innovatorHandler.List)
	handle("GET /api/innovators/featured", innovatorHandler.Featured)
	handle("GET /api/innovators/{id}", innovatorHandler.Get)
	handle("POST /api/innovators", auth(innovatorHandler.Create))
	handle("PATCH /api/innovators/{id}", auth(innovatorHandler.Update))
	handle("DELETE /api/innovators/{id}", auth(innovatorHandler.Delete))
	handle("POST /api/innovators/feature/{id}", auth(innovatorHandler.Feature))

	// Notices
	handle("GET /api/notices", noticeHandler.List)
	handle("GET /api/notices/{id}", noticeHandler.Get)
	handle("POST /api/notices", auth(noticeHandler.Create))
	handle("PATCH /api/notices/{id}", auth(noticeHandler.Update))
	handle("DELETE /api/notices/{id}", auth(noticeHandler.Delete))

	// About and feature cards
	handle("GET /api/about", aboutHandler.Get)
	handle("PATCH /api/about", auth(aboutHandler.Update))
	handle("POST /api/about/features", auth(aboutHandler.Features.Create))
	handle("PATCH /api/about/features/{id}", auth(aboutHandler.Features.Update))
	handle("DELETE /api/about/features/{id}", auth(aboutHandler.Features.Delete))

	// Contact details and visitor messages
	handle("GET /api/contact", contactHandler.Get)
	handle("PATCH /api/contact", auth(contactHandler.Update))
	handle("POST /api/contact/message", contactHandler.SendMessage)
	handle("GET /api/contact/messages", auth(contactHandler.ListMessages))
	handle("PATCH /api/contact/messages/{id}/read", auth(contactHandler.MarkRead))
	handle("DELETE /api/contact/messages/{id}", auth(contactHandler.DeleteMessage))

	// Site settings
	handle("GET /api/settings", settingsHandler.Get)
	handle("PATCH /api/settings", auth(settingsHandler.Update))

	// Content articles
	handle("GET /api/content", articleHandler.List)
	handle("GET /api/content/{id}", articleHandler.Get)
	handle("POST /api/content", auth(articleHandler.Create))
	handle("PATCH /api/content/{id}", auth(articleHandler.Update))
	handle("DELETE /api/content/{id}", auth(articleHandler.Delete))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("innovationhub API v1"))
	})

	return middleware.CORS(cfg.AllowedOrigins, middleware.WithSession(sessions, mux))
}
