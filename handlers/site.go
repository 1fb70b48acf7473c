// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/uptrace/bun"

	"github.com/KingLex25/innovationhub/middleware"
	"github.com/KingLex25/innovationhub/models"
	"github.com/KingLex25/innovationhub/store"
)

// siteError writes 404 with message when err is store.ErrNotFound
func siteError(w http.ResponseWriter, message, op string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, message)
		return
	}
	internalError(w, op, err)
}

// AboutHandler serves the about row and its feature cards
type AboutHandler struct {
	site     *store.SiteStore
	Features *FeatureHandler
}

func NewAboutHandler(db *bun.DB) *AboutHandler {
	return &AboutHandler{
		site:     store.NewSite(db),
		Features: NewFeatureHandler(db),
	}
}

// Get handles GET /api/about
func (h *AboutHandler) Get(w http.ResponseWriter, r *http.Request) {
	about, err := h.site.About(r.Context())
	if err != nil {
		siteError(w, "About information not found", "get about", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, about)
}

// Update handles PATCH /api/about
func (h *AboutHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateAboutRequest
	if !decodeValid(w, r, &req) {
		return
	}

	about, err := h.site.UpdateAbout(r.Context(), req)
	if err != nil {
		internalError(w, "update about", err)
		return
	}

	slog.Info("about updated")
	middleware.JSONResponse(w, http.StatusOK, about)
}

// ContactHandler serves contact details and visitor messages
type ContactHandler struct {
	site     *store.SiteStore
	messages *store.MessageStore
}

func NewContactHandler(db *bun.DB) *ContactHandler {
	return &ContactHandler{
		site:     store.NewSite(db),
		messages: store.NewMessages(db),
	}
}

// Get handles GET /api/contact
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	contact, err := h.site.Contact(r.Context())
	if err != nil {
		siteError(w, "Contact information not found", "get contact", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, contact)
}

// Update handles PATCH /api/contact
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if !decodeValid(w, r, &req) {
		return
	}

	contact, err := h.site.UpdateContact(r.Context(), req)
	if err != nil {
		internalError(w, "update contact", err)
		return
	}

	slog.Info("contact updated")
	middleware.JSONResponse(w, http.StatusOK, contact)
}

// SendMessage handles POST /api/contact/message
func (h *ContactHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.SendMessageRequest
	if !decodeValid(w, r, &req) {
		return
	}

	msg := req.Build()
	if err := h.messages.Create(r.Context(), msg); err != nil {
		internalError(w, "save message", err)
		return
	}

	slog.Info("contact message received", "message_id", msg.ID, "ip", middleware.GetClientIP(r))
	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{Message: "Message sent successfully"})
}

// ListMessages handles GET /api/contact/messages
func (h *ContactHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.messages.List(r.Context())
	if err != nil {
		internalError(w, "list messages", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, msgs)
}

// MarkRead handles PATCH /api/contact/messages/{id}/read
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	msg, err := h.messages.MarkRead(r.Context(), id)
	if err != nil {
		notFound(w, "Message", "mark read", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, msg)
}

// DeleteMessage handles DELETE /api/contact/messages/{id}
func (h *ContactHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.messages.Delete(r.Context(), id); err != nil {
		notFound(w, "Message", "delete", err)
		return
	}

	slog.Info("contact message deleted", "message_id", id)
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Message deleted successfully"})
}

type SettingsHandler struct {
	site *store.SiteStore
}

func NewSettingsHandler(db *bun.DB) *SettingsHandler {
	return &SettingsHandler{site: store.NewSite(db)}
}

// Get handles GET /api/settings
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.site.Settings(r.Context())
	if err != nil {
		siteError(w, "Settings not found", "get settings", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, settings)
}

// Update handles PATCH /api/settings
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if !decodeValid(w, r, &req) {
		return
	}

	settings, err := h.site.UpdateSettings(r.Context(), req)
	if err != nil {
		internalError(w, "update settings", err)
		return
	}

	slog.Info("settings updated")
	middleware.JSONResponse(w, http.StatusOK, settings)
}
