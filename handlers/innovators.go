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

// InnovatorHandler serves innovator CRUD plus the featured innovator.
// Create and Update go through InnovatorStore so at most one row stays featured.
type InnovatorHandler struct {
	*CRUDHandler[models.Innovator, models.CreateInnovatorRequest, models.UpdateInnovatorRequest]
	store *store.InnovatorStore
}

func NewInnovatorHandler(db *bun.DB) *InnovatorHandler {
	s := store.NewInnovators(db)
	return &InnovatorHandler{
		CRUDHandler: NewCRUDHandler[models.Innovator, models.CreateInnovatorRequest, models.UpdateInnovatorRequest]("Innovator", s),
		store:       s,
	}
}

// Feature handles POST /api/innovators/feature/{id}
func (h *InnovatorHandler) Feature(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	inn, err := h.store.SetFeatured(r.Context(), id)
	if err != nil {
		notFound(w, "Innovator", "feature", err)
		return
	}

	slog.Info("innovator featured", "id", id, "name", inn.Name)
	middleware.JSONResponse(w, http.StatusOK, inn)
}

// Featured handles GET /api/innovators/featured
func (h *InnovatorHandler) Featured(w http.ResponseWriter, r *http.Request) {
	inn, err := h.store.Featured(r.Context())
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No featured innovator")
		return
	}
	if err != nil {
		internalError(w, "get featured innovator", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, inn)
}
