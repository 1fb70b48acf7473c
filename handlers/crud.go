// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/KingLex25/innovationhub/middleware"
	"github.com/KingLex25/innovationhub/models"
	"github.com/KingLex25/innovationhub/store"
	"github.com/KingLex25/innovationhub/validation"
)

// Repository is the storage a CRUDHandler needs
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, rec *T) error
	Update(ctx context.Context, rec *T) error
	Delete(ctx context.Context, id int64) error
}

// Creator is a create request that builds a new record
type Creator[T any] interface {
	Build() *T
}

// Patcher is an update request that applies itself to a record
type Patcher[T any] interface {
	Apply(*T)
}

// CRUDHandler serves list/get/create/update/delete for one record kind.
// C is the create request type and P the partial update request type.
type CRUDHandler[T any, C Creator[T], P Patcher[T]] struct {
	repo  Repository[T]
	label string
}

func NewCRUDHandler[T any, C Creator[T], P Patcher[T]](label string, repo Repository[T]) *CRUDHandler[T, C, P] {
	return &CRUDHandler[T, C, P]{repo: repo, label: label}
}

// List handles GET /api/<kind>
func (h *CRUDHandler[T, C, P]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		h.storeError(w, "list", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, items)
}

// Get handles GET /api/<kind>/{id}
func (h *CRUDHandler[T, C, P]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.repo.Get(r.Context(), id)
	if err != nil {
		h.storeError(w, "get", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, rec)
}

// Create handles POST /api/<kind>
func (h *CRUDHandler[T, C, P]) Create(w http.ResponseWriter, r *http.Request) {
	var req C
	if !decodeValid(w, r, &req) {
		return
	}

	rec := req.Build()
	if err := h.repo.Create(r.Context(), rec); err != nil {
		h.storeError(w, "create", err)
		return
	}

	slog.Info("record created", "kind", h.label, "id", recordID(rec))
	middleware.JSONResponse(w, http.StatusCreated, rec)
}

// Update handles PATCH /api/<kind>/{id}
func (h *CRUDHandler[T, C, P]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req P
	if !decodeValid(w, r, &req) {
		return
	}

	rec, err := h.repo.Get(r.Context(), id)
	if err != nil {
		h.storeError(w, "get", err)
		return
	}

	req.Apply(rec)
	if err := h.repo.Update(r.Context(), rec); err != nil {
		h.storeError(w, "update", err)
		return
	}

	slog.Info("record updated", "kind", h.label, "id", id)
	middleware.JSONResponse(w, http.StatusOK, rec)
}

// Delete handles DELETE /api/<kind>/{id}
func (h *CRUDHandler[T, C, P]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.storeError(w, "delete", err)
		return
	}

	slog.Info("record deleted", "kind", h.label, "id", id)
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: h.label + " deleted successfully",
	})
}

func (h *CRUDHandler[T, C, P]) storeError(w http.ResponseWriter, op string, err error) {
	notFound(w, h.label, op, err)
}

// notFound maps store.ErrNotFound to 404 "<label> not found"; anything else is a 500
func notFound(w http.ResponseWriter, label, op string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, label+" not found")
		return
	}
	internalError(w, op+" "+label, err)
}

func internalError(w http.ResponseWriter, op string, err error) {
	slog.Error("request failed", "op", op, "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
}

// pathID parses the {id} path segment, writing a 400 when it is not a positive integer
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// decodeValid parses the JSON body into v and validates it.
// On failure it writes the 400 response and returns false.
func decodeValid(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := middleware.ParseJSONBody(r, v); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return false
	}

	err := validation.Struct(v)
	var verrs validation.Errors
	switch {
	case err == nil:
		return true
	case errors.As(err, &verrs):
		middleware.ValidationErrorResponse(w, verrs)
	default:
		internalError(w, "validate", err)
	}
	return false
}

func recordID(rec any) int64 {
	if k, ok := rec.(interface{ RecordID() int64 }); ok {
		return k.RecordID()
	}
	return 0
}
