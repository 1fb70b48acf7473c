// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/uptrace/bun"

	"github.com/KingLex25/innovationhub/auth"
	"github.com/KingLex25/innovationhub/middleware"
	"github.com/KingLex25/innovationhub/models"
	"github.com/KingLex25/innovationhub/session"
	"github.com/KingLex25/innovationhub/store"
)

type AuthHandler struct {
	users    *store.UserStore
	sessions *session.Manager
}

func NewAuthHandler(db *bun.DB, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		users:    store.NewUsers(db),
		sessions: sessions,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	if err := h.sessions.Purge(r.Context()); err != nil {
		slog.Warn("failed to purge expired sessions", "error", err)
	}

	user, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if errors.Is(err, store.ErrInvalidCredentials) {
		slog.Info("login rejected", "username", req.Username, "ip", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		internalError(w, "authenticate", err)
		return
	}

	if _, err := h.sessions.Start(r.Context(), w, user); err != nil {
		slog.Error("failed to start session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Session error")
		return
	}

	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)
	middleware.JSONResponse(w, http.StatusOK, models.NewUserResponse(user))
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.End(r.Context(), w, r); err != nil {
		slog.Error("failed to end session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to logout")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Logged out successfully"})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.CurrentSession(r.Context())
	if sess == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	// The account may have been deleted since the session started
	user, err := h.users.Get(r.Context(), sess.UserID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	if err != nil {
		internalError(w, "get current user", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.NewUserResponse(user))
}

// UserHandler manages admin accounts
type UserHandler struct {
	users    *store.UserStore
	sessions *session.Manager
}

func NewUserHandler(db *bun.DB, sessions *session.Manager) *UserHandler {
	return &UserHandler{
		users:    store.NewUsers(db),
		sessions: sessions,
	}
}

// List handles GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		internalError(w, "list users", err)
		return
	}

	resp := make([]models.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, models.NewUserResponse(&users[i]))
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Create handles POST /api/users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if !decodeValid(w, r, &req) {
		return
	}

	user, err := h.users.CreateUser(r.Context(), req.Username, req.Password, req.IsAdmin)
	if errors.Is(err, store.ErrDuplicate) {
		middleware.ErrorResponse(w, http.StatusConflict, "Username already exists")
		return
	}
	if errors.Is(err, auth.ErrPasswordTooLong) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Password is too long")
		return
	}
	if err != nil {
		internalError(w, "create user", err)
		return
	}

	slog.Info("user created", "user_id", user.ID, "username", user.Username, "is_admin", user.IsAdmin)
	middleware.JSONResponse(w, http.StatusCreated, models.NewUserResponse(user))
}

// Delete handles DELETE /api/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if sess := middleware.CurrentSession(r.Context()); sess != nil && sess.UserID == id {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Cannot delete your own account")
		return
	}

	// Sessions are revoked before the row is removed
	if err := h.sessions.EndUser(r.Context(), id); err != nil {
		internalError(w, "revoke user sessions", err)
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		notFound(w, "User", "delete", err)
		return
	}

	slog.Info("user deleted", "user_id", id)
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "User deleted successfully"})
}
