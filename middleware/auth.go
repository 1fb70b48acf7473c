// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/KingLex25/innovationhub/session"
)

type contextKey struct{}

// ContextWithSession returns ctx carrying sess
func ContextWithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, contextKey{}, sess)
}

// CurrentSession returns the session loaded by WithSession, or nil
func CurrentSession(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(contextKey{}).(*session.Session)
	return sess
}

// WithSession resolves the session cookie and stores the session in the
// request context. Requests without a valid session pass through untouched.
func WithSession(m *session.Manager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.FromRequest(r)
		switch {
		case err == nil:
			r = r.WithContext(ContextWithSession(r.Context(), sess))
		case !errors.Is(err, session.ErrNoSession):
			slog.Error("failed to load session", "error", err)
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAuth rejects requests without a session
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if CurrentSession(r.Context()) == nil {
			ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next(w, r)
	}
}

// RequireAdmin rejects requests without an admin session
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := CurrentSession(r.Context())
		if sess == nil {
			ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !sess.IsAdmin {
			ErrorResponse(w, http.StatusForbidden, "Forbidden - Admin access required")
			return
		}
		next(w, r)
	}
}
