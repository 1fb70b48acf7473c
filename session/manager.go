// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/KingLex25/innovationhub/auth"
	"github.com/KingLex25/innovationhub/models"
)

const CookieName = "ih_session"

// ErrNoSession is returned when a request carries no valid session cookie
var ErrNoSession = errors.New("no session")

// Manager issues and resolves signed session cookies.
// The cookie value is "<id>.<signature>"; the session itself lives in the Store.
type Manager struct {
	store  Store
	secret string
	ttl    time.Duration
	secure bool

	now func() time.Time
}

func NewManager(store Store, secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		store:  store,
		secret: secret,
		ttl:    ttl,
		secure: secure,
		now:    time.Now,
	}
}

// Start creates a session for user and sets the cookie on w
func (m *Manager) Start(ctx context.Context, w http.ResponseWriter, user *models.User) (*Session, error) {
	id, err := auth.GenerateToken(32)
	if err != nil {
		return nil, err
	}

	now := m.now().UTC()
	sess := &Session{
		ID:        id,
		UserID:    user.ID,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	http.SetCookie(w, m.cookie(id+"."+auth.Sign(id, m.secret), sess.ExpiresAt))
	return sess, nil
}

// FromRequest verifies the session cookie and loads its session
func (m *Manager) FromRequest(r *http.Request) (*Session, error) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return nil, ErrNoSession
	}

	id, sig, ok := strings.Cut(c.Value, ".")
	if !ok || id == "" {
		return nil, ErrNoSession
	}
	if err := auth.Verify(id, sig, m.secret); err != nil {
		return nil, ErrNoSession
	}

	sess, err := m.store.Load(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	if sess.Expired(m.now()) {
		return nil, ErrNoSession
	}
	return sess, nil
}

// End deletes the request's session, if any, and clears the cookie
func (m *Manager) End(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	defer http.SetCookie(w, m.expiredCookie())

	c, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}
	id, sig, ok := strings.Cut(c.Value, ".")
	if !ok || auth.Verify(id, sig, m.secret) != nil {
		return nil
	}
	return m.store.Delete(ctx, id)
}

// EndUser revokes every session of userID, e.g. after the account is deleted
func (m *Manager) EndUser(ctx context.Context, userID int64) error {
	return m.store.DeleteUser(ctx, userID)
}

// Purge removes expired sessions from the store
func (m *Manager) Purge(ctx context.Context) error {
	return m.store.Purge(ctx)
}

func (m *Manager) cookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (m *Manager) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
