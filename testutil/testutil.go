// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/uptrace/bun"

	"github.com/KingLex25/innovationhub/cliparse"
	"github.com/KingLex25/innovationhub/db"
	"github.com/KingLex25/innovationhub/models"
	"github.com/KingLex25/innovationhub/session"
	"github.com/KingLex25/innovationhub/store"
)

// TestDBURL is an in-memory SQLite database; every SetupTestDB call gets its own
const TestDBURL = "file::memory:"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *bun.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), GetTestConfig())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		DatabaseURL:    TestDBURL,
		DatabaseType:   cliparse.DatabaseSQLite,
		SessionSecret:  "test-session-secret",
		SessionTTL:     time.Hour,
		AdminUsername:  "admin",
		AdminPassword:  "admin123",
		AllowedOrigins: []string{"http://localhost:5173"},
		LogLevel:       "info",
	}
}

// NewTestManager returns a session manager backed by the database
func NewTestManager(conn *bun.DB) *session.Manager {
	cfg := GetTestConfig()
	return session.NewManager(session.NewSQLStore(conn), cfg.SessionSecret, cfg.SessionTTL, false)
}

// CreateTestUser stores a user with the given password
func CreateTestUser(t *testing.T, conn *bun.DB, username, password string, isAdmin bool) *models.User {
	t.Helper()

	user, err := store.NewUsers(conn).CreateUser(context.Background(), username, password, isAdmin)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// LoginCookie starts a session for user and returns its cookie
func LoginCookie(t *testing.T, m *session.Manager, user *models.User) *http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	if _, err := m.Start(context.Background(), w, user); err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}

	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, cookies ...*http.Cookie) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}
