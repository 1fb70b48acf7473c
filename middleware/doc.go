// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Every request gets a request_id: the incoming X-Request-ID
header if present, otherwise a new UUID. It is echoed back in the response.

# Sessions and Access Control

WithSession resolves the session cookie once per request:

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.WithSession(sessions, mux))

Handlers then gate on it:

	middleware.RequireAuth(h)  // 401 "Unauthorized" without a session
	middleware.RequireAdmin(h) // also 403 for non-admin sessions

CurrentSession(ctx) returns the loaded session or nil.

# CORS Middleware

Echoes the request Origin with credentials allowed only when it is listed
in ALLOWED_ORIGINS or names the API's own host. Unsafe methods from any
other browser origin get 403; requests without an Origin pass through.
Allows GET, POST, PATCH, DELETE, OPTIONS.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
	middleware.ValidationErrorResponse(w, verrs)

Parse JSON request bodies:

	var req models.CreateEventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
