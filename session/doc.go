// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements server-side login sessions behind a signed cookie.

# Cookie

The ih_session cookie holds "<id>.<signature>" where the signature is an
HMAC-SHA256 of the id (see auth.Sign). Cookies are HttpOnly, SameSite=Lax
and scoped to "/". Secure is set when configured.

# Expiry

A session expires a fixed duration after login. Requests do not extend it.

# Stores

  - SQLStore: the sessions table, via bun (default)
  - RedisStore: JSON values with a key TTL equal to the remaining lifetime

Usage:

	m := session.NewManager(session.NewSQLStore(db), cfg.SessionSecret, cfg.SessionTTL, cfg.SecureCookies)

	sess, err := m.Start(ctx, w, user) // login
	sess, err := m.FromRequest(r)      // ErrNoSession when absent or invalid
	err := m.End(ctx, w, r)            // logout
*/
package session
