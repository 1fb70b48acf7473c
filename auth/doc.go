// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential and token utilities.

# Passwords

Administrator passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword("admin123")
	ok := auth.CheckPassword(hash, candidate)

The plaintext password is never persisted or returned by the API.

# Tokens

Session identifiers are random 32-byte secrets:

	token, err := auth.GenerateToken(32)

Tokens are URL-safe base64 encoded without padding.

# Signatures

Session cookies carry an HMAC-SHA256 signature of the session ID:

	sig := auth.Sign(sessionID, secret)
	err := auth.Verify(sessionID, sig, secret)

Verification is constant-time and returns ErrInvalidSignature on mismatch.
*/
package auth
