// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists records through bun.

Repo[T] is the table gateway every record kind shares:

	events := store.NewEvents(db)
	list, err := events.List(ctx)
	ev, err := events.Get(ctx, id) // ErrNotFound when missing

Update and Delete also return ErrNotFound when no row matched.

Events, notices, messages and articles list newest first. Everything else
lists by id.

# Featured Innovator

InnovatorStore allows at most one featured innovator. Create, Update and
SetFeatured clear the flag on every other row inside the same transaction
before writing.

# Single-Row Tables

SiteStore reads and upserts the about, contact and settings rows.

# Users

UserStore hashes passwords with bcrypt and reports ErrDuplicate for a
taken username and ErrInvalidCredentials for a failed login.
*/
package store
