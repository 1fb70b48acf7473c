// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the innovationhub API.

# Resource Handlers

Events, team members, notices, about features and content articles share
one generic handler, CRUDHandler, parameterized by the record type, its
create request and its partial update request:

	events := handlers.NewEventHandler(db)
	mux.HandleFunc("GET /api/events", events.List)
	mux.HandleFunc("PATCH /api/events/{id}", events.Update)

Create answers 201 with the stored record, Update 200 with the merged
record and Delete 200 with "<Label> deleted successfully". A missing id is
404 "<Label> not found" and a non-numeric id is 400.

InnovatorHandler embeds the same CRUD handler on top of InnovatorStore, so
every write keeps at most one innovator featured. It adds Feature and
Featured.

# Site Handlers

AboutHandler, ContactHandler and SettingsHandler serve the single-row
tables. Their PATCH endpoints create the row on first use.

ContactHandler also accepts public messages and lets editors list, mark
read and delete them.

# Authentication

AuthHandler logs in (setting the session cookie), logs out and reports the
current user. UserHandler manages accounts and refuses to delete the
caller's own account.

Access control is applied by the router with middleware.RequireAuth and
middleware.RequireAdmin; handlers only read the session from the context.

# Errors

Invalid bodies answer 400 with {error, message, errors[]} where each entry
names the offending JSON field. Unexpected store failures are logged and
answer 500 "Internal server error".
*/
package handlers
