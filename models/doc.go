// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

Each record is a bun model mapped to one table. All of them embed Base,
which carries the surrogate ID and the CreatedAt timestamp stamped on
insert:

  - User: username, bcrypt password hash (never serialized), isAdmin
  - Event: title, date, time, location, category, description, status, leaderboard
  - TeamMember: name, position, type (faculty or student), links
  - Innovator: project showcase entry; at most one is featured
  - Notice: title, content, date, optional link
  - About and AboutFeature: the about section and its feature cards
  - Contact and ContactMessage: contact details and visitor messages
  - Settings: site title, background image, footer text
  - ContentArticle: long-form content

About, Contact and Settings are single-row tables.

Nested values (leaderboard, links, social, projectTags) are stored as JSON
columns.

# Request Types

Create requests hold the full schema and validate tags. Build returns the
record to insert:

	var req models.CreateEventRequest
	// parse + validate
	event := req.Build()

Update requests use pointer fields so a PATCH body can carry any subset.
Apply copies only the fields that were present:

	var req models.UpdateEventRequest
	req.Apply(existing)

# Response Types

  - ErrorResponse: error, message, errors (field validation failures)
  - MessageResponse: message
  - UserResponse: id, username, isAdmin
  - AboutResponse: about fields plus features

# JSON Field Names

All JSON keys are camelCase (createdAt, projectTags, isAdmin).
*/
package models
