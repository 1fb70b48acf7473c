// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/KingLex25/innovationhub/models"
	"github.com/KingLex25/innovationhub/session"
)

// Models lists every table in creation order
var Models = []any{
	(*models.User)(nil),
	(*session.Session)(nil),
	(*models.Event)(nil),
	(*models.TeamMember)(nil),
	(*models.Innovator)(nil),
	(*models.Notice)(nil),
	(*models.About)(nil),
	(*models.AboutFeature)(nil),
	(*models.Contact)(nil),
	(*models.ContactMessage)(nil),
	(*models.Settings)(nil),
	(*models.ContentArticle)(nil),
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	err := db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, model := range Models {
			if _, err := tx.NewCreateTable().
				Model(model).
				IfNotExists().
				Exec(ctx); err != nil {
				return fmt.Errorf("create table for %T: %w", model, err)
			}
		}

		indexes := []struct {
			model  any
			name   string
			column string
		}{
			{(*models.Innovator)(nil), "idx_innovators_featured", "featured"},
			{(*session.Session)(nil), "idx_sessions_expires_at", "expires_at"},
			{(*models.Event)(nil), "idx_events_created_at", "created_at"},
		}
		for _, idx := range indexes {
			if _, err := tx.NewCreateIndex().
				Model(idx.model).
				Index(idx.name).
				Column(idx.column).
				IfNotExists().
				Exec(ctx); err != nil {
				return fmt.Errorf("create index %s: %w", idx.name, err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
