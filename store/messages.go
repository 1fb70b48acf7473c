// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/KingLex25/innovationhub/models"
)

type MessageStore struct {
	*Repo[models.ContactMessage]
}

func NewMessages(db bun.IDB) *MessageStore {
	return &MessageStore{Repo: NewRepo[models.ContactMessage](db, orderNewest)}
}

// MarkRead flags a message as read and returns it
func (s *MessageStore) MarkRead(ctx context.Context, id int64) (*models.ContactMessage, error) {
	res, err := s.db.NewUpdate().
		Model((*models.ContactMessage)(nil)).
		Set("? = ?", bun.Ident("read"), true).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark message %d read: %w", id, err)
	}
	if err := expectRow(res); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}
