// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/KingLex25/innovationhub/models"
)

// InnovatorStore keeps at most one innovator featured.
// Every write that sets Featured clears the flag on all other rows in the
// same transaction.
type InnovatorStore struct {
	*Repo[models.Innovator]
	db *bun.DB
}

func NewInnovators(db *bun.DB) *InnovatorStore {
	return &InnovatorStore{
		Repo: NewRepo[models.Innovator](db, orderByID),
		db:   db,
	}
}

func (s *InnovatorStore) Create(ctx context.Context, inn *models.Innovator) error {
	if inn.ProjectTags == nil {
		inn.ProjectTags = []string{}
	}

	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if inn.Featured {
			if err := clearFeatured(ctx, tx, 0); err != nil {
				return err
			}
		}
		return s.Repo.WithTx(tx).Create(ctx, inn)
	})
}

func (s *InnovatorStore) Update(ctx context.Context, inn *models.Innovator) error {
	if inn.ProjectTags == nil {
		inn.ProjectTags = []string{}
	}

	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		repo := s.Repo.WithTx(tx)

		// Only a row becoming featured needs the others cleared
		if inn.Featured {
			prev, err := repo.Get(ctx, inn.ID)
			if err != nil {
				return err
			}
			if !prev.Featured {
				if err := clearFeatured(ctx, tx, inn.ID); err != nil {
					return err
				}
			}
		}
		return repo.Update(ctx, inn)
	})
}

// SetFeatured makes id the featured innovator
func (s *InnovatorStore) SetFeatured(ctx context.Context, id int64) (*models.Innovator, error) {
	var inn *models.Innovator
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		repo := s.Repo.WithTx(tx)

		var err error
		inn, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}

		if err := clearFeatured(ctx, tx, id); err != nil {
			return err
		}

		inn.Featured = true
		return repo.Update(ctx, inn)
	})
	if err != nil {
		return nil, err
	}
	return inn, nil
}

// Featured returns the current featured innovator, or ErrNotFound
func (s *InnovatorStore) Featured(ctx context.Context) (*models.Innovator, error) {
	inn := new(models.Innovator)
	err := s.db.NewSelect().
		Model(inn).
		Where("featured = ?", true).
		OrderExpr(orderByID).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get featured innovator: %w", err)
	}
	return inn, nil
}

// clearFeatured unsets featured on every innovator except exceptID (0 for none)
func clearFeatured(ctx context.Context, tx bun.Tx, exceptID int64) error {
	q := tx.NewUpdate().
		Model((*models.Innovator)(nil)).
		Set("featured = ?", false).
		Where("featured = ?", true)
	if exceptID != 0 {
		q = q.Where("id != ?", exceptID)
	}

	if _, err := q.Exec(ctx); err != nil {
		return fmt.Errorf("clear featured innovators: %w", err)
	}
	return nil
}
