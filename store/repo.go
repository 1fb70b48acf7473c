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

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicate          = errors.New("record already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const (
	orderNewest = "created_at DESC, id DESC"
	orderByID   = "id ASC"
)

// Repo is the CRUD table gateway shared by every record kind
type Repo[T any] struct {
	db    bun.IDB
	order string
}

func NewRepo[T any](db bun.IDB, order string) *Repo[T] {
	return &Repo[T]{db: db, order: order}
}

// WithTx returns a copy of the repo bound to tx
func (r *Repo[T]) WithTx(tx bun.Tx) *Repo[T] {
	return &Repo[T]{db: tx, order: r.order}
}

func (r *Repo[T]) List(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	err := r.db.NewSelect().
		Model(&items).
		OrderExpr(r.order).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %T: %w", (*T)(nil), err)
	}
	return items, nil
}

func (r *Repo[T]) Get(ctx context.Context, id int64) (*T, error) {
	rec := new(T)
	err := r.db.NewSelect().
		Model(rec).
		Where("id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %T %d: %w", rec, id, err)
	}
	return rec, nil
}

// Create inserts rec and fills in its ID and CreatedAt
func (r *Repo[T]) Create(ctx context.Context, rec *T) error {
	if _, err := r.db.NewInsert().Model(rec).Exec(ctx); err != nil {
		return fmt.Errorf("insert %T: %w", rec, err)
	}
	return nil
}

// Update writes every column of rec by primary key
func (r *Repo[T]) Update(ctx context.Context, rec *T) error {
	res, err := r.db.NewUpdate().
		Model(rec).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update %T: %w", rec, err)
	}
	return expectRow(res)
}

func (r *Repo[T]) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().
		Model((*T)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete %T %d: %w", (*T)(nil), id, err)
	}
	return expectRow(res)
}

func expectRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Entity repos

func NewEvents(db bun.IDB) *Repo[models.Event] {
	return NewRepo[models.Event](db, orderNewest)
}

func NewTeam(db bun.IDB) *Repo[models.TeamMember] {
	return NewRepo[models.TeamMember](db, orderByID)
}

func NewNotices(db bun.IDB) *Repo[models.Notice] {
	return NewRepo[models.Notice](db, orderNewest)
}

func NewFeatures(db bun.IDB) *Repo[models.AboutFeature] {
	return NewRepo[models.AboutFeature](db, orderByID)
}

func NewArticles(db bun.IDB) *Repo[models.ContentArticle] {
	return NewRepo[models.ContentArticle](db, orderNewest)
}
