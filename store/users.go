// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/KingLex25/innovationhub/auth"
	"github.com/KingLex25/innovationhub/models"
)

type UserStore struct {
	*Repo[models.User]
	db *bun.DB
}

func NewUsers(db *bun.DB) *UserStore {
	return &UserStore{
		Repo: NewRepo[models.User](db, orderByID),
		db:   db,
	}
}

func (s *UserStore) ByUsername(ctx context.Context, username string) (*models.User, error) {
	return userByUsername(ctx, s.db, username)
}

func userByUsername(ctx context.Context, db bun.IDB, username string) (*models.User, error) {
	user := new(models.User)
	err := db.NewSelect().
		Model(user).
		Where("username = ?", username).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}
	return user, nil
}

// CreateUser hashes password and stores a new user.
// Returns ErrDuplicate if the username is taken.
func (s *UserStore) CreateUser(ctx context.Context, username, password string, isAdmin bool) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: username, Password: hash, IsAdmin: isAdmin}
	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := userByUsername(ctx, tx, username)
		if err == nil {
			return ErrDuplicate
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		return s.Repo.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate returns the user when password matches, else ErrInvalidCredentials
func (s *UserStore) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.ByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
