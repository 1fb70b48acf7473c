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

// Defaults used when the about row is created by its first update
const (
	DefaultAboutDescription = "The Innovation Club promotes creative thinking and problem-solving."
	DefaultAboutVision      = "To foster innovation and creativity in students."
	DefaultAboutMission     = "To provide a platform for exploring technologies and developing innovative solutions."
	DefaultSiteTitle        = "Innovation Club"
)

// SiteStore manages the single-row tables: about, contact and settings
type SiteStore struct {
	db *bun.DB
}

func NewSite(db *bun.DB) *SiteStore {
	return &SiteStore{db: db}
}

// first loads the lowest-id row of dest's table
func first(ctx context.Context, db bun.IDB, dest any) error {
	err := db.NewSelect().
		Model(dest).
		OrderExpr(orderByID).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("select %T: %w", dest, err)
	}
	return nil
}

// About returns the about row and every feature
func (s *SiteStore) About(ctx context.Context) (*models.AboutResponse, error) {
	about := new(models.About)
	if err := first(ctx, s.db, about); err != nil {
		return nil, err
	}

	features, err := NewFeatures(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	return &models.AboutResponse{About: about, Features: features}, nil
}

// UpdateAbout creates the about row when missing, filling empty fields with
// defaults. Otherwise only non-empty fields in req are written.
func (s *SiteStore) UpdateAbout(ctx context.Context, req models.UpdateAboutRequest) (*models.AboutResponse, error) {
	about := new(models.About)
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		err := first(ctx, tx, about)
		switch {
		case errors.Is(err, ErrNotFound):
			about.Description = orDefault(req.Description, DefaultAboutDescription)
			about.Vision = orDefault(req.Vision, DefaultAboutVision)
			about.Mission = orDefault(req.Mission, DefaultAboutMission)
			return NewRepo[models.About](tx, orderByID).Create(ctx, about)
		case err != nil:
			return err
		}

		about.Description = orDefault(req.Description, about.Description)
		about.Vision = orDefault(req.Vision, about.Vision)
		about.Mission = orDefault(req.Mission, about.Mission)
		return NewRepo[models.About](tx, orderByID).Update(ctx, about)
	})
	if err != nil {
		return nil, err
	}

	features, err := NewFeatures(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	return &models.AboutResponse{About: about, Features: features}, nil
}

func (s *SiteStore) Contact(ctx context.Context) (*models.Contact, error) {
	contact := new(models.Contact)
	if err := first(ctx, s.db, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// UpdateContact replaces the contact details, inserting the row if needed
func (s *SiteStore) UpdateContact(ctx context.Context, req models.ContactRequest) (*models.Contact, error) {
	contact := new(models.Contact)
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		repo := NewRepo[models.Contact](tx, orderByID)

		err := first(ctx, tx, contact)
		if errors.Is(err, ErrNotFound) {
			req.Apply(contact)
			return repo.Create(ctx, contact)
		}
		if err != nil {
			return err
		}

		req.Apply(contact)
		return repo.Update(ctx, contact)
	})
	if err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *SiteStore) Settings(ctx context.Context) (*models.Settings, error) {
	settings := new(models.Settings)
	if err := first(ctx, s.db, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings applies req to the settings row, inserting it if needed
func (s *SiteStore) UpdateSettings(ctx context.Context, req models.UpdateSettingsRequest) (*models.Settings, error) {
	settings := new(models.Settings)
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		repo := NewRepo[models.Settings](tx, orderByID)

		err := first(ctx, tx, settings)
		if errors.Is(err, ErrNotFound) {
			req.Apply(settings)
			if settings.SiteTitle == "" {
				settings.SiteTitle = DefaultSiteTitle
			}
			return repo.Create(ctx, settings)
		}
		if err != nil {
			return err
		}

		req.Apply(settings)
		return repo.Update(ctx, settings)
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
