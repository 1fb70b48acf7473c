// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"

	"github.com/KingLex25/innovationhub/cliparse"
	"github.com/KingLex25/innovationhub/models"
	"github.com/KingLex25/innovationhub/store"
)

const defaultAdminPassword = "admin123"

// Seed creates the admin user if it is missing and, when enabled, the demo
// about, contact and settings rows on an empty database.
func Seed(ctx context.Context, db *bun.DB, cfg cliparse.Config) error {
	users := store.NewUsers(db)

	_, err := users.ByUsername(ctx, cfg.AdminUsername)
	switch {
	case errors.Is(err, store.ErrNotFound):
		if _, err := users.CreateUser(ctx, cfg.AdminUsername, cfg.AdminPassword, true); err != nil {
			return fmt.Errorf("seed admin user: %w", err)
		}
		slog.Info("created admin user", "username", cfg.AdminUsername)
		if cfg.AdminPassword == defaultAdminPassword {
			slog.Warn("admin user has the default password; set ADMIN_PASSWORD", "username", cfg.AdminUsername)
		}
	case err != nil:
		return fmt.Errorf("seed admin user: %w", err)
	}

	if !cfg.SeedDemo {
		return nil
	}

	site := store.NewSite(db)
	if _, err := site.About(ctx); !errors.Is(err, store.ErrNotFound) {
		// Already seeded, or a real error
		return err
	}

	if err := seedDemo(ctx, db); err != nil {
		return fmt.Errorf("seed demo content: %w", err)
	}
	slog.Info("seeded demo content")
	return nil
}

func seedDemo(ctx context.Context, db *bun.DB) error {
	about := &models.About{
		Description: "The Innovation Club was established with a vision to nurture creative thinking and innovative problem-solving skills among students. We believe that innovation is the key to addressing the challenges of tomorrow.",
		Vision:      "To foster a culture of innovation and creativity that empowers students to become future leaders and problem solvers.",
		Mission:     "Our club provides a platform for students to explore cutting-edge technologies, develop prototypes, and collaborate on projects that have real-world applications.",
	}

	features := []*models.AboutFeature{
		{Title: "Ideation", Description: "Brainstorming sessions and idea generation workshops to develop innovative solutions.", Icon: "lightbulb"},
		{Title: "Creation", Description: "Hands-on development and prototyping of ideas using cutting-edge technology.", Icon: "code"},
		{Title: "Launch", Description: "Showcase innovations at events, competitions and implement in real-world scenarios.", Icon: "rocket"},
	}

	contact := &models.Contact{
		Email:   "innovation.club@example.edu",
		Phone:   "+91 522 2239078",
		Address: "Innovation Club, 1 College Road",
		Hours:   "Monday - Friday: 3:00 PM - 5:00 PM",
		Weekend: "Weekend meetings by appointment",
		Social:  models.Social{Instagram: "#", Twitter: "#", LinkedIn: "#", YouTube: "#"},
	}

	footer := "© 2025 Innovation Club. All rights reserved."
	settings := &models.Settings{
		SiteTitle:  "Innovation Club",
		FooterText: &footer,
	}

	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(about).Exec(ctx); err != nil {
			return err
		}
		for _, f := range features {
			if _, err := tx.NewInsert().Model(f).Exec(ctx); err != nil {
				return err
			}
		}
		if _, err := tx.NewInsert().Model(contact).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewInsert().Model(settings).Exec(ctx); err != nil {
			return err
		}
		return nil
	})
}
