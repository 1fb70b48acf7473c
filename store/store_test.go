// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/KingLex25/innovationhub/models"
	"github.com/KingLex25/innovationhub/store"
	"github.com/KingLex25/innovationhub/testutil"
)

func newInnovator(name string, featured bool) *models.Innovator {
	return &models.Innovator{
		Name:               name,
		Class:              "XII",
		ProjectTitle:       name + "'s project",
		ProjectDescription: "description",
		ProjectTags:        []string{"robotics", "ai"},
		Featured:           featured,
	}
}

func featuredIDs(t *testing.T, s *store.InnovatorStore) []int64 {
	t.Helper()

	all, err := s.List(context.Background())
	require.NoError(t, err)

	var ids []int64
	for _, inn := range all {
		if inn.Featured {
			ids = append(ids, inn.ID)
		}
	}
	return ids
}

func TestRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	events := store.NewEvents(testutil.SetupTestDB(t))

	ev := &models.Event{
		Title:       "Robotics Expo",
		Date:        "2025-04-01",
		Time:        "10:00",
		Location:    "Hall A",
		Category:    "Exhibition",
		Description: "Annual expo",
		Status:      models.StatusUpcoming,
		Leaderboard: &models.Leaderboard{First: "Team Volt"},
	}
	require.NoError(t, events.Create(ctx, ev))
	assert.NotZero(t, ev.ID)
	assert.False(t, ev.CreatedAt.IsZero(), "CreatedAt should be stamped on insert")

	got, err := events.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "Robotics Expo", got.Title)
	require.NotNil(t, got.Leaderboard)
	assert.Equal(t, "Team Volt", got.Leaderboard.First)
	assert.Nil(t, got.Image)

	got.Status = models.StatusCompleted
	require.NoError(t, events.Update(ctx, got))

	got, err = events.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)

	require.NoError(t, events.Delete(ctx, ev.ID))

	_, err = events.Get(ctx, ev.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, events.Delete(ctx, ev.ID), store.ErrNotFound)
	assert.ErrorIs(t, events.Update(ctx, got), store.ErrNotFound)
}

func TestRepo_ListOrdering(t *testing.T) {
	ctx := context.Background()
	conn := testutil.SetupTestDB(t)

	notices := store.NewNotices(conn)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		n := &models.Notice{Title: title, Content: "c", Date: "2025-01-01"}
		n.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, notices.Create(ctx, n))
	}

	list, err := notices.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Title, "notices are newest first")
	assert.Equal(t, "first", list[2].Title)

	team := store.NewTeam(conn)
	for _, name := range []string{"Ms. Rao", "Arjun"} {
		require.NoError(t, team.Create(ctx, &models.TeamMember{Name: name, Position: "p", Type: models.TeamStudent}))
	}
	members, err := team.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Ms. Rao", members[0].Name, "team members are ordered by id")
}

func TestRepo_ListEmpty(t *testing.T) {
	list, err := store.NewArticles(testutil.SetupTestDB(t)).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list, "empty lists encode as [] not null")
	assert.Empty(t, list)
}

func TestInnovators_FeaturedSingleton(t *testing.T) {
	ctx := context.Background()
	s := store.NewInnovators(testutil.SetupTestDB(t))

	a := newInnovator("Asha", true)
	b := newInnovator("Bilal", false)
	c := newInnovator("Chen", false)
	for _, inn := range []*models.Innovator{a, b, c} {
		require.NoError(t, s.Create(ctx, inn))
	}
	assert.Equal(t, []int64{a.ID}, featuredIDs(t, s))

	// Creating a featured innovator steals the flag
	d := newInnovator("Dev", true)
	require.NoError(t, s.Create(ctx, d))
	assert.Equal(t, []int64{d.ID}, featuredIDs(t, s))

	// Updating with featured=true steals it again
	b.Featured = true
	require.NoError(t, s.Update(ctx, b))
	assert.Equal(t, []int64{b.ID}, featuredIDs(t, s))

	// SetFeatured moves it and returns the record
	got, err := s.SetFeatured(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, got.Featured)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, []int64{c.ID}, featuredIDs(t, s))

	// Re-featuring the featured innovator keeps exactly one
	_, err = s.SetFeatured(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{c.ID}, featuredIDs(t, s))

	featured, err := s.Featured(ctx)
	require.NoError(t, err)
	assert.Equal(t, c.ID, featured.ID)

	// Un-featuring leaves none
	c.Featured = false
	require.NoError(t, s.Update(ctx, c))
	assert.Empty(t, featuredIDs(t, s))

	_, err = s.Featured(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestInnovators_SetFeaturedMissing(t *testing.T) {
	ctx := context.Background()
	s := store.NewInnovators(testutil.SetupTestDB(t))

	a := newInnovator("Asha", true)
	require.NoError(t, s.Create(ctx, a))

	_, err := s.SetFeatured(ctx, 9999)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// The failed call must not have cleared the existing flag
	assert.Equal(t, []int64{a.ID}, featuredIDs(t, s))
}

func TestInnovators_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	s := store.NewInnovators(testutil.SetupTestDB(t))

	a := newInnovator("Asha", true)
	require.NoError(t, s.Create(ctx, a))

	ghost := newInnovator("Ghost", true)
	ghost.ID = 4242
	assert.ErrorIs(t, s.Update(ctx, ghost), store.ErrNotFound)

	// Rolled back: Asha is still featured
	assert.Equal(t, []int64{a.ID}, featuredIDs(t, s))
}

// updateCounter counts UPDATE statements run against the database
type updateCounter struct {
	n int
}

func (c *updateCounter) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (c *updateCounter) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	if event.Operation() == "UPDATE" {
		c.n++
	}
}

func TestInnovators_UpdateFeaturedKeepsOthers(t *testing.T) {
	ctx := context.Background()
	conn := testutil.SetupTestDB(t)
	s := store.NewInnovators(conn)

	a := newInnovator("Asha", true)
	b := newInnovator("Bilal", false)
	require.NoError(t, s.Create(ctx, a))
	require.NoError(t, s.Create(ctx, b))

	counter := &updateCounter{}
	conn.AddQueryHook(counter)

	// Renaming the already-featured innovator only touches its own row
	a.Name = "Asha K"
	require.NoError(t, s.Update(ctx, a))
	assert.Equal(t, 1, counter.n)
	assert.Equal(t, []int64{a.ID}, featuredIDs(t, s))

	// Featuring a different innovator still clears the old one
	counter.n = 0
	b.Featured = true
	require.NoError(t, s.Update(ctx, b))
	assert.Equal(t, 2, counter.n)
	assert.Equal(t, []int64{b.ID}, featuredIDs(t, s))
}

func TestInnovators_JSONColumns(t *testing.T) {
	ctx := context.Background()
	s := store.NewInnovators(testutil.SetupTestDB(t))

	month := "March"
	year := 2025
	inn := newInnovator("Asha", false)
	inn.Links = &models.InnovatorLinks{GitHub: "https://github.com/asha"}
	inn.Month = &month
	inn.Year = &year
	inn.ProjectTags = nil
	require.NoError(t, s.Create(ctx, inn))

	got, err := s.Get(ctx, inn.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.ProjectTags)
	require.NotNil(t, got.Links)
	assert.Equal(t, "https://github.com/asha", got.Links.GitHub)
	require.NotNil(t, got.Year)
	assert.Equal(t, 2025, *got.Year)
	assert.Equal(t, "March", *got.Month)
}

func TestSite_About(t *testing.T) {
	ctx := context.Background()
	conn := testutil.SetupTestDB(t)
	site := store.NewSite(conn)

	_, err := site.About(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// First update creates the row with defaults for missing fields
	resp, err := site.UpdateAbout(ctx, models.UpdateAboutRequest{Vision: testutil.Ptr("Build things")})
	require.NoError(t, err)
	assert.Equal(t, "Build things", resp.Vision)
	assert.Equal(t, store.DefaultAboutDescription, resp.Description)
	assert.Equal(t, store.DefaultAboutMission, resp.Mission)
	assert.Empty(t, resp.Features)

	require.NoError(t, store.NewFeatures(conn).Create(ctx, &models.AboutFeature{Title: "Ideation", Description: "d", Icon: "lightbulb"}))

	// Later updates only touch non-empty fields
	resp, err = site.UpdateAbout(ctx, models.UpdateAboutRequest{Mission: testutil.Ptr("Ship it"), Vision: testutil.Ptr("")})
	require.NoError(t, err)
	assert.Equal(t, "Ship it", resp.Mission)
	assert.Equal(t, "Build things", resp.Vision)
	require.Len(t, resp.Features, 1)

	count, err := conn.NewSelect().Model((*models.About)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "about stays a single row")
}

func TestSite_ContactAndSettings(t *testing.T) {
	ctx := context.Background()
	conn := testutil.SetupTestDB(t)
	site := store.NewSite(conn)

	_, err := site.Contact(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)

	req := models.ContactRequest{
		Email:   "club@example.edu",
		Phone:   "123",
		Address: "1 College Road",
		Hours:   "3-5 PM",
		Weekend: "By appointment",
		Social:  models.Social{Instagram: "https://instagram.com/club"},
	}
	created, err := site.UpdateContact(ctx, req)
	require.NoError(t, err)

	req.Phone = "456"
	updated, err := site.UpdateContact(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "456", updated.Phone)
	assert.Equal(t, "https://instagram.com/club", updated.Social.Instagram)

	got, err := site.Contact(ctx)
	require.NoError(t, err)
	assert.Equal(t, "456", got.Phone)

	// Settings insert with a default title when none is given
	settings, err := site.UpdateSettings(ctx, models.UpdateSettingsRequest{FooterText: testutil.Ptr("(c) club")})
	require.NoError(t, err)
	assert.Equal(t, store.DefaultSiteTitle, settings.SiteTitle)

	settings, err = site.UpdateSettings(ctx, models.UpdateSettingsRequest{SiteTitle: testutil.Ptr("Innovation Hub")})
	require.NoError(t, err)
	assert.Equal(t, "Innovation Hub", settings.SiteTitle)
	require.NotNil(t, settings.FooterText)
	assert.Equal(t, "(c) club", *settings.FooterText)

	count, err := conn.NewSelect().Model((*models.Settings)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMessages_MarkRead(t *testing.T) {
	ctx := context.Background()
	messages := store.NewMessages(testutil.SetupTestDB(t))

	msg := models.SendMessageRequest{Name: "Visitor", Email: "v@example.com", Subject: "Hi", Message: "Hello"}.Build()
	require.NoError(t, messages.Create(ctx, msg))
	assert.False(t, msg.Read)

	got, err := messages.MarkRead(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)

	_, err = messages.MarkRead(ctx, 9999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	users := store.NewUsers(testutil.SetupTestDB(t))

	u, err := users.CreateUser(ctx, "editor", "correct-horse", false)
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", u.Password, "password must be hashed")

	_, err = users.CreateUser(ctx, "editor", "other", true)
	assert.ErrorIs(t, err, store.ErrDuplicate)

	got, err := users.Authenticate(ctx, "editor", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = users.Authenticate(ctx, "editor", "wrong")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)

	_, err = users.Authenticate(ctx, "nobody", "correct-horse")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)

	list, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, users.Delete(ctx, u.ID))
	_, err = users.ByUsername(ctx, "editor")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
