package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dph/portal/internal/database"
	"github.com/dph/portal/internal/database/repository"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func strPtr(s string) *string { return &s }

func TestContactRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := repository.NewContactRepo(openTestDB(t))

	c, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Nil(t, c, "unseeded settings read as nil")

	at := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	want := repository.ContactSettings{
		EnAddress:    "Heads of Department Building",
		MobileNumber: "0674-000000",
		Email:        "contact@example.org",
		Fax:          "0674-000001",
		UpdatedAt:    at,
	}
	require.NoError(t, repo.Update(ctx, want))
	c, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, want.EnAddress, c.EnAddress)
	assert.Equal(t, want.MobileNumber, c.MobileNumber)
	assert.Equal(t, want.Email, c.Email)
	assert.Equal(t, want.Fax, c.Fax)
	assert.True(t, at.Equal(c.UpdatedAt))
}

func TestFeedbackRepoNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := repository.NewFeedbackRepo(openTestDB(t))

	base := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		at := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Insert(ctx, repository.Feedback{
			ID: name, Name: name, Email: name + "@example.org", Mobile: "9999999999",
			Message: "hello", CreatedAt: at, UpdatedAt: at,
		}))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Name)
	assert.Equal(t, "first", list[2].Name)
	assert.True(t, base.Equal(list[2].CreatedAt))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestBannerRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := repository.NewBannerRepo(openTestDB(t))

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)

	base := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	banners := []repository.HomepageBanner{
		{ID: "b1", Banner: strPtr("one.png"), IsActive: true, CreatedAt: base, UpdatedAt: base},
		{ID: "b2", Banner: strPtr("two.png"), IsActive: false, CreatedAt: base.Add(time.Minute), UpdatedAt: base},
		{ID: "b3", Banner: nil, IsActive: true, CreatedAt: base.Add(2 * time.Minute), UpdatedAt: base},
	}
	for _, b := range banners {
		require.NoError(t, repo.Insert(ctx, b))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"b3", "b2", "b1"}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.Nil(t, all[0].Banner)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1, "inactive and image-less banners are skipped")
	assert.Equal(t, "b1", active[0].ID)

	b2 := banners[1]
	b2.IsActive = true
	ok, err := repo.Update(ctx, b2)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := repo.Get(ctx, "b2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsActive)
	require.NotNil(t, got.Banner)
	assert.Equal(t, "two.png", *got.Banner)

	ok, err = repo.Update(ctx, repository.HomepageBanner{ID: "ghost"})
	require.NoError(t, err)
	assert.False(t, ok)
}
