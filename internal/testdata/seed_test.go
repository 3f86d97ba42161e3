package testdata_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dph/portal/internal/database"
	"github.com/dph/portal/internal/database/repository"
	"github.com/dph/portal/internal/testdata"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "portal.db")
	require.NoError(t, database.RunMigrations(path))
	db, err := database.Open(path)
	require.NoError(t, err)
	defer db.Close()

	repos := testdata.Repos{
		Contact:  repository.NewContactRepo(db),
		Feedback: repository.NewFeedbackRepo(db),
		Banners:  repository.NewBannerRepo(db),
	}
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, testdata.Seed(ctx, repos, now))

	contact, err := repos.Contact.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, contact)
	assert.Equal(t, "contact@example.com", contact.Email)

	n, err := repos.Feedback.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	active, err := repos.Banners.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "welcome.png", *active[0].Banner)

	all, err := repos.Banners.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "winter-closure.png", *all[0].Banner)
	assert.True(t, all[0].UpdatedAt.Before(now))
}
