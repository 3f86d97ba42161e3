package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dph/portal/internal/api"
	"github.com/dph/portal/internal/database"
	"github.com/dph/portal/internal/database/repository"
	"github.com/dph/portal/internal/service"
)

type fixture struct {
	client  *Client
	banners *service.BannerService
	contact *service.ContactService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "client.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.SeedDefaults(context.Background(), db))

	step := time.Date(2025, 9, 15, 9, 0, 0, 0, time.UTC)
	now := func() time.Time {
		step = step.Add(time.Minute)
		return step
	}
	srv := &api.Server{
		Contact:  service.NewContactService(repository.NewContactRepo(db), 0),
		Feedback: &service.FeedbackService{Repo: repository.NewFeedbackRepo(db), Now: now},
		Banners:  &service.BannerService{Repo: repository.NewBannerRepo(db), Now: now},
		DB:       db,
	}
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	c, err := New(ts.URL+"/", WithHTTPClient(ts.Client()))
	require.NoError(t, err)
	return fixture{client: c, banners: srv.Banners, contact: srv.Contact}
}

func TestNewRejectsBadURL(t *testing.T) {
	_, err := New("ftp://example.org")
	require.Error(t, err)
	_, err = New("://nope")
	require.Error(t, err)
}

func TestContactSettings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.contact.Update(ctx, repository.ContactSettings{EnAddress: "Block A", MobileNumber: "12345", Email: "a@b.c"})
	require.NoError(t, err)

	c, err := f.client.ContactSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Block A", c.EnAddress)
	assert.Equal(t, "12345", c.MobileNumber)
	assert.Equal(t, "a@b.c", c.Email)
}

func TestFeedbackRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.client.SubmitFeedback(ctx, repository.Feedback{Name: "Asha"})
	require.ErrorIs(t, err, service.ErrMissingFields)
	assert.Contains(t, err.Error(), "All fields are required.")

	fb, err := f.client.SubmitFeedback(ctx, repository.Feedback{Name: "Asha", Email: "a@b.c", Mobile: "999", Message: "thanks"})
	require.NoError(t, err)
	assert.NotEmpty(t, fb.ID)

	list, err := f.client.ListFeedback(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, fb.ID, list[0].ID)
}

func TestBanners(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.banners.Create(ctx, "first.png")
	require.NoError(t, err)
	second, err := f.banners.Create(ctx, "second.png")
	require.NoError(t, err)
	hidden, err := f.banners.Create(ctx, "hidden.png")
	require.NoError(t, err)

	toggled, err := f.client.ToggleBanner(ctx, hidden.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	all, err := f.client.ListBanners(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := f.client.ActiveBanners(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, second.ID, active[1].ID)

	_, err = f.client.ToggleBanner(ctx, "missing")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestStatusErrorMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Internal server error"}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	require.NoError(t, err)
	_, err = c.ContactSettings(context.Background())
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.Code)
	assert.Equal(t, "Internal server error", se.Message)
}
