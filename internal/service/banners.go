package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dph/portal/internal/database"
	"github.com/dph/portal/internal/database/repository"
)

// BannerService manages homepage banner records. Image files themselves are
// stored elsewhere; only their filenames are kept here.
type BannerService struct {
	Repo *repository.BannerRepo
	Now  func() time.Time
}

// BannerUpdate holds optional changes to a banner. A non-nil empty Banner
// clears the stored filename.
type BannerUpdate struct {
	Banner   *string
	IsActive *bool
}

// Create records a new, active banner for filename.
func (s *BannerService) Create(ctx context.Context, filename string) (repository.HomepageBanner, error) {
	name := cleanFilename(filename)
	if name == "" {
		return repository.HomepageBanner{}, ErrBannerRequired
	}
	now := s.now()
	b := repository.HomepageBanner{
		ID:        uuid.NewString(),
		Banner:    &name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Insert(ctx, b); err != nil {
		return repository.HomepageBanner{}, fmt.Errorf("insert banner: %w", err)
	}
	return b, nil
}

// List returns every banner, newest first.
func (s *BannerService) List(ctx context.Context) ([]repository.HomepageBanner, error) {
	list, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	return list, nil
}

// ListActive returns the banners the homepage carousel shows.
func (s *BannerService) ListActive(ctx context.Context) ([]repository.HomepageBanner, error) {
	list, err := s.Repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active banners: %w", err)
	}
	return list, nil
}

func (s *BannerService) Get(ctx context.Context, id string) (repository.HomepageBanner, error) {
	b, err := s.Repo.Get(ctx, id)
	if err != nil {
		return repository.HomepageBanner{}, fmt.Errorf("get banner %s: %w", id, err)
	}
	if b == nil {
		return repository.HomepageBanner{}, ErrNotFound
	}
	return *b, nil
}

// Update applies u to the banner with id.
func (s *BannerService) Update(ctx context.Context, id string, u BannerUpdate) (repository.HomepageBanner, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return repository.HomepageBanner{}, err
	}
	if u.Banner != nil {
		if name := cleanFilename(*u.Banner); name != "" {
			b.Banner = &name
		} else {
			b.Banner = nil
		}
	}
	if u.IsActive != nil {
		b.IsActive = *u.IsActive
	}
	return s.save(ctx, b)
}

// ToggleStatus flips the banner's active flag.
func (s *BannerService) ToggleStatus(ctx context.Context, id string) (repository.HomepageBanner, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return repository.HomepageBanner{}, err
	}
	b.IsActive = !b.IsActive
	return s.save(ctx, b)
}

func (s *BannerService) save(ctx context.Context, b repository.HomepageBanner) (repository.HomepageBanner, error) {
	b.UpdatedAt = s.now()
	ok, err := s.Repo.Update(ctx, b)
	if err != nil {
		return repository.HomepageBanner{}, fmt.Errorf("update banner %s: %w", b.ID, err)
	}
	if !ok {
		return repository.HomepageBanner{}, ErrNotFound
	}
	return b, nil
}

func (s *BannerService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return database.Now()
}

// cleanFilename keeps the base name of a stored upload path, normalising
// Windows separators.
func cleanFilename(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, `\`, "/"))
	if name == "" {
		return ""
	}
	base := path.Base(name)
	if base == "." || base == "/" {
		return ""
	}
	return base
}
