package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/dph/portal/internal/database"
	"github.com/dph/portal/internal/database/repository"
)

const contactCacheKey = "contact_settings"

// ContactService serves the contact settings, caching reads for TTL.
type ContactService struct {
	Repo  *repository.ContactRepo
	cache *cache.Cache
}

// NewContactService returns a service caching reads for ttl. A non-positive
// ttl disables caching.
func NewContactService(repo *repository.ContactRepo, ttl time.Duration) *ContactService {
	s := &ContactService{Repo: repo}
	if ttl > 0 {
		s.cache = cache.New(ttl, 2*ttl)
	}
	return s
}

func (s *ContactService) Get(ctx context.Context) (repository.ContactSettings, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(contactCacheKey); ok {
			return v.(repository.ContactSettings), nil
		}
	}
	c, err := s.Repo.Get(ctx)
	if err != nil {
		return repository.ContactSettings{}, fmt.Errorf("get contact settings: %w", err)
	}
	if c == nil {
		return repository.ContactSettings{}, ErrNotFound
	}
	if s.cache != nil {
		s.cache.Set(contactCacheKey, *c, cache.DefaultExpiration)
	}
	return *c, nil
}

// Update replaces the contact settings and drops the cached copy.
func (s *ContactService) Update(ctx context.Context, c repository.ContactSettings) (repository.ContactSettings, error) {
	c.EnAddress = strings.TrimSpace(c.EnAddress)
	c.MobileNumber = strings.TrimSpace(c.MobileNumber)
	c.Email = strings.TrimSpace(c.Email)
	c.Fax = strings.TrimSpace(c.Fax)
	c.UpdatedAt = database.Now()
	if err := s.Repo.Update(ctx, c); err != nil {
		return repository.ContactSettings{}, fmt.Errorf("update contact settings: %w", err)
	}
	if s.cache != nil {
		s.cache.Delete(contactCacheKey)
	}
	return c, nil
}
