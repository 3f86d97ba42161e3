package database

import (
	"context"
	"database/sql"

	"github.com/dph/portal/internal/database/repository"
)

// SeedDefaults ensures the contact settings row exists, blank until an
// administrator fills it in.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	repo := repository.NewContactRepo(db)
	existing, err := repo.Get(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return repo.Update(ctx, repository.ContactSettings{UpdatedAt: Now()})
}
