package service

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/dph/portal/internal/database"
)

// MaintenanceService houses destructive ops actions exposed by the CLI.
type MaintenanceService struct {
	DB *sql.DB
}

// Reset wipes all portal data. It keeps the schema intact; the contact row
// is re-seeded blank on the next start.
func (s *MaintenanceService) Reset(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		tables := []string{
			"feedback",
			"homepage_banners",
			"contact_settings",
		}
		for _, t := range tables {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
		}
		return nil
	}); err != nil {
		return err
	}
	s.vacuum(ctx)
	return nil
}

// vacuum reclaims space after a wipe. Errors are logged, not returned.
func (s *MaintenanceService) vacuum(ctx context.Context) {
	if _, err := s.DB.ExecContext(ctx, "VACUUM"); err != nil {
		zap.S().Warnw("VACUUM after reset failed", "error", err)
	}
}
