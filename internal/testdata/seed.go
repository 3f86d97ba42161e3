// Package testdata fills a portal database with sample records for demos
// and manual testing of the kiosk.
package testdata

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dph/portal/internal/database/repository"
)

// Repos bundles repos used by Seed.
type Repos struct {
	Contact  *repository.ContactRepo
	Feedback *repository.FeedbackRepo
	Banners  *repository.BannerRepo
}

// Seed writes sample contact settings, feedback and banners. Records are
// timestamped one minute apart ending at now, so list order is stable.
func Seed(ctx context.Context, repos Repos, now time.Time) error {
	if err := repos.Contact.Update(ctx, repository.ContactSettings{
		EnAddress:    "12 Sample Street, Demo City",
		MobileNumber: "+1 555 0100",
		Email:        "contact@example.com",
		Fax:          "+1 555 0199",
		UpdatedAt:    now,
	}); err != nil {
		return fmt.Errorf("seed contact: %w", err)
	}

	samples := []struct{ name, message string }{
		{"Amal", "The new opening hours are much better."},
		{"Jonas", "Could you add parking information?"},
		{"Priya", "Staff at the front desk were very helpful."},
	}
	at := now.Add(-time.Duration(len(samples)+3) * time.Minute)
	next := func() time.Time {
		at = at.Add(time.Minute)
		return at
	}
	for i, s := range samples {
		ts := next()
		if err := repos.Feedback.Insert(ctx, repository.Feedback{
			ID:        uuid.NewString(),
			Name:      s.name,
			Email:     fmt.Sprintf("visitor%d@example.com", i+1),
			Mobile:    fmt.Sprintf("555010%d", i+1),
			Message:   s.message,
			CreatedAt: ts,
			UpdatedAt: ts,
		}); err != nil {
			return fmt.Errorf("seed feedback: %w", err)
		}
	}

	banners := []struct {
		file   string
		active bool
	}{
		{"welcome.png", true},
		{"open-day.png", true},
		{"winter-closure.png", false},
	}
	for _, b := range banners {
		ts := next()
		file := b.file
		if err := repos.Banners.Insert(ctx, repository.HomepageBanner{
			ID:        uuid.NewString(),
			Banner:    &file,
			IsActive:  b.active,
			CreatedAt: ts,
			UpdatedAt: ts,
		}); err != nil {
			return fmt.Errorf("seed banners: %w", err)
		}
	}
	return nil
}
