package service

import (
	"context"

	"github.com/dph/portal/internal/database/repository"
)

// Portal bundles the services the kiosk needs when it runs next to the
// database instead of against a remote API.
type Portal struct {
	Contact  *ContactService
	Feedback *FeedbackService
	Banners  *BannerService
}

func (p *Portal) ContactSettings(ctx context.Context) (repository.ContactSettings, error) {
	return p.Contact.Get(ctx)
}

func (p *Portal) SubmitFeedback(ctx context.Context, f repository.Feedback) (repository.Feedback, error) {
	return p.Feedback.Submit(ctx, f)
}

func (p *Portal) ListFeedback(ctx context.Context) ([]repository.Feedback, error) {
	return p.Feedback.List(ctx)
}

func (p *Portal) ListBanners(ctx context.Context) ([]repository.HomepageBanner, error) {
	return p.Banners.List(ctx)
}

func (p *Portal) ActiveBanners(ctx context.Context) ([]repository.HomepageBanner, error) {
	return p.Banners.ListActive(ctx)
}

func (p *Portal) ToggleBanner(ctx context.Context, id string) (repository.HomepageBanner, error) {
	return p.Banners.ToggleStatus(ctx, id)
}
