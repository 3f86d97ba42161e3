package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dph/portal/internal/database/repository"
)

// carouselTickMsg rotates the homepage carousel. Ticks from an older
// generation are dropped, so reloading the banner list restarts the cycle.
type carouselTickMsg struct{ gen uint64 }

func (a *App) setCarousel(list []repository.HomepageBanner) tea.Cmd {
	a.carousel = list
	a.carouselIdx = 0
	a.carouselGen++
	if len(list) < 2 {
		return nil
	}
	return a.carouselTick(a.carouselGen)
}

func (a *App) advanceCarousel(gen uint64) tea.Cmd {
	if gen != a.carouselGen || len(a.carousel) < 2 {
		return nil
	}
	a.carouselIdx = (a.carouselIdx + 1) % len(a.carousel)
	return a.carouselTick(gen)
}

func (a *App) carouselTick(gen uint64) tea.Cmd {
	return tea.Tick(a.carouselInterval, func(time.Time) tea.Msg {
		return carouselTickMsg{gen: gen}
	})
}

func (a *App) renderCarousel() string {
	if len(a.carousel) == 0 {
		return mutedStyle.Render("No banners to show.")
	}
	b := a.carousel[a.carouselIdx]
	dots := make([]string, len(a.carousel))
	for i := range a.carousel {
		if i == a.carouselIdx {
			dots[i] = "●"
		} else {
			dots[i] = "○"
		}
	}
	return cardStyle.Render(headingStyle.Render("Banner") + "\n" + bannerName(b) + "\n" + mutedStyle.Render(strings.Join(dots, " ")))
}

func (a *App) handleBannersAction(act keyAction) tea.Cmd {
	switch act {
	case actDown:
		if a.bannerCursor < len(a.banners)-1 {
			a.bannerCursor++
		}
	case actUp:
		if a.bannerCursor > 0 {
			a.bannerCursor--
		}
	case actToggle:
		if len(a.banners) == 0 {
			return nil
		}
		id := a.banners[a.bannerCursor].ID
		return func() tea.Msg {
			b, err := a.backend.ToggleBanner(a.ctx, id)
			if err != nil {
				return errMsg{err}
			}
			return bannerToggledMsg{banner: b}
		}
	}
	return nil
}

func (a *App) renderBanners() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Homepage Banners"))
	b.WriteString("\n\n")
	if len(a.banners) == 0 {
		b.WriteString(mutedStyle.Render("No banners uploaded."))
		b.WriteString("\n")
	}
	for i, banner := range a.banners {
		cursor := "  "
		if i == a.bannerCursor {
			cursor = focusStyle.Render("> ")
		}
		status := errorStyle.Render("inactive")
		if banner.IsActive {
			status = successStyle.Render("active  ")
		}
		fmt.Fprintf(&b, "%s%s  %-32s  %s\n", cursor, status, bannerName(banner), mutedStyle.Render(banner.CreatedAt.Format("2006-01-02 15:04")))
	}
	b.WriteString("\n")
	b.WriteString(a.footer())
	return b.String()
}

func bannerName(b repository.HomepageBanner) string {
	if b.Banner == nil || *b.Banner == "" {
		return "(no image)"
	}
	return *b.Banner
}

func bannerStatusText(b repository.HomepageBanner) string {
	if b.IsActive {
		return "Homepage banner status changed to Active"
	}
	return "Homepage banner status changed to Inactive"
}
