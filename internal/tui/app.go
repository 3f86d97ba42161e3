package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/dph/portal/internal/client"
	"github.com/dph/portal/internal/contactpage"
	"github.com/dph/portal/internal/database/repository"
	"github.com/dph/portal/internal/highlight"
	"github.com/dph/portal/internal/service"
)

// Backend is what the kiosk reads and writes. service.Portal serves it from
// the local database and client.Client from a remote API.
type Backend interface {
	ContactSettings(ctx context.Context) (repository.ContactSettings, error)
	SubmitFeedback(ctx context.Context, f repository.Feedback) (repository.Feedback, error)
	ListFeedback(ctx context.Context) ([]repository.Feedback, error)
	ListBanners(ctx context.Context) ([]repository.HomepageBanner, error)
	ActiveBanners(ctx context.Context) ([]repository.HomepageBanner, error)
	ToggleBanner(ctx context.Context, id string) (repository.HomepageBanner, error)
}

// Options tunes the kiosk. Zero values fall back to defaults.
type Options struct {
	Order             highlight.Order
	HighlightInterval time.Duration
	CarouselInterval  time.Duration
}

// App ties together views.
type App struct {
	ctx     context.Context
	backend Backend
	keys    *keyRegistry

	state  appState
	modal  modalState
	status string
	width  int
	height int

	// contact page
	contact        repository.ContactSettings
	contactLoading bool
	contactErr     string
	order          highlight.Order
	listen         highlight.State
	listenInterval time.Duration

	// homepage carousel
	carousel         []repository.HomepageBanner
	carouselIdx      int
	carouselGen      uint64
	carouselInterval time.Duration

	// admin views
	feedback     []repository.Feedback
	banners      []repository.HomepageBanner
	feedbackCur  int
	bannerCursor int

	form feedbackForm
}

type appState string

const (
	viewContact  appState = "contact"
	viewFeedback appState = "feedback"
	viewBanners  appState = "banners"
)

var viewCycle = []appState{viewContact, viewFeedback, viewBanners}

type modalState string

const (
	modalNone     modalState = ""
	modalFeedback modalState = "feedback"
)

func New(ctx context.Context, backend Backend, opts Options) *App {
	if opts.Order.Len() == 0 {
		opts.Order = highlight.MustOrder(contactpage.DefaultOrder()...)
	}
	if opts.HighlightInterval <= 0 {
		opts.HighlightInterval = highlight.DefaultInterval
	}
	if opts.CarouselInterval <= 0 {
		opts.CarouselInterval = 5 * time.Second
	}
	return &App{
		ctx:              ctx,
		backend:          backend,
		keys:             defaultKeys(),
		state:            viewContact,
		contactLoading:   true,
		order:            opts.Order,
		listenInterval:   opts.HighlightInterval,
		carouselInterval: opts.CarouselInterval,
		form:             newFeedbackForm(),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadContact(), a.loadCarousel(), a.loadFeedback(), a.loadBanners())
}

func (a *App) loadContact() tea.Cmd {
	return func() tea.Msg {
		c, err := a.backend.ContactSettings(a.ctx)
		if err != nil {
			return contactErrMsg{err}
		}
		return contactMsg(c)
	}
}

func (a *App) loadCarousel() tea.Cmd {
	return func() tea.Msg {
		list, err := a.backend.ActiveBanners(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return carouselMsg(list)
	}
}

func (a *App) loadFeedback() tea.Cmd {
	return func() tea.Msg {
		list, err := a.backend.ListFeedback(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return feedbackListMsg(list)
	}
}

func (a *App) loadBanners() tea.Cmd {
	return func() tea.Msg {
		list, err := a.backend.ListBanners(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return bannerListMsg(list)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a, a.handleModalKey(m)
		}
		act := a.keys.action(m, string(a.state))
		switch act {
		case actQuit:
			a.stopListening()
			return a, tea.Quit
		case actNextView:
			a.switchView(1)
			return a, nil
		case actPrevView:
			a.switchView(-1)
			return a, nil
		case actRefresh:
			a.status = "refreshing..."
			return a, a.Init()
		}
		switch a.state {
		case viewContact:
			return a, a.handleContactAction(act)
		case viewFeedback:
			a.handleFeedbackListAction(act)
		case viewBanners:
			return a, a.handleBannersAction(act)
		}
	case highlightTickMsg:
		return a, a.advanceListening(m.gen)
	case carouselTickMsg:
		return a, a.advanceCarousel(m.gen)
	case contactMsg:
		a.contact = repository.ContactSettings(m)
		a.contactLoading = false
		a.contactErr = ""
	case contactErrMsg:
		zap.S().Errorw("Failed to fetch contact settings", "error", m.err)
		a.contactLoading = false
		a.contactErr = "Failed to load contact information. Please try again later."
	case carouselMsg:
		return a, a.setCarousel([]repository.HomepageBanner(m))
	case feedbackListMsg:
		a.feedback = []repository.Feedback(m)
		if a.feedbackCur >= len(a.feedback) {
			a.feedbackCur = 0
		}
		if a.status == "refreshing..." {
			a.status = ""
		}
	case bannerListMsg:
		a.banners = []repository.HomepageBanner(m)
		if a.bannerCursor >= len(a.banners) {
			a.bannerCursor = 0
		}
	case feedbackSubmittedMsg:
		return a, a.handleFeedbackSubmitted(m)
	case bannerToggledMsg:
		a.status = bannerStatusText(m.banner)
		return a, tea.Batch(a.loadBanners(), a.loadCarousel())
	case errMsg:
		zap.S().Errorw("Kiosk backend error", "error", m.error)
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) View() string {
	var body string
	switch a.state {
	case viewFeedback:
		body = a.renderFeedbackList()
	case viewBanners:
		body = a.renderBanners()
	default:
		body = a.renderContact()
	}
	if a.modal == modalFeedback {
		return renderPopup(body, a.form.view(a.keys.help(scopeModal)), a.width, a.height)
	}
	return body
}

// switchView moves through the views. Leaving the contact page tears down
// the listen sequence.
func (a *App) switchView(delta int) {
	idx := 0
	for i, v := range viewCycle {
		if v == a.state {
			idx = i
		}
	}
	next := viewCycle[(idx+delta+len(viewCycle))%len(viewCycle)]
	if a.state == viewContact && next != viewContact {
		a.stopListening()
	}
	a.state = next
	a.status = ""
}

func (a *App) handleModalKey(m tea.KeyMsg) tea.Cmd {
	switch a.keys.action(m, scopeModal) {
	case actClose:
		a.modal = modalNone
		return nil
	case actQuit:
		a.stopListening()
		return tea.Quit
	case actDown:
		return a.form.next()
	case actUp:
		return a.form.prev()
	case actSubmit:
		if a.form.submitting {
			return nil
		}
		a.form.submitting = true
		a.form.result = ""
		return a.submitFeedbackCmd(a.form.value())
	}
	return a.form.update(m)
}

func (a *App) submitFeedbackCmd(f repository.Feedback) tea.Cmd {
	return func() tea.Msg {
		saved, err := a.backend.SubmitFeedback(a.ctx, f)
		return feedbackSubmittedMsg{feedback: saved, err: err}
	}
}

func (a *App) handleFeedbackSubmitted(m feedbackSubmittedMsg) tea.Cmd {
	a.form.submitting = false
	var rejected *client.StatusError
	switch {
	case errors.Is(m.err, service.ErrMissingFields):
		a.form.result = "All fields are required."
		a.form.resultErr = true
		return nil
	case errors.As(m.err, &rejected) && rejected.Code < 500 && rejected.Message != "":
		a.form.result = rejected.Message
		a.form.resultErr = true
		return nil
	case m.err != nil:
		zap.S().Errorw("Error submitting feedback", "error", m.err)
		a.form.result = "Failed to submit feedback. Try again later."
		a.form.resultErr = true
		return nil
	}
	a.form.result = "Thank you for your feedback!"
	a.form.resultErr = false
	return tea.Batch(a.form.clear(), a.loadFeedback())
}

type contactMsg repository.ContactSettings

type contactErrMsg struct{ err error }

type carouselMsg []repository.HomepageBanner

type feedbackListMsg []repository.Feedback

type bannerListMsg []repository.HomepageBanner

type feedbackSubmittedMsg struct {
	feedback repository.Feedback
	err      error
}

type bannerToggledMsg struct {
	banner repository.HomepageBanner
}

type errMsg struct{ error }
