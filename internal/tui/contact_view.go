package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/dph/portal/internal/contactpage"
	"github.com/dph/portal/internal/highlight"
)

// highlightTickMsg is the delayed advance scheduled under gen.
type highlightTickMsg struct{ gen uint64 }

func (a *App) handleContactAction(act keyAction) tea.Cmd {
	switch act {
	case actListen:
		return a.toggleListening()
	case actFeedback:
		a.modal = modalFeedback
		a.form.result = ""
		return a.form.setFocus(a.form.focus)
	}
	return nil
}

func (a *App) toggleListening() tea.Cmd {
	next, schedule := highlight.Toggle(a.order, a.listen)
	a.listen = next
	zap.S().Debugw("Listen toggled", "active", next.Active, "cursor", next.Cursor)
	if !schedule {
		return nil
	}
	return a.highlightTick(next.Gen)
}

func (a *App) advanceListening(gen uint64) tea.Cmd {
	next, schedule := highlight.Advance(a.order, a.listen, gen)
	a.listen = next
	if !schedule {
		return nil
	}
	return a.highlightTick(next.Gen)
}

// stopListening drops any in-flight tick by moving past its generation.
func (a *App) stopListening() {
	if a.listen.Active {
		a.listen, _ = highlight.Toggle(a.order, a.listen)
	}
}

func (a *App) highlightTick(gen uint64) tea.Cmd {
	return tea.Tick(a.listenInterval, func(time.Time) tea.Msg {
		return highlightTickMsg{gen: gen}
	})
}

// region renders the text for id, marked when it is the highlighted region.
func (a *App) region(texts map[string]string, id string, style lipgloss.Style) string {
	text := texts[id]
	if a.listen.Cursor == id {
		return highlightStyle.Render("▸ " + text)
	}
	return style.Render(text)
}

func (a *App) renderContact() string {
	texts := contactpage.Texts(a.contact, a.contactLoading)
	r := func(id string, style lipgloss.Style) string { return a.region(texts, id, style) }

	var b strings.Builder
	b.WriteString(r(contactpage.PageTitle, titleStyle))
	b.WriteString("  ")
	if a.listen.Active {
		b.WriteString(listeningStyle.Render("● Listening " + a.listenLabel() + "  [l] Stop"))
	} else {
		b.WriteString(idleStyle.Render("◌ Listen  [l]"))
	}
	b.WriteString("\n\n")

	if a.contactErr != "" {
		b.WriteString(errorStyle.Render(a.contactErr))
		b.WriteString("\n\n")
	}

	fax := a.contact.Fax
	if a.contactLoading {
		fax = contactpage.Loading
	}
	cards := []string{
		cardStyle.Render(r(contactpage.AddressTitle, headingStyle) + "\n" + r(contactpage.AddressContent, lipgloss.NewStyle())),
		cardStyle.Render(r(contactpage.CallTitle, headingStyle) + "\n" + r(contactpage.CallContent, lipgloss.NewStyle())),
		cardStyle.Render(r(contactpage.EmailTitle, headingStyle) + "\n" + r(contactpage.EmailContent, lipgloss.NewStyle())),
		cardStyle.Render(r(contactpage.FaxTitle, headingStyle) + "\n" + fax),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1]))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards[2], cards[3]))
	b.WriteString("\n\n")

	b.WriteString(r(contactpage.FeedbackTitle, headingStyle))
	b.WriteString(" ")
	b.WriteString(r(contactpage.FeedbackSubtitle, mutedStyle))
	b.WriteString("\n\n")

	b.WriteString(a.renderCarousel())
	b.WriteString("\n")
	b.WriteString(a.footer())
	return b.String()
}

func (a *App) footer() string {
	keys := a.keys.help(string(a.state))
	if a.status != "" {
		return footerStyle.Render(keys) + "\n" + infoStyle.Render(a.status)
	}
	return footerStyle.Render(keys)
}

func (a *App) listenLabel() string {
	if !a.listen.Active {
		return "idle"
	}
	i, _ := a.order.Index(a.listen.Cursor)
	return fmt.Sprintf("%s (%d/%d)", a.listen.Cursor, i+1, a.order.Len())
}
