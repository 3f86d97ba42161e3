package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func (a *App) handleFeedbackListAction(act keyAction) {
	switch act {
	case actDown:
		if a.feedbackCur < len(a.feedback)-1 {
			a.feedbackCur++
		}
	case actUp:
		if a.feedbackCur > 0 {
			a.feedbackCur--
		}
	}
}

func (a *App) renderFeedbackList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Feedback (%d)", len(a.feedback))))
	b.WriteString("\n\n")
	if len(a.feedback) == 0 {
		b.WriteString(mutedStyle.Render("No feedback yet."))
		b.WriteString("\n")
	}
	for i, f := range a.feedback {
		cursor := "  "
		if i == a.feedbackCur {
			cursor = focusStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s  %-20s  %s\n", cursor,
			mutedStyle.Render(f.CreatedAt.Format("2006-01-02 15:04")),
			ansi.Truncate(f.Name, 20, "…"),
			ansi.Truncate(f.Message, 48, "…"))
	}
	if len(a.feedback) > 0 {
		f := a.feedback[a.feedbackCur]
		b.WriteString("\n")
		b.WriteString(cardStyle.Width(72).Render(
			headingStyle.Render(f.Name) + "\n" +
				mutedStyle.Render(f.Email+"  "+f.Mobile) + "\n\n" + f.Message))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(a.footer())
	return b.String()
}
