package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dph/portal/internal/database/repository"
)

const (
	fieldName = iota
	fieldEmail
	fieldMobile
	fieldMessage
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Email", "Mobile No", "Message"}

// feedbackForm is the "drop us your feedback" modal.
type feedbackForm struct {
	inputs     [fieldCount]textinput.Model
	focus      int
	submitting bool
	result     string
	resultErr  bool
}

func newFeedbackForm() feedbackForm {
	var f feedbackForm
	placeholders := [fieldCount]string{"Name", "E-mail", "Mobile number", "Your message"}
	limits := [fieldCount]int{100, 254, 20, 1000}
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholders[i]
		in.CharLimit = limits[i]
		in.Width = 40
		f.inputs[i] = in
	}
	f.inputs[fieldName].Focus()
	return f
}

func (f *feedbackForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (i + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

func (f *feedbackForm) next() tea.Cmd { return f.setFocus(f.focus + 1) }
func (f *feedbackForm) prev() tea.Cmd { return f.setFocus(f.focus - 1) }

// update forwards msg to the focused field.
func (f *feedbackForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f feedbackForm) value() repository.Feedback {
	return repository.Feedback{
		Name:    f.inputs[fieldName].Value(),
		Email:   f.inputs[fieldEmail].Value(),
		Mobile:  f.inputs[fieldMobile].Value(),
		Message: f.inputs[fieldMessage].Value(),
	}
}

// clear empties every field and returns focus to the first one.
func (f *feedbackForm) clear() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	return f.setFocus(fieldName)
}

// view renders the form with help as its key footer.
func (f feedbackForm) view(help string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Feel free to drop us your feedback!"))
	b.WriteString("\n\n")
	for i, in := range f.inputs {
		label := fmt.Sprintf("%s *", fieldLabels[i])
		if i == f.focus {
			label = focusStyle.Render("▶ " + label)
		} else {
			label = "  " + label
		}
		b.WriteString(label + "\n  " + in.View() + "\n")
	}
	b.WriteString("\n")
	switch {
	case f.submitting:
		b.WriteString(infoStyle.Render("Submitting..."))
	case f.result != "" && f.resultErr:
		b.WriteString(errorStyle.Render(f.result))
	case f.result != "":
		b.WriteString(successStyle.Render(f.result))
	}
	b.WriteString("\n" + footerStyle.Render(help))
	return b.String()
}
