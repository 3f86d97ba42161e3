package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKeyRegistryScopes(t *testing.T) {
	t.Parallel()
	r := defaultKeys()

	assert.Equal(t, actListen, r.action(key("l"), string(viewContact)))
	assert.Equal(t, actListen, r.action(key("enter"), string(viewContact)))
	assert.Empty(t, r.action(key("l"), string(viewBanners)))
	assert.Equal(t, actToggle, r.action(key(" "), string(viewBanners)))
	assert.Empty(t, r.action(key(" "), string(viewFeedback)))
	assert.Equal(t, actQuit, r.action(key("Q"), string(viewFeedback)))

	// Printable keys belong to the form while the modal is open.
	assert.Empty(t, r.action(key("q"), scopeModal))
	assert.Equal(t, actQuit, r.action(tea.KeyMsg{Type: tea.KeyCtrlC}, scopeModal))
	assert.Equal(t, actDown, r.action(key("tab"), scopeModal))
	assert.Equal(t, actSubmit, r.action(key("enter"), scopeModal))
}

func TestKeyRegistryHelp(t *testing.T) {
	t.Parallel()
	r := defaultKeys()

	assert.Equal(t, "[l] Listen  [f] Feedback  [tab] Next view  [r] Refresh  [q] Quit", r.help(string(viewContact)))
	assert.Contains(t, r.help(string(viewBanners)), "[space] Toggle status")
	assert.NotContains(t, r.help(string(viewFeedback)), "[space]")
	assert.Equal(t, "[tab] Next  [shift+tab] Prev  [enter] Submit  [esc] Close", r.help(scopeModal))
}
