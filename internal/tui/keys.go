package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const scopeModal = "modal"

type keyAction string

const (
	actQuit     keyAction = "quit"
	actNextView keyAction = "next-view"
	actPrevView keyAction = "prev-view"
	actRefresh  keyAction = "refresh"
	actListen   keyAction = "listen"
	actFeedback keyAction = "feedback"
	actDown     keyAction = "down"
	actUp       keyAction = "up"
	actToggle   keyAction = "toggle"
	actClose    keyAction = "close"
	actSubmit   keyAction = "submit"
)

// keyBinding maps keys to an action within the listed scopes. Label is the
// footer text; bindings without one are not advertised.
type keyBinding struct {
	Keys   []string
	Action keyAction
	Label  string
	Scopes []string
}

type keyRegistry struct {
	bindings []keyBinding
}

var views = []string{string(viewContact), string(viewFeedback), string(viewBanners)}

func defaultKeys() *keyRegistry {
	lists := []string{string(viewFeedback), string(viewBanners)}
	return &keyRegistry{bindings: []keyBinding{
		{Keys: []string{"l", "enter"}, Action: actListen, Label: "[l] Listen", Scopes: []string{string(viewContact)}},
		{Keys: []string{"f"}, Action: actFeedback, Label: "[f] Feedback", Scopes: []string{string(viewContact)}},
		{Keys: []string{"j", "down"}, Action: actDown, Label: "[j/k] Move", Scopes: lists},
		{Keys: []string{"k", "up"}, Action: actUp, Scopes: lists},
		{Keys: []string{" ", "space"}, Action: actToggle, Label: "[space] Toggle status", Scopes: []string{string(viewBanners)}},
		{Keys: []string{"tab"}, Action: actNextView, Label: "[tab] Next view", Scopes: views},
		{Keys: []string{"shift+tab"}, Action: actPrevView, Scopes: views},
		{Keys: []string{"r"}, Action: actRefresh, Label: "[r] Refresh", Scopes: views},
		{Keys: []string{"q", "ctrl+c"}, Action: actQuit, Label: "[q] Quit", Scopes: views},

		{Keys: []string{"tab", "down"}, Action: actDown, Label: "[tab] Next", Scopes: []string{scopeModal}},
		{Keys: []string{"shift+tab", "up"}, Action: actUp, Label: "[shift+tab] Prev", Scopes: []string{scopeModal}},
		{Keys: []string{"enter"}, Action: actSubmit, Label: "[enter] Submit", Scopes: []string{scopeModal}},
		{Keys: []string{"esc"}, Action: actClose, Label: "[esc] Close", Scopes: []string{scopeModal}},
		{Keys: []string{"ctrl+c"}, Action: actQuit, Scopes: []string{scopeModal}},
	}}
}

// action returns the action bound to msg in scope, or "".
func (r *keyRegistry) action(msg tea.KeyMsg, scope string) keyAction {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

// help renders the advertised bindings for scope on one line.
func (r *keyRegistry) help(scope string) string {
	var parts []string
	for _, b := range r.bindings {
		if b.Label != "" && scopeMatch(scope, b.Scopes) {
			parts = append(parts, b.Label)
		}
	}
	return strings.Join(parts, "  ")
}

func normalizeKey(k string) string {
	if k == " " {
		return k
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	for _, s := range scopes {
		if s == scope {
			return true
		}
	}
	return false
}
