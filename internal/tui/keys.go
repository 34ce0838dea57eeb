package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Scopes name the screen a binding is valid in; the footer only shows
// bindings for the active scope.
const (
	scopeStart   = "screen:start"
	scopeSelect  = "screen:select"
	scopeDetails = "screen:details"
	scopeTabs    = "screen:tabs"
	scopeAbout   = "screen:about"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

// DefaultBindings covers every screen. The quit binding deliberately skips
// the selection scope so "q" can be typed into the filter.
func DefaultBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{scopeStart, scopeDetails, scopeTabs, scopeAbout}},

		{Keys: []string{"enter", "s"}, Action: "select-item", Description: "select an item", Scopes: []string{scopeStart}},
		{Keys: []string{"c"}, Action: "continue", Description: "continue", Scopes: []string{scopeStart}},
		{Keys: []string{"a"}, Action: "about", Description: "about", Scopes: []string{scopeStart}},

		{Keys: []string{"up"}, Action: "cursor-up", Description: "up", Scopes: []string{scopeSelect}},
		{Keys: []string{"down"}, Action: "cursor-down", Description: "down", Scopes: []string{scopeSelect}},
		{Keys: []string{"enter"}, Action: "open-details", Description: "open details", Scopes: []string{scopeSelect}},
		{Keys: []string{"esc"}, Action: "back", Description: "back", Scopes: []string{scopeSelect, scopeDetails, scopeAbout}},

		{Keys: []string{"enter"}, Action: "open-tabs", Description: "open tab view", Scopes: []string{scopeDetails}},

		{Keys: []string{"1"}, Action: "tab-main", Description: "main tab", Scopes: []string{scopeTabs}},
		{Keys: []string{"2"}, Action: "tab-second", Description: "second tab", Scopes: []string{scopeTabs}},
		{Keys: []string{"d"}, Action: "push-detail", Description: "push detail", Scopes: []string{scopeTabs}},
		{Keys: []string{"s"}, Action: "push-settings", Description: "push settings", Scopes: []string{scopeTabs}},
		{Keys: []string{"p"}, Action: "push-profile", Description: "push profile", Scopes: []string{scopeTabs}},
		{Keys: []string{"c"}, Action: "clear-main-path", Description: "clear main path", Scopes: []string{scopeTabs}},
		{Keys: []string{"a"}, Action: "toggle-animation", Description: "toggle animation", Scopes: []string{scopeTabs}},
		{Keys: []string{"esc"}, Action: "pop", Description: "pop / back", Scopes: []string{scopeTabs}},
	}
}
