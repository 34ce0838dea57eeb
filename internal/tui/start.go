package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tobin/waypoint/internal/router"
)

func (m Model) updateStart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.keys.IsAction(msg, "select-item", scopeStart):
		return m, router.NavigateCmd(router.ItemSelection())
	case m.keys.IsAction(msg, "about", scopeStart):
		return m, router.NavigateCmd(router.About())
	case m.keys.IsAction(msg, "continue", scopeStart):
		// Gated here, not in the router: the router itself accepts a
		// TabView with any item.
		item, ok := m.router.SelectedItem()
		if !ok {
			m.setStatus("Select an item before continuing")
			return m, nil
		}
		return m, router.NavigateCmd(router.TabView(item))
	}
	return m, nil
}

func (m Model) viewStart(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Waypoint"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Router-driven navigation demo"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s  select an item\n", selectedStyle.Render("enter")))

	cont := fmt.Sprintf("%s      continue", selectedStyle.Render("c"))
	if item, ok := m.router.SelectedItem(); ok {
		cont += mutedStyle.Render(fmt.Sprintf(" (%s)", item))
	} else {
		cont = dimStyle.Render("c      continue (no item selected)")
	}
	b.WriteString(cont)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s      about\n", selectedStyle.Render("a")))
	return centerCard(b.String(), width, height)
}
