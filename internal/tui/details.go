package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tobin/waypoint/internal/catalog"
	"github.com/tobin/waypoint/internal/router"
)

func (m Model) updateDetails(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.keys.IsAction(msg, "back", scopeDetails):
		return m, router.NavigateDirCmd(router.ItemSelection(), router.Left)
	case m.keys.IsAction(msg, "open-tabs", scopeDetails):
		return m, router.NavigateCmd(router.TabView(m.router.Current().Item))
	}
	return m, nil
}

func (m Model) viewDetails(width, height int) string {
	name := m.router.Current().Item
	var b strings.Builder
	b.WriteString(titleStyle.Render(name))
	b.WriteString("\n\n")
	if it, ok := m.itemNamed(name); ok {
		b.WriteString(it.Description)
	} else {
		b.WriteString(mutedStyle.Render("This item is not in the catalog."))
	}
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s  open the tab view\n", selectedStyle.Render("enter")))
	b.WriteString(fmt.Sprintf("%s    back to selection\n", selectedStyle.Render("esc")))
	return centerCard(b.String(), width, height)
}

func (m Model) itemNamed(name string) (catalog.Item, bool) {
	for _, it := range m.items {
		if it.Name == name {
			return it, true
		}
	}
	return catalog.Item{}, false
}
