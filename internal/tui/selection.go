package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tobin/waypoint/internal/router"
)

func (m Model) updateSelection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ranked := rankItems(m.items, m.query)
	switch {
	case m.keys.IsAction(msg, "back", scopeSelect):
		return m, router.NavigateDirCmd(router.Start(), router.Left)
	case m.keys.IsAction(msg, "cursor-up", scopeSelect):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case m.keys.IsAction(msg, "cursor-down", scopeSelect):
		if m.cursor < len(ranked)-1 {
			m.cursor++
		}
		return m, nil
	case m.keys.IsAction(msg, "open-details", scopeSelect):
		if len(ranked) == 0 {
			return m, nil
		}
		if m.cursor >= len(ranked) {
			m.cursor = len(ranked) - 1
		}
		return m, router.NavigateCmd(router.ItemDetails(ranked[m.cursor].Name))
	}
	switch msg.Type {
	case tea.KeyBackspace:
		if len(m.query) > 0 {
			m.query = m.query[:len(m.query)-1]
			m.cursor = 0
		}
	case tea.KeyRunes, tea.KeySpace:
		m.query += msg.String()
		m.cursor = 0
	}
	return m, nil
}

func (m Model) viewSelection(width, height int) string {
	ranked := rankItems(m.items, m.query)
	cursor := m.cursor
	if cursor >= len(ranked) {
		cursor = max(0, len(ranked)-1)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Select an item"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Filter: ") + m.query + selectedStyle.Render("▌"))
	b.WriteString("\n\n")
	if len(ranked) == 0 {
		b.WriteString(mutedStyle.Render("No items in the catalog"))
	}
	for i, it := range ranked {
		marker := "  "
		line := it.Name
		if i == cursor {
			marker = selectedStyle.Render("> ")
			line = selectedStyle.Render(line)
		}
		b.WriteString(fmt.Sprintf("%s%s\n", marker, line))
	}
	if len(ranked) > 0 {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(ranked[cursor].Description))
	}
	return centerCard(b.String(), width, height)
}
