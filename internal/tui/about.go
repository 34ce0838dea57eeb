package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tobin/waypoint/internal/router"
)

const version = "0.1.0"

func (m Model) updateAbout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsAction(msg, "back", scopeAbout) {
		return m, router.NavigateDirCmd(router.Start(), router.Left)
	}
	return m, nil
}

func (m Model) viewAbout(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Waypoint " + version))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("One router object drives every screen change,"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("picks the transition direction and keeps a stack per tab."))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Recent navigations"))
	b.WriteString("\n")

	journal := m.router.Journal()
	if len(journal) == 0 {
		b.WriteString(mutedStyle.Render("none yet"))
	}
	const showMax = 8
	start := 0
	if len(journal) > showMax {
		start = len(journal) - showMax
	}
	for _, rec := range journal[start:] {
		b.WriteString(fmt.Sprintf("%s  %s → %s (%s)\n",
			mutedStyle.Render(rec.At.Format("15:04:05")), rec.From, rec.To, rec.Direction))
	}
	return centerCard(b.String(), width, height)
}
