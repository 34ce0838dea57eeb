package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tobin/waypoint/internal/config"
	"github.com/tobin/waypoint/internal/router"
)

// The tab views integrate with the router the way native stack navigation
// does: they push and pop the per-tab stacks directly (always from inside
// Update) while full-screen changes still go through navigation commands.
func (m Model) updateTabs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, _ := m.router.SelectedItem()
	switch {
	case m.keys.IsAction(msg, "tab-main", scopeTabs):
		return m, router.SwitchTabCmd(router.TabMain)
	case m.keys.IsAction(msg, "tab-second", scopeTabs):
		return m, router.SwitchTabCmd(router.TabSecond)
	case m.keys.IsAction(msg, "clear-main-path", scopeTabs):
		return m, router.ClearMainPathCmd()
	case m.keys.IsAction(msg, "push-detail", scopeTabs):
		if m.router.Tab() == router.TabSecond {
			m.router.Second.Push(router.SecondDetail(item))
			m.setStatus("Pushed " + router.SecondDetail(item).String())
			return m, nil
		}
		m.router.Main.Push(router.DetailDest(item))
		m.setStatus("Pushed " + router.DetailDest(item).String())
		return m, nil
	case m.keys.IsAction(msg, "push-settings", scopeTabs):
		if m.router.Tab() != router.TabMain {
			m.setStatus("Settings lives on the main tab")
			return m, nil
		}
		m.router.Main.Push(router.SettingsDest())
		m.setStatus("Pushed Settings")
		return m, nil
	case m.keys.IsAction(msg, "push-profile", scopeTabs):
		if m.router.Tab() != router.TabMain {
			m.setStatus("Profile lives on the main tab")
			return m, nil
		}
		m.router.Main.Push(router.ProfileDest())
		m.setStatus("Pushed Profile")
		return m, nil
	case m.keys.IsAction(msg, "toggle-animation", scopeTabs):
		if top, ok := m.router.Main.Peek(); !ok || top.Kind != router.MainSettings || m.router.Tab() != router.TabMain {
			return m, nil
		}
		m.cfg.UI.Animation = !m.cfg.UI.Animation
		if err := config.Save(m.cfg); err != nil {
			m.setError(fmt.Errorf("save config: %w", err))
			return m, nil
		}
		if m.cfg.UI.Animation {
			m.setStatus("Animation on")
		} else {
			m.setStatus("Animation off")
		}
		return m, nil
	case m.keys.IsAction(msg, "pop", scopeTabs):
		if m.router.Tab() == router.TabSecond {
			if d, ok := m.router.Second.Pop(); ok {
				m.setStatus("Popped " + d.String())
				return m, nil
			}
		} else {
			if d, ok := m.router.Main.Pop(); ok {
				m.setStatus("Popped " + d.String())
				return m, nil
			}
		}
		// popping an empty stack leaves the tab view entirely
		return m, router.NavigateDirCmd(router.Start(), router.Left)
	}
	return m, nil
}

func (m Model) viewTabs(width, height int) string {
	var b strings.Builder
	b.WriteString(m.renderTabBar())
	b.WriteString("\n\n")
	if m.router.Tab() == router.TabSecond {
		b.WriteString(m.renderSecondTab())
	} else {
		b.WriteString(m.renderMainTab())
	}
	return centerCard(b.String(), width, height)
}

func (m Model) renderTabBar() string {
	labels := make([]string, 0, 2)
	for _, t := range []router.Tab{router.TabMain, router.TabSecond} {
		label := fmt.Sprintf("%d:%s", int(t)+1, t)
		if t == m.router.Tab() {
			labels = append(labels, activeTabStyle.Render(label))
		} else {
			labels = append(labels, inactiveTabStyle.Render(label))
		}
	}
	return strings.Join(labels, tabSepStyle.Render("│"))
}

func (m Model) renderMainTab() string {
	var b strings.Builder
	b.WriteString(mutedStyle.Render(m.mainBreadcrumb()))
	b.WriteString("\n\n")
	if top, ok := m.router.Main.Peek(); ok {
		b.WriteString(m.renderMainDest(top))
	} else {
		item, _ := m.router.SelectedItem()
		b.WriteString(titleStyle.Render("Main"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Selected item: %s\n\n", item))
		b.WriteString(fmt.Sprintf("%s push detail   %s push settings   %s push profile\n",
			selectedStyle.Render("d"), selectedStyle.Render("s"), selectedStyle.Render("p")))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("esc pop · c clear path"))
	return b.String()
}

// renderMainDest is the total mapping from main-tab destinations to content.
func (m Model) renderMainDest(d router.MainDestination) string {
	switch d.Kind {
	case router.MainDetail:
		var b strings.Builder
		b.WriteString(titleStyle.Render("Detail: " + d.Name))
		b.WriteString("\n")
		if it, ok := m.itemNamed(d.Name); ok {
			b.WriteString(it.Description)
		} else {
			b.WriteString(mutedStyle.Render("No catalog entry for this item."))
		}
		return b.String()
	case router.MainSettings:
		state := "off"
		if m.cfg.UI.Animation {
			state = "on"
		}
		return titleStyle.Render("Settings") + "\n" +
			fmt.Sprintf("Animation: %s (%dms @ %dfps)\n", state, m.cfg.UI.AnimationMs, m.cfg.UI.FPS) +
			mutedStyle.Render("a toggles animation and saves the config")
	case router.MainProfile:
		return titleStyle.Render("Profile") + "\n" +
			fmt.Sprintf("Name:  %s\n", m.cfg.Profile.Name) +
			fmt.Sprintf("Email: %s", m.cfg.Profile.Email)
	}
	return ""
}

func (m Model) renderSecondTab() string {
	var b strings.Builder
	b.WriteString(mutedStyle.Render(m.secondBreadcrumb()))
	b.WriteString("\n\n")
	if top, ok := m.router.Second.Peek(); ok {
		b.WriteString(titleStyle.Render("Detail: " + top.Name))
		b.WriteString("\n")
		if it, ok := m.itemNamed(top.Name); ok {
			b.WriteString(it.Description)
		}
	} else {
		item, _ := m.router.SelectedItem()
		b.WriteString(titleStyle.Render("Second"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Selected item: %s\n\n", item))
		b.WriteString(fmt.Sprintf("%s push detail\n", selectedStyle.Render("d")))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("esc pop"))
	return b.String()
}

func (m Model) mainBreadcrumb() string {
	parts := []string{"root"}
	for _, d := range m.router.Main.Items() {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, " > ")
}

func (m Model) secondBreadcrumb() string {
	parts := []string{"root"}
	for _, d := range m.router.Second.Items() {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, " > ")
}
