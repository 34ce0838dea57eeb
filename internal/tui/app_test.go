package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tobin/waypoint/internal/catalog"
	"github.com/tobin/waypoint/internal/config"
	"github.com/tobin/waypoint/internal/router"
)

func testConfig() config.Config {
	return config.Config{
		UI:      config.UIConfig{Animation: false, AnimationMs: 300, FPS: 30},
		Profile: config.ProfileConfig{Name: "Test", Email: "test@example.com"},
	}
}

func testItems() []catalog.Item {
	return []catalog.Item{
		{ID: "1", Name: "Item One", Description: "first"},
		{ID: "2", Name: "Item Two", Description: "second"},
		{ID: "3", Name: "Item Three", Description: "third"},
	}
}

func newTestModel() Model {
	return New(testConfig(), testItems())
}

// drive runs a message and any messages produced by the returned command,
// so navigation commands emitted by key handling reach the router.
func drive(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	model := next.(Model)
	for cmd != nil {
		out := cmd()
		if out == nil {
			break
		}
		if batch, ok := out.(tea.BatchMsg); ok {
			for _, c := range batch {
				if c == nil {
					continue
				}
				model = drive(t, model, c())
			}
			return model
		}
		next, cmd = model.Update(out)
		model = next.(Model)
	}
	return model
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNavigateMsgMovesRouter(t *testing.T) {
	m := newTestModel()
	m = drive(t, m, router.NavigateMsg{To: router.About(), Direction: router.Right})
	if got := m.Router().Current(); got != router.About() {
		t.Fatalf("current = %v, want About", got)
	}
}

func TestFullFlowThroughKeys(t *testing.T) {
	m := newTestModel()

	m = drive(t, m, keyPress("enter")) // start -> selection
	if got := m.Router().Current(); got != router.ItemSelection() {
		t.Fatalf("current = %v, want ItemSelection", got)
	}

	m = drive(t, m, keyPress("enter")) // selection -> details of first item
	if got := m.Router().Current(); got != router.ItemDetails("Item One") {
		t.Fatalf("current = %v, want ItemDetails(Item One)", got)
	}

	m = drive(t, m, keyPress("enter")) // details -> tab view
	if got := m.Router().Current(); got != router.TabView("Item One") {
		t.Fatalf("current = %v, want TabView(Item One)", got)
	}
	if item, ok := m.Router().SelectedItem(); !ok || item != "Item One" {
		t.Fatalf("selected item = %q, %v", item, ok)
	}
}

func TestContinueIsGatedOnSelection(t *testing.T) {
	m := newTestModel()
	m = drive(t, m, keyPress("c"))
	if got := m.Router().Current(); got != router.Start() {
		t.Fatalf("continue without a selection moved to %v", got)
	}

	m.Router().Navigate(router.TabView("Item Two"))
	m.Router().NavigateWith(router.Start(), router.Left)
	m = drive(t, m, keyPress("c"))
	if got := m.Router().Current(); got != router.TabView("Item Two") {
		t.Fatalf("continue with selection moved to %v", got)
	}
}

func TestTabStacksPushAndPop(t *testing.T) {
	m := newTestModel()
	m.Router().Navigate(router.TabView("Item One"))

	m = drive(t, m, keyPress("d"))
	m = drive(t, m, keyPress("s"))
	m = drive(t, m, keyPress("p"))
	if got := m.Router().Main.Len(); got != 3 {
		t.Fatalf("main stack len = %d, want 3", got)
	}

	m = drive(t, m, keyPress("2"))
	if m.Router().Tab() != router.TabSecond {
		t.Fatalf("tab = %v, want Second", m.Router().Tab())
	}
	m = drive(t, m, keyPress("d"))
	if got := m.Router().Second.Len(); got != 1 {
		t.Fatalf("second stack len = %d, want 1", got)
	}

	// settings and profile only exist on the main tab
	m = drive(t, m, keyPress("s"))
	if got := m.Router().Second.Len(); got != 1 {
		t.Fatalf("second stack len after s = %d, want 1", got)
	}

	m = drive(t, m, keyPress("1"))
	m = drive(t, m, keyPress("c")) // clear main path
	if got := m.Router().Main.Len(); got != 0 {
		t.Fatalf("main stack len after clear = %d, want 0", got)
	}
	if got := m.Router().Second.Len(); got != 1 {
		t.Fatalf("second stack len after clear = %d, want 1", got)
	}
	if got := m.Router().Current(); got != router.TabView("Item One") {
		t.Fatalf("clear must not change current screen, got %v", got)
	}
}

func TestPopEmptyStackLeavesTabView(t *testing.T) {
	m := newTestModel()
	m.Router().Navigate(router.TabView("Item One"))

	m = drive(t, m, keyPress("d"))
	m = drive(t, m, keyPress("esc")) // pops the detail
	if got := m.Router().Current(); got != router.TabView("Item One") {
		t.Fatalf("pop with entries left the tab view: %v", got)
	}
	m = drive(t, m, keyPress("esc")) // empty stack: back to start, left
	if got := m.Router().Current(); got != router.Start() {
		t.Fatalf("current = %v, want Start", got)
	}
	if got := m.Router().Direction(); got != router.Left {
		t.Fatalf("direction = %v, want Left", got)
	}
}

func TestBodyViewCoversAllKinds(t *testing.T) {
	m := newTestModel()
	screens := []router.Screen{
		router.Start(),
		router.ItemSelection(),
		router.ItemDetails("Item One"),
		router.TabView("Item One"),
		router.About(),
	}
	for _, s := range screens {
		m.Router().Navigate(s)
		if got := m.bodyView(80, 24); got == "" {
			t.Fatalf("bodyView empty for %v", s)
		}
	}
}

func TestAnimationStartsWhenEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.UI.Animation = true
	m := New(cfg, testItems())
	next, cmd := m.Update(router.NavigateMsg{To: router.About(), Direction: router.Right})
	m = next.(Model)
	if m.anim == nil {
		t.Fatal("navigation with animation enabled should start a transition")
	}
	if cmd == nil {
		t.Fatal("expected a tick command")
	}
	if m.anim.trans != router.Resolve(router.Right) {
		t.Fatalf("transition = %+v", m.anim.trans)
	}
}

func TestQuitKeyIgnoredWhileFiltering(t *testing.T) {
	m := newTestModel()
	m.Router().Navigate(router.ItemSelection())
	next, cmd := m.Update(keyPress("q"))
	m = next.(Model)
	if cmd != nil {
		t.Fatal("q on the selection screen must type, not quit")
	}
	if m.query != "q" {
		t.Fatalf("query = %q, want q", m.query)
	}
}
