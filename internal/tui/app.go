package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tobin/waypoint/internal/catalog"
	"github.com/tobin/waypoint/internal/config"
	"github.com/tobin/waypoint/internal/router"
)

// statusMsg updates the status bar.
type statusMsg struct {
	Text  string
	IsErr bool
}

// Model is the root Bubble Tea model. It owns the one Router instance and
// applies every navigation message to it; screen views only read router
// state and emit commands.
type Model struct {
	width  int
	height int

	cfg    config.Config
	router *router.Router
	keys   *KeyRegistry
	items  []catalog.Item

	status    string
	statusErr bool
	quitting  bool

	// selection screen state
	query  string
	cursor int

	anim *anim
	now  func() time.Time
}

// New builds the root model around a freshly constructed router.
func New(cfg config.Config, items []catalog.Item) Model {
	return Model{
		width:  100,
		height: 32,
		cfg:    cfg,
		router: router.New(),
		keys:   NewKeyRegistry(DefaultBindings()),
		items:  items,
		status: "Ready",
		now:    time.Now,
	}
}

// Router exposes the state holder for tests.
func (m Model) Router() *router.Router {
	return m.router
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case statusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil

	case router.NavigateMsg:
		prev := m.bodyView(m.bodyWidth(), m.bodyHeight())
		m.router.NavigateWith(msg.To, msg.Direction)
		m.setStatus(fmt.Sprintf("Navigated to %s (%s)", msg.To, msg.Direction))
		if msg.To.Kind == router.KindItemSelection {
			m.cursor = 0
		}
		if m.cfg.UI.Animation {
			trans := router.Resolve(msg.Direction)
			m.anim = newAnim(prev, trans, m.cfg.UI.TransitionDuration(), m.cfg.UI.FPS, m.now())
			return m, m.anim.tick()
		}
		return m, nil

	case router.ClearMainPathMsg:
		m.router.ClearMainPath()
		m.setStatus("Main path cleared")
		return m, nil

	case router.SwitchTabMsg:
		m.router.SwitchTab(msg.Tab)
		m.setStatus("Tab: " + msg.Tab.String())
		return m, nil

	case animTickMsg:
		if m.anim == nil {
			return m, nil
		}
		if m.anim.done(m.now()) {
			m.anim = nil
			return m, nil
		}
		return m, m.anim.tick()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		scope := m.scope()
		if m.keys.IsAction(msg, "quit", scope) {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.router.Current().Kind {
		case router.KindStart:
			return m.updateStart(msg)
		case router.KindItemSelection:
			return m.updateSelection(msg)
		case router.KindItemDetails:
			return m.updateDetails(msg)
		case router.KindTabView:
			return m.updateTabs(msg)
		case router.KindAbout:
			return m.updateAbout(msg)
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	status := renderStatusBar(m)
	footer := renderFooter(m)
	bodyHeight := m.bodyHeight()
	bodyWidth := m.bodyWidth()

	var body string
	if bodyHeight > 0 {
		body = m.bodyView(bodyWidth, bodyHeight)
		if m.anim != nil {
			body = renderTransition(m.anim.from, body, bodyWidth, bodyHeight, m.anim.trans, m.anim.progress(m.now()))
		}
	}
	body = fitHeight(body, bodyHeight)

	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

// bodyView picks the screen view for the current router state. The switch is
// total over screen kinds; TestBodyViewCoversAllKinds keeps it that way.
func (m Model) bodyView(width, height int) string {
	switch m.router.Current().Kind {
	case router.KindStart:
		return m.viewStart(width, height)
	case router.KindItemSelection:
		return m.viewSelection(width, height)
	case router.KindItemDetails:
		return m.viewDetails(width, height)
	case router.KindTabView:
		return m.viewTabs(width, height)
	case router.KindAbout:
		return m.viewAbout(width, height)
	}
	return ""
}

func (m Model) scope() string {
	switch m.router.Current().Kind {
	case router.KindItemSelection:
		return scopeSelect
	case router.KindItemDetails:
		return scopeDetails
	case router.KindTabView:
		return scopeTabs
	case router.KindAbout:
		return scopeAbout
	default:
		return scopeStart
	}
}

func (m Model) bodyWidth() int {
	return max(1, m.width)
}

func (m Model) bodyHeight() int {
	// header, status and footer are one line each
	return max(0, m.height-3)
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusErr = false
}

func (m *Model) setError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func centerCard(content string, width, height int) string {
	card := cardStyle.Render(content)
	return lipgloss.Place(max(1, width), max(1, height), lipgloss.Center, lipgloss.Center, card)
}
