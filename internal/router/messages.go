package router

import tea "github.com/charmbracelet/bubbletea"

// NavigateMsg asks the root model to move the router to a new screen. Views
// emit it through NavigateCmd/NavigateDirCmd; the mutation itself runs when
// the update loop processes the message.
type NavigateMsg struct {
	To        Screen
	Direction Direction
}

// ClearMainPathMsg asks the root model to empty the main tab's stack.
type ClearMainPathMsg struct{}

// SwitchTabMsg asks the root model to select a tab within the tab view.
type SwitchTabMsg struct {
	Tab Tab
}

// NavigateCmd schedules a navigation with the default Right direction.
func NavigateCmd(to Screen) tea.Cmd {
	return NavigateDirCmd(to, Right)
}

// NavigateDirCmd schedules a navigation with an explicit direction.
func NavigateDirCmd(to Screen, dir Direction) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{To: to, Direction: dir} }
}

func ClearMainPathCmd() tea.Cmd {
	return func() tea.Msg { return ClearMainPathMsg{} }
}

func SwitchTabCmd(t Tab) tea.Cmd {
	return func() tea.Msg { return SwitchTabMsg{Tab: t} }
}
