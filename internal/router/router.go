package router

import (
	"time"

	"github.com/google/uuid"
)

// journalCap bounds the in-memory navigation history shown on the About
// screen. Oldest records drop first.
const journalCap = 32

// Record is one completed navigation.
type Record struct {
	ID        uuid.UUID
	From      Screen
	To        Screen
	Direction Direction
	At        time.Time
}

// Router is the single navigation state holder for the whole app. One
// instance is constructed in main and handed down through the view
// composition; it lives for the process lifetime and is only ever mutated
// from inside the update loop.
//
// Main and Second are exported because the tab views push and pop them
// directly; current screen, selected item and direction change only through
// Navigate/NavigateWith and ClearMainPath.
type Router struct {
	current   Screen
	tab       Tab
	item      string
	itemSet   bool
	direction Direction

	Main   *Stack[MainDestination]
	Second *Stack[SecondDestination]

	journal []Record
	now     func() time.Time
}

// New returns a Router at the Start screen with empty stacks.
func New() *Router {
	return &Router{
		current:   Start(),
		tab:       TabMain,
		direction: Right,
		Main:      &Stack[MainDestination]{},
		Second:    &Stack[SecondDestination]{},
		now:       time.Now,
	}
}

// Navigate moves to the given screen with the default Right direction.
func (r *Router) Navigate(to Screen) {
	r.NavigateWith(to, Right)
}

// NavigateWith records the direction, makes to the current screen, and, when
// to is a TabView, remembers its item as the selected item. The selected
// item is sticky: no other operation clears it. Any screen may be navigated
// to from any other; the router validates nothing.
func (r *Router) NavigateWith(to Screen, dir Direction) {
	from := r.current
	r.direction = dir
	r.current = to
	if to.Kind == KindTabView {
		r.item = to.Item
		r.itemSet = true
	}
	r.record(from, to, dir)
}

// ClearMainPath empties the main tab's stack. Current screen, selected tab
// and selected item are untouched.
func (r *Router) ClearMainPath() {
	r.Main.Clear()
}

// Current returns the screen being shown.
func (r *Router) Current() Screen {
	return r.current
}

// SelectedItem returns the sticky selected item. ok is false until the
// router has navigated to a TabView at least once.
func (r *Router) SelectedItem() (string, bool) {
	return r.item, r.itemSet
}

// Direction returns the direction recorded by the most recent navigation.
func (r *Router) Direction() Direction {
	return r.direction
}

// Tab returns the selected tab within the tab view.
func (r *Router) Tab() Tab {
	return r.tab
}

// SwitchTab selects a tab. Each tab keeps its own stack, so switching back
// and forth preserves both navigation paths.
func (r *Router) SwitchTab(t Tab) {
	r.tab = t
}

// Journal returns a copy of the recent navigation history, oldest first.
func (r *Router) Journal() []Record {
	return append([]Record(nil), r.journal...)
}

func (r *Router) record(from, to Screen, dir Direction) {
	r.journal = append(r.journal, Record{
		ID:        uuid.New(),
		From:      from,
		To:        to,
		Direction: dir,
		At:        r.now(),
	})
	if len(r.journal) > journalCap {
		r.journal = r.journal[len(r.journal)-journalCap:]
	}
}
