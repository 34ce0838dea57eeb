package router

// Stack is an ordered push/pop sequence of destinations scoped to one tab.
type Stack[D any] struct {
	items []D
}

// Push appends a destination to the tail.
func (s *Stack[D]) Push(d D) {
	s.items = append(s.items, d)
}

// Pop removes and returns the tail destination. Popping an empty stack is a
// no-op and reports false.
func (s *Stack[D]) Pop() (D, bool) {
	if len(s.items) == 0 {
		var zero D
		return zero, false
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last, true
}

// Peek returns the tail destination without removing it.
func (s *Stack[D]) Peek() (D, bool) {
	if len(s.items) == 0 {
		var zero D
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[D]) Len() int {
	return len(s.items)
}

func (s *Stack[D]) IsEmpty() bool {
	return len(s.items) == 0
}

// Clear removes all entries.
func (s *Stack[D]) Clear() {
	s.items = s.items[:0]
}

// Items returns a copy of the stack from bottom to top, for rendering
// breadcrumbs without exposing the backing slice.
func (s *Stack[D]) Items() []D {
	return append([]D(nil), s.items...)
}
