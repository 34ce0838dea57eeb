package router

import "testing"

func TestStackPushPopOrder(t *testing.T) {
	var s Stack[MainDestination]
	s.Push(DetailDest("Item 2"))
	s.Push(SettingsDest())
	s.Push(ProfileDest())

	if s.Len() != 3 {
		t.Fatalf("len = %d, want 3", s.Len())
	}
	if top, ok := s.Peek(); !ok || top != ProfileDest() {
		t.Fatalf("peek = %v, %v", top, ok)
	}

	want := []MainDestination{ProfileDest(), SettingsDest(), DetailDest("Item 2")}
	for i, w := range want {
		got, ok := s.Pop()
		if !ok {
			t.Fatalf("pop %d: unexpectedly empty", i)
		}
		if got != w {
			t.Fatalf("pop %d = %v, want %v", i, got, w)
		}
	}
	if !s.IsEmpty() {
		t.Fatal("stack should be empty after popping everything")
	}
}

func TestPopEmptyIsNoop(t *testing.T) {
	var s Stack[SecondDestination]
	if got, ok := s.Pop(); ok || got != (SecondDestination{}) {
		t.Fatalf("pop empty = %v, %v; want zero, false", got, ok)
	}
	s.Push(SecondDetail("Item One"))
	s.Clear()
	if _, ok := s.Pop(); ok {
		t.Fatal("pop after clear should report empty")
	}
}

func TestClearThenPushReuses(t *testing.T) {
	var s Stack[MainDestination]
	s.Push(SettingsDest())
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("len after clear = %d", s.Len())
	}
	s.Push(ProfileDest())
	if top, ok := s.Peek(); !ok || top != ProfileDest() {
		t.Fatalf("peek = %v, %v", top, ok)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	var s Stack[MainDestination]
	s.Push(DetailDest("Item One"))
	items := s.Items()
	items[0] = SettingsDest()
	if top, _ := s.Peek(); top != DetailDest("Item One") {
		t.Fatal("mutating the Items copy must not touch the stack")
	}
}
