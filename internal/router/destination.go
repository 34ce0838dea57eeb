package router

import "fmt"

// Tab identifies one of the persistent navigation contexts in the tab view.
type Tab int

const (
	TabMain Tab = iota
	TabSecond
)

func (t Tab) String() string {
	switch t {
	case TabMain:
		return "Main"
	case TabSecond:
		return "Second"
	}
	return fmt.Sprintf("Tab(%d)", int(t))
}

// MainDestKind tags the destinations valid on the main tab's stack.
type MainDestKind int

const (
	MainDetail MainDestKind = iota
	MainSettings
	MainProfile
)

// MainDestination is one pushed entry on the main tab's stack. Name carries
// the payload for MainDetail and is empty otherwise.
type MainDestination struct {
	Kind MainDestKind
	Name string
}

func DetailDest(name string) MainDestination { return MainDestination{Kind: MainDetail, Name: name} }
func SettingsDest() MainDestination          { return MainDestination{Kind: MainSettings} }
func ProfileDest() MainDestination           { return MainDestination{Kind: MainProfile} }

func (d MainDestination) String() string {
	switch d.Kind {
	case MainDetail:
		return fmt.Sprintf("Detail(%s)", d.Name)
	case MainSettings:
		return "Settings"
	case MainProfile:
		return "Profile"
	}
	return fmt.Sprintf("MainDestination(%d)", int(d.Kind))
}

// SecondDestination is one pushed entry on the second tab's stack. The
// second tab has a single destination kind; it stays a tagged struct so the
// two stacks keep symmetric, typed entries.
type SecondDestination struct {
	Name string
}

func SecondDetail(name string) SecondDestination { return SecondDestination{Name: name} }

func (d SecondDestination) String() string { return fmt.Sprintf("Detail(%s)", d.Name) }
