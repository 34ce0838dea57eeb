package router

import "fmt"

// ScreenKind tags the top-level navigation states.
type ScreenKind int

const (
	KindStart ScreenKind = iota
	KindItemSelection
	KindItemDetails
	KindTabView
	KindAbout
)

// Screen is one top-level, full-view navigation state. Item carries the
// payload for ItemDetails and TabView and is empty for the other kinds, so
// two screens are equal exactly when kind and payload match and Screen
// values compare with ==.
type Screen struct {
	Kind ScreenKind
	Item string
}

func Start() Screen         { return Screen{Kind: KindStart} }
func ItemSelection() Screen { return Screen{Kind: KindItemSelection} }
func About() Screen         { return Screen{Kind: KindAbout} }

// ItemDetails is the full-screen detail view for one named item.
func ItemDetails(name string) Screen { return Screen{Kind: KindItemDetails, Item: name} }

// TabView is the tabbed screen. Navigating here also records the item as the
// router's selected item.
func TabView(item string) Screen { return Screen{Kind: KindTabView, Item: item} }

func (s Screen) String() string {
	switch s.Kind {
	case KindStart:
		return "Start"
	case KindItemSelection:
		return "ItemSelection"
	case KindItemDetails:
		return fmt.Sprintf("ItemDetails(%s)", s.Item)
	case KindTabView:
		return fmt.Sprintf("TabView(%s)", s.Item)
	case KindAbout:
		return "About"
	}
	return fmt.Sprintf("Screen(%d)", int(s.Kind))
}
