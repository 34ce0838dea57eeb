package tui

import (
	"testing"

	"github.com/tobin/waypoint/internal/catalog"
)

func filterFixtures() []catalog.Item {
	return []catalog.Item{
		{Name: "Item One"},
		{Name: "Item Two"},
		{Name: "Item Three"},
	}
}

func TestEmptyQueryKeepsOrder(t *testing.T) {
	got := rankItems(filterFixtures(), "")
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []string{"Item One", "Item Two", "Item Three"} {
		if got[i].Name != want {
			t.Errorf("got[%d] = %q, want %q", i, got[i].Name, want)
		}
	}
}

func TestSubstringMatchesRankFirst(t *testing.T) {
	got := rankItems(filterFixtures(), "two")
	if got[0].Name != "Item Two" {
		t.Fatalf("got[0] = %q, want Item Two", got[0].Name)
	}
}

func TestCloseMisspellingStillRanks(t *testing.T) {
	got := rankItems(filterFixtures(), "item tow")
	if got[0].Name != "Item Two" {
		t.Fatalf("got[0] = %q, want Item Two for a near miss", got[0].Name)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	items := filterFixtures()
	_ = rankItems(items, "three")
	if items[0].Name != "Item One" {
		t.Fatal("input slice order must not change")
	}
}
