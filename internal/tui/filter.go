package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/tobin/waypoint/internal/catalog"
)

// rankItems orders catalog items for the selection list. Substring matches
// rank first, everything else by edit distance to the query. The demo list
// is small, so nothing is dropped.
func rankItems(items []catalog.Item, query string) []catalog.Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]catalog.Item(nil), items...)
	}
	type scored struct {
		item catalog.Item
		dist int
	}
	ranked := make([]scored, 0, len(items))
	for _, it := range items {
		name := strings.ToLower(it.Name)
		dist := 0
		if !strings.Contains(name, q) {
			dist = levenshtein.ComputeDistance(q, name)
		}
		ranked = append(ranked, scored{item: it, dist: dist})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].dist < ranked[j].dist })
	out := make([]catalog.Item, len(ranked))
	for i, s := range ranked {
		out[i] = s.item
	}
	return out
}
