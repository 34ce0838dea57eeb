package catalog

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// SeedDefaults ensures the demo items exist for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	store := NewStore(db)
	existing, err := store.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}
	defaults := []Item{
		{Name: "Item One", Description: "The first demo item. Selecting it walks the full flow: details, then the tabbed view."},
		{Name: "Item Two", Description: "The second demo item. Identical flow, different payload."},
		{Name: "Item Three", Description: "The third demo item, here so the selection list has something to filter."},
	}
	for idx, it := range defaults {
		it.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte("item:"+it.Name)).String()
		it.SortOrder = idx
		if err := store.Upsert(ctx, it); err != nil {
			return err
		}
	}
	return nil
}
