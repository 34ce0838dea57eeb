package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Item is one catalog row shown on the item-selection screen.
type Item struct {
	ID          string
	Name        string
	Description string
	SortOrder   int
}

// ErrNotFound reports a lookup for an item name the catalog does not hold.
var ErrNotFound = errors.New("catalog: item not found")

// Store reads and writes catalog items.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// List returns all items ordered by sort order, then name.
func (s *Store) List(ctx context.Context) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, sort_order FROM items ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.SortOrder); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Get looks an item up by name.
func (s *Store) Get(ctx context.Context, name string) (Item, error) {
	var it Item
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, sort_order FROM items WHERE name = ?`, name).
		Scan(&it.ID, &it.Name, &it.Description, &it.SortOrder)
	if errors.Is(err, sql.ErrNoRows) {
		return Item{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return Item{}, fmt.Errorf("get item %q: %w", name, err)
	}
	return it, nil
}

// Upsert inserts or replaces an item keyed by id.
func (s *Store) Upsert(ctx context.Context, it Item) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO items (id, name, description, sort_order) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name,
		 description = excluded.description, sort_order = excluded.sort_order`,
		it.ID, it.Name, it.Description, it.SortOrder)
	if err != nil {
		return fmt.Errorf("upsert item %q: %w", it.Name, err)
	}
	return nil
}
