package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"wardrobe/m/domain"
)

// ErrNotFound is returned when a requested item does not exist.
var ErrNotFound = errors.New("not found")

const (
	itemsQuery = `SELECT unique_id, item, total_wears, cost_per_wear, wears_per_month, date_acquired, cost, source, category
                FROM item_info`
	wearsQuery = `SELECT w.unique_id, w.month, w.wears, i.item, i.source, i.category
                FROM wear_count w
                JOIN item_info i ON i.unique_id = w.unique_id`
)

// Store reads wardrobe rows from the database.
type Store struct {
	db *sqlx.DB
}

// New constructs a Store.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Items returns every item_info row ordered by unique_id.
func (s *Store) Items(ctx context.Context) ([]domain.Item, error) {
	items := []domain.Item{}
	if err := s.db.SelectContext(ctx, &items, itemsQuery+` ORDER BY unique_id`); err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	return items, nil
}

// Wears returns every wear_count row joined to its item. Rows whose item is
// missing are dropped by the inner join.
func (s *Store) Wears(ctx context.Context) ([]domain.Wear, error) {
	wears := []domain.Wear{}
	if err := s.db.SelectContext(ctx, &wears, wearsQuery+` ORDER BY w.unique_id, w.month`); err != nil {
		return nil, fmt.Errorf("select wears: %w", err)
	}
	return wears, nil
}

// Item returns a single item by unique_id.
func (s *Store) Item(ctx context.Context, uniqueID string) (domain.Item, error) {
	var item domain.Item
	err := s.db.GetContext(ctx, &item, s.db.Rebind(itemsQuery+` WHERE unique_id = ?`), uniqueID)
	if errors.Is(err, sql.ErrNoRows) {
		return item, ErrNotFound
	}
	if err != nil {
		return item, fmt.Errorf("get item %s: %w", uniqueID, err)
	}
	return item, nil
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
