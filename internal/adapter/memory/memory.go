// Package memory implements an in-memory entry store for the session.
package memory

import (
	"context"
	"sort"
	"sync"

	"weightlog/internal/domain"
)

// DB implements an in-memory entry store, kept sorted ascending by
// timestamp with at most one entry per date.
type DB struct {
	mu      sync.Mutex
	entries []domain.WeightEntry
}

// New creates a new in-memory store.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.EntryRepository = (*DB)(nil)

// UpsertEntry replaces any entry for day with a new one and re-sorts.
func (db *DB) UpsertEntry(ctx context.Context, day string, weight float64) (domain.WeightEntry, error) {
	entry, err := domain.NewWeightEntry(day, weight)
	if err != nil {
		return domain.WeightEntry{}, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	kept := db.entries[:0]
	for _, e := range db.entries {
		if e.Date != entry.Date {
			kept = append(kept, e)
		}
	}
	db.entries = append(kept, entry)

	sort.SliceStable(db.entries, func(i, j int) bool {
		return db.entries[i].Timestamp < db.entries[j].Timestamp
	})
	return entry, nil
}

// ListEntries returns a copy of all entries in ascending order.
func (db *DB) ListEntries(ctx context.Context) ([]domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.WeightEntry, len(db.entries))
	copy(result, db.entries)
	return result, nil
}

// Len returns the number of stored entries.
func (db *DB) Len() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.entries)
}
