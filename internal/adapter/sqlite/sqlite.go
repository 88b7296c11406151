// Package sqlite implements the entry store on a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"weightlog/internal/domain"
)

// DB implements domain.EntryRepository on SQLite.
type DB struct {
	sql *sql.DB
}

var _ domain.EntryRepository = (*DB)(nil)

// ErrMemoryPath is returned for in-memory DSNs. Migrations run on their own
// connection, which would see a different in-memory database.
var ErrMemoryPath = errors.New("sqlite: in-memory databases are not supported")

// Open creates the database file if needed and applies migrations.
func Open(dbPath string) (*DB, error) {
	if dbPath == ":memory:" || strings.HasPrefix(dbPath, "file::memory:") || strings.Contains(dbPath, "mode=memory") {
		return nil, ErrMemoryPath
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		return nil, err
	}

	s, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// SQLite allows one writer at a time.
	s.SetMaxOpenConns(1)

	if err := s.Ping(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &DB{sql: s}, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

// UpsertEntry stores weight for day, replacing any existing row.
func (d *DB) UpsertEntry(ctx context.Context, day string, weight float64) (domain.WeightEntry, error) {
	entry, err := domain.NewWeightEntry(day, weight)
	if err != nil {
		return domain.WeightEntry{}, err
	}
	_, err = d.sql.ExecContext(ctx,
		`INSERT INTO weight_entries(day, weight) VALUES(?, ?)
		 ON CONFLICT(day) DO UPDATE SET weight = excluded.weight, updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now');`,
		entry.Date, entry.Weight,
	)
	if err != nil {
		return domain.WeightEntry{}, fmt.Errorf("upsert weight entry: %w", err)
	}
	return entry, nil
}

// ListEntries returns every entry ordered by day.
func (d *DB) ListEntries(ctx context.Context) ([]domain.WeightEntry, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT day, weight FROM weight_entries ORDER BY day ASC;")
	if err != nil {
		return nil, fmt.Errorf("list weight entries: %w", err)
	}
	defer rows.Close()

	out := make([]domain.WeightEntry, 0)
	for rows.Next() {
		var (
			day    string
			weight float64
		)
		if err := rows.Scan(&day, &weight); err != nil {
			return nil, err
		}
		e, err := domain.NewWeightEntry(day, weight)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
