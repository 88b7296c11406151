package postgres

import (
	"context"
	"time"

	"weightlog/internal/domain"
)

var _ domain.EntryRepository = (*DB)(nil)

// UpsertEntry stores weight for day, replacing any existing row.
func (d *DB) UpsertEntry(ctx context.Context, day string, weight float64) (domain.WeightEntry, error) {
	entry, err := domain.NewWeightEntry(day, weight)
	if err != nil {
		return domain.WeightEntry{}, err
	}
	_, err = d.sql.ExecContext(ctx,
		"INSERT INTO weight_entries(day, weight, updated_at) VALUES($1, $2, now()) ON CONFLICT (day) DO UPDATE SET weight = EXCLUDED.weight, updated_at = now();",
		entry.Date, entry.Weight,
	)
	if err != nil {
		return domain.WeightEntry{}, err
	}
	return entry, nil
}

// ListEntries returns every entry ordered by day.
func (d *DB) ListEntries(ctx context.Context) ([]domain.WeightEntry, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT day, weight FROM weight_entries ORDER BY day ASC;")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.WeightEntry, 0)
	for rows.Next() {
		var (
			day    time.Time
			weight float64
		)
		if err := rows.Scan(&day, &weight); err != nil {
			return nil, err
		}
		e, err := domain.NewWeightEntry(domain.FormatDay(day), weight)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
