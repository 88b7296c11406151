// Package sample generates synthetic weight history for a fresh session.
package sample

import (
	"context"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"weightlog/internal/domain"
)

const (
	days        = 90
	logChance   = 0.7
	maxDayDrift = 0.2
)

// Generate returns a random walk of weights over the 90 days starting three
// months before now, with roughly 70% of days logged. The same seed yields
// the same history.
func Generate(now time.Time, seed int64) []domain.WeightEntry {
	faker := gofakeit.New(seed)
	start := domain.CivilDay(now).AddDate(0, -3, 0)

	weight := faker.Float64Range(70, 80)
	out := make([]domain.WeightEntry, 0, days)
	for i := 0; i < days; i++ {
		weight += faker.Float64Range(-maxDayDrift, maxDayDrift)
		if faker.Float64Range(0, 1) >= logChance {
			continue
		}
		d := start.AddDate(0, 0, i)
		out = append(out, domain.WeightEntry{
			Date:      domain.FormatDay(d),
			Weight:    domain.Round1(weight),
			Timestamp: d.UnixMilli(),
		})
	}
	return out
}

// Seed stores entries through repo.
func Seed(ctx context.Context, repo domain.EntryRepository, entries []domain.WeightEntry) error {
	for _, e := range entries {
		if _, err := repo.UpsertEntry(ctx, e.Date, e.Weight); err != nil {
			return err
		}
	}
	return nil
}
