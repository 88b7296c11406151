package sample_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weightlog/internal/adapter/memory"
	"weightlog/internal/domain"
	"weightlog/internal/sample"
)

func TestGenerate(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	entries := sample.Generate(now, 7)

	require.NotEmpty(t, entries)
	assert.Less(t, len(entries), 90)
	assert.GreaterOrEqual(t, entries[0].Date, "2024-03-15")
	assert.LessOrEqual(t, entries[len(entries)-1].Date, "2024-06-12")

	seen := make(map[string]bool)
	for i, e := range entries {
		assert.False(t, seen[e.Date], "duplicate %s", e.Date)
		seen[e.Date] = true
		assert.NoError(t, domain.ValidateWeight(e.Weight))
		assert.Equal(t, domain.Round1(e.Weight), e.Weight)
		assert.InDelta(t, 75, e.Weight, 5+90*0.2)
		if i > 0 {
			assert.Less(t, entries[i-1].Timestamp, e.Timestamp)
		}
	}

	assert.Equal(t, entries, sample.Generate(now, 7))
}

func TestSeed(t *testing.T) {
	db := memory.New()
	entries := sample.Generate(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), 1)
	require.NotEmpty(t, entries)

	require.NoError(t, sample.Seed(context.Background(), db, entries))
	got, err := db.ListEntries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestGenerate_AnySeedLogsMostDays(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	for _, seed := range []int64{0, 1, 2, 3, 42, 12345} {
		entries := sample.Generate(now, seed)
		assert.Greater(t, len(entries), 30, "seed %d", seed)
		for i := 1; i < len(entries); i++ {
			assert.InDelta(t, entries[i-1].Weight, entries[i].Weight, 0.2*90+0.1, "seed %d", seed)
		}
	}
}
