package memory

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weightlog/internal/domain"
)

func TestUpsertEntry(t *testing.T) {
	db := New()
	ctx := context.Background()

	entry, err := db.UpsertEntry(ctx, "2024-03-02", 70.0)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-02", entry.Date)
	assert.NotZero(t, entry.Timestamp)

	_, err = db.UpsertEntry(ctx, "2024-03-01", 71.0)
	require.NoError(t, err)

	// Same date replaces rather than duplicates.
	_, err = db.UpsertEntry(ctx, "2024-03-02", 69.5)
	require.NoError(t, err)

	entries, err := db.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2024-03-01", entries[0].Date)
	assert.Equal(t, "2024-03-02", entries[1].Date)
	assert.Equal(t, 69.5, entries[1].Weight)
}

func TestUpsertEntry_InvalidDate(t *testing.T) {
	db := New()
	_, err := db.UpsertEntry(context.Background(), "03/02/2024", 70)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
	assert.Zero(t, db.Len())
}

func TestListEntries_ReturnsCopy(t *testing.T) {
	db := New()
	ctx := context.Background()
	_, _ = db.UpsertEntry(ctx, "2024-03-01", 70)

	entries, _ := db.ListEntries(ctx)
	entries[0].Weight = 1

	again, _ := db.ListEntries(ctx)
	assert.Equal(t, 70.0, again[0].Weight)
}

func TestUpsertEntry_RandomSequenceStaysSortedAndUnique(t *testing.T) {
	db := New()
	ctx := context.Background()
	faker := gofakeit.New(42)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	want := make(map[string]float64)
	for i := 0; i < 200; i++ {
		day := domain.FormatDay(start.AddDate(0, 0, faker.Number(0, 60)))
		w := faker.Float64Range(40, 150)
		_, err := db.UpsertEntry(ctx, day, w)
		require.NoError(t, err)
		want[day] = w
	}

	entries, err := db.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, len(want))
	assert.True(t, sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Timestamp < entries[j].Timestamp
	}))
	for _, e := range entries {
		assert.Equal(t, want[e.Date], e.Weight)
	}
}
