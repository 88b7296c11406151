package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"weightlog/internal/app"
	"weightlog/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockEntryRepo struct {
	upsertFn func(ctx context.Context, day string, weight float64) (domain.WeightEntry, error)
	listFn   func(ctx context.Context) ([]domain.WeightEntry, error)
}

func (m *mockEntryRepo) UpsertEntry(ctx context.Context, day string, weight float64) (domain.WeightEntry, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, day, weight)
	}
	return domain.NewWeightEntry(day, weight)
}

func (m *mockEntryRepo) ListEntries(ctx context.Context) ([]domain.WeightEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func listOf(t *testing.T, kv ...any) *mockEntryRepo {
	t.Helper()
	var out []domain.WeightEntry
	for i := 0; i < len(kv); i += 2 {
		e, err := domain.NewWeightEntry(kv[i].(string), kv[i+1].(float64))
		require.NoError(t, err)
		out = append(out, e)
	}
	return &mockEntryRepo{
		listFn: func(context.Context) ([]domain.WeightEntry, error) { return out, nil },
	}
}

func TestUpsert_Validation(t *testing.T) {
	called := false
	svc := app.NewEntryService(&mockEntryRepo{
		upsertFn: func(context.Context, string, float64) (domain.WeightEntry, error) {
			called = true
			return domain.WeightEntry{}, nil
		},
	})

	tests := []struct {
		name   string
		day    string
		weight float64
		want   error
	}{
		{"empty date", "", 80, domain.ErrInvalidDate},
		{"bad date", "2024/01/01", 80, domain.ErrInvalidDate},
		{"zero weight", "2024-01-01", 0, domain.ErrInvalidWeight},
		{"negative weight", "2024-01-01", -5, domain.ErrInvalidWeight},
		{"too heavy", "2024-01-01", 1000, domain.ErrInvalidWeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Upsert(context.Background(), tc.day, tc.weight)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.False(t, called, "repository must not see invalid writes")
}

func TestUpsert_Success(t *testing.T) {
	svc := app.NewEntryService(&mockEntryRepo{})
	got, err := svc.Upsert(context.Background(), "2024-01-02", 79.5)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", got.Date)
	assert.Equal(t, 79.5, got.Weight)
}

func TestUpsert_RepoError(t *testing.T) {
	repoErr := errors.New("db down")
	svc := app.NewEntryService(&mockEntryRepo{
		upsertFn: func(context.Context, string, float64) (domain.WeightEntry, error) {
			return domain.WeightEntry{}, repoErr
		},
	})
	_, err := svc.Upsert(context.Background(), "2024-01-02", 79.5)
	assert.ErrorIs(t, err, repoErr)
}

func TestLookup(t *testing.T) {
	svc := app.NewEntryService(listOf(t, "2024-01-01", 80.0, "2024-01-02", 79.5))

	got, err := svc.Lookup(context.Background(), "2024-01-02")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 79.5, got.Weight)

	got, err = svc.Lookup(context.Background(), "2024-01-03")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = svc.Lookup(context.Background(), "tomorrow")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestAll_Error(t *testing.T) {
	svc := app.NewEntryService(&mockEntryRepo{
		listFn: func(context.Context) ([]domain.WeightEntry, error) { return nil, errors.New("db down") },
	})
	_, err := svc.All(context.Background())
	assert.Error(t, err)
}
