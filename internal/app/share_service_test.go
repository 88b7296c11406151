package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weightlog/internal/app"
	"weightlog/internal/domain"
)

func TestSummary_EmptyWindow(t *testing.T) {
	svc := app.NewShareService(listOf(t, "2020-01-01", 70.0))
	s, err := svc.Summary(context.Background(), domain.PeriodWeek, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Count)
	assert.Nil(t, s.Latest)
	assert.Nil(t, s.Max)
	assert.Nil(t, s.Min)
}

func TestCard(t *testing.T) {
	svc := app.NewShareService(listOf(t,
		"2024-02-01", 82.0,
		"2024-03-01", 80.0,
		"2024-03-09", 79.0,
	)).WithQuotePicker(func(n int) int { return n - 1 })

	card, err := svc.Card(context.Background(), domain.PeriodMonth, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, domain.PeriodMonth, card.Range)
	assert.Equal(t, 2, card.Count)
	assert.Equal(t, 79.0, *card.Latest)
	require.Len(t, card.Points, 2)
	assert.Equal(t, "Mar 1", card.Points[0].Label)
	assert.Equal(t, app.Quotes[len(app.Quotes)-1], card.Quote)
}

func TestCard_DefaultPickerUsesKnownQuote(t *testing.T) {
	svc := app.NewShareService(listOf(t))
	card, err := svc.Card(context.Background(), domain.PeriodYear, time.Now())
	require.NoError(t, err)
	assert.Contains(t, app.Quotes, card.Quote)
	assert.Empty(t, card.Points)
}
