package app

import (
	"context"
	"time"

	"weightlog/internal/domain"
)

// ChartsService encapsulates chart and calendar data retrieval use cases.
// Every call re-derives its view from the current entries.
type ChartsService struct {
	repo domain.EntryRepository
}

// NewChartsService creates a ChartsService backed by the given repository.
func NewChartsService(repo domain.EntryRepository) *ChartsService {
	return &ChartsService{repo: repo}
}

// Period returns the calendar-aligned series for p relative to now.
func (s *ChartsService) Period(ctx context.Context, p domain.Period, now time.Time) ([]domain.Bucket, error) {
	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	return domain.BucketForPeriod(entries, p, now), nil
}

// Averages returns the average comparison series for mode.
func (s *ChartsService) Averages(ctx context.Context, mode domain.AverageMode) ([]domain.Bucket, error) {
	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Averages(entries, mode), nil
}

// Calendar returns the heat-map grid for the given month.
func (s *ChartsService) Calendar(ctx context.Context, year int, month time.Month) ([]*domain.CalendarCell, error) {
	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	return domain.CalendarGrid(entries, year, month)
}

// Picker returns the date picker grid for the given month.
func (s *ChartsService) Picker(ctx context.Context, year int, month time.Month, today time.Time) ([]*domain.PickerCell, error) {
	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	return domain.PickerGrid(entries, year, month, today)
}
