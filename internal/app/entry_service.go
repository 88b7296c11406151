package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"weightlog/internal/domain"
)

// EntryService encapsulates weight-logging use cases.
type EntryService struct {
	repo domain.EntryRepository
}

// NewEntryService creates an EntryService backed by the given repository.
func NewEntryService(repo domain.EntryRepository) *EntryService {
	return &EntryService{repo: repo}
}

// Upsert validates and stores a weight for day, replacing any existing entry
// for the same day.
func (s *EntryService) Upsert(ctx context.Context, day string, weight float64) (domain.WeightEntry, error) {
	if day == "" {
		return domain.WeightEntry{}, fmt.Errorf("%w: empty", domain.ErrInvalidDate)
	}
	if _, err := domain.ParseDay(day); err != nil {
		return domain.WeightEntry{}, err
	}
	if err := domain.ValidateWeight(weight); err != nil {
		return domain.WeightEntry{}, err
	}

	entry, err := s.repo.UpsertEntry(ctx, day, weight)
	if err != nil {
		return domain.WeightEntry{}, fmt.Errorf("upsert entry %s: %w", day, err)
	}
	log.WithFields(log.Fields{"date": entry.Date, "weight": entry.Weight}).Debug("entry stored")
	return entry, nil
}

// All returns every entry, oldest first.
func (s *EntryService) All(ctx context.Context) ([]domain.WeightEntry, error) {
	return s.repo.ListEntries(ctx)
}

// Lookup returns the entry logged for day, or nil when there is none.
func (s *EntryService) Lookup(ctx context.Context, day string) (*domain.WeightEntry, error) {
	t, err := domain.ParseDay(day)
	if err != nil {
		return nil, err
	}
	key := domain.FormatDay(t)

	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].Date == key {
			return &entries[i], nil
		}
	}
	return nil, nil
}
