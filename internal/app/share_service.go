package app

import (
	"context"
	"math/rand/v2"
	"time"

	"weightlog/internal/domain"
)

// Quotes are shown at the bottom of a share card.
var Quotes = []string{
	"Every day you keep going paves the way to a better you.",
	"Health is the greatest wealth; consistency is the best investment.",
	"Small steps forward still reach the other shore.",
	"Today's effort is tomorrow's confidence.",
	"Trust the process and enjoy every change.",
	"A healthy life starts with a record.",
	"Behind every number is a promise to yourself.",
}

// ShareCard is the data behind a shareable progress card.
type ShareCard struct {
	domain.Summary
	Points []domain.SharePoint `json:"points"`
	Quote  string              `json:"quote"`
}

// ShareService builds range summaries and share cards.
type ShareService struct {
	repo domain.EntryRepository
	pick func(n int) int
}

// NewShareService creates a ShareService backed by the given repository.
func NewShareService(repo domain.EntryRepository) *ShareService {
	return &ShareService{repo: repo, pick: rand.IntN}
}

// WithQuotePicker replaces the random quote index source.
func (s *ShareService) WithQuotePicker(pick func(n int) int) *ShareService {
	s.pick = pick
	return s
}

// Summary returns count, latest, max and min over the trailing window for r.
func (s *ShareService) Summary(ctx context.Context, r domain.Period, now time.Time) (domain.Summary, error) {
	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(entries, r, now), nil
}

// Card returns the summary, the window's points and a quote.
func (s *ShareService) Card(ctx context.Context, r domain.Period, now time.Time) (*ShareCard, error) {
	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	return &ShareCard{
		Summary: domain.Summarize(entries, r, now),
		Points:  domain.SharePoints(entries, r, now),
		Quote:   Quotes[s.pick(len(Quotes))],
	}, nil
}
