package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DayLayout is the wire and storage format of a calendar day.
const DayLayout = "2006-01-02"

// MaxWeight is the exclusive upper bound accepted for a logged weight.
const MaxWeight = 1000

var (
	ErrInvalidWeight = errors.New("weight must be > 0 and < 1000")
	ErrInvalidDate   = errors.New("date must be YYYY-MM-DD")
	ErrInvalidMonth  = errors.New("month must be between 1 and 12")
)

// WeightEntry represents a single dated weight measurement. At most one
// entry exists per Date.
type WeightEntry struct {
	Date      string  `json:"date"`
	Weight    float64 `json:"weight"`
	Timestamp int64   `json:"timestamp"`
}

// NewWeightEntry builds an entry for day, deriving Timestamp from the date
// at UTC midnight.
func NewWeightEntry(day string, weight float64) (WeightEntry, error) {
	t, err := ParseDay(day)
	if err != nil {
		return WeightEntry{}, err
	}
	return WeightEntry{Date: FormatDay(t), Weight: weight, Timestamp: t.UnixMilli()}, nil
}

// Time returns the entry's calendar day as a UTC midnight time.
func (e WeightEntry) Time() time.Time {
	return time.UnixMilli(e.Timestamp).UTC()
}

// EntryRepository is the port for the entry store. Implementations keep
// entries unique per date and return them sorted ascending by timestamp.
type EntryRepository interface {
	UpsertEntry(ctx context.Context, day string, weight float64) (WeightEntry, error)
	ListEntries(ctx context.Context) ([]WeightEntry, error)
}

// ParseDay parses a "YYYY-MM-DD" string into UTC midnight.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDay formats t's calendar date as "YYYY-MM-DD".
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

// CivilDay strips the clock from t, keeping the calendar date as seen in
// t's own location, and returns it as UTC midnight.
func CivilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ValidateWeight reports whether w is an acceptable measurement.
func ValidateWeight(w float64) error {
	if !(w > 0 && w < MaxWeight) {
		return ErrInvalidWeight
	}
	return nil
}

// index maps each entry's date to its weight.
func index(entries []WeightEntry) map[string]float64 {
	m := make(map[string]float64, len(entries))
	for _, e := range entries {
		m[e.Date] = e.Weight
	}
	return m
}
