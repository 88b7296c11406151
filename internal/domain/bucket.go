package domain

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// maxAverageGroups is how many of the most recent groups Averages keeps.
const maxAverageGroups = 8

// Bucket is one display unit of a chart series. Weight is nil when the
// bucket has no data.
type Bucket struct {
	Key    string   `json:"key"`
	Label  string   `json:"label"`
	Weight *float64 `json:"weight"`
}

// BucketForPeriod shapes entries into the calendar-aligned series for p:
// 7 buckets for the week containing now (Monday first), one per day of the
// current month, or 12 monthly means for the current year.
func BucketForPeriod(entries []WeightEntry, p Period, now time.Time) []Bucket {
	switch p {
	case PeriodMonth:
		return monthBuckets(entries, now)
	case PeriodYear:
		return yearBuckets(entries, now)
	default:
		return weekBuckets(entries, now)
	}
}

// WeekStart returns the Monday of the calendar week containing now.
func WeekStart(now time.Time) time.Time {
	today := CivilDay(now)
	offset := (int(today.Weekday()) + 6) % 7
	return today.AddDate(0, 0, -offset)
}

func weekBuckets(entries []WeightEntry, now time.Time) []Bucket {
	byDay := index(entries)
	monday := WeekStart(now)

	out := make([]Bucket, 0, 7)
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		out = append(out, dayBucket(byDay, d, d.Weekday().String()[:3]))
	}
	return out
}

func monthBuckets(entries []WeightEntry, now time.Time) []Bucket {
	byDay := index(entries)
	today := CivilDay(now)
	year, month := today.Year(), today.Month()

	n := DaysIn(year, month)
	out := make([]Bucket, 0, n)
	for day := 1; day <= n; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		out = append(out, dayBucket(byDay, d, strconv.Itoa(day)))
	}
	return out
}

func dayBucket(byDay map[string]float64, d time.Time, label string) Bucket {
	key := FormatDay(d)
	b := Bucket{Key: key, Label: label}
	if w, ok := byDay[key]; ok {
		b.Weight = ptr(Round1(w))
	}
	return b
}

func yearBuckets(entries []WeightEntry, now time.Time) []Bucket {
	year := CivilDay(now).Year()

	var perMonth [12][]float64
	for _, e := range entries {
		t := e.Time()
		if t.Year() != year {
			continue
		}
		perMonth[t.Month()-1] = append(perMonth[t.Month()-1], e.Weight)
	}

	out := make([]Bucket, 0, 12)
	for i, weights := range perMonth {
		month := time.Month(i + 1)
		b := Bucket{
			Key:   fmt.Sprintf("%d-%d", year, month),
			Label: month.String()[:3],
		}
		if len(weights) > 0 {
			b.Weight = ptr(Round1(mean(weights)))
		}
		out = append(out, b)
	}
	return out
}

// Averages groups every entry by ISO week or calendar month and returns the
// rounded mean of each group, oldest first, limited to the most recent
// groups.
func Averages(entries []WeightEntry, mode AverageMode) []Bucket {
	sorted := make([]WeightEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	order := make([]Bucket, 0, maxAverageGroups)
	groups := make(map[string][]float64)
	for _, e := range sorted {
		key, label := averageKey(e.Time(), mode)
		if _, ok := groups[key]; !ok {
			order = append(order, Bucket{Key: key, Label: label})
		}
		groups[key] = append(groups[key], e.Weight)
	}

	if len(order) > maxAverageGroups {
		order = order[len(order)-maxAverageGroups:]
	}
	for i := range order {
		order[i].Weight = ptr(Round1(mean(groups[order[i].Key])))
	}
	return order
}

func averageKey(t time.Time, mode AverageMode) (key, label string) {
	if mode == ModeMonthly {
		return fmt.Sprintf("%d-%d", t.Year(), t.Month()), fmt.Sprintf("%s %d", t.Month().String()[:3], t.Year())
	}
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week), fmt.Sprintf("W%d", week)
}
