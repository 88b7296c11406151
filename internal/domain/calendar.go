package domain

import (
	"fmt"
	"time"
)

// ChangeType classifies a day's weight against the previous calendar day.
type ChangeType string

const (
	ChangeIncrease ChangeType = "increase"
	ChangeDecrease ChangeType = "decrease"
	ChangeNeutral  ChangeType = "neutral"
)

// CalendarCell is one day of the heat-map calendar.
type CalendarCell struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Weight     *float64   `json:"weight"`
	ChangeType ChangeType `json:"changeType"`
	HasData    bool       `json:"hasData"`
}

// PickerCell is one day of the date picker used when logging an entry.
type PickerCell struct {
	Day     int    `json:"day"`
	Date    string `json:"date"`
	HasData bool   `json:"hasData"`
	IsToday bool   `json:"isToday"`
	IsPast  bool   `json:"isPast"`
}

// CalendarGrid lays out the given month for a Sunday-first, 7-column grid.
// Leading cells before day 1 are nil placeholders. Each day is compared with
// the entry for the previous calendar day; the change is neutral when either
// side is missing.
func CalendarGrid(entries []WeightEntry, year int, month time.Month) ([]*CalendarCell, error) {
	first, err := firstOfMonth(year, month)
	if err != nil {
		return nil, err
	}
	byDay := index(entries)

	n := DaysIn(year, month)
	lead := int(first.Weekday())
	cells := make([]*CalendarCell, lead, lead+n)

	for day := 1; day <= n; day++ {
		d := first.AddDate(0, 0, day-1)
		cell := &CalendarCell{Day: day, Date: FormatDay(d), ChangeType: ChangeNeutral}

		cur, ok := byDay[cell.Date]
		if ok {
			cell.HasData = true
			cell.Weight = ptr(Round1(cur))
			if prev, ok := byDay[FormatDay(d.AddDate(0, 0, -1))]; ok {
				switch {
				case cur < prev:
					cell.ChangeType = ChangeDecrease
				case cur > prev:
					cell.ChangeType = ChangeIncrease
				}
			}
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

// PickerGrid lays out the given month like CalendarGrid, flagging days that
// already have an entry and where each day sits relative to today.
func PickerGrid(entries []WeightEntry, year int, month time.Month, today time.Time) ([]*PickerCell, error) {
	first, err := firstOfMonth(year, month)
	if err != nil {
		return nil, err
	}
	byDay := index(entries)
	todayKey := FormatDay(CivilDay(today))

	n := DaysIn(year, month)
	lead := int(first.Weekday())
	cells := make([]*PickerCell, lead, lead+n)

	for day := 1; day <= n; day++ {
		key := FormatDay(first.AddDate(0, 0, day-1))
		_, has := byDay[key]
		cells = append(cells, &PickerCell{
			Day:     day,
			Date:    key,
			HasData: has,
			IsToday: key == todayKey,
			IsPast:  key < todayKey,
		})
	}
	return cells, nil
}

func firstOfMonth(year int, month time.Month) (time.Time, error) {
	if month < time.January || month > time.December {
		return time.Time{}, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
}
