package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownPeriod = errors.New("period must be \"week\", \"month\" or \"year\"")
	ErrUnknownMode   = errors.New("mode must be \"weekly\" or \"monthly\"")
)

// Period selects the granularity of a chart series or the length of a
// trailing window.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod validates s as a Period.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

// WindowStart returns the first calendar day of the trailing window that
// ends on now: 7 days, one month or one year back.
func (p Period) WindowStart(now time.Time) time.Time {
	today := CivilDay(now)
	switch p {
	case PeriodMonth:
		return today.AddDate(0, -1, 0)
	case PeriodYear:
		return today.AddDate(-1, 0, 0)
	default:
		return today.AddDate(0, 0, -7)
	}
}

// AverageMode selects how entries are grouped for the average comparison.
type AverageMode string

const (
	ModeWeekly  AverageMode = "weekly"
	ModeMonthly AverageMode = "monthly"
)

// ParseAverageMode validates s as an AverageMode.
func ParseAverageMode(s string) (AverageMode, error) {
	switch m := AverageMode(s); m {
	case ModeWeekly, ModeMonthly:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
