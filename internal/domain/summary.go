package domain

import "time"

// Summary holds range statistics over a trailing window. Latest, Max and Min
// are nil when Count is zero.
type Summary struct {
	Range       Period   `json:"range"`
	WindowStart string   `json:"windowStart"`
	Count       int      `json:"count"`
	Latest      *float64 `json:"latest"`
	Max         *float64 `json:"max"`
	Min         *float64 `json:"min"`
}

// SharePoint is one plotted entry on a share card.
type SharePoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Label  string  `json:"label"`
}

// InWindow returns the entries dated on or after the start of the trailing
// window for r, keeping their order.
func InWindow(entries []WeightEntry, r Period, now time.Time) []WeightEntry {
	start := FormatDay(r.WindowStart(now))
	out := make([]WeightEntry, 0, len(entries))
	for _, e := range entries {
		if e.Date >= start {
			out = append(out, e)
		}
	}
	return out
}

// Summarize computes count, latest, max and min over the trailing window
// for r. entries must be sorted ascending.
func Summarize(entries []WeightEntry, r Period, now time.Time) Summary {
	s := Summary{Range: r, WindowStart: FormatDay(r.WindowStart(now))}

	window := InWindow(entries, r, now)
	s.Count = len(window)
	if s.Count == 0 {
		return s
	}

	hi, lo := window[0].Weight, window[0].Weight
	for _, e := range window[1:] {
		hi = max(hi, e.Weight)
		lo = min(lo, e.Weight)
	}
	s.Latest = ptr(Round1(window[len(window)-1].Weight))
	s.Max = ptr(Round1(hi))
	s.Min = ptr(Round1(lo))
	return s
}

// SharePoints returns the window's entries labelled for a compact chart
// axis, e.g. "Jan 2".
func SharePoints(entries []WeightEntry, r Period, now time.Time) []SharePoint {
	window := InWindow(entries, r, now)
	out := make([]SharePoint, 0, len(window))
	for _, e := range window {
		out = append(out, SharePoint{
			Date:   e.Date,
			Weight: Round1(e.Weight),
			Label:  e.Time().Format("Jan 2"),
		})
	}
	return out
}
