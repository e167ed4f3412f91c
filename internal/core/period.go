package core

import (
	"fmt"
	"time"
)

// Period is a half-open date interval [Start, End) over which transactions
// are aggregated.
type Period struct {
	Start time.Time
	End   time.Time
}

// MonthOf returns the period covering a single calendar month.
func MonthOf(year int, month time.Month) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Period{Start: start, End: start.AddDate(0, 1, 0)}
}

// Between returns the period covering the days from start through end,
// both inclusive.
func Between(start, end Date) Period {
	return Period{Start: start.Time, End: end.AddDate(0, 0, 1)}
}

// Contains reports whether d falls within the period. The start is inclusive,
// the end exclusive.
func (p Period) Contains(d Date) bool {
	return !d.Before(p.Start) && d.Before(p.End)
}

// Label renders the period for report headers: "August 2026" for a calendar
// month, "2026-08-01 to 2026-08-15" for anything else.
func (p Period) Label() string {
	if p.calendarMonth() {
		return p.Start.Format("January 2006")
	}
	last := p.End.AddDate(0, 0, -1)
	return fmt.Sprintf("%s to %s", p.Start.Format(DateLayout), last.Format(DateLayout))
}

func (p Period) calendarMonth() bool {
	return p.Start.Day() == 1 && p.End.Equal(p.Start.AddDate(0, 1, 0))
}
