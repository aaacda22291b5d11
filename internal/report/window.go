package report

import "time"

// SeriesWindow bounds the monthly sales series to a fixed calendar range.
// The dashboard reports on the first half of a configured year; a rolling
// "last six months" variant was considered and rejected so that repeated
// requests over the same data always produce the same series.
type SeriesWindow struct {
	Start time.Time
	End   time.Time
}

// FirstHalfOfYear returns the window covering Jan 1 00:00:00 through
// Jun 30 23:59:59 UTC of the given year.
func FirstHalfOfYear(year int) SeriesWindow {
	return SeriesWindow{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.June, 30, 23, 59, 59, 0, time.UTC),
	}
}

// Contains reports whether t falls inside the window, bounds inclusive.
func (w SeriesWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
