package usecase

import (
	"main/model"
	"time"
)

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// Today returns the closed interval covering now's calendar day.
func Today(now time.Time) model.Window {
	return model.Window{Start: StartOfDay(now), End: EndOfDay(now)}
}

// LastNDays returns the window from the start of the day (n-1) days ago
// through now. Both boundary days are included, so LastNDays(now, 7) spans
// seven calendar days with today as the seventh. The (n-1) subtraction is
// load-bearing: chart labels and the week filter both assume it.
func LastNDays(now time.Time, n int) model.Window {
	return model.Window{
		Start: StartOfDay(now.AddDate(0, 0, -(n - 1))),
		End:   now,
	}
}

// Last7Days is the reference week window used by summaries and buckets.
func Last7Days(now time.Time) model.Window {
	return LastNDays(now, 7)
}
