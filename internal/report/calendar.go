package report

import "time"

// MonthWindow returns the first and last instant of the given month in loc.
// Both bounds are inclusive.
func MonthWindow(year, month int, loc *time.Location) (from, to time.Time) {
	from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	to = from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return from, to
}

// IsClosedMonth reports whether the month has fully elapsed: its last
// instant is strictly before the start of the day containing now.
func IsClosedMonth(year, month int, now time.Time, loc *time.Location) bool {
	_, end := MonthWindow(year, month, loc)
	local := now.In(loc)
	startOfToday := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return end.Before(startOfToday)
}
