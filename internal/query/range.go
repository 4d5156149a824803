package query

import "time"

// Named reporting ranges. Each takes the caller's notion of "today"
// (a calendar day at midnight UTC) and returns inclusive bounds for
// ByDateRange.

// MonthToDate spans the first day of today's month through today.
func MonthToDate(today time.Time) (start, end time.Time) {
	start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, today
}

// PreviousMonth spans the previous calendar month: its first day through
// that day plus one month minus one day.
func PreviousMonth(today time.Time) (start, end time.Time) {
	thisFirst := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	start = thisFirst.AddDate(0, -1, 0)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// YearToDate spans January 1 of today's year through today.
func YearToDate(today time.Time) (start, end time.Time) {
	start = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, today
}

// PreviousYear spans the previous calendar year in full.
func PreviousYear(today time.Time) (start, end time.Time) {
	start = time.Date(today.Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(today.Year()-1, time.December, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}
