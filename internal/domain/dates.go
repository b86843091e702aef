package domain

import "time"

// DateOnly drops the time of day and location, keeping the calendar date as seen in t's location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsBeforeDay compares calendar dates only
func IsBeforeDay(date, today time.Time) bool {
	return DateOnly(date).Before(DateOnly(today))
}

// MonthRange returns [first day of the month, first day of the next month) for the month containing day
func MonthRange(day time.Time) (time.Time, time.Time) {
	d := DateOnly(day)
	start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
