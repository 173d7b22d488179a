// Package util contains small shared helpers, most importantly the calendar
// day-bucket math used by streak, habit and gratitude features.
package util

import (
	"fmt"
	"time"
)

// DayOf normalizes a timestamp to the start of its calendar day in UTC.
// Two timestamps fall on the same day exactly when their DayOf values are
// equal. UTC is the single day-boundary convention for the whole service;
// callers must not mix in local-time day windows.
func DayOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two timestamps fall within the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}

// DayWindow returns the inclusive start and exclusive end of the UTC calendar
// day containing t, for range queries against timestamp columns.
func DayWindow(t time.Time) (start, end time.Time) {
	start = DayOf(t)

	return start, start.AddDate(0, 0, 1)
}

// SameMonth reports whether two timestamps fall within the same UTC calendar month.
func SameMonth(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()

	return au.Year() == bu.Year() && au.Month() == bu.Month()
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
