package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayOf_NormalizesToUTCMidnight(t *testing.T) {
	ts := time.Date(2024, 3, 1, 15, 30, 45, 123456789, time.UTC)

	got := DayOf(ts)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestDayOf_ConvertsZoneBeforeBucketing(t *testing.T) {
	// 23:30 on March 1st in UTC-5 is already March 2nd in UTC.
	zone := time.FixedZone("UTC-5", -5*60*60)
	ts := time.Date(2024, 3, 1, 23, 30, 0, 0, zone)

	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), DayOf(ts))
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, 3, 1, 0, 0, 1, 0, time.UTC)
	night := time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, night))
	assert.False(t, SameDay(night, nextDay))
}

func TestDayWindow(t *testing.T) {
	ts := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)

	start, end := DayWindow(ts)

	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestSameMonth(t *testing.T) {
	assert.True(t, SameMonth(
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC),
	))
	// Same month number, different year.
	assert.False(t, SameMonth(
		time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{5*time.Minute + 10*time.Second, "5m10s"},
		{90 * time.Minute, "1h30m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in))
	}
}
