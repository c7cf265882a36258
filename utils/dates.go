// File: utils/dates.go
package utils

import (
	"fmt"
	"time"
)

// DayLayout is the wire format for calendar days.
const DayLayout = "2006-01-02"

// ParseDay parses a "YYYY-MM-DD" string as a naive calendar day, pinned to
// midnight UTC. Parsing must never involve the local timezone: converting a
// day string through local time shifts it by a day in negative-offset zones.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid calendar day %q: %w", s, err)
	}
	return t, nil
}

// FormatDay renders a day as "YYYY-MM-DD".
func FormatDay(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// Today returns the current local calendar day as a midnight-UTC value,
// matching what ParseDay produces for the same date.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays moves a day value forward (or back) by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddMonths moves a day value forward by n calendar months.
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// DaysBetween returns b - a in whole days. Both values must be
// midnight-UTC days as produced by ParseDay or Today.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
