// Package calendar provides calendar-date helpers. Storage and transport use
// UTC instants; menu availability is bucketed by local calendar day, so day
// comparisons must go through these helpers rather than instant arithmetic.
package calendar

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

func NowUTC() time.Time {
	return time.Now().UTC()
}

// SameDay reports whether two instants fall on the same calendar day in the
// local timezone.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// IsToday reports whether t falls on today's calendar date.
func IsToday(t time.Time) bool {
	return SameDay(t, time.Now())
}

// IsTomorrow reports whether t falls on tomorrow's calendar date.
func IsTomorrow(t time.Time) bool {
	return SameDay(t, time.Now().AddDate(0, 0, 1))
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// ParseDate parses a YYYY-MM-DD string as a local calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t as a YYYY-MM-DD string.
func FormatDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}
