package util

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the storage and display format of calendar dates.
const DateLayout = "2006-01-02"

// DateOf returns the calendar date of t (in t's location) as midnight UTC.
// All scheduled dates and "today" share this convention so that comparing
// them never depends on the machine's time zone.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the local calendar date.
func Today() time.Time {
	return DateOf(time.Now())
}

// FormatDate renders a calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// ResolveDate understands "today", "tomorrow", "+N" (days from today) and
// YYYY-MM-DD.
func ResolveDate(s string, today time.Time) (time.Time, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	base := DateOf(today)
	switch {
	case s == "today":
		return base, nil
	case s == "tomorrow":
		return base.AddDate(0, 0, 1), nil
	case strings.HasPrefix(s, "+"):
		var n int
		if _, err := fmt.Sscanf(s, "+%d", &n); err != nil || n < 0 {
			return time.Time{}, fmt.Errorf("invalid day offset %q", s)
		}
		return base.AddDate(0, 0, n), nil
	default:
		return ParseDate(s)
	}
}
