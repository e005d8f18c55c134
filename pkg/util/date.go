package util

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// DateUTC returns the UTC calendar date of t as YYYY-MM-DD.
func DateUTC(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// MidnightTimestamp returns the RFC3339 instant for a calendar date at
// 00:00:00 UTC. A pure function of the date, never stored independently.
func MidnightTimestamp(date string) string {
	return date + "T00:00:00Z"
}

// FormatInstant renders t as an RFC3339 UTC instant ending in Z.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseDate parses a YYYY-MM-DD calendar date as midnight UTC.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
