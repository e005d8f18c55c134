package util

import (
	"testing"
	"time"
)

func TestDateUTCCrossesMidnight(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC
	loc := time.FixedZone("UTC-5", -5*60*60)
	ts := time.Date(2024, 10, 10, 23, 30, 0, 0, loc)
	got := DateUTC(ts)
	if got != "2024-10-11" {
		t.Fatalf("unexpected date %s", got)
	}
}

func TestMidnightTimestamp(t *testing.T) {
	got := MidnightTimestamp("2026-02-19")
	if got != "2026-02-19T00:00:00Z" {
		t.Fatalf("unexpected timestamp %s", got)
	}
}

func TestFormatInstantEndsInZ(t *testing.T) {
	ts := time.Date(2026, 2, 18, 12, 34, 56, 0, time.UTC)
	got := FormatInstant(ts)
	if got != "2026-02-18T12:34:56Z" {
		t.Fatalf("unexpected instant %s", got)
	}
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2024-02-29")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Day() != 29 || got.Month() != time.February {
		t.Fatalf("unexpected time %v", got)
	}
	if _, ok := ParseDate("2024-13-01"); ok {
		t.Fatalf("expected parse failure")
	}
}
