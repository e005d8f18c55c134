package usecase

import (
	"testing"
	"time"

	xhttp "FinCast/pkg/http"
)

func TestComputeDatesStartsDayAfter(t *testing.T) {
	generatedAt := time.Date(2026, 2, 18, 12, 34, 56, 0, time.UTC)
	dates := ComputeDates(generatedAt, 7)
	if len(dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(dates))
	}
	if dates[0] != "2026-02-19" {
		t.Fatalf("unexpected first date %s", dates[0])
	}
	if dates[6] != "2026-02-25" {
		t.Fatalf("unexpected last date %s", dates[6])
	}
}

func TestComputeDatesLeapYear(t *testing.T) {
	generatedAt := time.Date(2024, 2, 28, 3, 0, 0, 0, time.UTC)
	dates := ComputeDates(generatedAt, 3)
	want := []string{"2024-02-29", "2024-03-01", "2024-03-02"}
	for i, w := range want {
		if dates[i] != w {
			t.Fatalf("expected %s at %d, got %s", w, i, dates[i])
		}
	}
}

func TestComputeDatesYearRollover(t *testing.T) {
	generatedAt := time.Date(2025, 12, 30, 23, 59, 59, 0, time.UTC)
	dates := ComputeDates(generatedAt, 3)
	want := []string{"2025-12-31", "2026-01-01", "2026-01-02"}
	for i, w := range want {
		if dates[i] != w {
			t.Fatalf("expected %s at %d, got %s", w, i, dates[i])
		}
	}
}

func TestComputeDatesUsesUTCDate(t *testing.T) {
	// 20:00 in UTC-8 is already the next UTC day; the window must anchor to UTC
	loc := time.FixedZone("UTC-8", -8*60*60)
	generatedAt := time.Date(2026, 2, 18, 20, 0, 0, 0, loc)
	dates := ComputeDates(generatedAt, 1)
	if dates[0] != "2026-02-20" {
		t.Fatalf("unexpected first date %s", dates[0])
	}
}

func TestComputeDatesStrictlyAscendingNoGaps(t *testing.T) {
	generatedAt := time.Date(2023, 1, 15, 8, 0, 0, 0, time.UTC)
	dates := ComputeDates(generatedAt, 30)
	prev, _ := time.Parse("2006-01-02", dates[0])
	for _, d := range dates[1:] {
		cur, err := time.Parse("2006-01-02", d)
		if err != nil {
			t.Fatalf("bad date %s: %v", d, err)
		}
		if cur.Sub(prev) != 24*time.Hour {
			t.Fatalf("gap between %s and %s", prev.Format("2006-01-02"), d)
		}
		prev = cur
	}
}

func TestValidateHorizonDefault(t *testing.T) {
	days, appErr := ValidateHorizon("", 7, []int{7})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if days != 7 {
		t.Fatalf("expected default 7, got %d", days)
	}
}

func TestValidateHorizonAccepted(t *testing.T) {
	days, appErr := ValidateHorizon("14", 7, []int{7, 14})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if days != 14 {
		t.Fatalf("expected 14, got %d", days)
	}
}

func TestValidateHorizonRejected(t *testing.T) {
	cases := []string{"0", "-3", "8", "abc", "7.5"}
	for _, raw := range cases {
		_, appErr := ValidateHorizon(raw, 7, []int{7})
		if appErr == nil {
			t.Fatalf("expected error for %q", raw)
		}
		if appErr.Code != xhttp.CodeInvalidParameter {
			t.Fatalf("expected INVALID_PARAMETER for %q, got %s", raw, appErr.Code)
		}
	}
}

func TestValidateHorizonEchoesRejectedValue(t *testing.T) {
	_, appErr := ValidateHorizon("8", 7, []int{7})
	if appErr == nil {
		t.Fatalf("expected error")
	}
	if got := appErr.Details["horizon_days"]; got != 8 {
		t.Fatalf("expected rejected value in details, got %v", got)
	}
}
