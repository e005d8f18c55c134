package usecase

import (
	"math"
	"testing"
	"time"

	"FinCast/internal/domain/models"
	xhttp "FinCast/pkg/http"
)

func testTicker() models.Ticker {
	return models.Ticker{Symbol: "AAPL", Class: models.AssetEquity, Currency: "USD"}
}

func testHorizon(days int) models.HorizonRequest {
	return models.HorizonRequest{
		Days:        days,
		GeneratedAt: time.Date(2026, 2, 18, 12, 34, 56, 0, time.UTC),
	}
}

func TestAssembleBuildsOrderedResponse(t *testing.T) {
	dates := []string{"2026-02-19", "2026-02-20", "2026-02-21"}
	prices := map[string]float64{
		"2026-02-19": 101.5,
		"2026-02-20": 102.25,
		"2026-02-21": 103.0,
	}

	resp, appErr := Assemble(testTicker(), testHorizon(3), dates, prices)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.Ticker != "AAPL" || resp.Currency != "USD" || resp.Timezone != "UTC" {
		t.Fatalf("unexpected header fields %+v", resp)
	}
	if resp.HorizonDays != 3 || len(resp.Forecasts) != 3 {
		t.Fatalf("unexpected lengths %d/%d", resp.HorizonDays, len(resp.Forecasts))
	}
	if resp.AnchorTimeUTC != "00:00:00" {
		t.Fatalf("unexpected anchor %s", resp.AnchorTimeUTC)
	}
	if resp.GeneratedAt != "2026-02-18T12:34:56Z" {
		t.Fatalf("unexpected generated_at %s", resp.GeneratedAt)
	}
	for i, p := range resp.Forecasts {
		if p.Date != dates[i] {
			t.Fatalf("unexpected date %s at %d", p.Date, i)
		}
		if p.Timestamp != dates[i]+"T00:00:00Z" {
			t.Fatalf("timestamp not derived from date: %s", p.Timestamp)
		}
	}
	if resp.Forecasts[1].PredictedPrice != 102.25 {
		t.Fatalf("unexpected price %v", resp.Forecasts[1].PredictedPrice)
	}
}

func TestAssemblePartialCoverageIsInternalError(t *testing.T) {
	dates := []string{"2026-02-19", "2026-02-20", "2026-02-21"}
	prices := map[string]float64{
		"2026-02-19": 101.5,
		"2026-02-21": 103.0,
	}

	_, appErr := Assemble(testTicker(), testHorizon(3), dates, prices)
	if appErr == nil {
		t.Fatalf("expected error")
	}
	if appErr.Code != xhttp.CodeInternalError {
		t.Fatalf("expected INTERNAL_ERROR, got %s", appErr.Code)
	}
	if appErr.Status != 500 {
		t.Fatalf("expected status 500, got %d", appErr.Status)
	}
}

func TestAssembleRejectsInvalidPrices(t *testing.T) {
	dates := []string{"2026-02-19"}
	cases := []float64{math.NaN(), math.Inf(1), math.Inf(-1), -0.01}
	for _, bad := range cases {
		_, appErr := Assemble(testTicker(), testHorizon(1), dates, map[string]float64{"2026-02-19": bad})
		if appErr == nil {
			t.Fatalf("expected error for price %v", bad)
		}
		if appErr.Code != xhttp.CodeInternalError {
			t.Fatalf("expected INTERNAL_ERROR for price %v, got %s", bad, appErr.Code)
		}
	}
}

func TestAssembleZeroPriceAllowed(t *testing.T) {
	dates := []string{"2026-02-19"}
	resp, appErr := Assemble(testTicker(), testHorizon(1), dates, map[string]float64{"2026-02-19": 0})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.Forecasts[0].PredictedPrice != 0 {
		t.Fatalf("unexpected price %v", resp.Forecasts[0].PredictedPrice)
	}
}
