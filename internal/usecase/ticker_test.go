package usecase

import (
	"testing"

	"FinCast/internal/domain/models"
	xhttp "FinCast/pkg/http"
)

func TestNormalizeTickerEquity(t *testing.T) {
	ticker, appErr := NormalizeTicker(" aapl ", 10)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if ticker.Symbol != "AAPL" {
		t.Fatalf("unexpected symbol %s", ticker.Symbol)
	}
	if ticker.Class != models.AssetEquity {
		t.Fatalf("unexpected class %s", ticker.Class)
	}
	if ticker.Currency != "USD" {
		t.Fatalf("unexpected currency %s", ticker.Currency)
	}
}

func TestNormalizeTickerCryptoPair(t *testing.T) {
	ticker, appErr := NormalizeTicker("btc-usd", 10)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if ticker.Symbol != "BTC-USD" {
		t.Fatalf("unexpected symbol %s", ticker.Symbol)
	}
	if ticker.Class != models.AssetCryptoPair {
		t.Fatalf("unexpected class %s", ticker.Class)
	}
	if ticker.Currency != "USD" || ticker.BaseAsset != "BTC" || ticker.QuoteAsset != "USD" {
		t.Fatalf("unexpected pair fields %+v", ticker)
	}
}

func TestNormalizeTickerRejectsBadShapes(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"AAA???",
		"BTC-USD-X",
		"BTC-",
		"-USD",
		"BT1-USD",
		"VERYLONGTICKER",
	}
	for _, raw := range cases {
		_, appErr := NormalizeTicker(raw, 10)
		if appErr == nil {
			t.Fatalf("expected error for %q", raw)
		}
		if appErr.Code != xhttp.CodeInvalidTicker {
			t.Fatalf("expected INVALID_TICKER for %q, got %s", raw, appErr.Code)
		}
	}
}

func TestNormalizeTickerEchoesRawInDetails(t *testing.T) {
	_, appErr := NormalizeTicker("AAA???", 10)
	if appErr == nil {
		t.Fatalf("expected error")
	}
	if got := appErr.Details["ticker"]; got != "AAA???" {
		t.Fatalf("expected raw ticker in details, got %v", got)
	}
}

func TestNormalizeTickerAlphanumericEquity(t *testing.T) {
	ticker, appErr := NormalizeTicker("BRK4", 10)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if ticker.Class != models.AssetEquity {
		t.Fatalf("unexpected class %s", ticker.Class)
	}
}
