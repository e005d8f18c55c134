package usecase

import (
	"strings"

	"FinCast/internal/domain/models"
	xhttp "FinCast/pkg/http"
)

// NormalizeTicker validates and canonicalizes a raw ticker string. A single
// "-" separator with alphabetic segments on both sides classifies the ticker
// as a crypto pair with the quote currency taken from the suffix; a plain
// alphanumeric symbol up to maxLen characters is an equity quoted in USD.
// Anything else fails INVALID_TICKER, never silently coerced.
func NormalizeTicker(raw string, maxLen int) (models.Ticker, *xhttp.AppError) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return models.Ticker{}, xhttp.InvalidTickerError("ticker must not be empty").
			WithDetail("ticker", raw)
	}

	symbol := strings.ToUpper(trimmed)

	switch strings.Count(symbol, "-") {
	case 0:
		if !isAlphanumeric(symbol) || len(symbol) > maxLen {
			return models.Ticker{}, invalidTicker(raw)
		}
		return models.Ticker{
			Raw:      raw,
			Symbol:   symbol,
			Class:    models.AssetEquity,
			Currency: "USD",
		}, nil
	case 1:
		base, quote, _ := strings.Cut(symbol, "-")
		if !isAlphabetic(base) || !isAlphabetic(quote) {
			return models.Ticker{}, invalidTicker(raw)
		}
		return models.Ticker{
			Raw:        raw,
			Symbol:     symbol,
			Class:      models.AssetCryptoPair,
			Currency:   quote,
			BaseAsset:  base,
			QuoteAsset: quote,
		}, nil
	default:
		return models.Ticker{}, invalidTicker(raw)
	}
}

func invalidTicker(raw string) *xhttp.AppError {
	return xhttp.InvalidTickerError("ticker contains unsupported characters or shape").
		WithDetail("ticker", raw)
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
