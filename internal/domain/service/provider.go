package service

import (
	"context"
	"errors"

	"FinCast/internal/domain/models"
)

// ErrNotSupported signals a syntactically valid ticker with no model or data
// coverage. The pipeline maps it to a 404.
var ErrNotSupported = errors.New("ticker not supported")

// ForecastProvider produces one predicted price per requested date. The
// returned map must be keyed by the exact date strings requested and cover
// all of them; any gap is treated as a provider failure upstream, never
// papered over.
type ForecastProvider interface {
	Predict(ctx context.Context, ticker models.Ticker, dates []string) (map[string]float64, error)
}

// HistorySource supplies historical daily closing prices for a symbol,
// oldest first.
type HistorySource interface {
	DailyCloses(ctx context.Context, symbol string) ([]float64, error)
}
