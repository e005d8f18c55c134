package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	domsvc "FinCast/internal/domain/service"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// YahooSource fetches daily closes through the finance-go chart iterator.
type YahooSource struct {
	lookback time.Duration
}

// NewYahooSource creates a history source over the given lookback range
// (e.g. "1y", "6mo").
func NewYahooSource(rangeStr string) *YahooSource {
	return &YahooSource{lookback: parseRange(rangeStr)}
}

// DailyCloses returns daily closing prices, oldest first. Symbols Yahoo does
// not know fail with ErrNotSupported.
func (s *YahooSource) DailyCloses(ctx context.Context, symbol string) ([]float64, error) {
	end := time.Now().UTC()
	start := end.Add(-s.lookback)

	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)

	closes := make([]float64, 0, 256)
	for iter.Next() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		bar := iter.Bar()
		closes = append(closes, bar.Close.InexactFloat64())
	}

	if err := iter.Err(); err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %v", domsvc.ErrNotSupported, err)
		}
		return nil, fmt.Errorf("chart %s: %w", symbol, err)
	}
	if len(closes) == 0 {
		return nil, fmt.Errorf("%w: no bars for %s", domsvc.ErrNotSupported, symbol)
	}

	return closes, nil
}

func isNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") || strings.Contains(msg, "no data")
}

func parseRange(s string) time.Duration {
	switch s {
	case "6mo":
		return 182 * 24 * time.Hour
	case "2y":
		return 2 * 365 * 24 * time.Hour
	case "5y":
		return 5 * 365 * 24 * time.Hour
	default: // 1y
		return 365 * 24 * time.Hour
	}
}

var _ domsvc.HistorySource = (*YahooSource)(nil)
