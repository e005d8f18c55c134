package history

import (
	"context"
	"fmt"
	"time"

	domsvc "FinCast/internal/domain/service"
	xhttp "FinCast/pkg/http"
)

const chartBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// ChartSource fetches daily closes straight from the chart JSON API, as an
// alternative to the finance-go iterator.
type ChartSource struct {
	client   *xhttp.Client
	rangeStr string
}

// NewChartSource creates a direct chart-API history source.
func NewChartSource(rangeStr string, timeout time.Duration) *ChartSource {
	return &ChartSource{
		client:   xhttp.NewClient(xhttp.WithTimeout(timeout)),
		rangeStr: rangeStr,
	}
}

type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  interface{}   `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []chartQuote `json:"quote"`
	} `json:"indicators"`
}

type chartQuote struct {
	Close []float64 `json:"close"`
}

// DailyCloses returns daily closing prices, oldest first.
func (s *ChartSource) DailyCloses(ctx context.Context, symbol string) ([]float64, error) {
	var resp chartResponse
	err := s.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/%s", chartBaseURL, symbol),
		QueryParams: map[string][]string{
			"range":    {s.rangeStr},
			"interval": {"1d"},
		},
		Headers: map[string]string{
			"User-Agent": "fincast/1.0",
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", symbol, err)
	}

	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("%w: no chart data for %s", domsvc.ErrNotSupported, symbol)
	}

	raw := resp.Chart.Result[0].Indicators.Quote[0].Close
	closes := make([]float64, 0, len(raw))
	for _, c := range raw {
		if c > 0 {
			closes = append(closes, c)
		}
	}
	if len(closes) == 0 {
		return nil, fmt.Errorf("%w: no usable closes for %s", domsvc.ErrNotSupported, symbol)
	}

	return closes, nil
}

var _ domsvc.HistorySource = (*ChartSource)(nil)
