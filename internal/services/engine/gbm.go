package engine

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"FinCast/internal/domain/models"
	domsvc "FinCast/internal/domain/service"
	xlogger "FinCast/pkg/logger"
)

// GBM is a ForecastProvider that simulates geometric Brownian motion price
// paths seeded from historical daily closes. The expected price per horizon
// day is the mean across all simulated paths.
//
// Daily parameters come from historical log returns: sigma is the sample
// standard deviation over a trailing window, mu is the full-sample mean log
// return plus sigma^2/2. With dt = 1 day the path update is
// S_t = S_{t-1} * exp((mu - sigma^2/2) + sigma*Z).
type GBM struct {
	history     domsvc.HistorySource
	simulations int
	sigmaWindow int
	seed        int64
	logger      *xlogger.Logger
}

// Option configures the GBM engine.
type Option func(*GBM)

// WithSeed fixes the RNG seed. Zero means a random seed per call.
func WithSeed(seed int64) Option {
	return func(g *GBM) { g.seed = seed }
}

// NewGBM creates a Monte Carlo GBM forecast engine.
func NewGBM(history domsvc.HistorySource, simulations, sigmaWindow int, logger *xlogger.Logger, opts ...Option) *GBM {
	g := &GBM{
		history:     history,
		simulations: simulations,
		sigmaWindow: sigmaWindow,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Predict returns one expected price per requested date, keyed by the exact
// date strings passed in. Tickers without usable history fail with
// ErrNotSupported.
func (g *GBM) Predict(ctx context.Context, ticker models.Ticker, dates []string) (map[string]float64, error) {
	closes, err := g.history.DailyCloses(ctx, ticker.Symbol)
	if err != nil {
		return nil, fmt.Errorf("history for %s: %w", ticker.Symbol, err)
	}
	if len(closes) < 2 {
		return nil, fmt.Errorf("%w: insufficient history for %s", domsvc.ErrNotSupported, ticker.Symbol)
	}

	returns := logReturns(closes)
	if len(returns) == 0 {
		return nil, fmt.Errorf("%w: flat or invalid history for %s", domsvc.ErrNotSupported, ticker.Symbol)
	}

	window := g.sigmaWindow
	if window > len(returns) {
		window = len(returns)
	}
	sigma := sampleStd(returns[len(returns)-window:])
	mu := mean(returns) + sigma*sigma/2

	lastPrice := closes[len(closes)-1]
	expected, err := g.simulate(ctx, lastPrice, mu, sigma, len(dates))
	if err != nil {
		return nil, err
	}

	g.logger.Debug("gbm simulation complete",
		xlogger.String("ticker", ticker.Symbol),
		xlogger.Int("days", len(dates)),
		xlogger.Float64("sigma_daily", sigma),
		xlogger.Float64("mu_daily", mu),
	)

	prices := make(map[string]float64, len(dates))
	for i, date := range dates {
		prices[date] = expected[i]
	}
	return prices, nil
}

// simulate runs the Monte Carlo paths and returns the mean simulated price
// per day, index 0 being one day ahead.
func (g *GBM) simulate(ctx context.Context, lastPrice, mu, sigma float64, days int) ([]float64, error) {
	seed := g.seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	drift := mu - sigma*sigma/2
	sums := make([]float64, days)

	for s := 0; s < g.simulations; s++ {
		if s%1024 == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		price := lastPrice
		for t := 0; t < days; t++ {
			shock := sigma * rng.NormFloat64()
			price *= math.Exp(drift + shock)
			sums[t] += price
		}
	}

	expected := make([]float64, days)
	n := float64(g.simulations)
	for t := range sums {
		expected[t] = sums[t] / n
	}
	return expected, nil
}

// logReturns computes r_t = ln(C_t / C_{t-1}), skipping non-positive closes.
func logReturns(closes []float64) []float64 {
	out := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			continue
		}
		out = append(out, math.Log(closes[i]/closes[i-1]))
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// sampleStd is the sample standard deviation (ddof=1).
func sampleStd(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	sum2 := 0.0
	for _, x := range xs {
		d := x - m
		sum2 += d * d
	}
	return math.Sqrt(sum2 / float64(len(xs)-1))
}

var _ domsvc.ForecastProvider = (*GBM)(nil)
