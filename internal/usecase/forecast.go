package usecase

import (
	"context"
	"errors"
	"time"

	"FinCast/internal/domain/models"
	domsvc "FinCast/internal/domain/service"
	"FinCast/pkg/cache"
	"FinCast/pkg/config"
	xhttp "FinCast/pkg/http"
	xlogger "FinCast/pkg/logger"
	"FinCast/pkg/metrics"
	"FinCast/pkg/util"
)

// Forecaster runs the request-to-response pipeline: horizon validation,
// ticker normalization, horizon window computation, provider call, response
// assembly. Stateless between requests; all configuration is immutable.
type Forecaster struct {
	cfg      *config.Config
	provider domsvc.ForecastProvider
	cache    cache.Service
	recorder *metrics.Recorder
	logger   *xlogger.Logger
	now      func() time.Time
}

// NewForecaster creates the forecast pipeline. cache may be nil to disable
// response caching.
func NewForecaster(cfg *config.Config, provider domsvc.ForecastProvider, c cache.Service, rec *metrics.Recorder, logger *xlogger.Logger) *Forecaster {
	return &Forecaster{
		cfg:      cfg,
		provider: provider,
		cache:    c,
		recorder: rec,
		logger:   logger,
		now:      time.Now,
	}
}

// Forecast executes the pipeline for a raw ticker and raw horizon_days query
// value. Validation failures are detected before the provider is invoked;
// provider failures are classified once and never retried here.
func (f *Forecaster) Forecast(ctx context.Context, rawTicker, rawHorizon string) (*models.ForecastResponse, error) {
	generatedAt := f.now().UTC()

	days, appErr := ValidateHorizon(rawHorizon, f.cfg.Forecast.DefaultHorizon, f.cfg.Forecast.SupportedHorizons)
	if appErr != nil {
		return nil, f.reject(appErr)
	}

	ticker, appErr := NormalizeTicker(rawTicker, f.cfg.Forecast.MaxTickerLength)
	if appErr != nil {
		return nil, f.reject(appErr)
	}

	key := cache.Key("forecast", ticker.Symbol, days, util.DateUTC(generatedAt))
	if f.cache != nil {
		var cached models.ForecastResponse
		if err := f.cache.Get(ctx, key, &cached); err == nil {
			f.recorder.RecordCacheLookup(true)
			f.recorder.RecordForecast("OK")
			return &cached, nil
		}
		f.recorder.RecordCacheLookup(false)
	}

	horizon := models.HorizonRequest{Days: days, GeneratedAt: generatedAt}
	dates := ComputeDates(generatedAt, days)

	prices, err := f.predict(ctx, ticker, dates)
	if err != nil {
		var ae *xhttp.AppError
		if errors.As(err, &ae) {
			return nil, f.reject(ae)
		}
		return nil, f.reject(xhttp.InternalError("forecast provider failed").WithError(err))
	}

	resp, appErr := Assemble(ticker, horizon, dates, prices)
	if appErr != nil {
		return nil, f.reject(appErr)
	}

	if f.cache != nil {
		if err := f.cache.Set(ctx, key, resp, f.cfg.Cache.TTL); err != nil {
			f.logger.Warn("forecast cache write failed", xlogger.Error(err))
		}
	}

	last := resp.Forecasts[len(resp.Forecasts)-1]
	f.recorder.RecordLastPredicted(ticker.Symbol, last.PredictedPrice)
	f.recorder.RecordForecast("OK")
	f.logger.Info("forecast served",
		xlogger.String("ticker", ticker.Symbol),
		xlogger.Int("horizon_days", days),
		xlogger.Float64("last_price", last.PredictedPrice),
	)
	return resp, nil
}

// predict calls the provider under the configured timeout budget and maps
// its failure modes: no coverage is a 404, timeouts and everything else are
// internal errors retryable by the caller, not by us.
func (f *Forecaster) predict(ctx context.Context, ticker models.Ticker, dates []string) (map[string]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, f.cfg.Forecast.ProviderTimeout)
	defer cancel()

	start := time.Now()
	prices, err := f.provider.Predict(ctx, ticker, dates)
	f.recorder.RecordProviderLatency("gbm", time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, domsvc.ErrNotSupported) {
			return nil, xhttp.NotSupportedErrorf("no forecast coverage for ticker").
				WithDetail("ticker", ticker.Symbol).
				WithError(err)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, xhttp.InternalError("forecast provider timed out").WithError(err)
		}
		return nil, err
	}
	return prices, nil
}

func (f *Forecaster) reject(appErr *xhttp.AppError) *xhttp.AppError {
	f.recorder.RecordForecast(appErr.Code)
	f.recorder.RecordError(appErr.Code)
	return appErr
}
