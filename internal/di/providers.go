package di

import (
	"fmt"
	"io"

	"FinCast/internal/handler/api"
	"FinCast/internal/service/ratelimit"
	"FinCast/internal/services/engine"
	"FinCast/internal/services/history"
	"FinCast/internal/usecase"
	pkgcache "FinCast/pkg/cache"
	"FinCast/pkg/config"
	"FinCast/pkg/http/middleware"
	"FinCast/pkg/logger"
	"FinCast/pkg/metrics"
	"FinCast/pkg/server"

	domsvc "FinCast/internal/domain/service"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	format := "json"
	if cfg.Environment == "development" {
		format = "console"
	}
	l, err := logger.New(&logger.Config{Level: "info", Format: format, Output: "stdout"})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideHistorySource selects the configured market-history backend.
func ProvideHistorySource(cfg *config.Config) (domsvc.HistorySource, error) {
	switch cfg.History.Source {
	case "yahoo":
		return history.NewYahooSource(cfg.History.Range), nil
	case "chart":
		return history.NewChartSource(cfg.History.Range, cfg.History.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown history source %q", cfg.History.Source)
	}
}

// ProvideForecastProvider creates the GBM Monte Carlo engine.
func ProvideForecastProvider(cfg *config.Config, src domsvc.HistorySource, l *logger.Logger) domsvc.ForecastProvider {
	return engine.NewGBM(src, cfg.Forecast.Simulations, cfg.Forecast.SigmaWindow, l)
}

// ProvideCache creates the forecast response cache. Returns nil when caching
// is disabled, which the pipeline tolerates.
func ProvideCache(cfg *config.Config) (pkgcache.Service, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	if !cfg.Cache.Redis.Enabled {
		return pkgcache.NewMemoryCache(), nil
	}

	redisCache, err := pkgcache.NewRedisCache(
		pkgcache.WithRedisHost(cfg.Cache.Redis.Host),
		pkgcache.WithRedisPort(cfg.Cache.Redis.Port),
		pkgcache.WithRedisPassword(cfg.Cache.Redis.Password),
		pkgcache.WithRedisDB(cfg.Cache.Redis.DB),
		pkgcache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return pkgcache.NewLayeredCache(redisCache), nil
}

// ProvideForecaster creates the forecast pipeline use case.
func ProvideForecaster(
	cfg *config.Config,
	provider domsvc.ForecastProvider,
	cache pkgcache.Service,
	rec *metrics.Recorder,
	l *logger.Logger,
) *usecase.Forecaster {
	return usecase.NewForecaster(cfg, provider, cache, rec, l)
}

// ProvideRateLimiter creates the admission-control limiter, nil when disabled.
func ProvideRateLimiter(cfg *config.Config) middleware.Allower {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	return ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
}

// ProvideHandler creates the Echo route handler.
func ProvideHandler(l *logger.Logger, f *usecase.Forecaster, limiter middleware.Allower) *api.ForecastHandler {
	return api.NewForecastHandler(l, f, limiter, Version)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, handler *api.ForecastHandler, cache pkgcache.Service, l *logger.Logger) *server.App {
	app := server.New(cfg, handler, l)
	if c, ok := cache.(io.Closer); ok {
		app.AddCloser(c)
	}
	return app
}
