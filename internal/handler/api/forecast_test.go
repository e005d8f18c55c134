package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"FinCast/internal/domain/models"
	"FinCast/internal/usecase"
	"FinCast/pkg/config"
	"FinCast/pkg/http/middleware"
	xlogger "FinCast/pkg/logger"
	"FinCast/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Shared across the package: prometheus collectors register once per process.
var (
	testRecorder = metrics.New()
	testLogger   = newTestLogger()
)

func newTestLogger() *xlogger.Logger {
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		panic(err)
	}
	return l
}

type flatProvider struct{ price float64 }

func (p *flatProvider) Predict(_ context.Context, _ models.Ticker, dates []string) (map[string]float64, error) {
	out := make(map[string]float64, len(dates))
	for _, d := range dates {
		out[d] = p.price
	}
	return out, nil
}

type denyAll struct{}

func (denyAll) Allow(string) bool { return false }

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Forecast.DefaultHorizon = 7
	cfg.Forecast.SupportedHorizons = []int{7}
	cfg.Forecast.ProviderTimeout = 5 * time.Second
	cfg.Forecast.MaxTickerLength = 10
	return cfg
}

func newTestServer(limiter middleware.Allower) *echo.Echo {
	forecaster := usecase.NewForecaster(testConfig(), &flatProvider{price: 123.45}, nil, testRecorder, testLogger)
	h := NewForecastHandler(testLogger, forecaster, limiter, "test")
	e := echo.New()
	h.RegisterRoutes(e)
	return e
}

func doRequest(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestForecastEndpointSuccess(t *testing.T) {
	e := newTestServer(nil)
	rec := doRequest(e, "/forecast/AAPL")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.ForecastResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Ticker != "AAPL" || resp.Currency != "USD" || resp.Timezone != "UTC" {
		t.Fatalf("unexpected header fields %+v", resp)
	}
	if resp.AnchorTimeUTC != "00:00:00" {
		t.Fatalf("unexpected anchor %s", resp.AnchorTimeUTC)
	}
	if resp.HorizonDays != 7 || len(resp.Forecasts) != 7 {
		t.Fatalf("unexpected horizon %d/%d", resp.HorizonDays, len(resp.Forecasts))
	}
	if !strings.HasSuffix(resp.GeneratedAt, "Z") {
		t.Fatalf("generated_at not UTC instant: %s", resp.GeneratedAt)
	}
	for i := 1; i < len(resp.Forecasts); i++ {
		if resp.Forecasts[i-1].Date >= resp.Forecasts[i].Date {
			t.Fatalf("dates not strictly ascending at %d", i)
		}
	}
}

func TestForecastEndpointCryptoPair(t *testing.T) {
	e := newTestServer(nil)
	rec := doRequest(e, "/forecast/btc-usd")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.ForecastResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Ticker != "BTC-USD" || resp.Currency != "USD" {
		t.Fatalf("unexpected normalization %+v", resp)
	}
}

type errorEnvelope struct {
	Error struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func TestForecastEndpointInvalidTicker(t *testing.T) {
	e := newTestServer(nil)
	rec := doRequest(e, "/forecast/OVERLONGTICKER")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var env errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Error.Code != "INVALID_TICKER" {
		t.Fatalf("expected INVALID_TICKER, got %s", env.Error.Code)
	}
	if env.Error.Details["ticker"] != "OVERLONGTICKER" {
		t.Fatalf("expected raw ticker in details, got %v", env.Error.Details)
	}
}

func TestForecastEndpointUnsupportedHorizon(t *testing.T) {
	e := newTestServer(nil)
	for _, q := range []string{"0", "-3", "8", "x"} {
		rec := doRequest(e, "/forecast/AAPL?horizon_days="+q)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for horizon %q, got %d", q, rec.Code)
		}
		var env errorEnvelope
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if env.Error.Code != "INVALID_PARAMETER" {
			t.Fatalf("expected INVALID_PARAMETER for %q, got %s", q, env.Error.Code)
		}
	}
}

func TestForecastEndpointRateLimited(t *testing.T) {
	e := newTestServer(denyAll{})
	rec := doRequest(e, "/forecast/AAPL")

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	var env errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Error.Code != "RATE_LIMITED" {
		t.Fatalf("expected RATE_LIMITED, got %s", env.Error.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestServer(nil)
	rec := doRequest(e, "/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp models.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" || resp.Version != "test" {
		t.Fatalf("unexpected health payload %+v", resp)
	}
	if !strings.HasSuffix(resp.TimeUTC, "Z") {
		t.Fatalf("time_utc not UTC instant: %s", resp.TimeUTC)
	}
}
