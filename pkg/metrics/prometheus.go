package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder exposes Prometheus metrics for the forecast pipeline.
type Recorder struct {
	forecastsTotal  *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	lastPredicted   *prometheus.GaugeVec
	providerLatency *prometheus.HistogramVec
	cacheHits       *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		forecastsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fincast_forecasts_total",
				Help: "Total number of forecast requests by outcome code",
			},
			[]string{"code"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fincast_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastPredicted: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fincast_last_predicted_price",
				Help: "Last predicted final-day price for a ticker",
			},
			[]string{"ticker"},
		),
		providerLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fincast_provider_duration_seconds",
				Help:    "Duration of forecast provider calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		cacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fincast_cache_requests_total",
				Help: "Forecast cache lookups by result",
			},
			[]string{"result"},
		),
	}
}

// RecordForecast records a completed forecast request by outcome code.
func (r *Recorder) RecordForecast(code string) {
	r.forecastsTotal.WithLabelValues(code).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLastPredicted records the final-day predicted price for a ticker.
func (r *Recorder) RecordLastPredicted(ticker string, price float64) {
	r.lastPredicted.WithLabelValues(ticker).Set(price)
}

// RecordProviderLatency records provider call latency in seconds.
func (r *Recorder) RecordProviderLatency(provider string, seconds float64) {
	r.providerLatency.WithLabelValues(provider).Observe(seconds)
}

// RecordCacheLookup records a cache hit or miss.
func (r *Recorder) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheHits.WithLabelValues(result).Inc()
}
