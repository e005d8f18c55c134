package models

import "time"

// AssetClass classifies a normalized ticker.
type AssetClass string

const (
	AssetEquity     AssetClass = "equity"
	AssetCryptoPair AssetClass = "crypto_pair"
)

// AnchorTimeUTC is the fixed time-of-day every forecast point is aligned to.
const AnchorTimeUTC = "00:00:00"

// Ticker is a validated, canonicalized asset identifier. Built once per
// request and immutable afterwards.
type Ticker struct {
	Raw        string
	Symbol     string // normalized: trimmed, uppercased
	Class      AssetClass
	Currency   string // quote currency, USD for equities
	BaseAsset  string // crypto pairs only
	QuoteAsset string // crypto pairs only
}

// HorizonRequest is the validated horizon plus the generation instant.
type HorizonRequest struct {
	Days        int
	GeneratedAt time.Time // UTC instant validation began
}

// ForecastPoint is a single daily prediction anchored to UTC midnight.
type ForecastPoint struct {
	Date           string  `json:"date"`      // YYYY-MM-DD, UTC calendar date
	Timestamp      string  `json:"timestamp"` // date at 00:00:00Z, derived
	PredictedPrice float64 `json:"predicted_price"`
}

// ForecastResponse is the per-request aggregate. Forecasts are strictly
// ascending consecutive calendar days, len(Forecasts) == HorizonDays.
type ForecastResponse struct {
	Ticker        string          `json:"ticker"`
	Currency      string          `json:"currency"`
	Timezone      string          `json:"timezone"`
	GeneratedAt   string          `json:"generated_at"`
	HorizonDays   int             `json:"horizon_days"`
	AnchorTimeUTC string          `json:"anchor_time_utc"`
	Forecasts     []ForecastPoint `json:"forecasts"`
}
