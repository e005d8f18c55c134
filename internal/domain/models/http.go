package models

// Requests for the forecast HTTP endpoints. Defined in domain for consistency and reuse.

// ForecastHTTPRequest binds the forecast route parameters. HorizonDays stays
// a raw string here: "absent" and "zero" must be distinguishable, so the
// usecase parses it instead of the binder.
type ForecastHTTPRequest struct {
	Ticker      string `param:"ticker" json:"ticker" validate:"required,max=32"`
	HorizonDays string `query:"horizon_days" json:"horizon_days" validate:"omitempty,max=12"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status  string `json:"status"`
	TimeUTC string `json:"time_utc"`
	Version string `json:"version"`
}
