package usecase

import (
	"math"

	"FinCast/internal/domain/models"
	xhttp "FinCast/pkg/http"
	"FinCast/pkg/util"
)

// Assemble pairs each horizon date with its predicted price and builds the
// response aggregate. Coverage gaps and non-finite or negative prices are
// provider defects and surface as INTERNAL_ERROR; a missing point is never
// fabricated.
func Assemble(ticker models.Ticker, horizon models.HorizonRequest, dates []string, prices map[string]float64) (*models.ForecastResponse, *xhttp.AppError) {
	points := make([]models.ForecastPoint, 0, len(dates))
	for _, date := range dates {
		price, ok := prices[date]
		if !ok {
			return nil, xhttp.InternalErrorf("provider returned partial coverage").
				WithDetail("missing_date", date)
		}
		if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
			return nil, xhttp.InternalErrorf("provider returned invalid price").
				WithDetail("date", date)
		}
		points = append(points, models.ForecastPoint{
			Date:           date,
			Timestamp:      util.MidnightTimestamp(date),
			PredictedPrice: price,
		})
	}

	resp := &models.ForecastResponse{
		Ticker:        ticker.Symbol,
		Currency:      ticker.Currency,
		Timezone:      "UTC",
		GeneratedAt:   util.FormatInstant(horizon.GeneratedAt),
		HorizonDays:   horizon.Days,
		AnchorTimeUTC: models.AnchorTimeUTC,
		Forecasts:     points,
	}

	if appErr := verify(resp, horizon.Days); appErr != nil {
		return nil, appErr
	}
	return resp, nil
}

// verify enforces the response post-conditions: exact length, strictly
// ascending dates, no duplicates. A breach is a core defect, reported as
// INTERNAL_ERROR and never as a caller error.
func verify(resp *models.ForecastResponse, horizonDays int) *xhttp.AppError {
	if len(resp.Forecasts) != horizonDays {
		return xhttp.InternalErrorf("forecast length %d does not match horizon %d",
			len(resp.Forecasts), horizonDays)
	}
	for i := 1; i < len(resp.Forecasts); i++ {
		// ISO dates order lexicographically
		if resp.Forecasts[i-1].Date >= resp.Forecasts[i].Date {
			return xhttp.InternalError("forecast dates are not strictly ascending")
		}
	}
	return nil
}
