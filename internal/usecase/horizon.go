package usecase

import (
	"strconv"
	"time"

	xhttp "FinCast/pkg/http"
	"FinCast/pkg/util"
)

// ComputeDates produces the ordered horizon window: days consecutive UTC
// calendar dates starting the day after generatedAt's UTC date. Pure
// calendar arithmetic, safe across month, year, and leap boundaries.
func ComputeDates(generatedAt time.Time, days int) []string {
	t := generatedAt.UTC()
	base := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	dates := make([]string, 0, days)
	for i := 1; i <= days; i++ {
		dates = append(dates, base.AddDate(0, 0, i).Format(util.DateLayout))
	}
	return dates
}

// ValidateHorizon parses the raw horizon_days query value. Absent means the
// configured default; anything present must parse as a positive integer in
// the supported set. Unsupported values are rejected, never clamped.
func ValidateHorizon(raw string, defaultDays int, supported []int) (int, *xhttp.AppError) {
	if raw == "" {
		return defaultDays, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, xhttp.InvalidParameterError("horizon_days must be an integer").
			WithDetail("horizon_days", raw)
	}
	if days < 1 {
		return 0, xhttp.InvalidParameterError("horizon_days must be positive").
			WithDetail("horizon_days", days)
	}

	for _, h := range supported {
		if h == days {
			return days, nil
		}
	}
	return 0, xhttp.InvalidParameterErrorf("horizon_days=%d is not supported by this deployment", days).
		WithDetail("horizon_days", days).
		WithDetail("supported", supported)
}
