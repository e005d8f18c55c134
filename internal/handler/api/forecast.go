package api

import (
	"time"

	"FinCast/internal/domain/models"
	"FinCast/internal/usecase"
	xhttp "FinCast/pkg/http"
	"FinCast/pkg/http/middleware"
	xlogger "FinCast/pkg/logger"
	"FinCast/pkg/util"

	"github.com/labstack/echo/v4"
)

// ForecastHandler exposes the forecast pipeline over Echo.
type ForecastHandler struct {
	logger     *xlogger.Logger
	forecaster *usecase.Forecaster
	limiter    middleware.Allower
	version    string
}

func NewForecastHandler(logger *xlogger.Logger, forecaster *usecase.Forecaster, limiter middleware.Allower, version string) *ForecastHandler {
	return &ForecastHandler{logger: logger, forecaster: forecaster, limiter: limiter, version: version}
}

func (h *ForecastHandler) RegisterRoutes(e *echo.Echo) {
	// Admission control runs before any pipeline work
	e.GET("/forecast/:ticker", h.Forecast, middleware.RateLimit(h.limiter))
	e.GET("/health", h.Health)
}

func (h *ForecastHandler) Forecast(c echo.Context) error {
	req := &models.ForecastHTTPRequest{}
	if appErr := xhttp.ReadAndValidateRequest(c, req); appErr != nil {
		return xhttp.ErrorResponse(c, appErr)
	}

	res, err := h.forecaster.Forecast(c.Request().Context(), req.Ticker, req.HorizonDays)
	if err != nil {
		h.logger.Error("forecast usecase error",
			xlogger.String("ticker", req.Ticker),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.JSONResponse(c, res)
}

func (h *ForecastHandler) Health(c echo.Context) error {
	return xhttp.JSONResponse(c, models.HealthResponse{
		Status:  "ok",
		TimeUTC: util.FormatInstant(time.Now()),
		Version: h.version,
	})
}
