package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// JSONResponse writes a success payload as-is.
func JSONResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// ErrorResponse writes the error envelope with the error's own status.
func ErrorResponse(c echo.Context, appErr *AppError) error {
	return c.JSON(appErr.Status, ErrorEnvelope{Error: appErr})
}

// AppErrorResponse maps any error to an envelope; non-AppErrors become 500s
// without leaking internals.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ErrorResponse(c, appErr)
	}
	return ErrorResponse(c, InternalError("unexpected error"))
}
