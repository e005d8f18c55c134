package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ReadAndValidateRequest binds path/query parameters into req, applies
// declared defaults, and runs struct validation. Returns an AppError of the
// public taxonomy on failure.
func ReadAndValidateRequest(c echo.Context, req interface{}) *AppError {
	if err := c.Bind(req); err != nil {
		return bindingError(err)
	}

	if err := defaults.Set(req); err != nil {
		return bindingError(err)
	}

	if err := validate.StructCtx(c.Request().Context(), req); err != nil {
		return bindingError(err)
	}

	return nil
}

func bindingError(err error) *AppError {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		appErr := InvalidParameterError("request validation failed")
		for _, e := range validationErrors {
			appErr.WithDetail(strings.ToLower(e.Field()), fieldErrorMessage(e))
		}
		return appErr
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return InvalidParameterError(fmt.Sprintf("%v", he.Message))
	}

	return InvalidParameterError(err.Error())
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}
