package http

import (
	"fmt"
	"net/http"
)

// Error codes of the public taxonomy. Stable machine-readable identifiers.
const (
	CodeInvalidParameter = "INVALID_PARAMETER"
	CodeInvalidTicker    = "INVALID_TICKER"
	CodeNotSupported     = "NOT_SUPPORTED"
	CodeRateLimited      = "RATE_LIMITED"
	CodeInternalError    = "INTERNAL_ERROR"
)

// AppError represents application-level error with HTTP status.
type AppError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Status  int                    `json:"-"`
	Err     error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error.
func NewAppError(code, message string, status int) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

// WithDetail attaches a single debugging detail.
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithError wraps an underlying error.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// InvalidParameterError creates a 400 for malformed or unsupported query parameters.
func InvalidParameterError(message string) *AppError {
	return NewAppError(CodeInvalidParameter, message, http.StatusBadRequest)
}

// InvalidParameterErrorf creates a 400 parameter error with formatting.
func InvalidParameterErrorf(format string, a ...interface{}) *AppError {
	return InvalidParameterError(fmt.Sprintf(format, a...))
}

// InvalidTickerError creates a 400 for tickers that fail normalization.
func InvalidTickerError(message string) *AppError {
	return NewAppError(CodeInvalidTicker, message, http.StatusBadRequest)
}

// NotSupportedError creates a 404 for valid tickers without provider coverage.
func NotSupportedError(message string) *AppError {
	return NewAppError(CodeNotSupported, message, http.StatusNotFound)
}

// NotSupportedErrorf creates a 404 coverage error with formatting.
func NotSupportedErrorf(format string, a ...interface{}) *AppError {
	return NotSupportedError(fmt.Sprintf(format, a...))
}

// RateLimitedError creates a 429 admission-control rejection.
func RateLimitedError(message string) *AppError {
	return NewAppError(CodeRateLimited, message, http.StatusTooManyRequests)
}

// InternalError creates a 500 error.
func InternalError(message string) *AppError {
	return NewAppError(CodeInternalError, message, http.StatusInternalServerError)
}

// InternalErrorf creates a 500 error with formatting.
func InternalErrorf(format string, a ...interface{}) *AppError {
	return InternalError(fmt.Sprintf(format, a...))
}
