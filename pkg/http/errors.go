package http

import (
	"errors"
	"fmt"
	"net/http"

	"FinFrame/internal/domain/errs"
)

// AppError represents application-level error with HTTP status.
type AppError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Field   string                 `json:"field,omitempty"`
	Params  map[string]interface{} `json:"params,omitempty"`
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
func NewAppError(code, field, message string, status int) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Field:   field,
		Status:  status,
		Params:  make(map[string]interface{}),
	}
}

// WithParam sets a single error param.
func (e *AppError) WithParam(key string, value interface{}) *AppError {
	if e.Params == nil {
		e.Params = make(map[string]interface{})
	}
	e.Params[key] = value
	return e
}

// WithError wraps an underlying error.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// NotFoundError creates a 404 error.
func NotFoundError(message string) *AppError {
	return NewAppError("ERR_NOT_FOUND", "", message, http.StatusNotFound)
}

// BadRequestError creates a 400 error.
func BadRequestError(message string) *AppError {
	return NewAppError("ERR_BAD_REQUEST", "", message, http.StatusBadRequest)
}

// InternalError creates a 500 error.
func InternalError(message string) *AppError {
	return NewAppError("ERR_INTERNAL", "", message, http.StatusInternalServerError)
}

// FromTickerError maps a ticker error kind onto an HTTP status:
// input format 400, fetch 502, execution context 503, anything else 500.
func FromTickerError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var e *errs.Error
	if !errors.As(err, &e) {
		return InternalError("Something went wrong").WithError(err)
	}

	var out *AppError
	switch e.Kind {
	case errs.KindInputFormat:
		out = NewAppError("ERR_INPUT_FORMAT", "", e.Msg, http.StatusBadRequest)
	case errs.KindFetch:
		out = NewAppError("ERR_FETCH", "", e.Msg, http.StatusBadGateway)
	case errs.KindExecutionContext:
		out = NewAppError("ERR_EXECUTION_CONTEXT", "", e.Msg, http.StatusServiceUnavailable)
	case errs.KindTableConstruction:
		out = NewAppError("ERR_TABLE_CONSTRUCTION", "", e.Msg, http.StatusInternalServerError)
	default:
		out = InternalError(e.Msg)
	}
	if e.Op != "" {
		out.WithParam("op", e.Op)
	}
	return out.WithError(err)
}
