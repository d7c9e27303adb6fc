package httperr

import (
	"errors"
	"net/http"
)

// AppError is the single error type the request pipeline speaks. Operational
// errors carry messages safe to surface verbatim; anything else is reduced to
// a generic message by the error middleware.
type AppError struct {
	Status      int
	Code        string
	Message     string
	Operational bool

	// Err is the underlying cause, kept for logs and debug responses only.
	Err error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// --------- Constructors ---------

func New(status int, code, message string) *AppError {
	return &AppError{
		Status:      status,
		Code:        code,
		Message:     message,
		Operational: true,
	}
}

func BadRequest(code, message string) *AppError {
	return New(http.StatusBadRequest, code, message)
}

func Unauthorized(code, message string) *AppError {
	return New(http.StatusUnauthorized, code, message)
}

func Forbidden(code, message string) *AppError {
	return New(http.StatusForbidden, code, message)
}

func NotFound(code, message string) *AppError {
	return New(http.StatusNotFound, code, message)
}

// Internal wraps an unexpected failure. The message still ships to the
// client (operational), the cause only to the logs.
func Internal(code, message string, err error) *AppError {
	return &AppError{
		Status:      http.StatusInternalServerError,
		Code:        code,
		Message:     message,
		Operational: true,
		Err:         err,
	}
}

// --------- Inspection ---------

func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func IsCode(err error, code string) bool {
	if ae, ok := As(err); ok {
		return ae.Code == code
	}
	return false
}
