package serverutils

import (
	"errors"
	"fmt"
)

// AppError carries an HTTP status out of the service layer.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(message string) *AppError {
	return &AppError{Code: 404, Message: message}
}

func BadRequest(message string) *AppError {
	return &AppError{Code: 400, Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{Code: 401, Message: message}
}

// Internal wraps an unexpected failure behind a client-safe message.
func Internal(message string, err error) *AppError {
	return &AppError{Code: 500, Message: message, Err: err}
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
