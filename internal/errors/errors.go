// Package errors maps service failures onto HTTP status codes.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType is the category of a failure, used for status mapping and metrics.
type ErrorType string

const (
	TypeValidation   ErrorType = "validation"
	TypeUnauthorized ErrorType = "unauthorized"
	TypeForbidden    ErrorType = "forbidden"
	TypeNotFound     ErrorType = "not_found"
	TypeInternal     ErrorType = "internal"
)

// Error is a categorized failure whose Message is safe to show to clients.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the status code for this error type.
func (e *Error) HTTPStatus() int {
	switch e.Type {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeUnauthorized:
		return http.StatusUnauthorized
	case TypeForbidden:
		return http.StatusForbidden
	case TypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func Validation(message string) *Error {
	return &Error{Type: TypeValidation, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Type: TypeUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Type: TypeForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Type: TypeNotFound, Message: message}
}

func Internal(message string, cause error) *Error {
	return &Error{Type: TypeInternal, Message: message, Cause: cause}
}

// As converts any error into an *Error. Unknown errors become internal
// errors with a generic message so their text never reaches clients.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal("internal server error", err)
}
