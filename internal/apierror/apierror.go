// Package apierror defines the error taxonomy surfaced to API clients.
package apierror

import (
	"errors"
	"net/http"
)

// Error is an error that carries the HTTP status and client-facing message.
type Error struct {
	StatusCode int
	Message    string
	Errors     []string
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an Error with the given status.
func New(status int, message string, details ...string) *Error {
	return &Error{StatusCode: status, Message: message, Errors: details}
}

// BadRequest covers malformed input and policy violations.
func BadRequest(message string, details ...string) *Error {
	return New(http.StatusBadRequest, message, details...)
}

// Unauthorized covers missing or invalid credentials.
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// NotFound covers absent entities and owner-scoped writes that matched nothing.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Conflict covers uniqueness violations.
func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// Internal covers failed writes and token generation failures.
func Internal(message string) *Error {
	return New(http.StatusInternalServerError, message)
}

// As unwraps err into an *Error. Anything else collapses to a generic 500.
func As(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal("Internal server error")
}
