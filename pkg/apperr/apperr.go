package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeInvalidArgument = "invalid_argument"
	CodeUnauthenticated = "unauthenticated"
	CodeForbidden       = "forbidden"
	CodeNotFound        = "not_found"
	CodeUpstream        = "upstream_error"
	CodeInternal        = "internal"
)

// Error is the single error shape handlers map to HTTP responses.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func InvalidArgument(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeInvalidArgument, Message: message}
}

func Unauthenticated(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: CodeUnauthenticated, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: CodeNotFound, Message: message}
}

// Upstream wraps a non-2xx or malformed response from an LLM provider.
// upstreamStatus is the provider's HTTP status, kept in the message so the
// caller sees what the provider actually answered.
func Upstream(upstreamStatus int, body string) *Error {
	return &Error{
		Status:  http.StatusBadGateway,
		Code:    CodeUpstream,
		Message: fmt.Sprintf("upstream returned %d: %s", upstreamStatus, body),
	}
}

func Internal(message string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: CodeInternal, Message: message, Err: err}
}

// From converts any error to an *Error, wrapping unknown errors as internal.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal("unexpected error", err)
}
