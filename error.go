// Package errhound converts every fault raised while handling an HTTP
// request into one consistent JSON error response.
// It provides a typed error taxonomy with stable codes, field-level
// validation aggregation, pluggable response formatters, and an
// interceptor that catches, classifies, logs and writes each fault once.
package errhound

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// APIError is the contract every classified fault satisfies.
// *Error implements it; custom kinds can embed an APIError or implement it directly.
type APIError interface {
	error
	ErrorCode() Code
	ErrorMessage() string
	HTTPStatus() int
	ErrorDetails() any
}

// Error is the concrete API error representation.
type Error struct {
	Code    Code
	Message string
	Status  int
	Details any

	// RetryAfter, when positive, is sent as the Retry-After header.
	RetryAfter time.Duration

	// Cause is never rendered to clients.
	Cause error
}

var _ APIError = (*Error)(nil)

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) ErrorCode() Code      { return e.Code }
func (e *Error) ErrorMessage() string { return e.Message }
func (e *Error) HTTPStatus() int      { return e.Status }
func (e *Error) ErrorDetails() any    { return e.Details }

// RetryDelay reports RetryAfter.
func (e *Error) RetryDelay() time.Duration { return e.RetryAfter }

// New creates a new Error with the given code, HTTP status, and message.
// A status outside 100-599 becomes 500. An empty message uses the code's default.
func New(code Code, status int, msg string) *Error {
	if !validStatus(status) {
		status = http.StatusInternalServerError
	}
	if msg == "" {
		msg = DefaultMessage(code)
	}
	return &Error{
		Code:    code,
		Message: msg,
		Status:  status,
	}
}

// Wrap creates a new Error that wraps an underlying cause.
func Wrap(code Code, status int, msg string, cause error) *Error {
	e := New(code, status, msg)
	e.Cause = cause
	return e
}

// WithDetails returns a copy of the error carrying structured details.
func (e *Error) WithDetails(details any) *Error {
	c := e.clone()
	c.Details = details
	return c
}

// WithMessage returns a copy of the error with its message overridden.
// An empty message keeps the current one.
func (e *Error) WithMessage(msg string) *Error {
	c := e.clone()
	if msg != "" {
		c.Message = msg
	}
	return c
}

// WithCause returns a copy of the error wrapping cause.
func (e *Error) WithCause(cause error) *Error {
	c := e.clone()
	c.Cause = cause
	return c
}

// WithRetryAfter returns a copy of the error advertising a retry delay.
func (e *Error) WithRetryAfter(d time.Duration) *Error {
	c := e.clone()
	c.RetryAfter = d
	return c
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.GroupValue()
	}
	attrs := []slog.Attr{
		slog.String("code", string(e.Code)),
		slog.String("message", e.Message),
		slog.Int("status", e.Status),
	}
	if e.Details != nil {
		attrs = append(attrs, slog.Any("details", e.Details))
	}
	if e.RetryAfter > 0 {
		attrs = append(attrs, slog.Duration("retry_after", e.RetryAfter))
	}
	if e.Cause != nil {
		attrs = append(attrs, slog.String("cause", e.Cause.Error()))
	}
	return slog.GroupValue(attrs...)
}

func (e *Error) clone() *Error {
	c := *e
	return &c
}

// Is reports whether err is an API error with the given code.
func Is(err error, code Code) bool {
	var e APIError
	if errors.As(err, &e) {
		return e.ErrorCode() == code
	}
	return false
}

func validStatus(status int) bool {
	return status >= 100 && status <= 599
}
