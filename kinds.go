package errhound

import "net/http"

func builtin(code Code, details any) *Error {
	k := builtins[code]
	e := New(code, k.status, k.message)
	e.Details = details
	return e
}

// BadRequest creates a malformed request error (400).
func BadRequest(details any) *Error { return builtin(CodeBadRequest, details) }

// Unauthorized creates an authentication required error (401).
func Unauthorized(details any) *Error { return builtin(CodeUnauthorized, details) }

// Forbidden creates a forbidden error (403).
func Forbidden(details any) *Error { return builtin(CodeForbidden, details) }

// NotFound creates a not found error (404).
func NotFound(details any) *Error { return builtin(CodeNotFound, details) }

// Conflict creates a conflict error (409).
func Conflict(details any) *Error { return builtin(CodeConflict, details) }

// TooManyRequests creates a rate limit error (429).
func TooManyRequests(details any) *Error { return builtin(CodeTooManyRequests, details) }

// InternalServer creates an internal server error (500).
func InternalServer(details any) *Error { return builtin(CodeInternalServer, details) }

// Database creates a database failure error (500).
func Database(details any) *Error { return builtin(CodeDatabase, details) }

// ServiceUnavailable creates a service unavailable error (503).
func ServiceUnavailable(details any) *Error { return builtin(CodeServiceUnavailable, details) }

// Timeout creates a timeout error (504).
func Timeout(details any) *Error { return builtin(CodeTimeout, details) }

// FromStatus maps a bare HTTP status to its built-in kind.
// It returns nil when no built-in kind uses that status.
// Framework adapters use it to translate their native HTTP errors.
func FromStatus(status int, details any) *Error {
	switch status {
	case http.StatusBadRequest:
		return BadRequest(details)
	case http.StatusUnauthorized:
		return Unauthorized(details)
	case http.StatusForbidden:
		return Forbidden(details)
	case http.StatusNotFound:
		return NotFound(details)
	case http.StatusConflict:
		return Conflict(details)
	case http.StatusTooManyRequests:
		return TooManyRequests(details)
	case http.StatusInternalServerError:
		return InternalServer(details)
	case http.StatusServiceUnavailable:
		return ServiceUnavailable(details)
	case http.StatusGatewayTimeout:
		return Timeout(details)
	default:
		return nil
	}
}
