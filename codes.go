package errhound

import "net/http"

// Code is a stable, machine-readable error identifier.
type Code string

// Built-in codes. Each one belongs to exactly one built-in kind.
const (
	// Client faults
	CodeBadRequest      Code = "BAD_REQUEST"
	CodeUnauthorized    Code = "UNAUTHORIZED"
	CodeForbidden       Code = "FORBIDDEN"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConflict        Code = "CONFLICT"
	CodeValidation      Code = "VALIDATION"
	CodeTooManyRequests Code = "TOO_MANY_REQUESTS"

	// Server faults
	CodeInternalServer     Code = "INTERNAL_SERVER"
	CodeDatabase           Code = "DATABASE"
	CodeServiceUnavailable Code = "SERVICE_UNAVAILABLE"
	CodeTimeout            Code = "TIMEOUT"
)

type kind struct {
	status  int
	message string
}

var builtins = map[Code]kind{
	CodeBadRequest:         {http.StatusBadRequest, "The request was invalid or malformed."},
	CodeUnauthorized:       {http.StatusUnauthorized, "Authentication is required to access this resource."},
	CodeForbidden:          {http.StatusForbidden, "You do not have permission to access this resource."},
	CodeNotFound:           {http.StatusNotFound, "The requested resource could not be found."},
	CodeConflict:           {http.StatusConflict, "The request could not be completed due to a conflict."},
	CodeValidation:         {http.StatusBadRequest, "Validation failed"},
	CodeTooManyRequests:    {http.StatusTooManyRequests, "Too many requests have been made. Please try again later."},
	CodeInternalServer:     {http.StatusInternalServerError, "An unexpected internal server error occurred."},
	CodeDatabase:           {http.StatusInternalServerError, "A server error occurred while accessing the database."},
	CodeServiceUnavailable: {http.StatusServiceUnavailable, "The service is unavailable."},
	CodeTimeout:            {http.StatusGatewayTimeout, "The request timed out while processing."},
}

// fallbackMessage is used for custom codes constructed without a message.
const fallbackMessage = "An unexpected error occurred"

// DefaultMessage returns the default human-readable message for a code.
func DefaultMessage(code Code) string {
	if k, ok := builtins[code]; ok {
		return k.message
	}
	return fallbackMessage
}

// DefaultStatus returns the HTTP status of a built-in code.
// The second result is false for codes outside the built-in table.
func DefaultStatus(code Code) (int, bool) {
	k, ok := builtins[code]
	return k.status, ok
}
