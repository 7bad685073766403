package errhound

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		build      func(any) *Error
		wantCode   Code
		wantStatus int
		wantMsg    string
	}{
		{"BadRequest", BadRequest, CodeBadRequest, http.StatusBadRequest, "The request was invalid or malformed."},
		{"Unauthorized", Unauthorized, CodeUnauthorized, http.StatusUnauthorized, "Authentication is required to access this resource."},
		{"Forbidden", Forbidden, CodeForbidden, http.StatusForbidden, "You do not have permission to access this resource."},
		{"NotFound", NotFound, CodeNotFound, http.StatusNotFound, "The requested resource could not be found."},
		{"Conflict", Conflict, CodeConflict, http.StatusConflict, "The request could not be completed due to a conflict."},
		{"TooManyRequests", TooManyRequests, CodeTooManyRequests, http.StatusTooManyRequests, "Too many requests have been made. Please try again later."},
		{"InternalServer", InternalServer, CodeInternalServer, http.StatusInternalServerError, "An unexpected internal server error occurred."},
		{"Database", Database, CodeDatabase, http.StatusInternalServerError, "A server error occurred while accessing the database."},
		{"ServiceUnavailable", ServiceUnavailable, CodeServiceUnavailable, http.StatusServiceUnavailable, "The service is unavailable."},
		{"Timeout", Timeout, CodeTimeout, http.StatusGatewayTimeout, "The request timed out while processing."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.build("Test details")
			assert.Equal(t, tt.wantCode, err.Code)
			assert.Equal(t, tt.wantStatus, err.Status)
			assert.Equal(t, tt.wantMsg, err.Message)
			assert.Equal(t, "Test details", err.Details)

			status, ok := DefaultStatus(tt.wantCode)
			assert.True(t, ok)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestBuiltinKindsWithoutDetails(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NotFound(nil).Details)
}

func TestBuiltinCodesAreUnique(t *testing.T) {
	t.Parallel()

	codes := []Code{
		CodeBadRequest, CodeUnauthorized, CodeForbidden, CodeNotFound, CodeConflict,
		CodeValidation, CodeTooManyRequests, CodeInternalServer, CodeDatabase,
		CodeServiceUnavailable, CodeTimeout,
	}
	seen := make(map[Code]bool)
	for _, c := range codes {
		assert.False(t, seen[c], "duplicate code %s", c)
		seen[c] = true
	}
	assert.Len(t, builtins, len(codes))
}

func TestDefaultStatusUnknownCode(t *testing.T) {
	t.Parallel()

	_, ok := DefaultStatus("EMAIL_NOT_VERIFIED")
	assert.False(t, ok)
	assert.Equal(t, "An unexpected error occurred", DefaultMessage("EMAIL_NOT_VERIFIED"))
}

func TestFromStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status   int
		wantCode Code
	}{
		{http.StatusBadRequest, CodeBadRequest},
		{http.StatusUnauthorized, CodeUnauthorized},
		{http.StatusForbidden, CodeForbidden},
		{http.StatusNotFound, CodeNotFound},
		{http.StatusConflict, CodeConflict},
		{http.StatusTooManyRequests, CodeTooManyRequests},
		{http.StatusInternalServerError, CodeInternalServer},
		{http.StatusServiceUnavailable, CodeServiceUnavailable},
		{http.StatusGatewayTimeout, CodeTimeout},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()
			err := FromStatus(tt.status, "d")
			if assert.NotNil(t, err) {
				assert.Equal(t, tt.wantCode, err.Code)
				assert.Equal(t, tt.status, err.Status)
				assert.Equal(t, "d", err.Details)
			}
		})
	}

	assert.Nil(t, FromStatus(http.StatusMethodNotAllowed, nil))
	assert.Nil(t, FromStatus(http.StatusTeapot, nil))
}
