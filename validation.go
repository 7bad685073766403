package errhound

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// ValidationError collects field-level validation failures.
// It always carries CodeValidation and status 400.
// It is not safe for concurrent mutation.
type ValidationError struct {
	message string
	fields  FieldErrors
}

var _ APIError = (*ValidationError)(nil)

// NewValidation creates a validation error holding a copy of fields, merged
// in the order given. An empty message uses the default "Validation failed".
func NewValidation(message string, fields ...FieldErrors) *ValidationError {
	if message == "" {
		message = DefaultMessage(CodeValidation)
	}
	v := &ValidationError{message: message}
	for _, f := range fields {
		for _, field := range f.order {
			for _, msg := range f.msgs[field] {
				v.fields.Add(field, msg)
			}
		}
	}
	return v
}

// AddFieldError appends message to the messages recorded for field.
// It never overwrites or dedupes.
func (v *ValidationError) AddFieldError(field, message string) {
	v.fields.Add(field, message)
}

// HasErrors reports whether at least one field message was added.
func (v *ValidationError) HasErrors() bool {
	return v.fields.Len() > 0
}

// FieldErrors returns a snapshot of the recorded field errors.
func (v *ValidationError) FieldErrors() FieldErrors {
	return v.fields.Clone()
}

func (v *ValidationError) Error() string {
	if v == nil {
		return "<nil>"
	}
	if v.fields.Len() == 0 {
		return fmt.Sprintf("%s: %s", CodeValidation, v.message)
	}
	parts := make([]string, 0, v.fields.Len())
	for _, field := range v.fields.order {
		parts = append(parts, field+": "+strings.Join(v.fields.msgs[field], ", "))
	}
	return fmt.Sprintf("%s: %s (%s)", CodeValidation, v.message, strings.Join(parts, "; "))
}

func (v *ValidationError) ErrorCode() Code      { return CodeValidation }
func (v *ValidationError) ErrorMessage() string { return v.message }
func (v *ValidationError) HTTPStatus() int      { return http.StatusBadRequest }

// ErrorDetails returns nil; validation errors expose FieldErrors instead.
func (v *ValidationError) ErrorDetails() any { return nil }

// LogValue implements slog.LogValuer.
func (v *ValidationError) LogValue() slog.Value {
	if v == nil {
		return slog.GroupValue()
	}
	return slog.GroupValue(
		slog.String("code", string(CodeValidation)),
		slog.String("message", v.message),
		slog.Any("fields", v.fields.Fields()),
	)
}
