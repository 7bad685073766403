package errhound

import (
	"context"
	"time"
)

// EnvelopeFormatter renders errors inside a success/error/meta envelope:
//
//	{
//	  "success": false,
//	  "error": {"code": "...", "message": "...", "details": ...},
//	  "meta": {"timestamp": "...", "traceId": "...", "version": "..."}
//	}
//
// Validation errors carry "validationErrors" instead of "details".
type EnvelopeFormatter struct {
	// Version is reported in meta.version.
	Version string

	// Now returns the meta timestamp. Defaults to time.Now in UTC.
	Now func() time.Time
}

// Envelope is the payload produced by EnvelopeFormatter.
type Envelope struct {
	Success bool         `json:"success"`
	Error   EnvelopeBody `json:"error"`
	Meta    EnvelopeMeta `json:"meta"`
}

// EnvelopeBody is the error section of an Envelope.
type EnvelopeBody struct {
	Code             Code         `json:"code"`
	Message          string       `json:"message"`
	Details          any          `json:"details,omitempty"`
	ValidationErrors *FieldErrors `json:"validationErrors,omitempty"`
}

// EnvelopeMeta is the metadata section of an Envelope.
type EnvelopeMeta struct {
	Timestamp time.Time `json:"timestamp"`
	TraceID   string    `json:"traceId"`
	Version   string    `json:"version,omitempty"`
}

func (f EnvelopeFormatter) Format(ctx context.Context, err APIError) any {
	body := EnvelopeBody{
		Code:    err.ErrorCode(),
		Message: err.ErrorMessage(),
	}
	if ve, ok := err.(*ValidationError); ok && ve != nil {
		fields := ve.FieldErrors()
		body.ValidationErrors = &fields
	} else {
		body.Details = err.ErrorDetails()
	}

	traceID := TraceIDFromContext(ctx)
	if traceID == "" {
		traceID = "unknown"
	}

	return Envelope{
		Success: false,
		Error:   body,
		Meta: EnvelopeMeta{
			Timestamp: f.now(),
			TraceID:   traceID,
			Version:   f.Version,
		},
	}
}

func (f EnvelopeFormatter) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now().UTC()
}
