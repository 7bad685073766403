package errhound

import "context"

// ContentTypeJSON is the media type written when a formatter does not choose one.
const ContentTypeJSON = "application/json"

// Formatter converts an API error into a response payload ready for JSON encoding.
//
// Implementations must not mutate err and must not panic. They may read
// per-request values, such as the trace ID, from ctx.
type Formatter interface {
	Format(ctx context.Context, err APIError) any
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(ctx context.Context, err APIError) any

func (f FormatterFunc) Format(ctx context.Context, err APIError) any { return f(ctx, err) }

// ContentTyper is implemented by formatters that write a JSON media type
// other than application/json.
type ContentTyper interface {
	ContentType() string
}

// Response is the payload produced by DefaultFormatter.
type Response struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Details any    `json:"details"`
}

// DefaultFormatter renders the flat {code, message, status, details} shape.
// For validation errors, details holds the field errors.
type DefaultFormatter struct{}

func (DefaultFormatter) Format(_ context.Context, err APIError) any {
	return Response{
		Code:    err.ErrorCode(),
		Message: err.ErrorMessage(),
		Status:  err.HTTPStatus(),
		Details: detailsOf(err),
	}
}

// detailsOf returns a validation error's field errors, or the generic details otherwise.
func detailsOf(err APIError) any {
	if ve, ok := err.(*ValidationError); ok && ve != nil {
		return ve.FieldErrors()
	}
	return err.ErrorDetails()
}
