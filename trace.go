package errhound

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/trace"
)

const (
	// HeaderTraceID is the standard header name for trace/request IDs.
	HeaderTraceID = "X-Request-Id"
)

type ctxKey string

const traceKey ctxKey = "errhound.trace_id"

// TraceIDFromRequest extracts the trace ID from the request header or context.
func TraceIDFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	// Prefer header
	if id := r.Header.Get(HeaderTraceID); id != "" {
		return id
	}
	return TraceIDFromContext(r.Context())
}

// TraceIDFromContext returns the trace ID stored by WithTraceID, falling back
// to the trace ID of a valid OpenTelemetry span in ctx.
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if s, ok := ctx.Value(traceKey).(string); ok && s != "" {
		return s
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		return sc.TraceID().String()
	}
	return ""
}

// WithTraceID adds a trace ID to the context.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceKey, id)
}

// TraceMiddleware generates or propagates a trace ID for each request
// using UUIDv7 identifiers.
func TraceMiddleware(next http.Handler) http.Handler {
	return NewTraceMiddleware(UUIDv7)(next)
}

// NewTraceMiddleware returns trace middleware that calls gen when the request
// carries no X-Request-Id header.
func NewTraceMiddleware(gen func() string) func(http.Handler) http.Handler {
	if gen == nil {
		gen = UUIDv7
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderTraceID)
			if id == "" {
				id = gen()
			}
			ctx := WithTraceID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UUIDv7 returns a time-ordered UUID string.
func UUIDv7() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ULID returns a 26-character lexicographically sortable identifier.
func ULID() string {
	return ulid.Make().String()
}
