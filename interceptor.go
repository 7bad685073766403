package errhound

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// HandlerFunc is an HTTP handler that reports faults by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Interceptor catches faults raised by downstream handlers and turns each
// into a single formatted JSON response.
//
// An Interceptor holds only immutable configuration and is safe for
// concurrent use by multiple requests.
type Interceptor struct {
	formatter   Formatter
	contentType string
	logger      *slog.Logger
	faults      *faultCounter
}

// NewInterceptor creates an Interceptor. Exactly one formatter must be
// configured with WithFormatter or WithFormatterFunc.
func NewInterceptor(opts ...Option) (*Interceptor, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	switch len(cfg.formatters) {
	case 0:
		return nil, ErrNoFormatter
	case 1:
	default:
		return nil, fmt.Errorf("%w: got %d", ErrFormatterConflict, len(cfg.formatters))
	}

	f := cfg.formatters[0]
	contentType := ContentTypeJSON
	if ct, ok := f.(ContentTyper); ok && ct.ContentType() != "" {
		contentType = ct.ContentType()
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	faults, err := newFaultCounter(cfg.meterProvider)
	if err != nil {
		return nil, err
	}

	return &Interceptor{
		formatter:   f,
		contentType: contentType,
		logger:      logger,
		faults:      faults,
	}, nil
}

// MustNewInterceptor is like NewInterceptor but panics on a configuration error.
func MustNewInterceptor(opts ...Option) *Interceptor {
	i, err := NewInterceptor(opts...)
	if err != nil {
		panic(err)
	}
	return i
}

// Intercept runs next and, if it returns an error or panics, classifies the
// fault, formats it and writes the response. A nil result leaves w untouched.
//
// next must write through the writer it is given. Unless w already reports
// Written() bool, it is wrapped so that a response the handler started is
// never written a second time.
//
// A panicking formatter is not recovered.
func (i *Interceptor) Intercept(w http.ResponseWriter, r *http.Request, next func(w http.ResponseWriter) error) {
	tw := track(w)
	err := invoke(func() error { return next(tw) })
	if err == nil {
		return
	}
	i.handle(tw, r, err)
}

// Wrap adapts an error-returning handler into an http.Handler.
func (i *Interceptor) Wrap(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		i.Intercept(w, r, func(w http.ResponseWriter) error { return h(w, r) })
	})
}

// Middleware intercepts panics raised by a plain http.Handler.
func (i *Interceptor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		i.Intercept(w, r, func(w http.ResponseWriter) error {
			next.ServeHTTP(w, r)
			return nil
		})
	})
}

func (i *Interceptor) handle(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	class, apiErr := Classify(err)
	status := apiErr.HTTPStatus()

	i.log(ctx, class, apiErr, status, err)
	markSpan(ctx, class, apiErr, status, err)
	i.faults.record(ctx, class, apiErr.ErrorCode(), status)

	payload := i.formatter.Format(ctx, apiErr)

	// The client is gone; there is nobody to answer.
	if errors.Is(ctx.Err(), context.Canceled) {
		i.logger.DebugContext(ctx, "request canceled, error response dropped",
			slog.String("code", string(apiErr.ErrorCode())),
		)
		return
	}

	if committed(w) {
		i.logger.WarnContext(ctx, "response already committed, error response dropped",
			slog.String("code", string(apiErr.ErrorCode())),
			slog.Int("status", status),
		)
		return
	}

	h := w.Header()
	h.Set("Content-Type", i.contentType)
	if id := TraceIDFromRequest(r); id != "" {
		h.Set(HeaderTraceID, id)
	}
	if ra, ok := apiErr.(interface{ RetryDelay() time.Duration }); ok && ra.RetryDelay() > 0 {
		seconds := int(ra.RetryDelay().Seconds())
		if seconds < 1 {
			seconds = 1 // Minimum 1 second
		}
		h.Set("Retry-After", strconv.Itoa(seconds))
	}
	w.WriteHeader(status)

	if encErr := json.NewEncoder(w).Encode(payload); encErr != nil {
		i.logger.DebugContext(ctx, "writing error response failed",
			slog.String("code", string(apiErr.ErrorCode())),
			slog.String("error", encErr.Error()),
		)
	}
}

func (i *Interceptor) log(ctx context.Context, class Class, e APIError, status int, raw error) {
	attrs := []slog.Attr{
		slog.String("code", string(e.ErrorCode())),
		slog.String("message", e.ErrorMessage()),
		slog.Int("status", status),
	}
	if id := TraceIDFromContext(ctx); id != "" {
		attrs = append(attrs, slog.String("trace_id", id))
	}

	switch class {
	case ClassValidation:
		i.logger.LogAttrs(ctx, slog.LevelWarn, "validation error", attrs...)
	case ClassAPI:
		i.logger.LogAttrs(ctx, slog.LevelError, "api error", attrs...)
	default:
		attrs = append(attrs, slog.String("error", raw.Error()))
		var pe *panicError
		if errors.As(raw, &pe) {
			attrs = append(attrs, slog.String("stack", string(pe.stack)))
		}
		i.logger.LogAttrs(ctx, LevelCritical, "unhandled error", attrs...)
	}
}

func markSpan(ctx context.Context, class Class, e APIError, status int, raw error) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.RecordError(raw, trace.WithAttributes(
		attribute.String("error.code", string(e.ErrorCode())),
		attribute.String("error.class", class.String()),
	))
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if status >= http.StatusInternalServerError {
		span.SetStatus(otelcodes.Error, e.ErrorMessage())
	}
}

// invoke calls next, turning a panic into an error.
func invoke(next func() error) (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		if v == http.ErrAbortHandler {
			panic(v)
		}
		err = &panicError{value: v, stack: debug.Stack()}
	}()
	return next()
}

// panicError carries a recovered panic value. The stack is logged, never rendered.
type panicError struct {
	value any
	stack []byte
}

func (p *panicError) Error() string { return fmt.Sprint(p.value) }

func (p *panicError) Unwrap() error {
	if err, ok := p.value.(error); ok {
		return err
	}
	return nil
}

// sink tracks whether the downstream handler already wrote to the response.
type sink struct {
	http.ResponseWriter
	wrote bool
}

func (s *sink) WriteHeader(code int) {
	s.wrote = true
	s.ResponseWriter.WriteHeader(code)
}

func (s *sink) Write(b []byte) (int, error) {
	s.wrote = true
	return s.ResponseWriter.Write(b)
}

func (s *sink) Written() bool { return s.wrote }

func (s *sink) Unwrap() http.ResponseWriter { return s.ResponseWriter }

// track returns w when it already reports whether it was written to,
// and a sink around it otherwise.
func track(w http.ResponseWriter) http.ResponseWriter {
	if _, ok := w.(interface{ Written() bool }); ok {
		return w
	}
	return &sink{ResponseWriter: w}
}

func committed(w http.ResponseWriter) bool {
	if wr, ok := w.(interface{ Written() bool }); ok {
		return wr.Written()
	}
	return false
}
