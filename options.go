package errhound

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
)

var (
	// ErrNoFormatter is returned by NewInterceptor when no formatter was configured.
	ErrNoFormatter = errors.New("errhound: no formatter configured")

	// ErrFormatterConflict is returned by NewInterceptor when more than one formatter was configured.
	ErrFormatterConflict = errors.New("errhound: more than one formatter configured")
)

// Option configures an Interceptor.
type Option func(*config)

type config struct {
	formatters    []Formatter
	logger        *slog.Logger
	meterProvider metric.MeterProvider
}

// WithFormatter selects the formatter used for every error response.
func WithFormatter(f Formatter) Option {
	return func(c *config) {
		if f != nil {
			c.formatters = append(c.formatters, f)
		}
	}
}

// WithFormatterFunc selects a plain function as the formatter.
//
//	errhound.NewInterceptor(errhound.WithFormatterFunc(func(err errhound.APIError) any {
//	    return map[string]any{"error": err.ErrorMessage()}
//	}))
func WithFormatterFunc(fn func(APIError) any) Option {
	return func(c *config) {
		if fn != nil {
			c.formatters = append(c.formatters, FormatterFunc(func(_ context.Context, err APIError) any {
				return fn(err)
			}))
		}
	}
}

// WithLogger sets the logger for fault events. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithMeterProvider sets the provider of the errhound_faults_total counter.
// Defaults to the global OpenTelemetry meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}
