package errhound

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/blackwell-systems/errhound"

// faultCounter counts faults turned into error responses.
type faultCounter struct {
	faults metric.Int64Counter
}

func newFaultCounter(mp metric.MeterProvider) (*faultCounter, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	c, err := mp.Meter(meterName).Int64Counter(
		"errhound_faults_total",
		metric.WithDescription("Total number of faults converted to error responses"),
	)
	if err != nil {
		return nil, fmt.Errorf("errhound: create fault counter: %w", err)
	}
	return &faultCounter{faults: c}, nil
}

func (c *faultCounter) record(ctx context.Context, class Class, code Code, status int) {
	c.faults.Add(ctx, 1, metric.WithAttributes(
		attribute.String("error.code", string(code)),
		attribute.String("error.class", class.String()),
		attribute.Int("http.response.status_code", status),
	))
}
