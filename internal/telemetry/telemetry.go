// Package telemetry installs OpenTelemetry trace and metric providers for the
// CLI. Library packages only use the global otel API; without Init their spans
// and instruments are no-ops.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
)

// Exporter names.
const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
)

var (
	// ErrNilContext is returned by Init when ctx is nil.
	ErrNilContext = errors.New("telemetry: context must not be nil")
	// ErrUnknownExporter is returned for an exporter name other than none or stdout.
	ErrUnknownExporter = errors.New("telemetry: unknown exporter")
)

// Config controls which exporters Init installs.
type Config struct {
	ServiceName    string
	ServiceVersion string
	// Exporter is "none" or "stdout"; it applies to traces and metrics.
	Exporter string
	// Writer receives stdout exporter output; nil means os.Stderr.
	Writer io.Writer
}

// DefaultConfig returns a Config with telemetry disabled.
func DefaultConfig() Config {
	return Config{
		ServiceName:    "lvsearch",
		ServiceVersion: "dev",
		Exporter:       ExporterNone,
	}
}

// Init installs global trace and meter providers according to cfg. The
// returned shutdown flushes and stops them and must be called before exit.
func Init(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	nop := func(context.Context) error { return nil }

	switch cfg.Exporter {
	case "", ExporterNone:
		return nop, nil
	case ExporterStdout:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownExporter, cfg.Exporter)
	}

	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", cfg.ServiceVersion),
	)

	spanExp, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("create stdout trace exporter: %w", err)
	}
	tp := trace.NewTracerProvider(
		trace.WithBatcher(spanExp),
		trace.WithResource(res),
		trace.WithSampler(trace.AlwaysSample()),
	)

	metricExp, err := stdoutmetric.New(stdoutmetric.WithWriter(w))
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("create stdout metric exporter: %w", err)
	}
	mp := metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(metric.NewPeriodicReader(metricExp)),
	)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)

	return func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}
