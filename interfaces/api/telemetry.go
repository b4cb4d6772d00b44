// Package api provides the public API for patrol-go.
// This file provides telemetry-related exports.
package api

import (
	"io"

	"go.opentelemetry.io/otel/metric"

	domainconfig "github.com/felixgeelhaar/patrol-go/domain/config"
	"github.com/felixgeelhaar/patrol-go/infrastructure/observability"
	"github.com/felixgeelhaar/patrol-go/infrastructure/telemetry"
)

// Re-export telemetry types.
type (
	// ObservabilityProvider owns the tracer and meter providers.
	ObservabilityProvider = observability.Provider
	// Metrics records run counters.
	Metrics = telemetry.Metrics
)

// NewObservability builds a provider from the telemetry section of the
// configuration. Stdout exporters write to output.
func NewObservability(cfg domainconfig.TelemetryConfig, output io.Writer, version string) (*ObservabilityProvider, error) {
	opts := []observability.Option{
		observability.WithServiceVersion(version),
		observability.WithOutput(output),
	}

	if cfg.Tracing.Enabled {
		opts = append(opts,
			observability.WithTracing(observability.ExporterType(cfg.Tracing.Exporter), cfg.Tracing.Endpoint),
			observability.WithSampleRate(cfg.Tracing.SampleRate),
		)
		if cfg.Tracing.Insecure {
			opts = append(opts, observability.WithTracingInsecure())
		}
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Exporter == string(observability.ExporterStdout) {
		opts = append(opts, observability.WithStdoutMetrics())
		if d := cfg.Metrics.Interval.Duration(); d > 0 {
			opts = append(opts, observability.WithMetricsInterval(d))
		}
	}

	return observability.New(opts...)
}

// NewMetrics creates a metrics recorder on the given meter provider.
func NewMetrics(mp metric.MeterProvider) Metrics {
	cfg := telemetry.DefaultMetricsConfig()
	cfg.MeterProvider = mp
	return telemetry.NewMetricsProvider(cfg)
}
