// Package telemetry provides OpenTelemetry metrics for patrol runs.
package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsProvider provides access to metrics instruments.
type MetricsProvider struct {
	meter metric.Meter

	// Counters
	runs             metric.Int64Counter
	steps            metric.Int64Counter
	candidates       metric.Int64Counter
	stateTransitions metric.Int64Counter
	errors           metric.Int64Counter

	// Histograms
	runDuration metric.Float64Histogram

	// Gauges (using UpDownCounter for OpenTelemetry)
	activeRuns metric.Int64UpDownCounter

	initOnce sync.Once
	initErr  error
}

// MetricsConfig configures the metrics provider.
type MetricsConfig struct {
	// MeterName is the name of the meter (default: "github.com/felixgeelhaar/patrol-go").
	MeterName string
	// MeterVersion is the version of the meter.
	MeterVersion string
	// MeterProvider overrides the global provider when set.
	MeterProvider metric.MeterProvider
}

// DefaultMetricsConfig returns a default metrics configuration.
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		MeterName:    "github.com/felixgeelhaar/patrol-go",
		MeterVersion: "1.0.0",
	}
}

// NewMetricsProvider creates a new metrics provider.
func NewMetricsProvider(config MetricsConfig) *MetricsProvider {
	if config.MeterName == "" {
		config.MeterName = DefaultMetricsConfig().MeterName
	}

	provider := config.MeterProvider
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	meter := provider.Meter(
		config.MeterName,
		metric.WithInstrumentationVersion(config.MeterVersion),
	)

	mp := &MetricsProvider{
		meter: meter,
	}

	mp.initOnce.Do(func() {
		mp.initErr = mp.initInstruments()
	})

	return mp
}

// initInstruments initializes all metric instruments.
func (mp *MetricsProvider) initInstruments() error {
	var err error

	mp.runs, err = mp.meter.Int64Counter(
		"patrol.runs",
		metric.WithDescription("Number of completed patrol runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return err
	}

	mp.steps, err = mp.meter.Int64Counter(
		"patrol.steps",
		metric.WithDescription("Number of simulation ticks"),
		metric.WithUnit("{step}"),
	)
	if err != nil {
		return err
	}

	mp.candidates, err = mp.meter.Int64Counter(
		"patrol.candidates",
		metric.WithDescription("Number of evaluated obstruction candidates"),
		metric.WithUnit("{candidate}"),
	)
	if err != nil {
		return err
	}

	mp.stateTransitions, err = mp.meter.Int64Counter(
		"patrol.state.transitions",
		metric.WithDescription("Number of run lifecycle transitions"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return err
	}

	mp.errors, err = mp.meter.Int64Counter(
		"patrol.errors",
		metric.WithDescription("Number of errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return err
	}

	mp.runDuration, err = mp.meter.Float64Histogram(
		"patrol.run.duration",
		metric.WithDescription("Duration of patrol runs"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	mp.activeRuns, err = mp.meter.Int64UpDownCounter(
		"patrol.runs.active",
		metric.WithDescription("Number of active patrol runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return err
	}

	return nil
}

// Error returns any initialization error.
func (mp *MetricsProvider) Error() error {
	return mp.initErr
}

// RecordRun records a finished run with its step count and duration.
func (mp *MetricsProvider) RecordRun(ctx context.Context, kind, status string, steps int, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("run.kind", kind),
		attribute.String("run.status", status),
	)

	mp.runs.Add(ctx, 1, attrs)
	mp.steps.Add(ctx, int64(steps), metric.WithAttributes(attribute.String("run.kind", kind)))
	mp.runDuration.Record(ctx, float64(duration.Microseconds())/1000, attrs)
}

// RecordCandidate records one candidate verdict.
func (mp *MetricsProvider) RecordCandidate(ctx context.Context, verdict string) {
	mp.candidates.Add(ctx, 1, metric.WithAttributes(
		attribute.String("verdict", verdict),
	))
}

// RecordStateTransition records a run lifecycle transition.
func (mp *MetricsProvider) RecordStateTransition(ctx context.Context, fromState, toState string) {
	mp.stateTransitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("state.from", fromState),
		attribute.String("state.to", toState),
	))
}

// RecordError records an error.
func (mp *MetricsProvider) RecordError(ctx context.Context, errorType string) {
	mp.errors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("error.type", errorType),
	))
}

// IncrementActiveRuns increments the active runs counter.
func (mp *MetricsProvider) IncrementActiveRuns(ctx context.Context) {
	mp.activeRuns.Add(ctx, 1)
}

// DecrementActiveRuns decrements the active runs counter.
func (mp *MetricsProvider) DecrementActiveRuns(ctx context.Context) {
	mp.activeRuns.Add(ctx, -1)
}

// NoopMetricsProvider is a no-op metrics provider for testing or when metrics are disabled.
type NoopMetricsProvider struct{}

// RecordRun is a no-op.
func (n *NoopMetricsProvider) RecordRun(ctx context.Context, kind, status string, steps int, duration time.Duration) {
}

// RecordCandidate is a no-op.
func (n *NoopMetricsProvider) RecordCandidate(ctx context.Context, verdict string) {}

// RecordStateTransition is a no-op.
func (n *NoopMetricsProvider) RecordStateTransition(ctx context.Context, fromState, toState string) {}

// RecordError is a no-op.
func (n *NoopMetricsProvider) RecordError(ctx context.Context, errorType string) {}

// IncrementActiveRuns is a no-op.
func (n *NoopMetricsProvider) IncrementActiveRuns(ctx context.Context) {}

// DecrementActiveRuns is a no-op.
func (n *NoopMetricsProvider) DecrementActiveRuns(ctx context.Context) {}

// Metrics defines the interface for metrics recording.
type Metrics interface {
	RecordRun(ctx context.Context, kind, status string, steps int, duration time.Duration)
	RecordCandidate(ctx context.Context, verdict string)
	RecordStateTransition(ctx context.Context, fromState, toState string)
	RecordError(ctx context.Context, errorType string)
	IncrementActiveRuns(ctx context.Context)
	DecrementActiveRuns(ctx context.Context)
}

// Ensure implementations satisfy the interface.
var (
	_ Metrics = (*MetricsProvider)(nil)
	_ Metrics = (*NoopMetricsProvider)(nil)
)
