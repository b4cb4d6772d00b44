package telemetry

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// setupTestMetrics sets up a test meter provider and returns it along with a reader.
func setupTestMetrics(t *testing.T) (*metric.ManualReader, *MetricsProvider) {
	t.Helper()

	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))

	config := DefaultMetricsConfig()
	config.MeterProvider = provider
	mp := NewMetricsProvider(config)
	if mp.Error() != nil {
		t.Fatalf("failed to create metrics provider: %v", mp.Error())
	}

	return reader, mp
}

func collect(t *testing.T, reader *metric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}

	byName := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			byName[m.Name] = m
		}
	}
	return byName
}

func sumInt64(t *testing.T, m metricdata.Metrics) int64 {
	t.Helper()

	sum, ok := m.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("%s: expected Sum[int64], got %T", m.Name, m.Data)
	}
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func TestNewMetricsProvider(t *testing.T) {
	t.Parallel()

	reader, mp := setupTestMetrics(t)
	defer reader.Shutdown(context.Background())

	if mp == nil {
		t.Fatal("NewMetricsProvider returned nil")
	}
}

func TestNewMetricsProvider_EmptyMeterName(t *testing.T) {
	t.Parallel()

	mp := NewMetricsProvider(MetricsConfig{})
	if mp.Error() != nil {
		t.Errorf("unexpected error: %v", mp.Error())
	}
}

func TestMetricsProvider_RecordRun(t *testing.T) {
	t.Parallel()

	reader, mp := setupTestMetrics(t)
	defer reader.Shutdown(context.Background())

	ctx := context.Background()
	mp.RecordRun(ctx, "track", "exited", 45, 2*time.Millisecond)
	mp.RecordRun(ctx, "evaluate", "looped", 12, time.Millisecond)

	metrics := collect(t, reader)

	runs, ok := metrics["patrol.runs"]
	if !ok {
		t.Fatal("patrol.runs metric not found")
	}
	if got := sumInt64(t, runs); got != 2 {
		t.Errorf("patrol.runs = %d, want 2", got)
	}

	steps, ok := metrics["patrol.steps"]
	if !ok {
		t.Fatal("patrol.steps metric not found")
	}
	if got := sumInt64(t, steps); got != 57 {
		t.Errorf("patrol.steps = %d, want 57", got)
	}

	duration, ok := metrics["patrol.run.duration"]
	if !ok {
		t.Fatal("patrol.run.duration metric not found")
	}
	hist, ok := duration.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatalf("expected Histogram[float64], got %T", duration.Data)
	}
	var count uint64
	for _, dp := range hist.DataPoints {
		count += dp.Count
	}
	if count != 2 {
		t.Errorf("patrol.run.duration count = %d, want 2", count)
	}
}

func TestMetricsProvider_RecordCandidate(t *testing.T) {
	t.Parallel()

	reader, mp := setupTestMetrics(t)
	defer reader.Shutdown(context.Background())

	ctx := context.Background()
	mp.RecordCandidate(ctx, "looped")
	mp.RecordCandidate(ctx, "not_looped")
	mp.RecordCandidate(ctx, "looped")

	m, ok := collect(t, reader)["patrol.candidates"]
	if !ok {
		t.Fatal("patrol.candidates metric not found")
	}

	sum := m.Data.(metricdata.Sum[int64])
	looped := int64(0)
	for _, dp := range sum.DataPoints {
		if v, ok := dp.Attributes.Value(attribute.Key("verdict")); ok && v.AsString() == "looped" {
			looped += dp.Value
		}
	}
	if looped != 2 {
		t.Errorf("looped candidates = %d, want 2", looped)
	}
	if got := sumInt64(t, m); got != 3 {
		t.Errorf("patrol.candidates = %d, want 3", got)
	}
}

func TestMetricsProvider_StateTransitionsAndErrors(t *testing.T) {
	t.Parallel()

	reader, mp := setupTestMetrics(t)
	defer reader.Shutdown(context.Background())

	ctx := context.Background()
	mp.RecordStateTransition(ctx, "pending", "patrolling")
	mp.RecordStateTransition(ctx, "patrolling", "exited")
	mp.RecordError(ctx, "parse")

	metrics := collect(t, reader)
	if got := sumInt64(t, metrics["patrol.state.transitions"]); got != 2 {
		t.Errorf("patrol.state.transitions = %d, want 2", got)
	}
	if got := sumInt64(t, metrics["patrol.errors"]); got != 1 {
		t.Errorf("patrol.errors = %d, want 1", got)
	}
}

func TestMetricsProvider_ActiveRuns(t *testing.T) {
	t.Parallel()

	reader, mp := setupTestMetrics(t)
	defer reader.Shutdown(context.Background())

	ctx := context.Background()
	mp.IncrementActiveRuns(ctx)
	mp.IncrementActiveRuns(ctx)
	mp.DecrementActiveRuns(ctx)

	m, ok := collect(t, reader)["patrol.runs.active"]
	if !ok {
		t.Fatal("patrol.runs.active metric not found")
	}
	if got := sumInt64(t, m); got != 1 {
		t.Errorf("patrol.runs.active = %d, want 1", got)
	}
}

func TestNoopMetricsProvider(t *testing.T) {
	t.Parallel()

	var m Metrics = &NoopMetricsProvider{}
	ctx := context.Background()

	m.RecordRun(ctx, "track", "exited", 1, time.Millisecond)
	m.RecordCandidate(ctx, "looped")
	m.RecordStateTransition(ctx, "pending", "patrolling")
	m.RecordError(ctx, "parse")
	m.IncrementActiveRuns(ctx)
	m.DecrementActiveRuns(ctx)
}
