package application

import (
	"runtime"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/felixgeelhaar/patrol-go/infrastructure/resilience"
	"github.com/felixgeelhaar/patrol-go/infrastructure/telemetry"
)

// Config contains the collaborators shared by the tracker, detector and solver.
type Config struct {
	// Workers bounds concurrent candidate evaluations (0 = number of CPUs).
	Workers int
	// Executor runs candidate evaluations. Defaults to a bulkhead sized to Workers.
	Executor *resilience.Executor
	// Metrics records run counters. Defaults to a no-op.
	Metrics telemetry.Metrics
	// Tracer starts spans. Nil disables tracing.
	Tracer trace.Tracer
	// NewID generates run identifiers.
	NewID func() string
}

// Option configures the application services.
type Option func(*Config)

// WithWorkers sets the number of concurrent candidate evaluations.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithExecutor sets the bounded executor for candidate evaluations.
func WithExecutor(e *resilience.Executor) Option {
	return func(c *Config) {
		c.Executor = e
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m telemetry.Metrics) Option {
	return func(c *Config) {
		c.Metrics = m
	}
}

// WithTracer sets the tracer used for parse, track and detect spans.
func WithTracer(t trace.Tracer) Option {
	return func(c *Config) {
		c.Tracer = t
	}
}

// WithIDGenerator sets the run identifier generator.
func WithIDGenerator(fn func() string) Option {
	return func(c *Config) {
		c.NewID = fn
	}
}

func newConfig(opts ...Option) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Executor == nil {
		cfg.Executor = resilience.NewExecutor(resilience.ExecutorConfig{
			MaxConcurrent: cfg.Workers,
		})
	}
	// The bulkhead rejects rather than queues, so never exceed its capacity.
	if limit := cfg.Executor.MaxConcurrent(); cfg.Workers > limit {
		cfg.Workers = limit
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &telemetry.NoopMetricsProvider{}
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	return cfg
}
