// Package config provides domain models for patrol-go configuration.
package config

import "time"

// Part selects which analysis a run performs.
type Part string

const (
	PartVisited Part = "visited" // Count of unique cells on the patrol path
	PartLoops   Part = "loops"   // Count of obstruction placements that trap the agent
	PartAll     Part = "all"     // Both
)

// PatrolConfig represents the complete configuration of a patrol analysis.
type PatrolConfig struct {
	// Name is a human-readable name for this configuration.
	Name string `json:"name" yaml:"name"`
	// Version is the configuration schema version.
	Version string `json:"version" yaml:"version"`
	// Input is the path of the map file ("-" for stdin).
	Input string `json:"input,omitempty" yaml:"input,omitempty"`

	// Analysis contains simulation settings.
	Analysis AnalysisConfig `json:"analysis,omitempty" yaml:"analysis,omitempty"`
	// Logging contains logger settings.
	Logging LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty"`
	// Telemetry contains tracing and metrics settings.
	Telemetry TelemetryConfig `json:"telemetry,omitempty" yaml:"telemetry,omitempty"`
	// Watch contains file watching settings.
	Watch WatchConfig `json:"watch,omitempty" yaml:"watch,omitempty"`
}

// AnalysisConfig contains simulation settings.
type AnalysisConfig struct {
	// Part selects the analysis (visited, loops or all).
	Part Part `json:"part,omitempty" yaml:"part,omitempty"`
	// Workers bounds concurrent candidate evaluations (0 = number of CPUs).
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// LoggingConfig contains logger settings.
type LoggingConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
	// Format is the output format (json or console).
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// TelemetryConfig contains tracing and metrics settings.
type TelemetryConfig struct {
	Tracing TracingConfig `json:"tracing,omitempty" yaml:"tracing,omitempty"`
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// TracingConfig configures span export.
type TracingConfig struct {
	// Enabled enables tracing.
	Enabled bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	// Exporter is the exporter type (stdout, otlp, noop).
	Exporter string `json:"exporter,omitempty" yaml:"exporter,omitempty"`
	// Endpoint is the OTLP endpoint.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	// Insecure disables TLS for the OTLP exporter.
	Insecure bool `json:"insecure,omitempty" yaml:"insecure,omitempty"`
	// SampleRate is the sampling rate (0.0-1.0).
	SampleRate float64 `json:"sample_rate,omitempty" yaml:"sample_rate,omitempty"`
}

// MetricsConfig configures metric instruments.
type MetricsConfig struct {
	// Enabled enables metrics recording.
	Enabled bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	// Exporter is the exporter type (stdout, noop).
	Exporter string `json:"exporter,omitempty" yaml:"exporter,omitempty"`
	// Interval is the export interval.
	Interval Duration `json:"interval,omitempty" yaml:"interval,omitempty"`
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	// Debounce is the quiet period after a write before re-solving.
	Debounce Duration `json:"debounce,omitempty" yaml:"debounce,omitempty"`
}

// Default returns a configuration with sensible defaults.
func Default() *PatrolConfig {
	return &PatrolConfig{
		Name:    "patrol",
		Version: "1.0",
		Analysis: AnalysisConfig{
			Part: PartAll,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Telemetry: TelemetryConfig{
			Tracing: TracingConfig{
				Exporter:   "noop",
				SampleRate: 1.0,
			},
			Metrics: MetricsConfig{
				Exporter: "noop",
				Interval: Duration(60 * time.Second),
			},
		},
		Watch: WatchConfig{
			Debounce: Duration(200 * time.Millisecond),
		},
	}
}

// Duration is a time.Duration that supports JSON/YAML string representation.
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Duration(d).String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
