package config

import (
	"fmt"

	"github.com/felixgeelhaar/patrol-go/domain/config"
)

// Overrides holds values set explicitly on the command line. Nil fields leave
// the file or default value in place.
type Overrides struct {
	Input         *string
	Part          *config.Part
	Workers       *int
	LogLevel      *string
	LogFormat     *string
	TraceExporter *string
	TraceEndpoint *string
	Metrics       *bool
}

// Resolve builds the effective configuration: defaults, then the file at path
// (if non-empty), then overrides. The result is validated.
func Resolve(loader *Loader, path string, overrides Overrides) (*config.PatrolConfig, error) {
	cfg := config.Default()
	if path != "" {
		if loader == nil {
			loader = NewLoader()
		}
		// Validation runs once, after overrides.
		unvalidated := *loader
		unvalidated.Validate = false
		loaded, err := unvalidated.LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	overrides.apply(cfg)

	if errs := config.NewValidator().Validate(cfg); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %v", config.ErrValidationFailed, errs)
	}
	return cfg, nil
}

func (o Overrides) apply(cfg *config.PatrolConfig) {
	if o.Input != nil {
		cfg.Input = *o.Input
	}
	if o.Part != nil {
		cfg.Analysis.Part = *o.Part
	}
	if o.Workers != nil {
		cfg.Analysis.Workers = *o.Workers
	}
	if o.LogLevel != nil {
		cfg.Logging.Level = *o.LogLevel
	}
	if o.LogFormat != nil {
		cfg.Logging.Format = *o.LogFormat
	}
	if o.TraceExporter != nil {
		cfg.Telemetry.Tracing.Exporter = *o.TraceExporter
		cfg.Telemetry.Tracing.Enabled = *o.TraceExporter != "noop"
	}
	if o.TraceEndpoint != nil {
		cfg.Telemetry.Tracing.Endpoint = *o.TraceEndpoint
	}
	if o.Metrics != nil {
		cfg.Telemetry.Metrics.Enabled = *o.Metrics
		if *o.Metrics && cfg.Telemetry.Metrics.Exporter == "noop" {
			cfg.Telemetry.Metrics.Exporter = "stdout"
		}
	}
}
