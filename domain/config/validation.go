package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Path is the JSON path to the invalid field.
	Path string
	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%d validation errors:\n  - %s", len(e), strings.Join(msgs, "\n  - "))
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validator validates patrol configuration.
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the configuration and returns any errors.
func (v *Validator) Validate(config *PatrolConfig) ValidationErrors {
	v.errors = nil

	v.validateRequired(config)
	v.validateAnalysis(config)
	v.validateLogging(config)
	v.validateTelemetry(config)
	v.validateWatch(config)

	return v.errors
}

func (v *Validator) addError(path, message string) {
	v.errors = append(v.errors, ValidationError{Path: path, Message: message})
}

func (v *Validator) validateRequired(config *PatrolConfig) {
	if config.Name == "" {
		v.addError("name", "name is required")
	}
	if config.Version == "" {
		v.addError("version", "version is required")
	}
}

func (v *Validator) validateAnalysis(config *PatrolConfig) {
	switch config.Analysis.Part {
	case "", PartVisited, PartLoops, PartAll:
	default:
		v.addError("analysis.part", fmt.Sprintf("invalid part: %s", config.Analysis.Part))
	}

	if config.Analysis.Workers < 0 {
		v.addError("analysis.workers", "workers must be non-negative")
	}
}

func (v *Validator) validateLogging(config *PatrolConfig) {
	if config.Logging.Level != "" {
		validLevels := map[string]bool{
			"trace": true, "debug": true, "info": true, "warn": true, "error": true,
		}
		if !validLevels[strings.ToLower(config.Logging.Level)] {
			v.addError("logging.level", fmt.Sprintf("invalid level: %s", config.Logging.Level))
		}
	}

	switch config.Logging.Format {
	case "", "json", "console":
	default:
		v.addError("logging.format", fmt.Sprintf("invalid format: %s", config.Logging.Format))
	}
}

func (v *Validator) validateTelemetry(config *PatrolConfig) {
	if metrics := config.Telemetry.Metrics; metrics.Enabled {
		switch metrics.Exporter {
		case "stdout", "noop":
		default:
			v.addError("telemetry.metrics.exporter", fmt.Sprintf("unknown exporter: %s", metrics.Exporter))
		}
		if metrics.Interval < 0 {
			v.addError("telemetry.metrics.interval", "interval must be non-negative")
		}
	}

	tracing := config.Telemetry.Tracing
	if !tracing.Enabled {
		return
	}

	switch tracing.Exporter {
	case "stdout", "noop":
	case "otlp":
		if tracing.Endpoint == "" {
			v.addError("telemetry.tracing.endpoint", "endpoint is required for otlp exporter")
		}
	default:
		v.addError("telemetry.tracing.exporter", fmt.Sprintf("unknown exporter: %s", tracing.Exporter))
	}

	if tracing.SampleRate < 0 || tracing.SampleRate > 1 {
		v.addError("telemetry.tracing.sample_rate", "sample_rate must be between 0 and 1")
	}
}

func (v *Validator) validateWatch(config *PatrolConfig) {
	if config.Watch.Debounce < 0 {
		v.addError("watch.debounce", "debounce must be non-negative")
	}
}
