// Package api provides the public API for patrol-go.
// This file provides configuration-related exports.
package api

import (
	domainconfig "github.com/felixgeelhaar/patrol-go/domain/config"
	infraconfig "github.com/felixgeelhaar/patrol-go/infrastructure/config"
)

// Re-export domain configuration types.
type (
	// PatrolConfig represents the complete configuration.
	PatrolConfig = domainconfig.PatrolConfig
	// AnalysisConfig contains simulation settings.
	AnalysisConfig = domainconfig.AnalysisConfig
	// LoggingConfig contains logger settings.
	LoggingConfig = domainconfig.LoggingConfig
	// TelemetryConfig contains tracing and metrics settings.
	TelemetryConfig = domainconfig.TelemetryConfig
	// Part selects which analysis a run performs.
	Part = domainconfig.Part
	// ConfigDuration is a time.Duration that supports JSON/YAML string representation.
	ConfigDuration = domainconfig.Duration

	// ValidationError represents a configuration validation error.
	ValidationError = domainconfig.ValidationError
	// ValidationErrors is a collection of validation errors.
	ValidationErrors = domainconfig.ValidationErrors
)

// Re-export infrastructure configuration types.
type (
	// ConfigLoader loads configuration from files.
	ConfigLoader = infraconfig.Loader
	// ConfigLoaderOption configures the loader.
	ConfigLoaderOption = infraconfig.LoaderOption
	// ConfigOverrides holds values set on the command line.
	ConfigOverrides = infraconfig.Overrides
	// JSONSchema represents a JSON Schema document.
	JSONSchema = infraconfig.JSONSchema
)

// Analysis parts.
const (
	PartVisited = domainconfig.PartVisited
	PartLoops   = domainconfig.PartLoops
	PartAll     = domainconfig.PartAll
)

// Configuration errors.
var (
	ErrConfigNotFound     = domainconfig.ErrConfigNotFound
	ErrInvalidFormat      = domainconfig.ErrInvalidFormat
	ErrUnsupportedFormat  = domainconfig.ErrUnsupportedFormat
	ErrValidationFailed   = domainconfig.ErrValidationFailed
	ErrEnvExpansionFailed = domainconfig.ErrEnvExpansionFailed
	ErrMissingEnvVar      = domainconfig.ErrMissingEnvVar
)

// NewConfigLoader creates a new configuration loader with default settings.
func NewConfigLoader() *ConfigLoader {
	return infraconfig.NewLoader()
}

// NewConfigLoaderWithOptions creates a loader with the specified options.
func NewConfigLoaderWithOptions(opts ...ConfigLoaderOption) *ConfigLoader {
	return infraconfig.NewLoaderWithOptions(opts...)
}

// ConfigWithStrictEnv enables strict environment variable checking.
func ConfigWithStrictEnv(enabled bool) ConfigLoaderOption {
	return infraconfig.WithStrictEnv(enabled)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *PatrolConfig {
	return domainconfig.Default()
}

// ResolveConfig layers defaults, the file at path (if any) and overrides,
// then validates the result.
func ResolveConfig(path string, overrides ConfigOverrides) (*PatrolConfig, error) {
	return infraconfig.Resolve(nil, path, overrides)
}

// ConfigSchemaJSON returns the configuration JSON Schema as a JSON string.
func ConfigSchemaJSON() (string, error) {
	return infraconfig.SchemaJSON()
}
