package config

import (
	"encoding/json"
)

// JSONSchema represents a JSON Schema document.
type JSONSchema struct {
	Schema               string                 `json:"$schema,omitempty"`
	ID                   string                 `json:"$id,omitempty"`
	Title                string                 `json:"title,omitempty"`
	Description          string                 `json:"description,omitempty"`
	Type                 string                 `json:"type,omitempty"`
	Properties           map[string]*JSONSchema `json:"properties,omitempty"`
	Required             []string               `json:"required,omitempty"`
	AdditionalProperties *bool                  `json:"additionalProperties,omitempty"`
	Enum                 []string               `json:"enum,omitempty"`
	Default              any                    `json:"default,omitempty"`
	Minimum              *float64               `json:"minimum,omitempty"`
	Maximum              *float64               `json:"maximum,omitempty"`
	Pattern              string                 `json:"pattern,omitempty"`
}

// durationPattern matches Go duration strings such as "200ms" or "1m30s".
const durationPattern = `^([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$`

// GenerateSchema generates a JSON Schema for the PatrolConfig.
func GenerateSchema() *JSONSchema {
	return &JSONSchema{
		Schema:               "https://json-schema.org/draft/2020-12/schema",
		ID:                   "https://github.com/felixgeelhaar/patrol-go/patrol-config.schema.json",
		Title:                "Patrol Configuration",
		Description:          "Configuration schema for the patrol simulator",
		Type:                 "object",
		AdditionalProperties: boolPtr(false),
		Properties: map[string]*JSONSchema{
			"name": {
				Type:        "string",
				Description: "A human-readable name for this configuration",
				Default:     "patrol",
			},
			"version": {
				Type:        "string",
				Description: "The configuration schema version",
				Default:     "1.0",
			},
			"input": {
				Type:        "string",
				Description: "Path of the map file; - reads standard input",
			},
			"analysis":  generateAnalysisSchema(),
			"logging":   generateLoggingSchema(),
			"telemetry": generateTelemetrySchema(),
			"watch":     generateWatchSchema(),
		},
	}
}

func generateAnalysisSchema() *JSONSchema {
	return &JSONSchema{
		Type:        "object",
		Description: "Simulation settings",
		Properties: map[string]*JSONSchema{
			"part": {
				Type:        "string",
				Description: "Which answer to compute",
				Enum:        []string{"visited", "loops", "all"},
				Default:     "all",
			},
			"workers": {
				Type:        "integer",
				Description: "Concurrent candidate evaluations (0 = number of CPUs)",
				Minimum:     floatPtr(0),
				Default:     0,
			},
		},
	}
}

func generateLoggingSchema() *JSONSchema {
	return &JSONSchema{
		Type:        "object",
		Description: "Logger settings",
		Properties: map[string]*JSONSchema{
			"level": {
				Type:    "string",
				Enum:    []string{"trace", "debug", "info", "warn", "error"},
				Default: "warn",
			},
			"format": {
				Type:    "string",
				Enum:    []string{"console", "json"},
				Default: "console",
			},
		},
	}
}

func generateTelemetrySchema() *JSONSchema {
	return &JSONSchema{
		Type:        "object",
		Description: "OpenTelemetry export settings",
		Properties: map[string]*JSONSchema{
			"tracing": {
				Type: "object",
				Properties: map[string]*JSONSchema{
					"enabled":  {Type: "boolean", Default: false},
					"exporter": {Type: "string", Enum: []string{"stdout", "otlp", "noop"}, Default: "noop"},
					"endpoint": {Type: "string", Description: "OTLP/gRPC endpoint, required for otlp"},
					"insecure": {Type: "boolean", Description: "Disable TLS for the OTLP connection"},
					"sample_rate": {
						Type:    "number",
						Minimum: floatPtr(0),
						Maximum: floatPtr(1),
						Default: 1.0,
					},
				},
			},
			"metrics": {
				Type: "object",
				Properties: map[string]*JSONSchema{
					"enabled":  {Type: "boolean", Default: false},
					"exporter": {Type: "string", Enum: []string{"stdout", "noop"}, Default: "noop"},
					"interval": {Type: "string", Pattern: durationPattern, Default: "1m0s"},
				},
			},
		},
	}
}

func generateWatchSchema() *JSONSchema {
	return &JSONSchema{
		Type:        "object",
		Description: "File watching settings",
		Properties: map[string]*JSONSchema{
			"debounce": {
				Type:        "string",
				Description: "Quiet period after a write before re-solving",
				Pattern:     durationPattern,
				Default:     "200ms",
			},
		},
	}
}

func floatPtr(f float64) *float64 {
	return &f
}

func boolPtr(b bool) *bool {
	return &b
}

// SchemaJSON returns the JSON Schema as a JSON string.
func SchemaJSON() (string, error) {
	data, err := json.MarshalIndent(GenerateSchema(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
