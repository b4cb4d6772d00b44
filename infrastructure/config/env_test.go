package config

import (
	"errors"
	"strings"
	"testing"

	domainconfig "github.com/felixgeelhaar/patrol-go/domain/config"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("PATROL_WORKERS", "4")
	t.Setenv("PATROL_EMPTY", "")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bracket syntax", "${PATROL_WORKERS}", "4"},
		{"dollar syntax", "$PATROL_WORKERS", "4"},
		{"embedded in text", "workers-${PATROL_WORKERS}-max", "workers-4-max"},
		{"multiple variables", "${PATROL_WORKERS} $PATROL_WORKERS", "4 4"},
		{"unset with default", "${PATROL_UNSET_VAR:-8}", "8"},
		{"empty with default", "${PATROL_EMPTY:-debug}", "debug"},
		{"set with default", "${PATROL_WORKERS:-8}", "4"},
		{"empty default", "${PATROL_UNSET_VAR:-}", ""},
		{"default with colon", "${PATROL_UNSET_VAR:-localhost:4317}", "localhost:4317"},
		{"unset non-strict", "${PATROL_UNSET_VAR}", ""},
		{"plain text", "plain text", "plain text"},
		{"digit after dollar", "cost: $100", "cost: $100"},
		{"unterminated", "${incomplete", "${incomplete"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandEnv(tt.input); got != tt.want {
				t.Errorf("ExpandEnv(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpandEnvStrict(t *testing.T) {
	t.Setenv("PATROL_SET", "yes")

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"missing bracket", "${PATROL_MISSING}", "PATROL_MISSING"},
		{"missing simple", "$PATROL_MISSING", "PATROL_MISSING"},
		{"required with message", "${PATROL_MISSING:?map path required}", "PATROL_MISSING: map path required"},
		{"set", "${PATROL_SET}", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExpandEnvStrict(tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ExpandEnvStrict(%q) error = %v", tt.input, err)
				}
				return
			}
			if !errors.Is(err, domainconfig.ErrMissingEnvVar) {
				t.Fatalf("ExpandEnvStrict(%q) error = %v, want ErrMissingEnvVar", tt.input, err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ExpandEnvStrict(%q) error = %v, want mention of %q", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestExpandEnv_RequiredFailsEvenWhenLenient(t *testing.T) {
	_, err := (&envExpander{}).Expand("${PATROL_MISSING:?needed}")
	if !errors.Is(err, domainconfig.ErrMissingEnvVar) {
		t.Errorf("Expand() error = %v, want ErrMissingEnvVar", err)
	}
}

func TestExpandEnv_YAMLDocument(t *testing.T) {
	t.Setenv("PATROL_INPUT", "/data/map.txt")
	t.Setenv("PATROL_LOG_LEVEL", "debug")

	input := `
name: nightly
input: ${PATROL_INPUT}
logging:
  level: ${PATROL_LOG_LEVEL}
  format: ${PATROL_LOG_FORMAT:-json}
`
	expected := `
name: nightly
input: /data/map.txt
logging:
  level: debug
  format: json
`
	if got := ExpandEnv(input); got != expected {
		t.Errorf("ExpandEnv() =\n%s\nwant:\n%s", got, expected)
	}
}
