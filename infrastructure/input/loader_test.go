package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mapPath := filepath.Join(dir, "map.txt")
	if err := os.WriteFile(mapPath, []byte("..#\n.^.\n"), 0o644); err != nil {
		t.Fatalf("failed to write map: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		stdin   string
		want    string
		wantErr error
	}{
		{name: "file", path: mapPath, want: "..#\n.^.\n"},
		{name: "stdin", path: StdinPath, stdin: "^\n", want: "^\n"},
		{name: "missing", path: filepath.Join(dir, "missing.txt"), wantErr: ErrInputNotFound},
		{name: "directory", path: dir, wantErr: ErrNotAFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader := &Loader{Stdin: strings.NewReader(tt.stdin)}
			got, err := loader.Load(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Load(%q) error = %v, want %v", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load(%q) error = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Load(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestLoad_PackageHelper(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "map.txt")
	if err := os.WriteFile(path, []byte("^"), 0o644); err != nil {
		t.Fatalf("failed to write map: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != "^" {
		t.Errorf("Load() = %q, want %q", got, "^")
	}
}
