// Package input reads map text from files or standard input and watches map
// files for changes.
package input

import (
	"fmt"
	"io"
	"os"
)

// StdinPath is the path that selects standard input.
const StdinPath = "-"

// Loader reads map text.
type Loader struct {
	// Stdin is read when the path is StdinPath.
	Stdin io.Reader
}

// NewLoader creates a loader reading standard input from os.Stdin.
func NewLoader() *Loader {
	return &Loader{Stdin: os.Stdin}
}

// Load returns the contents of path, or of Stdin when path is "-".
func (l *Loader) Load(path string) (string, error) {
	if path == StdinPath {
		data, err := io.ReadAll(l.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return "", fmt.Errorf("stat input: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// Load reads path using a default loader.
func Load(path string) (string, error) {
	return NewLoader().Load(path)
}
