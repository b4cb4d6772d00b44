package grid

import (
	"errors"
	"fmt"
)

// ErrParse is matched by every error returned from Parse.
var ErrParse = errors.New("malformed grid")

// Causes carried by a ParseError.
var (
	// ErrUnrecognizedSymbol indicates a character other than '.', '#' or an agent marker.
	ErrUnrecognizedSymbol = errors.New("unrecognized symbol")

	// ErrRaggedRows indicates rows of different lengths.
	ErrRaggedRows = errors.New("inconsistent row length")

	// ErrMissingAgent indicates the grid has no agent marker.
	ErrMissingAgent = errors.New("agent marker missing")

	// ErrMultipleAgents indicates more than one agent marker.
	ErrMultipleAgents = errors.New("more than one agent marker")

	// ErrEmptyGrid indicates the input holds no rows.
	ErrEmptyGrid = errors.New("grid has no rows")
)

// ParseError reports where in the input a grid failed to parse.
// Line and Column are 1-based; zero means the position does not apply.
type ParseError struct {
	Line   int
	Column int
	Err    error
	Detail string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%s at line %d, column %d: %s", ErrParse, e.Line, e.Column, msg)
	case e.Line > 0:
		return fmt.Sprintf("%s at line %d: %s", ErrParse, e.Line, msg)
	default:
		return fmt.Sprintf("%s: %s", ErrParse, msg)
	}
}

// Unwrap returns the specific cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrParse for any ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
