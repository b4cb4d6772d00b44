package application

import "errors"

var (
	// ErrBaselineLoops indicates the agent never leaves the unmodified map.
	ErrBaselineLoops = errors.New("patrol never exits the map")

	// ErrInvalidCandidate indicates a candidate that cannot hold an extra obstruction.
	ErrInvalidCandidate = errors.New("invalid candidate")

	// ErrNilGrid indicates a nil grid was supplied.
	ErrNilGrid = errors.New("grid is required")
)
