package patrol

import "errors"

// Domain errors for patrol runs.
var (
	// ErrInvariantViolation indicates the simulation was driven into a state
	// that a well-formed caller can never produce. It is raised as a panic.
	ErrInvariantViolation = errors.New("patrol invariant violated")

	// ErrRunTerminated indicates an operation was attempted on a finished run.
	ErrRunTerminated = errors.New("run already terminated")

	// ErrRunNotStarted indicates an operation requires a started run.
	ErrRunNotStarted = errors.New("run not started")
)
