package patrol

// Status is the lifecycle stage of a patrol run.
type Status string

const (
	StatusPending    Status = "pending"    // Created, not yet stepping
	StatusPatrolling Status = "patrolling" // Stepping
	StatusExited     Status = "exited"     // Terminal: left the map
	StatusLooped     Status = "looped"     // Terminal: repeated a state
)

// IsTerminal returns true if the run has finished.
func (s Status) IsTerminal() bool {
	return s == StatusExited || s == StatusLooped
}

// IsValid returns true if the status is recognized.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPatrolling, StatusExited, StatusLooped:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}
