package patrol

import (
	"time"

	"github.com/felixgeelhaar/patrol-go/domain/grid"
)

// RunKind distinguishes the baseline patrol from candidate evaluations.
type RunKind string

const (
	RunKindTrack    RunKind = "track"    // Baseline patrol collecting visited cells
	RunKindEvaluate RunKind = "evaluate" // Patrol with one extra obstruction
)

// Run records a single patrol from the start state to a terminal status.
type Run struct {
	ID        string           `json:"id"`
	Kind      RunKind          `json:"kind"`
	Candidate *grid.Coordinate `json:"candidate,omitempty"`
	Start     grid.AgentState  `json:"start"`
	Current   grid.AgentState  `json:"current"`
	Status    Status           `json:"status"`
	Steps     int              `json:"steps"`
	Pivots    int              `json:"pivots"`
	StartTime time.Time        `json:"start_time"`
	EndTime   time.Time        `json:"end_time,omitempty"`
}

// NewRun creates a pending run.
func NewRun(id string, kind RunKind, start grid.AgentState) *Run {
	return &Run{
		ID:      id,
		Kind:    kind,
		Start:   start,
		Current: start,
		Status:  StatusPending,
	}
}

// WithCandidate tags the run with the obstruction it is evaluating.
func (r *Run) WithCandidate(c grid.Coordinate) *Run {
	r.Candidate = &c
	return r
}

// Begin marks the run as patrolling.
func (r *Run) Begin() {
	r.Status = StatusPatrolling
	r.StartTime = time.Now()
}

// Record applies a step outcome to the run counters.
func (r *Run) Record(out Outcome) error {
	if r.Status.IsTerminal() {
		return ErrRunTerminated
	}
	if r.Status != StatusPatrolling {
		return ErrRunNotStarted
	}

	r.Steps++
	if out.Kind == OutcomePivoted {
		r.Pivots++
	}
	r.Current = out.State
	return nil
}

// Absorb copies the counters of a completed evaluation into the run.
func (r *Run) Absorb(e Evaluation) error {
	if r.Status.IsTerminal() {
		return ErrRunTerminated
	}
	if r.Status != StatusPatrolling {
		return ErrRunNotStarted
	}

	r.Steps = e.Steps
	r.Pivots = e.Pivots
	r.Current = e.Final
	return nil
}

// TransitionTo changes the status, stamping the end time on terminal ones.
func (r *Run) TransitionTo(s Status) {
	r.Status = s
	if s.IsTerminal() {
		r.EndTime = time.Now()
	}
}

// Duration returns how long the run took, or has taken so far.
func (r *Run) Duration() time.Duration {
	if r.StartTime.IsZero() {
		return 0
	}
	if r.EndTime.IsZero() {
		return time.Since(r.StartTime)
	}
	return r.EndTime.Sub(r.StartTime)
}
