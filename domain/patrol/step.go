// Package patrol provides the movement rule of the patrolling agent and the
// loop analysis built on it.
package patrol

import (
	"fmt"

	"github.com/felixgeelhaar/patrol-go/domain/grid"
)

// OutcomeKind tags the result of a single step.
type OutcomeKind uint8

const (
	// OutcomeMoved means the agent advanced one cell.
	OutcomeMoved OutcomeKind = iota + 1
	// OutcomePivoted means the cell ahead was blocked and the agent turned clockwise in place.
	OutcomePivoted
	// OutcomeExited means the agent was facing off the map and left it.
	OutcomeExited
)

// String returns the name of the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeMoved:
		return "moved"
	case OutcomePivoted:
		return "pivoted"
	case OutcomeExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Outcome is the result of Step. When Kind is OutcomeExited, State is the
// unchanged terminal state and must not be stepped again.
type Outcome struct {
	Kind  OutcomeKind
	State grid.AgentState
}

// Continues reports whether the agent is still on the map.
func (o Outcome) Continues() bool {
	return o.Kind == OutcomeMoved || o.Kind == OutcomePivoted
}

// Step advances the agent by one tick. It is a pure function of its inputs.
//
// The exit check runs against the current state before any move: if the
// cell ahead lies outside bounds the agent exits. Otherwise a blocked cell
// ahead turns the agent clockwise without moving, and a free one is entered.
func Step(state grid.AgentState, obstructions grid.Obstructions, bounds grid.Bounds) Outcome {
	if !bounds.Contains(state.Position) {
		panic(fmt.Errorf("%w: stepping from %v outside bounds %+v", ErrInvariantViolation, state.Position, bounds))
	}

	next := state.Position.Add(state.Facing.Delta())
	if !bounds.Contains(next) {
		return Outcome{Kind: OutcomeExited, State: state}
	}

	if obstructions.Contains(next) {
		state.Facing = state.Facing.Pivot()
		return Outcome{Kind: OutcomePivoted, State: state}
	}

	state.Position = next
	return Outcome{Kind: OutcomeMoved, State: state}
}
