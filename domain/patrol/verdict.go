package patrol

import "github.com/felixgeelhaar/patrol-go/domain/grid"

// Verdict classifies a candidate obstruction.
type Verdict string

const (
	VerdictLooped    Verdict = "looped"     // The agent never leaves the map
	VerdictNotLooped Verdict = "not_looped" // The agent still exits
)

// String returns the string representation of the verdict.
func (v Verdict) String() string {
	return string(v)
}

// Evaluation is the result of running the patrol to completion while
// watching for repeated states.
type Evaluation struct {
	Verdict Verdict
	// States is the number of distinct states recorded, the start included.
	States int
	// Steps is the number of ticks taken before the verdict.
	Steps int
	// Pivots is the number of those ticks that turned in place.
	Pivots int
	// Final is the state at which the verdict was reached.
	Final grid.AgentState
}

// Evaluate runs the patrol from start until it exits or revisits a
// (position, facing) pair. A revisit means the path is periodic, so the
// run is classified as looped.
//
// Termination: each recorded state is distinct and there are at most
// bounds.StateSpace() of them, so the loop ends within that many steps.
func Evaluate(start grid.AgentState, obstructions grid.Obstructions, bounds grid.Bounds) Evaluation {
	seen := NewStateSet(bounds)
	seen.Add(start)

	state := start
	steps, pivots := 0, 0
	for {
		out := Step(state, obstructions, bounds)
		steps++
		if !out.Continues() {
			return Evaluation{Verdict: VerdictNotLooped, States: seen.Len(), Steps: steps, Pivots: pivots, Final: out.State}
		}
		if out.Kind == OutcomePivoted {
			pivots++
		}
		state = out.State
		if seen.Has(state) {
			return Evaluation{Verdict: VerdictLooped, States: seen.Len(), Steps: steps, Pivots: pivots, Final: state}
		}
		seen.Add(state)
	}
}
