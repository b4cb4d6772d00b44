package patrol

import "github.com/felixgeelhaar/patrol-go/domain/grid"

// StateSet is a set of agent states backed by a dense bitmap over the
// bounded state space. Every state added must lie within the bounds.
type StateSet struct {
	bounds grid.Bounds
	bits   []bool
	count  int
}

// NewStateSet creates an empty set sized to bounds.StateSpace().
func NewStateSet(bounds grid.Bounds) *StateSet {
	return &StateSet{bounds: bounds, bits: make([]bool, bounds.StateSpace())}
}

// Add inserts st and reports whether it was absent.
func (s *StateSet) Add(st grid.AgentState) bool {
	i := s.bounds.StateIndex(st)
	if s.bits[i] {
		return false
	}
	s.bits[i] = true
	s.count++
	return true
}

// Has reports whether st is in the set.
func (s *StateSet) Has(st grid.AgentState) bool {
	return s.bits[s.bounds.StateIndex(st)]
}

// Len returns the number of states in the set.
func (s *StateSet) Len() int {
	return s.count
}
