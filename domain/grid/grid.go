package grid

import (
	"slices"
	"strings"
)

// Map symbols.
const (
	SymbolEmpty       = '.'
	SymbolObstruction = '#'
	SymbolAgentNorth  = '^'
)

// agentMarkers maps an agent symbol to the facing it starts with.
var agentMarkers = map[rune]Facing{
	SymbolAgentNorth: North,
}

// markerFor returns the symbol drawn for an agent with the given facing.
func markerFor(f Facing) rune {
	for r, facing := range agentMarkers {
		if facing == f {
			return r
		}
	}
	return SymbolEmpty
}

// Obstructions reports whether a cell blocks movement.
type Obstructions interface {
	Contains(c Coordinate) bool
}

// ObstructionSet is the set of blocked cells parsed from a map.
// It is not modified after parsing.
type ObstructionSet struct {
	cells map[Coordinate]struct{}
}

// NewObstructionSet creates a set from the given cells.
func NewObstructionSet(cells ...Coordinate) ObstructionSet {
	s := ObstructionSet{cells: make(map[Coordinate]struct{}, len(cells))}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
	return s
}

// Contains reports whether c is blocked.
func (s ObstructionSet) Contains(c Coordinate) bool {
	_, ok := s.cells[c]
	return ok
}

// Len returns the number of blocked cells.
func (s ObstructionSet) Len() int {
	return len(s.cells)
}

// Cells returns the blocked cells sorted by row, then column.
func (s ObstructionSet) Cells() []Coordinate {
	cells := make([]Coordinate, 0, len(s.cells))
	for c := range s.cells {
		cells = append(cells, c)
	}
	SortCoordinates(cells)
	return cells
}

// With returns a view of the set with one extra blocked cell.
// The receiver is left untouched.
func (s ObstructionSet) With(extra Coordinate) Obstructions {
	return augmented{base: s, extra: extra}
}

// augmented is the baseline set plus a single hypothetical obstruction.
type augmented struct {
	base  ObstructionSet
	extra Coordinate
}

func (a augmented) Contains(c Coordinate) bool {
	return c == a.extra || a.base.Contains(c)
}

var (
	_ Obstructions = ObstructionSet{}
	_ Obstructions = augmented{}
)

// Grid is a parsed map: its bounds, the agent's initial state and the
// baseline obstructions.
type Grid struct {
	Bounds       Bounds
	Start        AgentState
	Obstructions ObstructionSet
}

// Render draws the grid back in its text form, top row first.
func (g *Grid) Render() string {
	var b strings.Builder
	b.Grow(g.Bounds.Area() + g.Bounds.Height())
	for y := g.Bounds.MaxY; y >= 0; y-- {
		for x := 0; x <= g.Bounds.MaxX; x++ {
			c := Coordinate{X: x, Y: y}
			switch {
			case c == g.Start.Position:
				b.WriteRune(markerFor(g.Start.Facing))
			case g.Obstructions.Contains(c):
				b.WriteRune(SymbolObstruction)
			default:
				b.WriteRune(SymbolEmpty)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// SortCoordinates sorts cells by row, then column.
func SortCoordinates(cells []Coordinate) {
	slices.SortFunc(cells, func(a, b Coordinate) int {
		if a.Less(b) {
			return -1
		}
		if b.Less(a) {
			return 1
		}
		return 0
	})
}
