package grid

import (
	"fmt"
	"strings"
)

// Parse reads a map from text. Rows are listed top to bottom, so the last
// non-blank line becomes y = 0. Leading and trailing blank lines are ignored.
func Parse(input string) (*Grid, error) {
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	first, last := 0, len(lines)-1
	for first <= last && strings.TrimSpace(lines[first]) == "" {
		first++
	}
	for last >= first && strings.TrimSpace(lines[last]) == "" {
		last--
	}
	if first > last {
		return nil, &ParseError{Err: ErrEmptyGrid}
	}

	rows := make([][]rune, 0, last-first+1)
	for _, line := range lines[first : last+1] {
		rows = append(rows, []rune(line))
	}
	width := len(rows[0])
	bounds := Bounds{MaxX: width - 1, MaxY: len(rows) - 1}

	var (
		cells  []Coordinate
		start  AgentState
		agents int
	)

	for i, row := range rows {
		lineNo := first + i + 1
		if len(row) != width {
			return nil, &ParseError{
				Line:   lineNo,
				Err:    ErrRaggedRows,
				Detail: fmt.Sprintf("got %d columns, want %d", len(row), width),
			}
		}

		y := bounds.MaxY - i
		for x, r := range row {
			switch r {
			case SymbolEmpty:
			case SymbolObstruction:
				cells = append(cells, Coordinate{X: x, Y: y})
			default:
				facing, ok := agentMarkers[r]
				if !ok {
					return nil, &ParseError{
						Line:   lineNo,
						Column: x + 1,
						Err:    ErrUnrecognizedSymbol,
						Detail: fmt.Sprintf("%q", r),
					}
				}
				agents++
				if agents > 1 {
					return nil, &ParseError{Line: lineNo, Column: x + 1, Err: ErrMultipleAgents}
				}
				start = AgentState{Position: Coordinate{X: x, Y: y}, Facing: facing}
			}
		}
	}

	if agents == 0 {
		return nil, &ParseError{Err: ErrMissingAgent}
	}

	return &Grid{
		Bounds:       bounds,
		Start:        start,
		Obstructions: NewObstructionSet(cells...),
	}, nil
}
