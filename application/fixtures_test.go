package application

import (
	"testing"

	"github.com/felixgeelhaar/patrol-go/domain/grid"
)

// scenarioA is the 10x10 reference map: 41 visited cells, 6 trapping placements.
const scenarioA = `
....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

// scenarioB walks up once, turns east and runs off the edge.
const scenarioB = `
....#.....
..........
....^.....
`

// rectangleTrap already closes a rectangular patrol without any extra obstruction.
const rectangleTrap = `
.#...
....#
.....
#^...
...#.
`

// openRectangle is rectangleTrap without its west wall; only re-adding it traps the agent.
const openRectangle = `
.#...
....#
.....
.^...
...#.
`

func mustParse(t *testing.T, input string) *grid.Grid {
	t.Helper()

	g, err := grid.Parse(input)
	if err != nil {
		t.Fatalf("grid.Parse() error = %v", err)
	}
	return g
}
