// Package grid provides the map model for the patrol simulator: coordinates,
// bounds, facings, obstructions and the text parser that builds them.
package grid

import "fmt"

// Coordinate is a cell on the map. The origin is the bottom-left cell,
// x grows rightward and y grows upward.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the coordinate offset by d.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
}

// String returns the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Less orders coordinates by row, then column.
func (c Coordinate) Less(o Coordinate) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// Bounds is the inclusive maximum coordinate of a parsed map.
type Bounds struct {
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`
}

// Contains reports whether c lies within [0, MaxX] x [0, MaxY].
func (b Bounds) Contains(c Coordinate) bool {
	return c.X >= 0 && c.Y >= 0 && c.X <= b.MaxX && c.Y <= b.MaxY
}

// Width returns the number of columns.
func (b Bounds) Width() int {
	return b.MaxX + 1
}

// Height returns the number of rows.
func (b Bounds) Height() int {
	return b.MaxY + 1
}

// Area returns the number of cells.
func (b Bounds) Area() int {
	return b.Width() * b.Height()
}

// Index maps an in-bounds coordinate to a dense row-major index.
func (b Bounds) Index(c Coordinate) int {
	return c.Y*b.Width() + c.X
}
