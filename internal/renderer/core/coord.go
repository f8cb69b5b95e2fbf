package core

import "fmt"

// Coord is a (row, column) position. Depending on context it is either
// absolute (window space) or relative to a region's origin (region space).
type Coord struct {
	Row int
	Col int
}

// NewCoord creates a coordinate.
func NewCoord(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Add translates c by other, component-wise.
func (c Coord) Add(other Coord) Coord {
	return Coord{Row: c.Row + other.Row, Col: c.Col + other.Col}
}

// String returns "(row, col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}
