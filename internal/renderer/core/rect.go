package core

import "fmt"

// Rect is an axis-aligned rectangle: an origin plus a size.
// Zero-area rects are legal and describe an exhausted split.
type Rect struct {
	Origin Coord
	Width  int
	Height int
}

// NewRect creates a rectangle. Negative sizes are treated as zero.
func NewRect(row, col, width, height int) Rect {
	return Rect{
		Origin: Coord{Row: row, Col: col},
		Width:  max(0, width),
		Height: max(0, height),
	}
}

// IsEmpty returns true if the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the region-relative coordinate c lies inside r.
func (r Rect) Contains(c Coord) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < r.Height && c.Col < r.Width
}

// String returns a compact description of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("{%s %dx%d}", r.Origin, r.Width, r.Height)
}

// VerticalSplit divides r into a left and a right part.
// left.Width + right.Width == r.Width always holds; cell counts larger
// than the available width are clamped.
func (r Rect) VerticalSplit(split VerticalSplit) (left, right Rect) {
	cellsInLeft := split.cellsInFirst(r.Width)
	left = Rect{
		Origin: r.Origin,
		Width:  cellsInLeft,
		Height: r.Height,
	}
	right = Rect{
		Origin: r.Origin.Add(Coord{Col: left.Width}),
		Width:  r.Width - left.Width,
		Height: r.Height,
	}
	return left, right
}

// HorizontalSplit divides r into a top and a bottom part.
// top.Height + bottom.Height == r.Height always holds; cell counts larger
// than the available height are clamped.
func (r Rect) HorizontalSplit(split HorizontalSplit) (top, bottom Rect) {
	cellsInTop := split.cellsInFirst(r.Height)
	top = Rect{
		Origin: r.Origin,
		Width:  r.Width,
		Height: cellsInTop,
	}
	bottom = Rect{
		Origin: r.Origin.Add(Coord{Row: top.Height}),
		Width:  r.Width,
		Height: r.Height - top.Height,
	}
	return top, bottom
}
