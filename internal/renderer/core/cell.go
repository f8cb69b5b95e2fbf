package core

// Cell is one display column of the screen: a single-column grapheme and
// its colors.
type Cell struct {
	Content string
	Fg      Color
	Bg      Color
}

// EmptyCell returns a space with default colors.
func EmptyCell() Cell {
	return Cell{
		Content: " ",
		Fg:      ColorDefault,
		Bg:      ColorDefault,
	}
}

// NewCell creates a cell with the given grapheme and colors.
func NewCell(content string, fg, bg Color) Cell {
	return Cell{Content: content, Fg: fg, Bg: bg}
}

// Equals returns true if two cells are identical.
func (c Cell) Equals(other Cell) bool {
	return c.Content == other.Content &&
		c.Fg.Equals(other.Fg) &&
		c.Bg.Equals(other.Bg)
}

// IsEmpty returns true if this is a blank cell with default colors.
func (c Cell) IsEmpty() bool {
	return c.Equals(EmptyCell())
}
