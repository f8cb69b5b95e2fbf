package core

import "fmt"

// VerticalSplitKind selects how a vertical split measures its left part.
type VerticalSplitKind uint8

const (
	SplitCellsInLeft VerticalSplitKind = iota
	SplitCellsInRight
	SplitPercentInLeft
	SplitPercentInRight
)

// String returns the name of the split kind.
func (k VerticalSplitKind) String() string {
	switch k {
	case SplitCellsInLeft:
		return "CellsInLeft"
	case SplitCellsInRight:
		return "CellsInRight"
	case SplitPercentInLeft:
		return "PercentInLeft"
	case SplitPercentInRight:
		return "PercentInRight"
	default:
		return "unknown"
	}
}

// HorizontalSplitKind selects how a horizontal split measures its top part.
type HorizontalSplitKind uint8

const (
	SplitCellsInTop HorizontalSplitKind = iota
	SplitCellsInBottom
	SplitPercentInTop
	SplitPercentInBottom
)

// String returns the name of the split kind.
func (k HorizontalSplitKind) String() string {
	switch k {
	case SplitCellsInTop:
		return "CellsInTop"
	case SplitCellsInBottom:
		return "CellsInBottom"
	case SplitPercentInTop:
		return "PercentInTop"
	case SplitPercentInBottom:
		return "PercentInBottom"
	default:
		return "unknown"
	}
}

// VerticalSplit describes a left/right division of a rectangle.
// Amount is a cell count or a percentage in [0, 100] depending on Kind.
type VerticalSplit struct {
	Kind   VerticalSplitKind
	Amount int
}

// CellsInLeft gives the left part n columns.
func CellsInLeft(n int) VerticalSplit {
	return VerticalSplit{Kind: SplitCellsInLeft, Amount: n}
}

// CellsInRight gives the right part n columns.
func CellsInRight(n int) VerticalSplit {
	return VerticalSplit{Kind: SplitCellsInRight, Amount: n}
}

// PercentInLeft gives the left part p percent of the width, rounded down.
func PercentInLeft(p int) VerticalSplit {
	return VerticalSplit{Kind: SplitPercentInLeft, Amount: p}
}

// PercentInRight gives the right part p percent of the width; the left
// part gets floor((100-p)% of the width).
func PercentInRight(p int) VerticalSplit {
	return VerticalSplit{Kind: SplitPercentInRight, Amount: p}
}

// String returns e.g. "PercentInLeft(40)".
func (s VerticalSplit) String() string {
	return fmt.Sprintf("%s(%d)", s.Kind, s.Amount)
}

// cellsInFirst resolves the split against a width to the size of the left part.
func (s VerticalSplit) cellsInFirst(width int) int {
	switch s.Kind {
	case SplitCellsInLeft:
		return clampCells(s.Amount, width)
	case SplitCellsInRight:
		return width - clampCells(s.Amount, width)
	case SplitPercentInLeft:
		return percentOf(s.Amount, width)
	case SplitPercentInRight:
		return percentOf(100-checkPercent(s.Amount), width)
	default:
		panic(fmt.Sprintf("core: unknown vertical split kind %d", s.Kind))
	}
}

// HorizontalSplit describes a top/bottom division of a rectangle.
// Amount is a cell count or a percentage in [0, 100] depending on Kind.
type HorizontalSplit struct {
	Kind   HorizontalSplitKind
	Amount int
}

// CellsInTop gives the top part n rows.
func CellsInTop(n int) HorizontalSplit {
	return HorizontalSplit{Kind: SplitCellsInTop, Amount: n}
}

// CellsInBottom gives the bottom part n rows.
func CellsInBottom(n int) HorizontalSplit {
	return HorizontalSplit{Kind: SplitCellsInBottom, Amount: n}
}

// PercentInTop gives the top part p percent of the height, rounded down.
func PercentInTop(p int) HorizontalSplit {
	return HorizontalSplit{Kind: SplitPercentInTop, Amount: p}
}

// PercentInBottom gives the bottom part p percent of the height; the top
// part gets floor((100-p)% of the height).
func PercentInBottom(p int) HorizontalSplit {
	return HorizontalSplit{Kind: SplitPercentInBottom, Amount: p}
}

// String returns e.g. "CellsInTop(20)".
func (s HorizontalSplit) String() string {
	return fmt.Sprintf("%s(%d)", s.Kind, s.Amount)
}

// cellsInFirst resolves the split against a height to the size of the top part.
func (s HorizontalSplit) cellsInFirst(height int) int {
	switch s.Kind {
	case SplitCellsInTop:
		return clampCells(s.Amount, height)
	case SplitCellsInBottom:
		return height - clampCells(s.Amount, height)
	case SplitPercentInTop:
		return percentOf(s.Amount, height)
	case SplitPercentInBottom:
		return percentOf(100-checkPercent(s.Amount), height)
	default:
		panic(fmt.Sprintf("core: unknown horizontal split kind %d", s.Kind))
	}
}

// clampCells limits a requested cell count to [0, available].
func clampCells(n, available int) int {
	return max(0, min(n, available))
}

// percentOf returns floor(p/100 * extent) for p in [0, 100].
func percentOf(p, extent int) int {
	return checkPercent(p) * extent / 100
}

// checkPercent panics when p is outside [0, 100].
func checkPercent(p int) int {
	if p < 0 || p > 100 {
		panic(fmt.Sprintf("core: split percentage %d outside [0, 100]", p))
	}
	return p
}
