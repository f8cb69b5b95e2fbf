package renderer

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/termracer/internal/renderer/backend"
	"github.com/dshills/termracer/internal/renderer/core"
	"github.com/dshills/termracer/internal/renderer/layout"
)

// Window is a grid of cells addressed through layout regions.
//
// Draw calls update the grid and mark only the cells whose value changed.
// Display then emits just those cells to a Sink, coalescing cursor moves
// and color changes across runs of adjacent cells.
//
// Window is not safe for concurrent use.
type Window struct {
	bounds core.Rect
	layout *layout.Layout
	buffer [][]core.Cell
	dirty  [][]bool
	cursor core.Coord
}

// New creates a blank window of the given size with one region, id 0,
// covering all of it. No cell starts dirty.
func New(width, height int) *Window {
	bounds := core.NewRect(0, 0, width, height)
	return &Window{
		bounds: bounds,
		layout: layout.New(bounds),
		buffer: newBuffer(bounds.Width, bounds.Height),
		dirty:  newDirty(bounds.Width, bounds.Height, false),
	}
}

func newBuffer(width, height int) [][]core.Cell {
	buf := make([][]core.Cell, height)
	for row := range buf {
		buf[row] = make([]core.Cell, width)
		for col := range buf[row] {
			buf[row][col] = core.EmptyCell()
		}
	}
	return buf
}

func newDirty(width, height int, value bool) [][]bool {
	dirty := make([][]bool, height)
	for row := range dirty {
		dirty[row] = make([]bool, width)
		if value {
			for col := range dirty[row] {
				dirty[row][col] = true
			}
		}
	}
	return dirty
}

// Bounds returns the window rectangle.
func (w *Window) Bounds() core.Rect {
	return w.bounds
}

// Width returns the window width in columns.
func (w *Window) Width() int {
	return w.bounds.Width
}

// Height returns the window height in rows.
func (w *Window) Height() int {
	return w.bounds.Height
}

// VerticalSplit divides region id into left and right regions.
// See layout.Layout.VerticalSplit.
func (w *Window) VerticalSplit(split core.VerticalSplit, id layout.RegionID) (layout.RegionID, layout.RegionID) {
	return w.layout.VerticalSplit(split, id)
}

// HorizontalSplit divides region id into top and bottom regions.
// See layout.Layout.HorizontalSplit.
func (w *Window) HorizontalSplit(split core.HorizontalSplit, id layout.RegionID) (layout.RegionID, layout.RegionID) {
	return w.layout.HorizontalSplit(split, id)
}

// Region returns the current rectangle of region id, in window space.
func (w *Window) Region(id layout.RegionID) (core.Rect, bool) {
	return w.layout.Region(id)
}

// Regions returns the number of regions.
func (w *Window) Regions() int {
	return w.layout.Len()
}

// Draw writes text starting at the region-relative coordinate at.
//
// Each grapheme takes one column. Graphemes that fall outside the region
// or the window are dropped. A cell is marked dirty only when its content
// or colors actually change.
//
// Draw panics if id is not a region or if text contains a grapheme that
// is not exactly one column wide.
func (w *Window) Draw(text string, fg, bg core.Color, at core.Coord, id layout.RegionID) {
	region := w.layout.MustRegion(id)

	state := -1
	for dcol := 0; len(text) > 0; dcol++ {
		var cluster string
		var width int
		cluster, text, width, state = uniseg.FirstGraphemeClusterInString(text, state)
		if width != 1 {
			panic(fmt.Sprintf("renderer: grapheme %q is %d columns wide", cluster, width))
		}

		rel := at.Add(core.Coord{Col: dcol})
		if !region.Contains(rel) {
			continue
		}
		abs := region.Origin.Add(rel)
		if !w.bounds.Contains(abs) {
			continue
		}

		cell := core.NewCell(cluster, fg, bg)
		if w.buffer[abs.Row][abs.Col].Equals(cell) {
			continue
		}
		w.buffer[abs.Row][abs.Col] = cell
		w.dirty[abs.Row][abs.Col] = true
	}
}

// SetCursor records where the terminal cursor goes after the next Display.
// Panics if id is not a region.
func (w *Window) SetCursor(at core.Coord, id layout.RegionID) {
	region := w.layout.MustRegion(id)
	w.cursor = region.Origin.Add(at)
}

// Cursor returns the absolute cursor position set by SetCursor.
func (w *Window) Cursor() core.Coord {
	return w.cursor
}

// ClearRegion fills region id with default-colored spaces.
// Cells that are already blank stay clean.
func (w *Window) ClearRegion(id layout.RegionID) {
	region := w.layout.MustRegion(id)
	blank := strings.Repeat(" ", region.Width)
	for row := 0; row < region.Height; row++ {
		w.Draw(blank, core.ColorDefault, core.ColorDefault, core.Coord{Row: row}, id)
	}
}

// Clear blanks every region.
func (w *Window) Clear() {
	for id := 0; id < w.layout.Len(); id++ {
		w.ClearRegion(layout.RegionID(id))
	}
}

// Resize recomputes every region for the new size and reallocates the
// grid. Every cell of the new grid is dirty.
func (w *Window) Resize(width, height int) {
	w.bounds = core.NewRect(0, 0, width, height)
	w.layout.Resize(w.bounds)
	w.buffer = newBuffer(w.bounds.Width, w.bounds.Height)
	w.dirty = newDirty(w.bounds.Width, w.bounds.Height, true)
}

// Display writes every dirty cell to sink in row-major order, then moves
// the cursor to the position given by SetCursor.
//
// A cursor move is emitted only when a cell does not directly follow the
// previous one on the same row, and colors only when they differ from the
// previous cell's. If sink fails, Display returns the error; cells emitted
// before the failure are clean and the rest stay dirty for the next call.
func (w *Window) Display(sink backend.Sink) error {
	var (
		emitted bool
		prev    core.Coord
		fg, bg  core.Color
		fgSet   bool
		bgSet   bool
		origin  = w.bounds.Origin
	)

	for row := 0; row < w.bounds.Height; row++ {
		for col := 0; col < w.bounds.Width; col++ {
			if !w.dirty[row][col] {
				continue
			}
			cell := w.buffer[row][col]

			if !emitted || row != prev.Row || col != prev.Col+1 {
				if err := sink.MoveTo(origin.Row+row, origin.Col+col); err != nil {
					return err
				}
			}
			if !fgSet || !cell.Fg.Equals(fg) {
				if err := sink.SetForeground(cell.Fg); err != nil {
					return err
				}
				fg, fgSet = cell.Fg, true
			}
			if !bgSet || !cell.Bg.Equals(bg) {
				if err := sink.SetBackground(cell.Bg); err != nil {
					return err
				}
				bg, bgSet = cell.Bg, true
			}
			if err := sink.Print(cell.Content); err != nil {
				return err
			}

			w.dirty[row][col] = false
			prev = core.Coord{Row: row, Col: col}
			emitted = true
		}
	}

	return sink.MoveTo(origin.Row+w.cursor.Row, origin.Col+w.cursor.Col)
}

// CellAt returns the buffered cell at the absolute position (row, col).
func (w *Window) CellAt(row, col int) core.Cell {
	if !w.bounds.Contains(core.Coord{Row: row, Col: col}) {
		return core.EmptyCell()
	}
	return w.buffer[row][col]
}

// Dirty reports whether the cell at (row, col) changed since the last
// Display.
func (w *Window) Dirty(row, col int) bool {
	if !w.bounds.Contains(core.Coord{Row: row, Col: col}) {
		return false
	}
	return w.dirty[row][col]
}

// DirtyCount returns the number of cells waiting to be displayed.
func (w *Window) DirtyCount() int {
	n := 0
	for _, row := range w.dirty {
		for _, d := range row {
			if d {
				n++
			}
		}
	}
	return n
}

// Row returns the buffered text of one row.
func (w *Window) Row(row int) string {
	if row < 0 || row >= w.bounds.Height {
		return ""
	}
	var sb strings.Builder
	for _, cell := range w.buffer[row] {
		sb.WriteString(cell.Content)
	}
	return sb.String()
}
