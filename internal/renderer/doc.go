// Package renderer is the terminal compositor for termracer.
//
// The renderer is responsible for:
//   - Carving the screen into named regions (see package layout)
//   - Region-relative drawing into a double-buffered cell grid
//   - Per-cell damage tracking by value comparison
//   - Flushing only the damaged cells, with coalesced cursor and color output
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│        Window (grid + dirty bits)       │
//	├─────────────────────────────────────────┤
//	│  Layout / split tree  │  core types     │
//	├─────────────────────────────────────────┤
//	│           Sink / Backend                │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ ANSIWriter │ Null   │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	w := renderer.New(width, height)
//	text, bottom := w.HorizontalSplit(core.CellsInBottom(2), 0)
//	w.Draw("hello", core.ColorDefault, core.ColorDefault, core.Coord{}, text)
//	w.SetCursor(core.Coord{Col: 5}, text)
//	if err := w.Display(term); err != nil { ... }
package renderer
