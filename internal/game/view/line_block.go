package view

import (
	"github.com/dshills/termracer/internal/renderer"
	"github.com/dshills/termracer/internal/renderer/backend"
	"github.com/dshills/termracer/internal/renderer/core"
	"github.com/dshills/termracer/internal/renderer/layout"
)

// LineBlock is the stack of lines a race is typed through, one per row.
// Only the current line receives input; Enter moves on once it is done.
type LineBlock struct {
	lines  []*Line
	index  int
	region layout.RegionID
}

// NewLineBlock creates a block drawing texts in region, one per row.
func NewLineBlock(texts []string, region layout.RegionID, theme Theme) *LineBlock {
	lines := make([]*Line, len(texts))
	for i, text := range texts {
		lines[i] = NewLine(text, region, i, theme)
	}
	return &LineBlock{lines: lines, region: region}
}

// Lines returns the block's lines.
func (b *LineBlock) Lines() []*Line {
	return b.lines
}

// Current returns the index of the line receiving input.
// It equals the number of lines once the block is finished with Enter.
func (b *LineBlock) Current() int {
	return b.index
}

// SetTheme changes the colors of every line.
func (b *LineBlock) SetTheme(theme Theme) {
	for _, l := range b.lines {
		l.SetTheme(theme)
	}
}

// HandleKey advances on Enter when the current line is done and forwards
// every other key to the current line.
func (b *LineBlock) HandleKey(ev backend.Event) {
	if ev.Type != backend.EventKey || b.index >= len(b.lines) {
		return
	}
	line := b.lines[b.index]
	if ev.Key == backend.KeyEnter {
		if line.Done() {
			b.index++
		}
		return
	}
	line.HandleKey(ev)
}

// Progress sums the progress of every line.
func (b *LineBlock) Progress() Progress {
	var p Progress
	for _, l := range b.lines {
		p = p.Add(l.Progress())
	}
	return p
}

// Done reports whether every line is done.
func (b *LineBlock) Done() bool {
	for _, l := range b.lines {
		if !l.Done() {
			return false
		}
	}
	return true
}

// ResetCursor puts the window cursor on the current line, or on the last
// line once all have been passed.
func (b *LineBlock) ResetCursor(w *renderer.Window) {
	switch {
	case b.index < len(b.lines):
		b.lines[b.index].ResetCursor(w)
	case len(b.lines) > 0:
		b.lines[len(b.lines)-1].ResetCursor(w)
	default:
		w.SetCursor(core.Coord{}, b.region)
	}
}

// Draw renders every line.
func (b *LineBlock) Draw(w *renderer.Window) {
	for _, l := range b.lines {
		l.Draw(w)
	}
}

// Region returns the region the block draws into.
func (b *LineBlock) Region() layout.RegionID {
	return b.region
}
