package view

import (
	"fmt"
	"strings"

	"github.com/dshills/termracer/internal/renderer"
	"github.com/dshills/termracer/internal/renderer/core"
	"github.com/dshills/termracer/internal/renderer/layout"
)

// BarSymbol is the glyph the progress bar is drawn with.
const BarSymbol = "░"

// ProgressBar fills its region left to right as graphemes are typed
// correctly. The fill shifts toward the incorrect color as accuracy drops.
type ProgressBar struct {
	region   layout.RegionID
	progress Progress
	theme    Theme
}

// NewProgressBar creates a progress bar drawing into region.
func NewProgressBar(region layout.RegionID, theme Theme) *ProgressBar {
	return &ProgressBar{region: region, theme: theme}
}

// SetTheme changes the colors used by the next Draw.
func (b *ProgressBar) SetTheme(theme Theme) {
	b.theme = theme
}

// SetProgress sets the progress shown by the next Draw.
// Panics if p.Correct exceeds p.Total.
func (b *ProgressBar) SetProgress(p Progress) {
	if p.Correct > p.Total {
		panic(fmt.Sprintf("view: invalid progress %d/%d", p.Correct, p.Total))
	}
	b.progress = p
}

// FillWidth returns how many of width cells are filled.
func (b *ProgressBar) FillWidth(width int) int {
	if b.progress.Correct == b.progress.Total {
		return width
	}
	return b.progress.Correct * width / b.progress.Total
}

// FillColor returns the color of the filled part of the bar.
func (b *ProgressBar) FillColor() core.Color {
	return b.theme.Incorrect.Blend(b.theme.BarFill, b.progress.Accuracy())
}

// Draw renders the bar on the first row of its region.
func (b *ProgressBar) Draw(w *renderer.Window) {
	region, ok := w.Region(b.region)
	if !ok {
		panic(fmt.Sprintf("view: progress bar region %d does not exist", b.region))
	}
	fill := b.FillColor()
	filled := b.FillWidth(region.Width)

	w.Draw(strings.Repeat(BarSymbol, filled), fill, fill, core.Coord{}, b.region)
	w.Draw(strings.Repeat(BarSymbol, region.Width-filled), b.theme.Bar, b.theme.Bar, core.Coord{Col: filled}, b.region)
}

// Region returns the region the progress bar draws into.
func (b *ProgressBar) Region() layout.RegionID {
	return b.region
}
