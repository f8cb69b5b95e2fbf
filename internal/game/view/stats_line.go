package view

import (
	"fmt"

	"github.com/dshills/termracer/internal/renderer"
	"github.com/dshills/termracer/internal/renderer/core"
	"github.com/dshills/termracer/internal/renderer/layout"
)

// StatsLine shows the running words-per-minute figure.
type StatsLine struct {
	region layout.RegionID
	wpm    float64
}

// NewStatsLine creates a stats line drawing into region.
func NewStatsLine(region layout.RegionID) *StatsLine {
	return &StatsLine{region: region}
}

// SetWPM sets the figure shown by the next Draw.
func (s *StatsLine) SetWPM(wpm float64) {
	s.wpm = wpm
}

// Text returns the line as it will be drawn.
func (s *StatsLine) Text() string {
	return fmt.Sprintf("WPM: %d", int(s.wpm))
}

// Draw renders the stats text on the first row and blanks the rest of the
// region. Blanking goes through the same diffed draw, so an unchanged
// figure dirties nothing.
func (s *StatsLine) Draw(w *renderer.Window) {
	region, ok := w.Region(s.region)
	if !ok {
		panic(fmt.Sprintf("view: stats line region %d does not exist", s.region))
	}
	text := s.Text()
	if pad := region.Width - len(text); pad > 0 {
		text = fmt.Sprintf("%s%*s", text, pad, "")
	}
	w.Draw(text, core.ColorDefault, core.ColorDefault, core.Coord{}, s.region)
	for row := 1; row < region.Height; row++ {
		w.Draw(fmt.Sprintf("%*s", region.Width, ""), core.ColorDefault, core.ColorDefault, core.Coord{Row: row}, s.region)
	}
}

// Region returns the region the stats line draws into.
func (s *StatsLine) Region() layout.RegionID {
	return s.region
}
