// Package view holds the drawable parts of a race screen: the typing
// lines, the stats line and the progress bar.
package view

import (
	"github.com/dshills/termracer/internal/renderer"
	"github.com/dshills/termracer/internal/renderer/backend"
	"github.com/dshills/termracer/internal/renderer/core"
	"github.com/dshills/termracer/internal/renderer/layout"
)

// View draws itself into one window region.
type View interface {
	// Draw renders the view's current state into the window.
	Draw(w *renderer.Window)

	// Region returns the region the view draws into.
	Region() layout.RegionID
}

// KeyHandler consumes key events.
type KeyHandler interface {
	HandleKey(ev backend.Event)
}

// Theme holds the colors views draw with.
type Theme struct {
	Correct   core.Color
	Incorrect core.Color
	Pending   core.Color
	Bar       core.Color
	BarFill   core.Color
}

// DefaultTheme returns the built-in colors.
func DefaultTheme() Theme {
	return Theme{
		Correct:   core.ColorGreen,
		Incorrect: core.ColorRed,
		Pending:   core.ColorWhite,
		Bar:       core.ColorWhite,
		BarFill:   core.ColorGreen,
	}
}
