package view

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/dshills/termracer/internal/renderer"
	"github.com/dshills/termracer/internal/renderer/backend"
	"github.com/dshills/termracer/internal/renderer/core"
	"github.com/dshills/termracer/internal/renderer/layout"
)

// CharState is the typing state of one grapheme.
type CharState uint8

const (
	Pending CharState = iota
	Correct
	Incorrect
)

// String returns the state name.
func (s CharState) String() string {
	switch s {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "pending"
	}
}

// Line is one row of text to type.
type Line struct {
	text   []string
	states []CharState
	index  int
	region layout.RegionID
	row    int
	theme  Theme
}

// NewLine creates a line drawn at row of region.
func NewLine(text string, region layout.RegionID, row int, theme Theme) *Line {
	graphemes := splitGraphemes(text)
	return &Line{
		text:   graphemes,
		states: make([]CharState, len(graphemes)),
		region: region,
		row:    row,
		theme:  theme,
	}
}

func splitGraphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Text returns the line's text.
func (l *Line) Text() string {
	return strings.Join(l.text, "")
}

// Len returns the number of graphemes in the line.
func (l *Line) Len() int {
	return len(l.text)
}

// Index returns the position of the next grapheme to type.
func (l *Line) Index() int {
	return l.index
}

// State returns the typing state of grapheme i.
func (l *Line) State(i int) CharState {
	return l.states[i]
}

// SetTheme changes the colors used by the next Draw.
func (l *Line) SetTheme(theme Theme) {
	l.theme = theme
}

// Type records r against the grapheme at the cursor and advances.
// Input past the end of the line is ignored.
func (l *Line) Type(r rune) {
	if l.index >= len(l.text) {
		return
	}
	if string(r) == l.text[l.index] {
		l.states[l.index] = Correct
	} else {
		l.states[l.index] = Incorrect
	}
	l.index++
}

// Backspace steps back one grapheme and forgets what was typed there.
func (l *Line) Backspace() {
	if l.index == 0 {
		return
	}
	l.index--
	l.states[l.index] = Pending
}

// HandleKey applies typed characters and backspace; other keys are ignored.
func (l *Line) HandleKey(ev backend.Event) {
	if ev.Type != backend.EventKey {
		return
	}
	switch ev.Key {
	case backend.KeyRune:
		l.Type(ev.Rune)
	case backend.KeyBackspace:
		l.Backspace()
	}
}

// Progress counts the line's graphemes by state.
func (l *Line) Progress() Progress {
	p := Progress{Total: len(l.text)}
	for _, s := range l.states {
		switch s {
		case Correct:
			p.Correct++
		case Incorrect:
			p.Incorrect++
		}
	}
	return p
}

// Done reports whether every grapheme is typed correctly.
func (l *Line) Done() bool {
	return l.Progress().Complete()
}

// ResetCursor puts the window cursor on the next grapheme to type.
func (l *Line) ResetCursor(w *renderer.Window) {
	w.SetCursor(core.Coord{Row: l.row, Col: l.index}, l.region)
}

// Draw renders the line. Whitespace shows its state as a background
// color since a colored space is invisible.
func (l *Line) Draw(w *renderer.Window) {
	for i, g := range l.text {
		fg, bg := l.colors(g, l.states[i])
		w.Draw(g, fg, bg, core.Coord{Row: l.row, Col: i}, l.region)
	}
}

func (l *Line) colors(g string, s CharState) (fg, bg core.Color) {
	state := l.theme.Pending
	switch s {
	case Correct:
		state = l.theme.Correct
	case Incorrect:
		state = l.theme.Incorrect
	}

	if isSpace(g) {
		if s == Pending {
			return l.theme.Pending, core.ColorDefault
		}
		return l.theme.Pending, state
	}
	return state, core.ColorDefault
}

func isSpace(g string) bool {
	for _, r := range g {
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// Region returns the region the line draws into.
func (l *Line) Region() layout.RegionID {
	return l.region
}
