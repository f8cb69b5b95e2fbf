package view

import (
	"strings"
	"testing"

	"github.com/dshills/termracer/internal/renderer"
	"github.com/dshills/termracer/internal/renderer/core"
)

func TestProgressAdd(t *testing.T) {
	got := Progress{1, 2, 3}.Add(Progress{10, 20, 30})
	if want := (Progress{11, 22, 33}); got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}
}

func TestProgressAccuracy(t *testing.T) {
	tests := []struct {
		p    Progress
		want float64
	}{
		{Progress{Total: 10}, 1},
		{Progress{Correct: 3, Incorrect: 1, Total: 10}, 0.75},
		{Progress{Incorrect: 2, Total: 10}, 0},
	}
	for _, tt := range tests {
		if got := tt.p.Accuracy(); got != tt.want {
			t.Errorf("Accuracy(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestStatsLine(t *testing.T) {
	w := renderer.New(12, 2)
	_, bottom := w.HorizontalSplit(core.CellsInBottom(1), 0)
	s := NewStatsLine(bottom)

	s.SetWPM(87.9)
	s.Draw(w)
	if got := w.Row(1); got != "WPM: 87     " {
		t.Errorf("Row(1) = %q", got)
	}

	s.SetWPM(5)
	s.Draw(w)
	if got := w.Row(1); got != "WPM: 5      " {
		t.Errorf("Row(1) = %q after shorter figure", got)
	}
}

func TestStatsLineRedrawIsClean(t *testing.T) {
	w := renderer.New(12, 1)
	s := NewStatsLine(0)
	s.SetWPM(40)
	s.Draw(w)
	if err := w.Display(discard{}); err != nil {
		t.Fatal(err)
	}

	s.Draw(w)
	if n := w.DirtyCount(); n != 0 {
		t.Errorf("DirtyCount = %d after redrawing the same figure, want 0", n)
	}
}

func TestProgressBarWidths(t *testing.T) {
	tests := []struct {
		p     Progress
		width int
		want  int
	}{
		{Progress{Correct: 0, Total: 10}, 20, 0},
		{Progress{Correct: 5, Total: 10}, 20, 10},
		{Progress{Correct: 1, Total: 3}, 10, 3},
		{Progress{Correct: 10, Total: 10}, 20, 20},
		{Progress{}, 7, 7},
	}
	for _, tt := range tests {
		b := NewProgressBar(0, DefaultTheme())
		b.SetProgress(tt.p)
		if got := b.FillWidth(tt.width); got != tt.want {
			t.Errorf("FillWidth(%v, %d) = %d, want %d", tt.p, tt.width, got, tt.want)
		}
	}
}

func TestProgressBarDraw(t *testing.T) {
	theme := DefaultTheme()
	w := renderer.New(8, 1)
	b := NewProgressBar(0, theme)
	b.SetProgress(Progress{Correct: 2, Total: 4})
	b.Draw(w)

	if got := w.Row(0); got != strings.Repeat(BarSymbol, 8) {
		t.Errorf("Row(0) = %q", got)
	}
	if c := w.CellAt(0, 3); !c.Fg.Equals(theme.BarFill) || !c.Bg.Equals(theme.BarFill) {
		t.Errorf("filled cell = %+v, want fill color", c)
	}
	if c := w.CellAt(0, 4); !c.Fg.Equals(theme.Bar) || !c.Bg.Equals(theme.Bar) {
		t.Errorf("empty cell = %+v, want bar color", c)
	}
}

func TestProgressBarFillColorTracksAccuracy(t *testing.T) {
	theme := DefaultTheme()
	b := NewProgressBar(0, theme)

	b.SetProgress(Progress{Correct: 4, Total: 8})
	if got := b.FillColor(); !got.Equals(theme.BarFill) {
		t.Errorf("FillColor at full accuracy = %v, want %v", got, theme.BarFill)
	}

	b.SetProgress(Progress{Correct: 0, Incorrect: 3, Total: 8})
	if got := b.FillColor(); !got.Equals(theme.Incorrect) {
		t.Errorf("FillColor at zero accuracy = %v, want %v", got, theme.Incorrect)
	}

	b.SetProgress(Progress{Correct: 2, Incorrect: 2, Total: 8})
	got := b.FillColor()
	if got.Equals(theme.Incorrect) || got.Equals(theme.BarFill) {
		t.Errorf("FillColor at half accuracy = %v, want a blend", got)
	}
}

func TestProgressBarInvalidProgressPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for correct > total")
		}
	}()
	NewProgressBar(0, DefaultTheme()).SetProgress(Progress{Correct: 3, Total: 2})
}

// discard is a sink that drops everything.
type discard struct{}

func (discard) MoveTo(int, int) error          { return nil }
func (discard) SetForeground(core.Color) error { return nil }
func (discard) SetBackground(core.Color) error { return nil }
func (discard) Print(string) error             { return nil }
