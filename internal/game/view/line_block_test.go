package view

import (
	"testing"

	"github.com/dshills/termracer/internal/renderer"
	"github.com/dshills/termracer/internal/renderer/backend"
	"github.com/dshills/termracer/internal/renderer/core"
)

var enter = backend.KeyEvent(backend.KeyEnter)

func TestLineBlockGoesToNextLine(t *testing.T) {
	b := NewLineBlock([]string{"ab", "cd"}, 0, DefaultTheme())

	typeString(b, "ac")
	b.HandleKey(backend.KeyEvent(backend.KeyBackspace))
	typeString(b, "b")
	b.HandleKey(enter)
	if b.Current() != 1 {
		t.Fatalf("Current = %d, want 1", b.Current())
	}

	typeString(b, "cd")
	b.HandleKey(enter)
	if b.Current() != 2 {
		t.Errorf("Current = %d, want 2", b.Current())
	}
}

func TestLineBlockEnterRequiresDoneLine(t *testing.T) {
	b := NewLineBlock([]string{"ab", "cd"}, 0, DefaultTheme())

	typeString(b, "ax")
	b.HandleKey(enter)
	if b.Current() != 0 {
		t.Errorf("Current = %d, want 0 while the line has an error", b.Current())
	}

	typeString(b, "cd")
	if got := b.Lines()[1].Index(); got != 0 {
		t.Errorf("input leaked to the next line: index %d", got)
	}
}

func TestLineBlockDoneAndProgress(t *testing.T) {
	b := NewLineBlock([]string{"ab", "c"}, 0, DefaultTheme())
	if b.Done() {
		t.Error("fresh block should not be done")
	}

	typeString(b, "ab")
	b.HandleKey(enter)
	typeString(b, "x")

	want := Progress{Correct: 2, Incorrect: 1, Total: 3}
	if got := b.Progress(); got != want {
		t.Errorf("Progress = %+v, want %+v", got, want)
	}

	b.HandleKey(backend.KeyEvent(backend.KeyBackspace))
	typeString(b, "c")
	if !b.Done() {
		t.Error("block should be done once every line is correct")
	}
}

func TestLineBlockEmpty(t *testing.T) {
	b := NewLineBlock(nil, 0, DefaultTheme())
	if !b.Done() {
		t.Error("empty block should be done")
	}
	b.HandleKey(enter)
	typeString(b, "a")

	w := renderer.New(4, 2)
	b.ResetCursor(w)
	if got := w.Cursor(); got != (core.Coord{}) {
		t.Errorf("Cursor = %v, want origin", got)
	}
}

func TestLineBlockDrawAndCursor(t *testing.T) {
	w := renderer.New(6, 4)
	top, _ := w.HorizontalSplit(core.CellsInBottom(2), 0)
	b := NewLineBlock([]string{"ab cd", "ef"}, top, DefaultTheme())

	b.Draw(w)
	if got := w.Row(0); got != "ab cd " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := w.Row(1); got != "ef    " {
		t.Errorf("Row(1) = %q", got)
	}

	typeString(b, "ab cd")
	b.HandleKey(enter)
	typeString(b, "e")
	b.ResetCursor(w)
	if got := w.Cursor(); got != (core.Coord{Row: 1, Col: 1}) {
		t.Errorf("Cursor = %v, want (1, 1)", got)
	}

	typeString(b, "f")
	b.HandleKey(enter)
	b.ResetCursor(w)
	if got := w.Cursor(); got != (core.Coord{Row: 1, Col: 2}) {
		t.Errorf("Cursor after finishing = %v, want (1, 2)", got)
	}
}
