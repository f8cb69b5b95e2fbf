package core

import (
	"testing"
)

func TestVerticalSplitByCells(t *testing.T) {
	r := NewRect(0, 0, 100, 50)

	left, right := r.VerticalSplit(CellsInLeft(30))
	if left != NewRect(0, 0, 30, 50) {
		t.Errorf("left = %v, want {(0, 0) 30x50}", left)
	}
	if right != NewRect(0, 30, 70, 50) {
		t.Errorf("right = %v, want {(0, 30) 70x50}", right)
	}

	left, right = r.VerticalSplit(CellsInRight(60))
	if left != NewRect(0, 0, 40, 50) {
		t.Errorf("left = %v, want {(0, 0) 40x50}", left)
	}
	if right != NewRect(0, 40, 60, 50) {
		t.Errorf("right = %v, want {(0, 40) 60x50}", right)
	}
}

func TestVerticalSplitByPercent(t *testing.T) {
	r := NewRect(0, 0, 100, 50)

	left, right := r.VerticalSplit(PercentInLeft(30))
	if left != NewRect(0, 0, 30, 50) || right != NewRect(0, 30, 70, 50) {
		t.Errorf("PercentInLeft(30) = %v, %v", left, right)
	}

	left, right = r.VerticalSplit(PercentInRight(60))
	if left != NewRect(0, 0, 40, 50) || right != NewRect(0, 40, 60, 50) {
		t.Errorf("PercentInRight(60) = %v, %v", left, right)
	}
}

func TestVerticalSplitOverflow(t *testing.T) {
	r := NewRect(0, 0, 100, 50)

	left, right := r.VerticalSplit(CellsInLeft(150))
	if left != NewRect(0, 0, 100, 50) {
		t.Errorf("left = %v, want full rect", left)
	}
	if right != NewRect(0, 100, 0, 50) {
		t.Errorf("right = %v, want {(0, 100) 0x50}", right)
	}

	left, right = r.VerticalSplit(CellsInRight(150))
	if left != NewRect(0, 0, 0, 50) {
		t.Errorf("left = %v, want {(0, 0) 0x50}", left)
	}
	if right != NewRect(0, 0, 100, 50) {
		t.Errorf("right = %v, want full rect", right)
	}
}

func TestHorizontalSplitByCells(t *testing.T) {
	r := NewRect(0, 0, 100, 50)

	top, bottom := r.HorizontalSplit(CellsInTop(30))
	if top != NewRect(0, 0, 100, 30) || bottom != NewRect(30, 0, 100, 20) {
		t.Errorf("CellsInTop(30) = %v, %v", top, bottom)
	}

	top, bottom = r.HorizontalSplit(CellsInBottom(10))
	if top != NewRect(0, 0, 100, 40) || bottom != NewRect(40, 0, 100, 10) {
		t.Errorf("CellsInBottom(10) = %v, %v", top, bottom)
	}
}

func TestHorizontalSplitByPercent(t *testing.T) {
	r := NewRect(0, 0, 100, 50)

	top, bottom := r.HorizontalSplit(PercentInTop(60))
	if top != NewRect(0, 0, 100, 30) || bottom != NewRect(30, 0, 100, 20) {
		t.Errorf("PercentInTop(60) = %v, %v", top, bottom)
	}

	top, bottom = r.HorizontalSplit(PercentInBottom(20))
	if top != NewRect(0, 0, 100, 40) || bottom != NewRect(40, 0, 100, 10) {
		t.Errorf("PercentInBottom(20) = %v, %v", top, bottom)
	}
}

func TestHorizontalSplitOverflow(t *testing.T) {
	r := NewRect(0, 0, 100, 50)

	top, bottom := r.HorizontalSplit(CellsInTop(70))
	if top != NewRect(0, 0, 100, 50) || bottom != NewRect(50, 0, 100, 0) {
		t.Errorf("CellsInTop(70) = %v, %v", top, bottom)
	}

	top, bottom = r.HorizontalSplit(CellsInBottom(60))
	if top != NewRect(0, 0, 100, 0) || bottom != NewRect(0, 0, 100, 50) {
		t.Errorf("CellsInBottom(60) = %v, %v", top, bottom)
	}
}

func TestSplitConservation(t *testing.T) {
	origin := Coord{Row: 3, Col: 7}
	for width := 0; width <= 37; width++ {
		r := Rect{Origin: origin, Width: width, Height: width/2 + 1}
		for amount := 0; amount <= 100; amount += 7 {
			verticals := []VerticalSplit{
				CellsInLeft(amount), CellsInRight(amount),
				PercentInLeft(amount), PercentInRight(amount),
			}
			for _, s := range verticals {
				left, right := r.VerticalSplit(s)
				if left.Width+right.Width != r.Width {
					t.Fatalf("%v on %v: widths %d+%d != %d", s, r, left.Width, right.Width, r.Width)
				}
				if left.Width < 0 || right.Width < 0 {
					t.Fatalf("%v on %v: negative width", s, r)
				}
				if right.Origin.Col != r.Origin.Col+left.Width {
					t.Fatalf("%v on %v: right origin %v", s, r, right.Origin)
				}
			}

			horizontals := []HorizontalSplit{
				CellsInTop(amount), CellsInBottom(amount),
				PercentInTop(amount), PercentInBottom(amount),
			}
			for _, s := range horizontals {
				top, bottom := r.HorizontalSplit(s)
				if top.Height+bottom.Height != r.Height {
					t.Fatalf("%v on %v: heights %d+%d != %d", s, r, top.Height, bottom.Height, r.Height)
				}
				if bottom.Origin.Row != r.Origin.Row+top.Height {
					t.Fatalf("%v on %v: bottom origin %v", s, r, bottom.Origin)
				}
			}
		}
	}
}

func TestSplitPercentOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"PercentInLeft", func() { NewRect(0, 0, 10, 10).VerticalSplit(PercentInLeft(101)) }},
		{"PercentInRight", func() { NewRect(0, 0, 10, 10).VerticalSplit(PercentInRight(150)) }},
		{"PercentInTop", func() { NewRect(0, 0, 10, 10).HorizontalSplit(PercentInTop(-1)) }},
		{"PercentInBottom", func() { NewRect(0, 0, 10, 10).HorizontalSplit(PercentInBottom(200)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic for percentage outside [0, 100]")
				}
			}()
			tt.fn()
		})
	}
}

func TestSplitIsPure(t *testing.T) {
	r := NewRect(2, 4, 10, 6)
	before := r
	r.VerticalSplit(CellsInLeft(3))
	r.HorizontalSplit(PercentInTop(50))
	if r != before {
		t.Errorf("split mutated receiver: %v != %v", r, before)
	}
}

func TestNewRectClampsNegativeSize(t *testing.T) {
	r := NewRect(1, 1, -5, -2)
	if r.Width != 0 || r.Height != 0 {
		t.Errorf("NewRect(-5, -2) size = %dx%d, want 0x0", r.Width, r.Height)
	}
	if !r.IsEmpty() {
		t.Error("zero-size rect should be empty")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(5, 5, 3, 2)
	tests := []struct {
		c    Coord
		want bool
	}{
		{Coord{0, 0}, true},
		{Coord{1, 2}, true},
		{Coord{2, 0}, false},
		{Coord{0, 3}, false},
		{Coord{-1, 0}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.c); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestCoordAdd(t *testing.T) {
	got := Coord{Row: 2, Col: 3}.Add(Coord{Row: 10, Col: 20})
	if got != (Coord{Row: 12, Col: 23}) {
		t.Errorf("Add = %v, want (12, 23)", got)
	}
}
