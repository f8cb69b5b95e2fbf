package core

import (
	"testing"
)

func TestColorDefault(t *testing.T) {
	if !ColorDefault.IsDefault() {
		t.Error("ColorDefault should be default")
	}
	if ColorRed.IsDefault() {
		t.Error("ColorRed should not be default")
	}
}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b uint8
		wantErr bool
	}{
		{"#FF8040", 255, 128, 64, false},
		{"#ff8040", 255, 128, 64, false},
		{"FF8040", 255, 128, 64, false},
		{"#FFF", 255, 255, 255, false},
		{"#000", 0, 0, 0, false},
		{"invalid", 0, 0, 0, true},
		{"#GGG", 0, 0, 0, true},
		{"", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			c, err := ColorFromHex(tt.hex)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ColorFromHex(%q) expected error", tt.hex)
				}
				return
			}
			if err != nil {
				t.Fatalf("ColorFromHex(%q) unexpected error: %v", tt.hex, err)
			}
			if c.R != tt.r || c.G != tt.g || c.B != tt.b {
				t.Errorf("ColorFromHex(%q) = %v, want #%02X%02X%02X", tt.hex, c, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestColorEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		want bool
	}{
		{"default", ColorDefault, ColorDefault, true},
		{"default vs rgb", ColorDefault, ColorBlack, false},
		{"same rgb", ColorFromRGB(1, 2, 3), ColorFromRGB(1, 2, 3), true},
		{"different rgb", ColorFromRGB(1, 2, 3), ColorFromRGB(1, 2, 4), false},
		{"indexed ignores gb", Color{R: 5, G: 9, Indexed: true}, ColorFromIndex(5), true},
		{"indexed vs rgb", ColorFromIndex(5), ColorFromRGB(5, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equals(tt.b); got != tt.want {
				t.Errorf("Equals = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorBlendEndpoints(t *testing.T) {
	from := ColorFromRGB(200, 40, 40)
	to := ColorFromRGB(40, 200, 40)

	if got := from.Blend(to, 0); !got.Equals(from) {
		t.Errorf("Blend(0) = %v, want %v", got, from)
	}
	if got := from.Blend(to, 1); !got.Equals(to) {
		t.Errorf("Blend(1) = %v, want %v", got, to)
	}
	if got := from.Blend(to, -3); !got.Equals(from) {
		t.Errorf("Blend(-3) = %v, want clamp to %v", got, from)
	}
}

func TestColorBlendDefault(t *testing.T) {
	if got := ColorDefault.Blend(ColorRed, 0.2); !got.IsDefault() {
		t.Errorf("Blend(0.2) from default = %v, want default", got)
	}
	if got := ColorDefault.Blend(ColorRed, 0.8); !got.Equals(ColorRed) {
		t.Errorf("Blend(0.8) from default = %v, want red", got)
	}
}

func TestColorString(t *testing.T) {
	if got := ColorDefault.String(); got != "default" {
		t.Errorf("String = %q, want default", got)
	}
	if got := ColorFromIndex(42).String(); got != "idx(42)" {
		t.Errorf("String = %q, want idx(42)", got)
	}
	if got := ColorFromRGB(255, 128, 0).String(); got != "#FF8000" {
		t.Errorf("String = %q, want #FF8000", got)
	}
}

func TestCellEquals(t *testing.T) {
	a := NewCell("a", ColorRed, ColorDefault)
	if !a.Equals(NewCell("a", ColorRed, ColorDefault)) {
		t.Error("identical cells should be equal")
	}
	if a.Equals(NewCell("b", ColorRed, ColorDefault)) {
		t.Error("cells with different content should not be equal")
	}
	if a.Equals(NewCell("a", ColorGreen, ColorDefault)) {
		t.Error("cells with different fg should not be equal")
	}
	if a.Equals(NewCell("a", ColorRed, ColorBlack)) {
		t.Error("cells with different bg should not be equal")
	}
	if !EmptyCell().IsEmpty() {
		t.Error("EmptyCell should be empty")
	}
}
