// Package core provides the value types shared by the renderer, its layout
// engine and its output backends.
package core

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents a color value.
// Supports true color (RGB) and terminal palette colors.
type Color struct {
	R, G, B uint8
	// If Indexed is true, R contains the palette index (0-255).
	// G and B are ignored in indexed mode.
	Indexed bool
	// Default indicates this is the terminal's default color.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// Common colors.
var (
	ColorBlack = Color{R: 0, G: 0, B: 0}
	ColorWhite = Color{R: 255, G: 255, B: 255}
	ColorRed   = Color{R: 255, G: 0, B: 0}
	ColorGreen = Color{R: 0, G: 255, B: 0}
	ColorGray  = Color{R: 128, G: 128, B: 128}
)

// ColorFromRGB creates a true color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromIndex creates an indexed palette color.
func ColorFromIndex(index uint8) Color {
	return Color{R: index, Indexed: true}
}

// ColorFromHex creates a color from a hex string.
// Supports "#RGB" and "#RRGGBB"; the leading # is optional.
func ColorFromHex(hex string) (Color, error) {
	if len(hex) > 0 && hex[0] != '#' {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return ColorFromRGB(r, g, b), nil
}

// IsDefault returns true if this is the default/transparent color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Equals returns true if two colors are equal.
func (c Color) Equals(other Color) bool {
	if c.Default != other.Default {
		return false
	}
	if c.Default {
		return true
	}
	if c.Indexed != other.Indexed {
		return false
	}
	if c.Indexed {
		return c.R == other.R
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String returns a string representation of the color.
func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	if c.Indexed {
		return fmt.Sprintf("idx(%d)", c.R)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Blend mixes two true colors in CIE-L*a*b* space.
// Amount 0.0 = c, 1.0 = other. Default and indexed colors do not blend;
// the nearer endpoint is returned instead.
func (c Color) Blend(other Color, amount float64) Color {
	amount = max(0, min(1, amount))
	switch amount {
	case 0:
		return c
	case 1:
		return other
	}
	if c.Default || other.Default || c.Indexed || other.Indexed {
		if amount < 0.5 {
			return c
		}
		return other
	}
	from := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	to := colorful.Color{R: float64(other.R) / 255, G: float64(other.G) / 255, B: float64(other.B) / 255}
	r, g, b := from.BlendLab(to, amount).Clamped().RGB255()
	return ColorFromRGB(r, g, b)
}
