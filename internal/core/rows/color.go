package rows

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a color triple with channels in the 0-255 range. Channels are kept
// as floats so the derived palette is exact (e.g. 127.5).
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// ColorAt derives the background of the row seeded at position i out of n.
// The green channel is intentionally not monotonic in i.
func ColorAt(i, n int) RGB {
	var multiplier float64
	if n > 1 {
		multiplier = 255 / float64(n-1)
	}

	v := float64(i) * multiplier
	return RGB{
		R: v,
		G: math.Abs(128 - v),
		B: 255 - v,
	}
}

// Colorful converts the triple into a go-colorful color, clamped to gamut.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}.Clamped()
}

// Hex renders the triple as #rrggbb.
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// Color returns the triple as an image/color value usable by lipgloss.
func (c RGB) Color() color.Color {
	return c.Colorful()
}

// Blend mixes c toward other by t (0 keeps c, 1 yields other).
func (c RGB) Blend(other RGB, t float64) RGB {
	t = math.Max(0, math.Min(1, t))
	return RGB{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}
