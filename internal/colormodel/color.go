package colormodel

import (
	"image/color"
	"math"
)

// Color is an RGBA color with floating-point channels.
//
// Channels are conventionally in the range [0, 1] and are not
// premultiplied by alpha. Color is a value type: the With* methods return a
// modified copy and never change the receiver.
//
// Color implements color.Color, so it can be passed directly to image.Set.
type Color struct {
	R float64 `json:"r"` // Red (0-1)
	G float64 `json:"g"` // Green (0-1)
	B float64 `json:"b"` // Blue (0-1)
	A float64 `json:"a"` // Alpha (0 = transparent, 1 = opaque)
}

// Common colors.
var (
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Transparent = Color{0, 0, 0, 0}
)

// New returns a color from four channels in [0, 1].
func New(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromBytes returns a color from 8-bit channels.
func FromBytes(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
		A: float64(a) / 255.0,
	}
}

// FromStdColor converts any color.Color to a Color, undoing the alpha
// premultiplication that color.Color.RGBA applies.
func FromStdColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA64{
		R: uint16(math.Round(clamp01(c.R) * 0xffff)),
		G: uint16(math.Round(clamp01(c.G) * 0xffff)),
		B: uint16(math.Round(clamp01(c.B) * 0xffff)),
		A: uint16(math.Round(clamp01(c.A) * 0xffff)),
	}.RGBA()
}

// Bytes returns the channels scaled to 0-255 and rounded.
func (c Color) Bytes() (r, g, b, a uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A)
}

// NRGBA returns the 8-bit non-premultiplied form of c.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.Bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// WithRed returns c with its red channel replaced.
func (c Color) WithRed(r float64) Color { c.R = r; return c }

// WithGreen returns c with its green channel replaced.
func (c Color) WithGreen(g float64) Color { c.G = g; return c }

// WithBlue returns c with its blue channel replaced.
func (c Color) WithBlue(b float64) Color { c.B = b; return c }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a float64) Color { c.A = a; return c }

// WithHue returns c with its hue replaced, keeping saturation, value and
// alpha.
func (c Color) WithHue(h float64) Color {
	hsv := ToHSV(c)
	return FromHSV(h, hsv.S, hsv.V, c.A)
}

// WithSaturation returns c with its HSV saturation replaced.
func (c Color) WithSaturation(s float64) Color {
	hsv := ToHSV(c)
	return FromHSV(hsv.H, s, hsv.V, c.A)
}

// WithValue returns c with its HSV value replaced.
func (c Color) WithValue(v float64) Color {
	hsv := ToHSV(c)
	return FromHSV(hsv.H, hsv.S, v, c.A)
}

// Clamped returns c with every channel limited to [0, 1].
func (c Color) Clamped() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
