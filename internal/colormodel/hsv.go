package colormodel

import "math"

// Epsilon replaces an exact-zero saturation or value in FromHSV.
//
// A color with value 0 is black whatever its hue and saturation, so a
// round trip through RGB would reset both to 0. Keeping the value a hair
// above zero lets a slider reach "black" and come back with the hue intact.
const Epsilon = 0.0001

// HSV is a color in the hue/saturation/value model.
type HSV struct {
	H float64 `json:"h"` // Hue in degrees, [0, 360)
	S float64 `json:"s"` // Saturation, [0, 1]
	V float64 `json:"v"` // Value, [0, 1]
}

// ToHSV converts the RGB channels of c to HSV. Alpha is ignored.
//
// Achromatic colors (max == min) and black report hue 0 and saturation 0.
func ToHSV(c Color) HSV {
	r, g, b := c.R, c.G, c.B
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	if maxC == 0 || delta == 0 {
		return HSV{H: 0, S: 0, V: maxC}
	}

	var h float64
	switch maxC {
	case r:
		h = (g - b) / delta
	case g:
		h = 2 + (b-r)/delta
	default:
		h = 4 + (r-g)/delta
	}
	h *= 60
	if h < 0 {
		h += 360
	}

	return HSV{H: h, S: delta / maxC, V: maxC}
}

// FromHSV converts hue (degrees), saturation and value to a Color with the
// given alpha. Hue wraps modulo 360; exact-zero saturation or value is
// replaced by Epsilon.
func FromHSV(h, s, v, alpha float64) Color {
	if s == 0 {
		s = Epsilon
	}
	if v == 0 {
		v = Epsilon
	}
	r, g, b := hsvToRGB(h, s, v)
	return Color{R: r, G: g, B: b, A: alpha}
}

// Color returns the opaque color for hsv.
func (hsv HSV) Color() Color {
	return FromHSV(hsv.H, hsv.S, hsv.V, 1)
}

// hsvToRGB is the exact sector conversion with no epsilon substitution.
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	h = normalizeHue(h)
	if s == 0 {
		return v, v, v
	}

	sector := math.Floor(h / 60)
	f := h/60 - sector
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(sector) {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

func normalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}
