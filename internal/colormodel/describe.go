package colormodel

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA8 holds 8-bit channels.
type RGBA8 struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSVPercent is HSV in the units a picker shows: hue in degrees,
// saturation and value in percent.
type HSVPercent struct {
	H float64 `json:"h"` // 0-360
	S float64 `json:"s"` // 0-100
	V float64 `json:"v"` // 0-100
}

// HSL is hue in degrees, saturation and lightness in percent.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Lab is CIE L*a*b* under D65.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Description is one color in every representation the tools report.
type Description struct {
	Hex   string     `json:"hex"`   // RRGGBBAA
	CSS   string     `json:"css"`   // #rrggbb, alpha dropped
	RGBA  RGBA8      `json:"rgba"`  // 8-bit channels
	Float Color      `json:"float"` // 0-1 channels
	HSV   HSVPercent `json:"hsv"`
	HSL   HSL        `json:"hsl"`
	Lab   Lab        `json:"lab"`
}

// Describe returns c in hex, 8-bit, HSV, HSL and Lab form.
func Describe(c Color) Description {
	c = c.Clamped()
	r, g, b, a := c.Bytes()
	hsv := ToHSV(c)

	cf := toColorful(c)
	hh, hs, hl := cf.Hsl()
	ll, la, lb := cf.Lab()

	return Description{
		Hex:   ToHex(c),
		CSS:   cf.Hex(),
		RGBA:  RGBA8{R: r, G: g, B: b, A: a},
		Float: c,
		HSV: HSVPercent{
			H: round2(hsv.H),
			S: round2(hsv.S * 100),
			V: round2(hsv.V * 100),
		},
		HSL: HSL{H: round2(hh), S: round2(hs * 100), L: round2(hl * 100)},
		Lab: Lab{L: round2(ll * 100), A: round2(la * 100), B: round2(lb * 100)},
	}
}

// Distance returns the CIEDE2000 difference between the RGB parts of a and
// b, on the same 0-100 lightness scale as Description.Lab. Zero means
// identical; about 1 is the smallest visible step.
func Distance(a, b Color) float64 {
	return toColorful(a.Clamped()).DistanceCIEDE2000(toColorful(b.Clamped())) * 100
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
