// Package colormodel converts colors between RGBA, HSV and hex notation.
//
// The central type is Color, an immutable value with float channels in
// [0, 1]. Conversions are pure functions: nothing here holds state, and
// every setter returns a new Color.
//
// # HSV
//
// ToHSV and FromHSV use the usual six-sector model with hue in degrees and
// saturation and value in [0, 1]. Gray colors report hue 0. FromHSV nudges
// an exact-zero saturation or value up to Epsilon so hue and saturation
// survive a trip through black or gray.
//
// # Hex
//
// ToHex always writes eight uppercase digits (RRGGBBAA). ParseHex accepts
// six or eight digits and reports failure with a boolean instead of an
// error.
//
// # Wheel
//
// Wheel is the geometry of a circular hue/saturation picker. Hue 0 is at
// the top and increases clockwise.
package colormodel
