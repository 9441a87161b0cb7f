package colormodel

import "math"

// Wheel maps between points on a circular hue/saturation picker and HSV.
//
// The wheel occupies a square of side 2*Radius whose top-left corner is the
// origin, with y growing downward as in screen coordinates. Hue 0 (red)
// points straight up from the center and hue increases clockwise, so 90 is
// to the right and 180 straight down. Saturation is the distance from the
// center divided by Radius, clamped to 1.
type Wheel struct {
	Radius float64
}

// Center returns the wheel center in local coordinates.
func (w Wheel) Center() (x, y float64) {
	return w.Radius, w.Radius
}

// RimTolerance is how far past the rim, in pixels, a point still counts as
// inside. It covers float error and coordinates rounded to 2 decimals.
const RimTolerance = 0.01

// Contains reports whether (x, y) lies on or inside the circle, within
// RimTolerance of the rim.
func (w Wheel) Contains(x, y float64) bool {
	cx, cy := w.Center()
	return math.Hypot(x-cx, y-cy) <= w.Radius+RimTolerance
}

// PointToHSV returns the color under (x, y) at the given value. Points
// outside the circle are projected onto its rim.
func (w Wheel) PointToHSV(x, y, value float64) HSV {
	if w.Radius <= 0 {
		return HSV{V: value}
	}
	cx, cy := w.Center()
	dx, dy := x-cx, y-cy

	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return HSV{H: 0, S: 0, V: value}
	}

	hue := math.Atan2(dx, -dy) * 180 / math.Pi
	return HSV{
		H: normalizeHue(hue),
		S: math.Min(dist/w.Radius, 1),
		V: value,
	}
}

// HSVToPoint returns the point where hsv sits on the wheel. Value does not
// affect the position.
func (w Wheel) HSVToPoint(hsv HSV) (x, y float64) {
	cx, cy := w.Center()
	angle := normalizeHue(hsv.H) * math.Pi / 180
	mag := clamp01(hsv.S) * w.Radius
	return cx + math.Sin(angle)*mag, cy - math.Cos(angle)*mag
}
