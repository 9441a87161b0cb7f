package selection

import "image"

// Region is a selection rectangle in the form the tools report it.
// (X1, Y1) is inclusive and (X2, Y2) exclusive.
type Region struct {
	X1     int `json:"x1"`
	Y1     int `json:"y1"`
	X2     int `json:"x2"`
	Y2     int `json:"y2"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// FromRect converts r to a Region.
func FromRect(r image.Rectangle) Region {
	return Region{
		X1:     r.Min.X,
		Y1:     r.Min.Y,
		X2:     r.Max.X,
		Y2:     r.Max.Y,
		Width:  r.Dx(),
		Height: r.Dy(),
	}
}

// Rect converts the region back to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// FromDrag returns the rectangle swept by a drag from start to end, clipped
// to bounds.
//
// With square set (the Shift modifier of a rectangle select tool) both
// sides take the shorter of the two drag distances, and the square grows
// from start toward end.
func FromDrag(start, end image.Point, square bool, bounds image.Rectangle) image.Rectangle {
	dx := end.X - start.X
	dy := end.Y - start.Y

	if square {
		side := min(abs(dx), abs(dy))
		dx = sign(dx) * side
		dy = sign(dy) * side
	}

	r := image.Rectangle{Min: start, Max: start.Add(image.Pt(dx, dy))}.Canon()
	return r.Intersect(bounds)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
