package selection

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
)

// ContentBounds returns the smallest rectangle that encloses everything in
// img that is not part of a uniform border.
//
// The border color is the pixel at the top-left corner of the image. The
// rectangle is shrunk from each side in turn (top, bottom, left, right) for
// as long as the whole row or column on that side matches the border color
// exactly. The column scans only look at the rows that survived the row
// scans.
//
// If nothing is left (the image is one flat color), the full image bounds
// are returned instead.
func ContentBounds(img image.Image) image.Rectangle {
	src := clone.AsShallowRGBA(img)
	bounds := src.Bounds()
	if bounds.Empty() {
		return bounds
	}

	border := src.RGBAAt(bounds.Min.X, bounds.Min.Y)
	r := bounds

	// Top down.
	for r.Min.Y < r.Max.Y && IsConstantRow(src, border, r.Min.Y) {
		r.Min.Y++
	}

	// Bottom up.
	for r.Max.Y > r.Min.Y && IsConstantRow(src, border, r.Max.Y-1) {
		r.Max.Y--
	}

	// Left side.
	for r.Min.X < r.Max.X && IsConstantColumn(src, border, r, r.Min.X) {
		r.Min.X++
	}

	// Right side.
	for r.Max.X > r.Min.X && IsConstantColumn(src, border, r, r.Max.X-1) {
		r.Max.X--
	}

	if r.Dx() == 0 || r.Dy() == 0 {
		return bounds
	}
	return r
}

// IsConstantRow reports whether every pixel of row y equals c.
func IsConstantRow(img *image.RGBA, c color.RGBA, y int) bool {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		if img.RGBAAt(x, y) != c {
			return false
		}
	}
	return true
}

// IsConstantColumn reports whether every pixel of column x within the rows
// of span equals c. An empty span is trivially constant.
func IsConstantColumn(img *image.RGBA, c color.RGBA, span image.Rectangle, x int) bool {
	for y := span.Min.Y; y < span.Max.Y; y++ {
		if img.RGBAAt(x, y) != c {
			return false
		}
	}
	return true
}
