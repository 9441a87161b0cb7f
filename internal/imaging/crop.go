package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Crop cuts rect out of img and optionally scales the result.
//
// rect must lie within the image and have a positive area. A scale of 1 or
// less than or equal to 0 leaves the size unchanged; any other value resizes
// with a Lanczos filter. A scale that would make either side larger than
// MaxCanvasSize returns ErrInvalidSize.
func Crop(img image.Image, rect image.Rectangle, scale float64) (*image.NRGBA, error) {
	bounds := img.Bounds()

	if !rect.In(bounds) {
		return nil, fmt.Errorf("crop region %v not within %v: %w", rect, bounds, ErrOutOfBounds)
	}
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return nil, fmt.Errorf("invalid crop region %v: x1 must be < x2, y1 must be < y2", rect)
	}

	cropped := imaging.Crop(img, rect)

	if scale != 1.0 && scale > 0 {
		fw := float64(cropped.Bounds().Dx()) * scale
		fh := float64(cropped.Bounds().Dy()) * scale
		if fw > MaxCanvasSize || fh > MaxCanvasSize {
			return nil, fmt.Errorf("%w: scale %v gives %.0fx%.0f (each side must be 1-%d)", ErrInvalidSize, scale, fw, fh, MaxCanvasSize)
		}
		cropped = imaging.Resize(cropped, max(1, int(fw)), max(1, int(fh)), imaging.Lanczos)
	}

	return cropped, nil
}
