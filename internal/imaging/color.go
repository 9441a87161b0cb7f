package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/ironsheep/paint-tools-mcp/internal/colormodel"
)

// ErrOutOfBounds is returned when a coordinate or region falls outside the
// image.
var ErrOutOfBounds = errors.New("outside image bounds")

// ColorResult is the color of one pixel in every representation
// colormodel.Describe produces.
type ColorResult struct {
	X int `json:"x"`
	Y int `json:"y"`
	colormodel.Description
}

// SampleColor returns the color at (x, y).
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y) in every representation.
//   - error: Wraps ErrOutOfBounds if (x, y) is outside the image.
//
// # Color Conversion
//
// The pixel is read without premultiplied alpha, so a half transparent red
// reports R=255 and A=128.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d): %w", x, y, ErrOutOfBounds)
	}

	return &ColorResult{
		X:           x,
		Y:           y,
		Description: colormodel.Describe(pixelAt(img, x, y)),
	}, nil
}

// pixelAt reads (x, y) as an 8-bit non-premultiplied color.
func pixelAt(img image.Image, x, y int) colormodel.Color {
	n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return colormodel.FromBytes(n.R, n.G, n.B, n.A)
}

func hexAt(img image.Image, x, y int) string {
	return colormodel.ToHex(pixelAt(img, x, y))
}

// LabeledPoint is a coordinate with an optional caller-chosen label.
type LabeledPoint struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label,omitempty"`
}

// LabeledColorResult is one sample of SampleColorsMulti.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	Color ColorResult `json:"color"`
}

// MultiColorResult holds samples in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti samples every point. If any point is out of bounds no
// partial result is returned.
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point %q: %w", p.Label, err)
		}
		results = append(results, LabeledColorResult{Label: p.Label, Color: *c})
	}

	return &MultiColorResult{Samples: results}, nil
}

// Region is a rectangle given by its corners; (X1, Y1) inclusive and
// (X2, Y2) exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect converts r to an image.Rectangle. Unlike image.Rect the corners
// are not swapped, so an inverted region stays empty.
func (r Region) Rect() image.Rectangle {
	return image.Rectangle{Min: image.Pt(r.X1, r.Y1), Max: image.Pt(r.X2, r.Y2)}
}

// ColorFrequency is one entry of a dominant color histogram.
type ColorFrequency struct {
	Hex        string                `json:"hex"`        // RRGGBBAA, quantized
	Percentage float64               `json:"percentage"` // share of pixels, 0-100
	HSV        colormodel.HSVPercent `json:"hsv"`
}

// DominantColorsResult lists colors by descending frequency.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors returns up to count of the most common colors in img, or
// in region when it is not nil.
//
// Parameters:
//   - img: The source image.
//   - count: Maximum number of colors to return; must be positive.
//   - region: Optional sub-rectangle to analyze; nil means the whole image.
//
// Returns:
//   - *DominantColorsResult: Colors by descending share, ties by hex.
//   - error: Non-nil if count is not positive or region leaves the image.
//
// # Quantization
//
// Each RGB channel is quantized down to a multiple of 16 before counting,
// so near-identical shades share a bucket. Alpha is dropped; fully
// transparent pixels are skipped.
//
// # Errors
//
//   - Wraps ErrOutOfBounds if region is not within the image bounds
//   - Returns error if count <= 0
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	bounds := img.Bounds()
	if region != nil {
		r := region.Rect()
		if !r.In(bounds) {
			return nil, fmt.Errorf("region %v: %w", r, ErrOutOfBounds)
		}
		bounds = r
	}
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	counts := make(map[[3]uint8]int)
	total := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if n.A == 0 {
				continue
			}
			counts[[3]uint8{n.R / 16 * 16, n.G / 16 * 16, n.B / 16 * 16}]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for key, cnt := range counts {
		c := colormodel.FromBytes(key[0], key[1], key[2], 255)
		colors = append(colors, ColorFrequency{
			Hex:        colormodel.ToHex(c),
			Percentage: float64(cnt) * 100 / float64(total),
			HSV:        colormodel.Describe(c).HSV,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}
