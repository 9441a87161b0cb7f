package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/disintegration/imaging"
)

// MaxCanvasSize bounds each side of a resized canvas.
const MaxCanvasSize = 16384

var (
	// ErrInvalidSize is returned for a canvas side that is not in
	// [1, MaxCanvasSize].
	ErrInvalidSize = errors.New("invalid canvas size")

	// ErrUnknownAnchor is returned by ParseAnchor.
	ErrUnknownAnchor = errors.New("unknown anchor")
)

// Anchor selects which part of the old image stays fixed when the canvas
// changes size.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorTopLeft
	AnchorTop
	AnchorTopRight
	AnchorLeft
	AnchorRight
	AnchorBottomLeft
	AnchorBottom
	AnchorBottomRight
)

var anchorNames = map[Anchor]string{
	AnchorCenter:      "center",
	AnchorTopLeft:     "top-left",
	AnchorTop:         "top",
	AnchorTopRight:    "top-right",
	AnchorLeft:        "left",
	AnchorRight:       "right",
	AnchorBottomLeft:  "bottom-left",
	AnchorBottom:      "bottom",
	AnchorBottomRight: "bottom-right",
}

// AnchorNames lists the accepted anchor names in reading order.
func AnchorNames() []string {
	return []string{
		"top-left", "top", "top-right",
		"left", "center", "right",
		"bottom-left", "bottom", "bottom-right",
	}
}

func (a Anchor) String() string {
	if name, ok := anchorNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Anchor(%d)", int(a))
}

// ParseAnchor accepts the names of AnchorNames, case-insensitively, plus
// compass abbreviations ("n", "ne", ... "c"). An empty string means center.
func ParseAnchor(s string) (Anchor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "center", "centre", "c", "middle":
		return AnchorCenter, nil
	case "top-left", "nw":
		return AnchorTopLeft, nil
	case "top", "n":
		return AnchorTop, nil
	case "top-right", "ne":
		return AnchorTopRight, nil
	case "left", "w":
		return AnchorLeft, nil
	case "right", "e":
		return AnchorRight, nil
	case "bottom-left", "sw":
		return AnchorBottomLeft, nil
	case "bottom", "s":
		return AnchorBottom, nil
	case "bottom-right", "se":
		return AnchorBottomRight, nil
	}
	return AnchorCenter, fmt.Errorf("%w %q", ErrUnknownAnchor, s)
}

// Offset returns where the top-left corner of an old-sized image lands on
// the new canvas. Negative components mean the old image is cut off on
// that side.
func (a Anchor) Offset(oldSize, newSize image.Point) image.Point {
	dx := newSize.X - oldSize.X
	dy := newSize.Y - oldSize.Y

	var x, y int
	switch a {
	case AnchorTopLeft, AnchorLeft, AnchorBottomLeft:
		x = 0
	case AnchorTopRight, AnchorRight, AnchorBottomRight:
		x = dx
	default:
		x = dx / 2
	}
	switch a {
	case AnchorTopLeft, AnchorTop, AnchorTopRight:
		y = 0
	case AnchorBottomLeft, AnchorBottom, AnchorBottomRight:
		y = dy
	default:
		y = dy / 2
	}
	return image.Pt(x, y)
}

// ResizeCanvas places img on a new transparent canvas of width×height
// without scaling it. Growing the canvas adds transparent margins; shrinking
// it crops. The anchor decides which edges stay put.
func ResizeCanvas(img image.Image, width, height int, anchor Anchor) (*image.NRGBA, error) {
	if err := checkCanvasSize(width, height); err != nil {
		return nil, err
	}

	b := img.Bounds()
	offset := anchor.Offset(b.Size(), image.Pt(width, height))

	canvas := imaging.New(width, height, color.NRGBA{})
	return imaging.Paste(canvas, img, offset), nil
}

func checkCanvasSize(width, height int) error {
	if width < 1 || width > MaxCanvasSize || height < 1 || height > MaxCanvasSize {
		return fmt.Errorf("%w: %dx%d (each side must be 1-%d)", ErrInvalidSize, width, height, MaxCanvasSize)
	}
	return nil
}

// ScaleByPercent returns size scaled by percent, rounded, with each side at
// least 1. A side that would exceed MaxCanvasSize returns ErrInvalidSize.
func ScaleByPercent(size image.Point, percent float64) (image.Point, error) {
	w := math.Round(float64(size.X) * percent / 100)
	h := math.Round(float64(size.Y) * percent / 100)
	if w > MaxCanvasSize || h > MaxCanvasSize {
		return image.Point{}, fmt.Errorf("%w: %v%% of %dx%d (each side must be 1-%d)", ErrInvalidSize, percent, size.X, size.Y, MaxCanvasSize)
	}
	return image.Pt(max(1, int(w)), max(1, int(h))), nil
}

// KeepAspect fills in the side left as 0 so the result keeps the aspect
// ratio of orig. When both sides are given, width wins and height is
// recomputed.
func KeepAspect(orig image.Point, width, height int) (int, int) {
	if orig.X <= 0 || orig.Y <= 0 {
		return width, height
	}
	switch {
	case width > 0:
		height = max(1, int(math.Round(float64(width)*float64(orig.Y)/float64(orig.X))))
	case height > 0:
		width = max(1, int(math.Round(float64(height)*float64(orig.X)/float64(orig.Y))))
	}
	return width, height
}
