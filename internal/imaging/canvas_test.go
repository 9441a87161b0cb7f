package imaging

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

var (
	opaqueRed   = color.NRGBA{255, 0, 0, 255}
	transparent = color.NRGBA{}
)

func TestParseAnchor(t *testing.T) {
	tests := []struct {
		in   string
		want Anchor
	}{
		{"", AnchorCenter},
		{"center", AnchorCenter},
		{"Centre", AnchorCenter},
		{"top-left", AnchorTopLeft},
		{"NW", AnchorTopLeft},
		{"top", AnchorTop},
		{"ne", AnchorTopRight},
		{"left", AnchorLeft},
		{"e", AnchorRight},
		{" bottom-left ", AnchorBottomLeft},
		{"s", AnchorBottom},
		{"bottom-right", AnchorBottomRight},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAnchor(tt.in)
			if err != nil {
				t.Fatalf("ParseAnchor(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAnchor(%q): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseAnchor("upper-left"); !errors.Is(err, ErrUnknownAnchor) {
		t.Errorf("got %v, want ErrUnknownAnchor", err)
	}
}

func TestAnchorNames_RoundTrip(t *testing.T) {
	names := AnchorNames()
	if len(names) != 9 {
		t.Fatalf("expected 9 anchors, got %d", len(names))
	}
	for _, name := range names {
		a, err := ParseAnchor(name)
		if err != nil {
			t.Fatalf("ParseAnchor(%q) failed: %v", name, err)
		}
		if a.String() != name {
			t.Errorf("String(): got %s, want %s", a.String(), name)
		}
	}
}

func TestAnchor_Offset(t *testing.T) {
	oldSize := image.Pt(10, 20)
	grow := image.Pt(30, 40)
	shrink := image.Pt(4, 6)

	tests := []struct {
		anchor Anchor
		grow   image.Point
		shrink image.Point
	}{
		{AnchorTopLeft, image.Pt(0, 0), image.Pt(0, 0)},
		{AnchorTop, image.Pt(10, 0), image.Pt(-3, 0)},
		{AnchorTopRight, image.Pt(20, 0), image.Pt(-6, 0)},
		{AnchorLeft, image.Pt(0, 10), image.Pt(0, -7)},
		{AnchorCenter, image.Pt(10, 10), image.Pt(-3, -7)},
		{AnchorRight, image.Pt(20, 10), image.Pt(-6, -7)},
		{AnchorBottomLeft, image.Pt(0, 20), image.Pt(0, -14)},
		{AnchorBottom, image.Pt(10, 20), image.Pt(-3, -14)},
		{AnchorBottomRight, image.Pt(20, 20), image.Pt(-6, -14)},
	}

	for _, tt := range tests {
		t.Run(tt.anchor.String(), func(t *testing.T) {
			if got := tt.anchor.Offset(oldSize, grow); got != tt.grow {
				t.Errorf("grow: got %v, want %v", got, tt.grow)
			}
			if got := tt.anchor.Offset(oldSize, shrink); got != tt.shrink {
				t.Errorf("shrink: got %v, want %v", got, tt.shrink)
			}
		})
	}
}

func TestResizeCanvas_Grow(t *testing.T) {
	img := createInMemoryImage(10, 10, opaqueRed)

	result, err := ResizeCanvas(img, 20, 30, AnchorBottomRight)
	if err != nil {
		t.Fatalf("ResizeCanvas failed: %v", err)
	}

	if result.Bounds() != image.Rect(0, 0, 20, 30) {
		t.Fatalf("bounds: got %v, want 20x30", result.Bounds())
	}
	if got := result.NRGBAAt(0, 0); got != transparent {
		t.Errorf("new margin: got %v, want transparent", got)
	}
	if got := result.NRGBAAt(10, 20); got != opaqueRed {
		t.Errorf("old top-left: got %v, want red", got)
	}
	if got := result.NRGBAAt(19, 29); got != opaqueRed {
		t.Errorf("old bottom-right: got %v, want red", got)
	}
	if got := result.NRGBAAt(9, 29); got != transparent {
		t.Errorf("left of old image: got %v, want transparent", got)
	}
}

func TestResizeCanvas_ShrinkCrops(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := ResizeCanvas(img, 50, 50, AnchorTopRight)
	if err != nil {
		t.Fatalf("ResizeCanvas failed: %v", err)
	}

	// Top-right quadrant of the pattern is green.
	for _, p := range []image.Point{{0, 0}, {49, 49}, {25, 25}} {
		if got := result.NRGBAAt(p.X, p.Y); got != (color.NRGBA{0, 255, 0, 255}) {
			t.Errorf("pixel %v: got %v, want green", p, got)
		}
	}
}

func TestResizeCanvas_CenterKeepsMiddle(t *testing.T) {
	img := createInMemoryImage(4, 4, color.RGBA{0, 0, 0, 255})
	img.Set(1, 1, color.RGBA{255, 255, 255, 255})

	result, err := ResizeCanvas(img, 8, 8, AnchorCenter)
	if err != nil {
		t.Fatalf("ResizeCanvas failed: %v", err)
	}
	if got := result.NRGBAAt(3, 3); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("moved pixel: got %v, want white", got)
	}
	if got := result.NRGBAAt(1, 1); got != transparent {
		t.Errorf("margin: got %v, want transparent", got)
	}
}

func TestResizeCanvas_DoesNotModifySource(t *testing.T) {
	img := createInMemoryImage(5, 5, opaqueRed)

	if _, err := ResizeCanvas(img, 2, 2, AnchorTopLeft); err != nil {
		t.Fatalf("ResizeCanvas failed: %v", err)
	}
	if img.Bounds().Dx() != 5 {
		t.Error("source image was modified")
	}
}

func TestResizeCanvas_InvalidSize(t *testing.T) {
	img := createInMemoryImage(5, 5, opaqueRed)

	for _, size := range []image.Point{{0, 5}, {5, 0}, {-1, 5}, {MaxCanvasSize + 1, 5}} {
		if _, err := ResizeCanvas(img, size.X, size.Y, AnchorCenter); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("size %v: got %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestScaleByPercent(t *testing.T) {
	tests := []struct {
		size    image.Point
		percent float64
		want    image.Point
	}{
		{image.Pt(100, 50), 200, image.Pt(200, 100)},
		{image.Pt(100, 50), 50, image.Pt(50, 25)},
		{image.Pt(3, 3), 50, image.Pt(2, 2)},
		{image.Pt(10, 10), 1, image.Pt(1, 1)},
	}

	for _, tt := range tests {
		got, err := ScaleByPercent(tt.size, tt.percent)
		if err != nil {
			t.Fatalf("ScaleByPercent(%v, %v) failed: %v", tt.size, tt.percent, err)
		}
		if got != tt.want {
			t.Errorf("ScaleByPercent(%v, %v): got %v, want %v", tt.size, tt.percent, got, tt.want)
		}
	}
}

func TestScaleByPercent_TooLarge(t *testing.T) {
	for _, percent := range []float64{1e300, math.Inf(1), 100 * (MaxCanvasSize + 1)} {
		if _, err := ScaleByPercent(image.Pt(1, 1), percent); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("percent %v: got %v, want ErrInvalidSize", percent, err)
		}
	}
}

func TestKeepAspect(t *testing.T) {
	orig := image.Pt(400, 300)

	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"width given", 200, 0, 200, 150},
		{"height given", 0, 600, 800, 600},
		{"both given, width wins", 100, 999, 100, 75},
		{"neither", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := KeepAspect(orig, tt.width, tt.height)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
