package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/paint-tools-mcp/internal/colormodel"
)

// MaxWheelDiameter bounds RenderWheel.
const MaxWheelDiameter = 2048

// RenderWheel draws a hue/saturation wheel of the given diameter at the
// given HSV value (0-1). Pixels outside the circle are transparent. Each
// pixel is colored from its center, using colormodel.Wheel geometry.
func RenderWheel(diameter int, value float64) (*image.NRGBA, error) {
	if diameter < 1 || diameter > MaxWheelDiameter {
		return nil, fmt.Errorf("%w: diameter %d (must be 1-%d)", ErrInvalidSize, diameter, MaxWheelDiameter)
	}

	wheel := colormodel.Wheel{Radius: float64(diameter) / 2}
	img := imaging.New(diameter, diameter, color.NRGBA{})

	for y := 0; y < diameter; y++ {
		for x := 0; x < diameter; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if !wheel.Contains(px, py) {
				continue
			}
			hsv := wheel.PointToHSV(px, py, value)
			img.SetNRGBA(x, y, colormodel.FromHSV(hsv.H, hsv.S, hsv.V, 1).NRGBA())
		}
	}

	return img, nil
}
