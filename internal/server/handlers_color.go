package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ironsheep/paint-tools-mcp/internal/colormodel"
	"github.com/ironsheep/paint-tools-mcp/internal/imaging"
)

// Scales accepted by color_convert for rgba input.
const (
	rangeByte = "0-255"
	rangeUnit = "0-1"
)

const defaultWheelDiameter = 256

// adjustChannels lists the channels color_adjust can set, in the order a
// picker dialog shows them.
var adjustChannels = []string{"red", "green", "blue", "alpha", "hue", "saturation", "value", "hex"}

// channelMax is the upper bound of each slider channel's input scale.
var channelMax = map[string]float64{
	"red":        255,
	"green":      255,
	"blue":       255,
	"alpha":      255,
	"hue":        360,
	"saturation": 100,
	"value":      100,
}

// parseColorArg parses a hex tool argument, with or without a leading '#'.
func parseColorArg(name, s string) (colormodel.Color, error) {
	if s == "" {
		return colormodel.Color{}, fmt.Errorf("%s is required", name)
	}
	c, ok := colormodel.ParseHexPrefixed(strings.TrimSpace(s))
	if !ok {
		return colormodel.Color{}, fmt.Errorf("invalid %s %q: want RRGGBB or RRGGBBAA hex", name, s)
	}
	return c, nil
}

func checkRange(name string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return fmt.Errorf("%s must be between %v and %v, got %v", name, lo, hi, v)
	}
	return nil
}

// === color_convert ===

type rgbaInput struct {
	R float64  `json:"r"`
	G float64  `json:"g"`
	B float64  `json:"b"`
	A *float64 `json:"a"`
}

type hsvInput struct {
	H float64  `json:"h"`
	S float64  `json:"s"`
	V float64  `json:"v"`
	A *float64 `json:"a"`
}

type colorConvertArgs struct {
	Hex   string     `json:"hex"`
	RGBA  *rgbaInput `json:"rgba"`
	Range string     `json:"range"`
	HSV   *hsvInput  `json:"hsv"`
}

// color resolves the single color given in the arguments.
func (a colorConvertArgs) color() (colormodel.Color, error) {
	given := 0
	for _, set := range []bool{a.Hex != "", a.RGBA != nil, a.HSV != nil} {
		if set {
			given++
		}
	}
	if given != 1 {
		return colormodel.Color{}, errors.New("exactly one of hex, rgba or hsv is required")
	}

	switch {
	case a.Hex != "":
		return parseColorArg("hex", a.Hex)

	case a.RGBA != nil:
		scale := 255.0
		switch a.Range {
		case "", rangeByte:
		case rangeUnit:
			scale = 1
		default:
			return colormodel.Color{}, fmt.Errorf("unknown range %q", a.Range)
		}
		alpha := scale
		if a.RGBA.A != nil {
			alpha = *a.RGBA.A
		}
		for _, ch := range []struct {
			name string
			v    float64
		}{{"r", a.RGBA.R}, {"g", a.RGBA.G}, {"b", a.RGBA.B}, {"a", alpha}} {
			if err := checkRange(ch.name, ch.v, 0, scale); err != nil {
				return colormodel.Color{}, err
			}
		}
		return colormodel.New(a.RGBA.R/scale, a.RGBA.G/scale, a.RGBA.B/scale, alpha/scale), nil

	default:
		alpha := 255.0
		if a.HSV.A != nil {
			alpha = *a.HSV.A
		}
		if err := checkRange("s", a.HSV.S, 0, 100); err != nil {
			return colormodel.Color{}, err
		}
		if err := checkRange("v", a.HSV.V, 0, 100); err != nil {
			return colormodel.Color{}, err
		}
		if err := checkRange("a", alpha, 0, 255); err != nil {
			return colormodel.Color{}, err
		}
		return colormodel.FromHSV(a.HSV.H, a.HSV.S/100, a.HSV.V/100, alpha/255), nil
	}
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := a.color()
	if err != nil {
		return nil, err
	}
	return colormodel.Describe(c), nil
}

// === color_adjust ===

type colorAdjustArgs struct {
	Color   string   `json:"color"`
	Channel string   `json:"channel"`
	Value   *float64 `json:"value"`
	Hex     string   `json:"hex"`
}

type colorAdjustResult struct {
	Channel  string `json:"channel"`
	Changed  bool   `json:"changed"`
	Previous string `json:"previous"`
	colormodel.Description
}

// adjust applies a one-channel edit to c. Slider values use the scale
// listed in channelMax.
func adjust(c colormodel.Color, channel string, v float64) colormodel.Color {
	switch channel {
	case "red":
		return c.WithRed(v / 255)
	case "green":
		return c.WithGreen(v / 255)
	case "blue":
		return c.WithBlue(v / 255)
	case "alpha":
		return c.WithAlpha(v / 255)
	case "hue":
		return c.WithHue(v)
	case "saturation":
		return c.WithSaturation(v / 100)
	default:
		return c.WithValue(v / 100)
	}
}

func (s *Server) handleColorAdjust(args json.RawMessage) (interface{}, error) {
	var a colorAdjustArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	prev, err := parseColorArg("color", a.Color)
	if err != nil {
		return nil, err
	}

	channel := strings.ToLower(strings.TrimSpace(a.Channel))
	next := prev

	if channel == "hex" {
		// An unparsable replacement keeps the previous color.
		if c, ok := colormodel.ParseHexPrefixed(strings.TrimSpace(a.Hex)); ok {
			next = c
		} else {
			s.logger.Debug("ignoring invalid hex", "hex", a.Hex)
		}
	} else {
		hi, ok := channelMax[channel]
		if !ok {
			return nil, fmt.Errorf("unknown channel %q, want one of %s", a.Channel, strings.Join(adjustChannels, ", "))
		}
		if a.Value == nil {
			return nil, fmt.Errorf("value is required for channel %s", channel)
		}
		if err := checkRange("value", *a.Value, 0, hi); err != nil {
			return nil, err
		}
		next = adjust(prev, channel, *a.Value)
	}

	prevHex := colormodel.ToHex(prev)
	desc := colormodel.Describe(next)
	return &colorAdjustResult{
		Channel:     channel,
		Changed:     desc.Hex != prevHex,
		Previous:    prevHex,
		Description: desc,
	}, nil
}

// === color_distance ===

type colorDistanceArgs struct {
	A string `json:"a"`
	B string `json:"b"`
}

type colorDistanceResult struct {
	A      string  `json:"a"`
	B      string  `json:"b"`
	DeltaE float64 `json:"delta_e"`
}

func (s *Server) handleColorDistance(args json.RawMessage) (interface{}, error) {
	var a colorDistanceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	ca, err := parseColorArg("a", a.A)
	if err != nil {
		return nil, err
	}
	cb, err := parseColorArg("b", a.B)
	if err != nil {
		return nil, err
	}
	return &colorDistanceResult{
		A:      colormodel.ToHex(ca),
		B:      colormodel.ToHex(cb),
		DeltaE: math.Round(colormodel.Distance(ca, cb)*10000) / 10000,
	}, nil
}

// === Color Wheel Handlers ===

type colorWheelPickArgs struct {
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Radius float64  `json:"radius"`
	Value  *float64 `json:"value"`
	Alpha  *float64 `json:"alpha"`
}

type colorWheelPickResult struct {
	Inside bool `json:"inside"`
	colormodel.Description
}

func (s *Server) handleColorWheelPick(args json.RawMessage) (interface{}, error) {
	var a colorWheelPickArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Radius <= 0 {
		return nil, fmt.Errorf("radius must be positive, got %v", a.Radius)
	}
	value, alpha := 100.0, 255.0
	if a.Value != nil {
		value = *a.Value
	}
	if a.Alpha != nil {
		alpha = *a.Alpha
	}
	if err := checkRange("value", value, 0, 100); err != nil {
		return nil, err
	}
	if err := checkRange("alpha", alpha, 0, 255); err != nil {
		return nil, err
	}

	wheel := colormodel.Wheel{Radius: a.Radius}
	hsv := wheel.PointToHSV(a.X, a.Y, value/100)
	c := colormodel.FromHSV(hsv.H, hsv.S, hsv.V, alpha/255)

	return &colorWheelPickResult{
		Inside:      wheel.Contains(a.X, a.Y),
		Description: colormodel.Describe(c),
	}, nil
}

type colorWheelLocateArgs struct {
	Color  string  `json:"color"`
	Radius float64 `json:"radius"`
}

type colorWheelLocateResult struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
}

func (s *Server) handleColorWheelLocate(args json.RawMessage) (interface{}, error) {
	var a colorWheelLocateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Radius <= 0 {
		return nil, fmt.Errorf("radius must be positive, got %v", a.Radius)
	}
	c, err := parseColorArg("color", a.Color)
	if err != nil {
		return nil, err
	}

	hsv := colormodel.ToHSV(c)
	x, y := colormodel.Wheel{Radius: a.Radius}.HSVToPoint(hsv)
	return &colorWheelLocateResult{
		X:          round2(x),
		Y:          round2(y),
		Hue:        round2(hsv.H),
		Saturation: round2(hsv.S * 100),
	}, nil
}

type colorWheelRenderArgs struct {
	Diameter   int      `json:"diameter"`
	Value      *float64 `json:"value"`
	OutputPath string   `json:"output_path"`
}

func (s *Server) handleColorWheelRender(args json.RawMessage) (interface{}, error) {
	var a colorWheelRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Diameter == 0 {
		a.Diameter = defaultWheelDiameter
	}
	value := 100.0
	if a.Value != nil {
		value = *a.Value
	}
	if err := checkRange("value", value, 0, 100); err != nil {
		return nil, err
	}

	img, err := imaging.RenderWheel(a.Diameter, value/100)
	if err != nil {
		return nil, err
	}
	return s.encodeResult(img, a.OutputPath)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
