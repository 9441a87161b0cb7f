package server

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
)

func TestHandleToolsCall_ColorConvert(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		args    map[string]interface{}
		wantHex string
	}{
		{"hex with hash", map[string]interface{}{"hex": "#FF0000"}, "FF0000FF"},
		{"hex with alpha", map[string]interface{}{"hex": "00ff0080"}, "00FF0080"},
		{"rgba bytes", map[string]interface{}{"rgba": map[string]interface{}{"r": 0, "g": 128, "b": 255}}, "0080FFFF"},
		{"rgba unit", map[string]interface{}{
			"rgba":  map[string]interface{}{"r": 1, "g": 0.5, "b": 0, "a": 0.5},
			"range": "0-1",
		}, "FF800080"},
		{"hsv green", map[string]interface{}{"hsv": map[string]interface{}{"h": 120, "s": 100, "v": 100}}, "00FF00FF"},
		{"hsv wraps hue", map[string]interface{}{"hsv": map[string]interface{}{"h": 480, "s": 100, "v": 100}}, "00FF00FF"},
		{"hsv zero value", map[string]interface{}{"hsv": map[string]interface{}{"h": 0, "s": 0, "v": 0}}, "000000FF"},
		{"hsv alpha", map[string]interface{}{"hsv": map[string]interface{}{"h": 240, "s": 100, "v": 100, "a": 0}}, "0000FF00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mustCallTool(t, s, "color_convert", tt.args)
			if out["hex"] != tt.wantHex {
				t.Errorf("hex: got %v, want %s", out["hex"], tt.wantHex)
			}
			for _, key := range []string{"css", "rgba", "float", "hsv", "hsl", "lab"} {
				if _, ok := out[key]; !ok {
					t.Errorf("missing %s representation", key)
				}
			}
		})
	}
}

func TestHandleToolsCall_ColorConvert_Representations(t *testing.T) {
	s := newTestServer(t)
	out := mustCallTool(t, s, "color_convert", map[string]interface{}{"hex": "FF8040"})

	if out["css"] != "#ff8040" {
		t.Errorf("css: got %v, want #ff8040", out["css"])
	}
	rgba := objField(t, out, "rgba")
	if intField(t, rgba, "r") != 255 || intField(t, rgba, "g") != 128 || intField(t, rgba, "b") != 64 {
		t.Errorf("rgba: got %v", rgba)
	}
	hsv := objField(t, out, "hsv")
	if hsv["h"] != 20.1 || hsv["s"] != 74.9 || hsv["v"] != 100.0 {
		t.Errorf("hsv: got %v, want h=20.1 s=74.9 v=100", hsv)
	}
}

func TestHandleToolsCall_ColorConvert_Errors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		args   map[string]interface{}
		substr string
	}{
		{"nothing", map[string]interface{}{}, "exactly one"},
		{"two inputs", map[string]interface{}{"hex": "FFFFFF", "hsv": map[string]interface{}{"h": 0, "s": 0, "v": 0}}, "exactly one"},
		{"bad hex length", map[string]interface{}{"hex": "FFF"}, "invalid hex"},
		{"bad hex digit", map[string]interface{}{"hex": "GG0000"}, "invalid hex"},
		{"byte out of range", map[string]interface{}{"rgba": map[string]interface{}{"r": 256, "g": 0, "b": 0}}, "r must be between"},
		{"unit out of range", map[string]interface{}{"rgba": map[string]interface{}{"r": 2, "g": 0, "b": 0}, "range": "0-1"}, "r must be between"},
		{"unknown range", map[string]interface{}{"rgba": map[string]interface{}{"r": 0, "g": 0, "b": 0}, "range": "0-65535"}, "unknown range"},
		{"saturation out of range", map[string]interface{}{"hsv": map[string]interface{}{"h": 0, "s": 101, "v": 0}}, "s must be between"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantToolError(t, s, "color_convert", tt.args, tt.substr)
		})
	}
}

func TestHandleToolsCall_ColorAdjust(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name        string
		color       string
		channel     string
		value       interface{}
		hex         string
		wantHex     string
		wantChanged bool
	}{
		{"red", "FF8040", "red", 0, "", "008040FF", true},
		{"green", "#000000", "green", 255, "", "00FF00FF", true},
		{"blue", "000000", "blue", 128, "", "000080FF", true},
		{"alpha", "FF0000", "alpha", 128, "", "FF000080", true},
		{"hue", "FF0000", "hue", 120, "", "00FF00FF", true},
		{"saturation to zero", "FF0000", "saturation", 0, "", "FFFFFFFF", true},
		{"value", "FF0000", "value", 50, "", "800000FF", true},
		{"same value", "FF0000", "red", 255, "", "FF0000FF", false},
		{"channel case", "FF0000", " Hue ", 240, "", "0000FFFF", true},
		{"hex", "FF0000", "hex", nil, "#00FF00", "00FF00FF", true},
		{"invalid hex keeps color", "FF0000", "hex", nil, "GG0000", "FF0000FF", false},
		{"short hex keeps color", "12345678", "hex", nil, "123", "12345678", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := map[string]interface{}{
				"color":   tt.color,
				"channel": tt.channel,
			}
			if tt.value != nil {
				args["value"] = tt.value
			}
			if tt.hex != "" {
				args["hex"] = tt.hex
			}

			out := mustCallTool(t, s, "color_adjust", args)
			if out["hex"] != tt.wantHex {
				t.Errorf("hex: got %v, want %s", out["hex"], tt.wantHex)
			}
			if out["changed"] != tt.wantChanged {
				t.Errorf("changed: got %v, want %v", out["changed"], tt.wantChanged)
			}
		})
	}
}

func TestHandleToolsCall_ColorAdjust_Errors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		args   map[string]interface{}
		substr string
	}{
		{"missing color", map[string]interface{}{"channel": "red", "value": 1}, "color is required"},
		{"invalid color", map[string]interface{}{"color": "nothex", "channel": "red", "value": 1}, "invalid color"},
		{"unknown channel", map[string]interface{}{"color": "FF0000", "channel": "luma", "value": 1}, "unknown channel"},
		{"missing value", map[string]interface{}{"color": "FF0000", "channel": "red"}, "value is required"},
		{"red too large", map[string]interface{}{"color": "FF0000", "channel": "red", "value": 256}, "between 0 and 255"},
		{"hue too large", map[string]interface{}{"color": "FF0000", "channel": "hue", "value": 361}, "between 0 and 360"},
		{"value negative", map[string]interface{}{"color": "FF0000", "channel": "value", "value": -1}, "between 0 and 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantToolError(t, s, "color_adjust", tt.args, tt.substr)
		})
	}
}

func TestHandleToolsCall_ColorDistance(t *testing.T) {
	s := newTestServer(t)

	out := mustCallTool(t, s, "color_distance", map[string]interface{}{"a": "#336699", "b": "336699FF"})
	if out["delta_e"] != 0.0 {
		t.Errorf("identical colors: got %v, want 0", out["delta_e"])
	}

	out = mustCallTool(t, s, "color_distance", map[string]interface{}{"a": "000000", "b": "FFFFFF"})
	if d, _ := out["delta_e"].(float64); d < 99 || d > 101 {
		t.Errorf("black/white distance: got %v, want about 100", out["delta_e"])
	}
	if out["a"] != "000000FF" || out["b"] != "FFFFFFFF" {
		t.Errorf("echoed colors: got %v and %v", out["a"], out["b"])
	}

	wantToolError(t, s, "color_distance", map[string]interface{}{"a": "000000"}, "b is required")
}

func TestHandleToolsCall_ColorWheelPick(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name       string
		x, y       float64
		value      interface{}
		wantHex    string
		wantInside bool
	}{
		{"top is red", 50, 0, nil, "FF0000FF", true},
		{"right is hue 90", 100, 50, nil, "80FF00FF", true},
		{"bottom is cyan", 50, 100, nil, "00FFFFFF", true},
		{"center is white", 50, 50, nil, "FFFFFFFF", true},
		{"outside projects to rim", 150, 50, nil, "80FF00FF", false},
		{"half value", 50, 0, 50, "800000FF", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := map[string]interface{}{"x": tt.x, "y": tt.y, "radius": 50}
			if tt.value != nil {
				args["value"] = tt.value
			}
			out := mustCallTool(t, s, "color_wheel_pick", args)
			if out["hex"] != tt.wantHex {
				t.Errorf("hex: got %v, want %s", out["hex"], tt.wantHex)
			}
			if out["inside"] != tt.wantInside {
				t.Errorf("inside: got %v, want %v", out["inside"], tt.wantInside)
			}
		})
	}

	wantToolError(t, s, "color_wheel_pick", map[string]interface{}{"x": 1, "y": 1, "radius": 0}, "radius")
	wantToolError(t, s, "color_wheel_pick", map[string]interface{}{"x": 1, "y": 1, "radius": 5, "alpha": 300}, "alpha")
}

func TestHandleToolsCall_ColorWheelLocate(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		color   string
		wantX   float64
		wantY   float64
		wantHue float64
		wantSat float64
	}{
		{"FF0000", 50, 0, 0, 100},
		{"00FFFF", 50, 100, 180, 100},
		{"FFFFFF", 50, 50, 0, 0},
		{"00FF00", 93.3, 75, 120, 100},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			out := mustCallTool(t, s, "color_wheel_locate", map[string]interface{}{"color": tt.color, "radius": 50})
			if out["x"] != tt.wantX || out["y"] != tt.wantY {
				t.Errorf("point: got (%v,%v), want (%v,%v)", out["x"], out["y"], tt.wantX, tt.wantY)
			}
			if out["hue"] != tt.wantHue {
				t.Errorf("hue: got %v, want %v", out["hue"], tt.wantHue)
			}
			if out["saturation"] != tt.wantSat {
				t.Errorf("saturation: got %v, want %v", out["saturation"], tt.wantSat)
			}
		})
	}
}

func TestHandleToolsCall_ColorWheelLocateThenPick(t *testing.T) {
	s := newTestServer(t)

	for _, hex := range []string{"FF0000", "00FF00", "0000FF", "FFFF00", "FF00FF", "00FFFF"} {
		t.Run(hex, func(t *testing.T) {
			loc := mustCallTool(t, s, "color_wheel_locate", map[string]interface{}{"color": hex, "radius": 64})

			out := mustCallTool(t, s, "color_wheel_pick", map[string]interface{}{
				"x":      loc["x"],
				"y":      loc["y"],
				"radius": 64,
			})
			if out["inside"] != true {
				t.Errorf("point (%v,%v) from locate should be inside the wheel", loc["x"], loc["y"])
			}
			if out["hex"] != hex+"FF" {
				t.Errorf("picked color: got %v, want %sFF", out["hex"], hex)
			}
		})
	}
}

func TestHandleToolsCall_ColorWheelRender(t *testing.T) {
	s := newTestServer(t)
	outPath := filepath.Join(t.TempDir(), "wheel.png")

	out := mustCallTool(t, s, "color_wheel_render", map[string]interface{}{
		"diameter":    32,
		"value":       75,
		"output_path": outPath,
	})

	if intField(t, out, "width") != 32 || intField(t, out, "height") != 32 {
		t.Errorf("size: got %vx%v, want 32x32", out["width"], out["height"])
	}
	if _, err := base64.StdEncoding.DecodeString(out["image_base64"].(string)); err != nil {
		t.Errorf("image_base64 is not base64: %v", err)
	}
	if out["saved_to"] != outPath {
		t.Errorf("saved_to: got %v", out["saved_to"])
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("wheel not written: %v", err)
	}

	wantToolError(t, s, "color_wheel_render", map[string]interface{}{"diameter": -1}, "invalid canvas size")
	wantToolError(t, s, "color_wheel_render", map[string]interface{}{"value": 101}, "value")
}
