package server

import "github.com/ironsheep/paint-tools-mcp/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// objectSchema builds a JSON Schema object with the given properties.
func objectSchema(props map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func prop(typ, description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        typ,
		"description": description,
	}
}

func propDefault(typ, description string, def interface{}) map[string]interface{} {
	p := prop(typ, description)
	p["default"] = def
	return p
}

func pathProp() map[string]interface{} {
	return prop("string", "Absolute path to the image file")
}

func outputPathProp() map[string]interface{} {
	return prop("string", "Optional path to also write the result to (.png, .jpg, .jpeg, .bmp, .tiff or .qoi)")
}

func colorProp(description string) map[string]interface{} {
	return prop("string", description+" as RRGGBB or RRGGBBAA hex, optional leading #")
}

func regionProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x1": prop("integer", "Left edge X coordinate (inclusive)"),
			"y1": prop("integer", "Top edge Y coordinate (inclusive)"),
			"x2": prop("integer", "Right edge X coordinate (exclusive)"),
			"y2": prop("integer", "Bottom edge Y coordinate (exclusive)"),
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, alpha support and the color of its top-left pixel.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": pathProp(),
			}, "path"),
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": pathProp(),
			}, "path"),
		},
		{
			Name:        "image_unload",
			Description: "Drop an image from the server's cache so the next call re-reads it from disk. Without a path the whole cache is cleared.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": prop("string", "Image to drop. Omit to clear every cached image"),
			}),
		},

		// Color Sampling
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a pixel as hex, RGBA, HSV, HSL and Lab.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": pathProp(),
				"x":    prop("integer", "X coordinate (0-based)"),
				"y":    prop("integer", "Y coordinate (0-based)"),
			}, "path", "x", "y"),
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Sample colors at several labeled points in one call.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": pathProp(),
				"points": map[string]interface{}{
					"type":        "array",
					"description": "Points to sample",
					"items": objectSchema(map[string]interface{}{
						"x":     prop("integer", "X coordinate"),
						"y":     prop("integer", "Y coordinate"),
						"label": prop("string", "Optional label echoed back with the sample"),
					}, "x", "y"),
				},
			}, "path", "points"),
		},
		{
			Name:        "image_dominant_colors",
			Description: "Extract the most frequent colors of an image or region. Fully transparent pixels are ignored.",
			InputSchema: objectSchema(map[string]interface{}{
				"path":   pathProp(),
				"count":  propDefault("integer", "Number of colors to return", 5),
				"region": regionProp("Optional region to analyze"),
			}, "path"),
		},

		// Selection and Canvas
		{
			Name:        "image_crop",
			Description: "Crop a rectangular region from an image and return it as base64-encoded PNG, optionally scaled and saved to disk.",
			InputSchema: objectSchema(map[string]interface{}{
				"path":        pathProp(),
				"x1":          prop("integer", "Left edge X coordinate (0-based)"),
				"y1":          prop("integer", "Top edge Y coordinate (0-based)"),
				"x2":          prop("integer", "Right edge X coordinate (exclusive)"),
				"y2":          prop("integer", "Bottom edge Y coordinate (exclusive)"),
				"scale":       propDefault("number", "Scale factor applied after cropping", 1.0),
				"output_path": outputPathProp(),
			}, "path", "x1", "y1", "x2", "y2"),
		},
		{
			Name:        "image_select_content",
			Description: "Select the content of an image by trimming a uniform border. The border color is the top-left pixel; rows and columns matching it exactly are trimmed from each edge. A uniformly colored image selects everything.",
			InputSchema: objectSchema(map[string]interface{}{
				"path":        pathProp(),
				"crop":        propDefault("boolean", "Also return the selected content as PNG", false),
				"output_path": outputPathProp(),
			}, "path"),
		},
		{
			Name:        "image_select_rectangle",
			Description: "Compute the selection swept by a mouse drag, clipped to the image. With square set both sides use the shorter drag distance.",
			InputSchema: objectSchema(map[string]interface{}{
				"path":        pathProp(),
				"start_x":     prop("integer", "Drag start X"),
				"start_y":     prop("integer", "Drag start Y"),
				"end_x":       prop("integer", "Drag end X"),
				"end_y":       prop("integer", "Drag end Y"),
				"square":      propDefault("boolean", "Constrain the selection to a square", false),
				"crop":        propDefault("boolean", "Also return the selected pixels as PNG", false),
				"output_path": outputPathProp(),
			}, "path", "start_x", "start_y", "end_x", "end_y"),
		},
		{
			Name:        "image_resize_canvas",
			Description: "Resize the canvas without scaling the image. The image is placed according to the anchor; new area is transparent and a smaller canvas crops.",
			InputSchema: objectSchema(map[string]interface{}{
				"path":            pathProp(),
				"width":           prop("integer", "New canvas width in pixels"),
				"height":          prop("integer", "New canvas height in pixels"),
				"percent":         prop("number", "Size as a percentage of the current canvas. Overrides width and height"),
				"maintain_aspect": propDefault("boolean", "Derive the missing dimension from the current aspect ratio; width wins when both are given", false),
				"anchor": map[string]interface{}{
					"type":        "string",
					"description": "Where the existing image is pinned",
					"enum":        imaging.AnchorNames(),
					"default":     "center",
				},
				"output_path": outputPathProp(),
			}, "path"),
		},

		// Color Model
		{
			Name:        "color_convert",
			Description: "Convert a color given as hex, RGBA or HSV into every representation the server knows.",
			InputSchema: objectSchema(map[string]interface{}{
				"hex": colorProp("Color"),
				"rgba": objectSchema(map[string]interface{}{
					"r": prop("number", "Red"),
					"g": prop("number", "Green"),
					"b": prop("number", "Blue"),
					"a": prop("number", "Alpha, opaque when omitted"),
				}, "r", "g", "b"),
				"range": map[string]interface{}{
					"type":        "string",
					"description": "Scale of the rgba components",
					"enum":        []string{rangeByte, rangeUnit},
					"default":     rangeByte,
				},
				"hsv": objectSchema(map[string]interface{}{
					"h": prop("number", "Hue in degrees (0-360)"),
					"s": prop("number", "Saturation (0-100)"),
					"v": prop("number", "Value (0-100)"),
					"a": prop("number", "Alpha (0-255), opaque when omitted"),
				}, "h", "s", "v"),
			}),
		},
		{
			Name:        "color_adjust",
			Description: "Change one channel of a color the way a color picker slider does and return the new color. Channel hex replaces the whole color; an invalid hex leaves the color unchanged.",
			InputSchema: objectSchema(map[string]interface{}{
				"color": colorProp("Starting color"),
				"channel": map[string]interface{}{
					"type":        "string",
					"description": "Channel to set",
					"enum":        adjustChannels,
				},
				"value": prop("number", "New value: red, green, blue and alpha 0-255; hue 0-360; saturation and value 0-100"),
				"hex":   colorProp("Replacement color for channel hex"),
			}, "color", "channel"),
		},
		{
			Name:        "color_distance",
			Description: "Perceptual distance (CIEDE2000) between two colors. Values below about 1 are indistinguishable.",
			InputSchema: objectSchema(map[string]interface{}{
				"a": colorProp("First color"),
				"b": colorProp("Second color"),
			}, "a", "b"),
		},

		// Color Wheel
		{
			Name:        "color_wheel_pick",
			Description: "Map a point on an HSV color wheel to a color. Hue 0 is at the top and increases clockwise; saturation grows from the center to the rim.",
			InputSchema: objectSchema(map[string]interface{}{
				"x":      prop("number", "X in wheel coordinates (0 to 2*radius)"),
				"y":      prop("number", "Y in wheel coordinates (0 to 2*radius)"),
				"radius": prop("number", "Wheel radius in pixels"),
				"value":  propDefault("number", "Value of the picked color (0-100)", 100),
				"alpha":  propDefault("number", "Alpha of the picked color (0-255)", 255),
			}, "x", "y", "radius"),
		},
		{
			Name:        "color_wheel_locate",
			Description: "Find where a color sits on an HSV color wheel of the given radius.",
			InputSchema: objectSchema(map[string]interface{}{
				"color":  colorProp("Color to locate"),
				"radius": prop("number", "Wheel radius in pixels"),
			}, "color", "radius"),
		},
		{
			Name:        "color_wheel_render",
			Description: "Render an HSV color wheel as base64-encoded PNG. Pixels outside the circle are transparent.",
			InputSchema: objectSchema(map[string]interface{}{
				"diameter":    propDefault("integer", "Image size in pixels", defaultWheelDiameter),
				"value":       propDefault("number", "Value of every wheel color (0-100)", 100),
				"output_path": outputPathProp(),
			}),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
