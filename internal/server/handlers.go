package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/paint-tools-mcp/internal/colormodel"
	"github.com/ironsheep/paint-tools-mcp/internal/imaging"
	"github.com/ironsheep/paint-tools-mcp/internal/selection"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "color_convert").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	s.logger.Debug("tool call", "tool", params.Name)

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Debug("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_unload":
		return s.handleImageUnload(args)

	// Color Sampling
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)

	// Selection and Canvas
	case "image_crop":
		return s.handleImageCrop(args)
	case "image_select_content":
		return s.handleImageSelectContent(args)
	case "image_select_rectangle":
		return s.handleImageSelectRectangle(args)
	case "image_resize_canvas":
		return s.handleImageResizeCanvas(args)

	// Color Model
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_adjust":
		return s.handleColorAdjust(args)
	case "color_distance":
		return s.handleColorDistance(args)

	// Color Wheel
	case "color_wheel_pick":
		return s.handleColorWheelPick(args)
	case "color_wheel_locate":
		return s.handleColorWheelLocate(args)
	case "color_wheel_render":
		return s.handleColorWheelRender(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// encodeResult encodes img for the response and, when outputPath is set,
// also writes it to disk. A cached copy of outputPath is dropped so later
// loads see the new file.
func (s *Server) encodeResult(img image.Image, outputPath string) (*imaging.EncodedImage, error) {
	if outputPath != "" {
		if err := imaging.Export(img, outputPath); err != nil {
			return nil, err
		}
		s.cache.Evict(outputPath)
		s.logger.Debug("wrote image", "path", outputPath)
	}

	enc, err := imaging.Encode(img)
	if err != nil {
		return nil, err
	}
	enc.SavedTo = outputPath
	return enc, nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageUnloadResult struct {
	Cleared string `json:"cleared"`
	Cached  int    `json:"cached"`
}

func (s *Server) handleImageUnload(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	if a.Path == "" {
		s.cache.Clear()
		return &imageUnloadResult{Cleared: "all", Cached: s.cache.Len()}, nil
	}
	s.cache.Evict(a.Path)
	return &imageUnloadResult{Cleared: a.Path, Cached: s.cache.Len()}, nil
}

// === Color Sampling Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string                 `json:"path"`
	Points []imaging.LabeledPoint `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColorsMulti(img, a.Points)
}

type imageDominantColorsArgs struct {
	Path   string          `json:"path"`
	Count  int             `json:"count"`
	Region *imaging.Region `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(img, a.Count, a.Region)
}

// === Selection and Canvas Handlers ===

type imageCropArgs struct {
	Path       string  `json:"path"`
	X1         int     `json:"x1"`
	Y1         int     `json:"y1"`
	X2         int     `json:"x2"`
	Y2         int     `json:"y2"`
	Scale      float64 `json:"scale"`
	OutputPath string  `json:"output_path"`
}

type imageCropResult struct {
	Region selection.Region `json:"region"`
	*imaging.EncodedImage
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	rect := imaging.Region{X1: a.X1, Y1: a.Y1, X2: a.X2, Y2: a.Y2}.Rect()
	cropped, err := imaging.Crop(img, rect, a.Scale)
	if err != nil {
		return nil, err
	}
	enc, err := s.encodeResult(cropped, a.OutputPath)
	if err != nil {
		return nil, err
	}
	return &imageCropResult{Region: selection.FromRect(rect), EncodedImage: enc}, nil
}

type imageSelectArgs struct {
	Path       string `json:"path"`
	Crop       bool   `json:"crop"`
	OutputPath string `json:"output_path"`
}

type selectionResult struct {
	Selection   selection.Region      `json:"selection"`
	ImageWidth  int                   `json:"image_width"`
	ImageHeight int                   `json:"image_height"`
	Whole       bool                  `json:"whole_image"`
	BorderColor string                `json:"border_color,omitempty"`
	SavedTo     string                `json:"saved_to,omitempty"`
	Image       *imaging.EncodedImage `json:"image,omitempty"`
}

// finishSelection fills the common parts of a selection result and crops
// when asked to.
func (s *Server) finishSelection(img image.Image, rect image.Rectangle, crop bool, outputPath string) (*selectionResult, error) {
	b := img.Bounds()
	res := &selectionResult{
		Selection:   selection.FromRect(rect),
		ImageWidth:  b.Dx(),
		ImageHeight: b.Dy(),
		Whole:       rect == b,
	}

	if crop || outputPath != "" {
		cropped, err := imaging.Crop(img, rect, 1.0)
		if err != nil {
			return nil, err
		}
		enc, err := s.encodeResult(cropped, outputPath)
		if err != nil {
			return nil, err
		}
		res.SavedTo = enc.SavedTo
		if crop {
			res.Image = enc
		}
	}
	return res, nil
}

func (s *Server) handleImageSelectContent(args json.RawMessage) (interface{}, error) {
	var a imageSelectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	rect := selection.ContentBounds(img)
	res, err := s.finishSelection(img, rect, a.Crop, a.OutputPath)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if !b.Empty() {
		res.BorderColor = colormodel.ToHex(colormodel.FromStdColor(img.At(b.Min.X, b.Min.Y)))
	}
	return res, nil
}

type imageSelectRectangleArgs struct {
	imageSelectArgs
	StartX int  `json:"start_x"`
	StartY int  `json:"start_y"`
	EndX   int  `json:"end_x"`
	EndY   int  `json:"end_y"`
	Square bool `json:"square"`
}

func (s *Server) handleImageSelectRectangle(args json.RawMessage) (interface{}, error) {
	var a imageSelectRectangleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	rect := selection.FromDrag(image.Pt(a.StartX, a.StartY), image.Pt(a.EndX, a.EndY), a.Square, img.Bounds())
	if rect.Empty() && (a.Crop || a.OutputPath != "") {
		return nil, fmt.Errorf("selection is empty, nothing to crop")
	}
	return s.finishSelection(img, rect, a.Crop, a.OutputPath)
}

type imageResizeCanvasArgs struct {
	Path           string  `json:"path"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Percent        float64 `json:"percent"`
	MaintainAspect bool    `json:"maintain_aspect"`
	Anchor         string  `json:"anchor"`
	OutputPath     string  `json:"output_path"`
}

type imageResizeCanvasResult struct {
	Anchor         string `json:"anchor"`
	OriginalWidth  int    `json:"original_width"`
	OriginalHeight int    `json:"original_height"`
	OffsetX        int    `json:"offset_x"`
	OffsetY        int    `json:"offset_y"`
	*imaging.EncodedImage
}

// canvasSize resolves the requested canvas size. Percent wins over explicit
// sizes; otherwise a zero dimension either follows the aspect ratio or keeps
// the current size.
func (a imageResizeCanvasArgs) canvasSize(orig image.Point) (int, int, error) {
	if a.Percent < 0 {
		return 0, 0, fmt.Errorf("percent must be positive, got %v", a.Percent)
	}
	if a.Percent > 0 {
		p, err := imaging.ScaleByPercent(orig, a.Percent)
		if err != nil {
			return 0, 0, err
		}
		return p.X, p.Y, nil
	}

	if a.Width < 0 || a.Height < 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", imaging.ErrInvalidSize, a.Width, a.Height)
	}
	if a.Width == 0 && a.Height == 0 {
		return 0, 0, fmt.Errorf("width, height or percent is required")
	}

	if a.MaintainAspect {
		w, h := imaging.KeepAspect(orig, a.Width, a.Height)
		return w, h, nil
	}

	w, h := a.Width, a.Height
	if w == 0 {
		w = orig.X
	}
	if h == 0 {
		h = orig.Y
	}
	return w, h, nil
}

func (s *Server) handleImageResizeCanvas(args json.RawMessage) (interface{}, error) {
	var a imageResizeCanvasArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	anchor, err := imaging.ParseAnchor(a.Anchor)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	orig := img.Bounds().Size()
	w, h, err := a.canvasSize(orig)
	if err != nil {
		return nil, err
	}

	resized, err := imaging.ResizeCanvas(img, w, h, anchor)
	if err != nil {
		return nil, err
	}
	enc, err := s.encodeResult(resized, a.OutputPath)
	if err != nil {
		return nil, err
	}

	offset := anchor.Offset(orig, image.Pt(w, h))
	return &imageResizeCanvasResult{
		Anchor:         anchor.String(),
		OriginalWidth:  orig.X,
		OriginalHeight: orig.Y,
		OffsetX:        offset.X,
		OffsetY:        offset.Y,
		EncodedImage:   enc,
	}, nil
}
