package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/ironsheep/color-tools-mcp/internal/adapt"
	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/pkg/logging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_contrast", "image_shade").
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

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		logging.Warn(logSubsystem, "tool %s failed: %v", params.Name, err)
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Fills optional parameters from the configured contrast options
//  3. Loads images from cache as needed
//  4. Calls the color, adapt or imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Color Engine
	case "color_decode":
		return s.handleColorDecode(args)
	case "color_luminance":
		return s.handleColorLuminance(args)
	case "color_contrast":
		return s.handleColorContrast(args)
	case "color_shade":
		return s.handleColorShade(args)

	// Readability Adaptation
	case "color_ensure_contrast":
		return s.handleColorEnsureContrast(args)
	case "color_best_text":
		return s.handleColorBestText(args)
	case "color_swatch":
		return s.handleColorSwatch(args)

	// Image Colors
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_region_color":
		return s.handleImageRegionColor(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_contrast_check":
		return s.handleImageContrastCheck(args)
	case "image_shade":
		return s.handleImageShade(args)

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
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Color Engine Handlers ===

type hexArgs struct {
	Hex string `json:"hex"`
}

// DecodeResult is returned by color_decode.
type DecodeResult struct {
	Hex    string         `json:"hex"`
	RGB    color.RGBColor `json:"rgb"`
	Packed uint32         `json:"packed"`
}

func (s *Server) handleColorDecode(args json.RawMessage) (interface{}, error) {
	var a hexArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := color.DecodeHex(a.Hex)
	if err != nil {
		return nil, err
	}
	return &DecodeResult{Hex: c.Hex(), RGB: c, Packed: c.Packed()}, nil
}

// LuminanceResult is returned by color_luminance.
type LuminanceResult struct {
	Hex       string  `json:"hex"`
	Luminance float64 `json:"luminance"`
}

func (s *Server) handleColorLuminance(args json.RawMessage) (interface{}, error) {
	var a hexArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := color.DecodeHex(a.Hex)
	if err != nil {
		return nil, err
	}
	return &LuminanceResult{Hex: c.Hex(), Luminance: c.Luminance()}, nil
}

type colorContrastArgs struct {
	Foreground string   `json:"foreground"`
	Background string   `json:"background"`
	LuminanceA *float64 `json:"luminance_a"`
	LuminanceB *float64 `json:"luminance_b"`
	Delta      *float64 `json:"delta"`
}

// ContrastResult is returned by color_contrast.
type ContrastResult struct {
	Foreground string      `json:"foreground,omitempty"`
	Background string      `json:"background,omitempty"`
	LuminanceA float64     `json:"luminance_a"`
	LuminanceB float64     `json:"luminance_b"`
	Delta      float64     `json:"delta"`
	Ratio      float64     `json:"ratio"`
	Level      adapt.Level `json:"level"`
}

func (s *Server) handleColorContrast(args json.RawMessage) (interface{}, error) {
	var a colorContrastArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	delta := s.contrast.Delta
	if a.Delta != nil {
		delta = *a.Delta
	}
	if math.IsNaN(delta) || delta < 0 {
		return nil, fmt.Errorf("delta %v must be non-negative", delta)
	}

	res := &ContrastResult{Delta: delta}
	var err error
	if res.Foreground, res.LuminanceA, err = contrastSide(a.Foreground, a.LuminanceA, "foreground", "luminance_a"); err != nil {
		return nil, err
	}
	if res.Background, res.LuminanceB, err = contrastSide(a.Background, a.LuminanceB, "background", "luminance_b"); err != nil {
		return nil, err
	}

	res.Ratio = color.ContrastRatioDelta(res.LuminanceA, res.LuminanceB, delta)
	res.Level = adapt.Grade(res.Ratio)
	return res, nil
}

// contrastSide resolves one side of color_contrast: a hex color when given,
// otherwise a raw luminance.
func contrastSide(hex string, lum *float64, hexField, lumField string) (string, float64, error) {
	if hex != "" {
		c, err := color.DecodeHex(hex)
		if err != nil {
			return "", 0, fmt.Errorf("%s: %w", hexField, err)
		}
		return c.Hex(), c.Luminance(), nil
	}
	if lum == nil {
		return "", 0, fmt.Errorf("either %s or %s is required", hexField, lumField)
	}
	if math.IsNaN(*lum) || *lum < 0 || *lum > 1 {
		return "", 0, fmt.Errorf("%s %v not in [0, 1]", lumField, *lum)
	}
	return "", *lum, nil
}

type colorShadeArgs struct {
	Hex     string   `json:"hex"`
	Percent *float64 `json:"percent"`
}

// ShadeResult is returned by color_shade.
type ShadeResult struct {
	Input   string  `json:"input"`
	Output  string  `json:"output"`
	Percent float64 `json:"percent"`
}

func (s *Server) handleColorShade(args json.RawMessage) (interface{}, error) {
	var a colorShadeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Percent == nil {
		return nil, errors.New("percent is required")
	}
	out, err := color.ShadeColor(a.Hex, *a.Percent)
	if err != nil {
		return nil, err
	}
	in, _ := color.NormalizeHex(a.Hex)
	return &ShadeResult{Input: in, Output: out, Percent: *a.Percent}, nil
}

// === Readability Adaptation Handlers ===

type ensureContrastArgs struct {
	Foreground string   `json:"foreground"`
	Background string   `json:"background"`
	MinRatio   *float64 `json:"min_ratio"`
	Step       *float64 `json:"step"`
}

func (s *Server) handleColorEnsureContrast(args json.RawMessage) (interface{}, error) {
	var a ensureContrastArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts := s.contrast
	if a.MinRatio != nil {
		opts.MinRatio = *a.MinRatio
	}
	if a.Step != nil {
		opts.Step = *a.Step
	}
	return adapt.EnsureContrast(a.Foreground, a.Background, opts)
}

type bestTextArgs struct {
	Background string `json:"background"`
}

// BestTextResult is returned by color_best_text.
type BestTextResult struct {
	Background string      `json:"background"`
	Text       string      `json:"text"`
	Ratio      float64     `json:"ratio"`
	Level      adapt.Level `json:"level"`
}

func (s *Server) handleColorBestText(args json.RawMessage) (interface{}, error) {
	var a bestTextArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	text, ratio, err := adapt.BestText(a.Background)
	if err != nil {
		return nil, err
	}
	bg, _ := color.NormalizeHex(a.Background)
	return &BestTextResult{Background: bg, Text: text, Ratio: ratio, Level: adapt.Grade(ratio)}, nil
}

type swatchArgs struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a swatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	fg, err := color.DecodeHex(a.Foreground)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bg, err := color.DecodeHex(a.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	img, err := imaging.Swatch(fg, bg, a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(img)
}

// === Image Color Handlers ===

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

type imageRegionColorArgs struct {
	Path string `json:"path"`
	imaging.Region
}

func (s *Server) handleImageRegionColor(args json.RawMessage) (interface{}, error) {
	var a imageRegionColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.RegionColor(img, a.Region)
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

type imageContrastCheckArgs struct {
	Path             string          `json:"path"`
	Foreground       *imaging.Point  `json:"foreground"`
	Background       *imaging.Point  `json:"background"`
	ForegroundRegion *imaging.Region `json:"foreground_region"`
	BackgroundRegion *imaging.Region `json:"background_region"`
	MinRatio         *float64        `json:"min_ratio"`
}

func (s *Server) handleImageContrastCheck(args json.RawMessage) (interface{}, error) {
	var a imageContrastCheckArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts := s.contrast
	if a.MinRatio != nil {
		opts.MinRatio = *a.MinRatio
	}
	points := a.Foreground != nil && a.Background != nil
	regions := a.ForegroundRegion != nil && a.BackgroundRegion != nil
	if points == regions {
		return nil, fmt.Errorf("either foreground and background or foreground_region and background_region are required")
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if regions {
		return imaging.CheckRegionContrast(img, *a.ForegroundRegion, *a.BackgroundRegion, opts)
	}
	return imaging.CheckContrast(img, *a.Foreground, *a.Background, opts)
}

type imageShadeArgs struct {
	Path       string   `json:"path"`
	Percent    *float64 `json:"percent"`
	OutputPath string   `json:"output_path"`
}

func (s *Server) handleImageShade(args json.RawMessage) (interface{}, error) {
	var a imageShadeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Percent == nil {
		return nil, errors.New("percent is required")
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	shaded, err := imaging.ShadeImage(img, *a.Percent)
	if err != nil {
		return nil, err
	}
	if a.OutputPath == "" {
		return imaging.EncodePNG(shaded)
	}

	out, err := imaging.SaveImage(shaded, a.OutputPath)
	if err != nil {
		return nil, err
	}
	// The file may have been loaded before; drop the stale copy.
	s.cache.Evict(out.Path)
	return out, nil
}
