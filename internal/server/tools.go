package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Engine
		{
			Name:        "color_decode",
			Description: "Decode a hex color (#rrggbb or rrggbb, any case) into its red, green and blue channels and canonical lowercase form.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Hex color, e.g. \"#1E90FF\" or \"1e90ff\"",
					},
				},
				"required": []string{"hex"},
			},
		},
		{
			Name:        "color_luminance",
			Description: "Compute the WCAG relative luminance (0 = black, 1 = white) of a hex color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Hex color",
					},
				},
				"required": []string{"hex"},
			},
		},
		{
			Name:        "color_contrast",
			Description: "Compute the contrast ratio (1-21) between two colors, or between two raw luminance values, and grade it against WCAG levels. Hex inputs take precedence over luminances.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"foreground": map[string]interface{}{
						"type":        "string",
						"description": "Foreground hex color",
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Background hex color",
					},
					"luminance_a": map[string]interface{}{
						"type":        "number",
						"description": "First relative luminance in [0, 1], used when foreground is omitted",
					},
					"luminance_b": map[string]interface{}{
						"type":        "number",
						"description": "Second relative luminance in [0, 1], used when background is omitted",
					},
					"delta": map[string]interface{}{
						"type":        "number",
						"description": "Additive offset in the ratio formula. Default from configuration (0.05)",
					},
				},
			},
		},
		{
			Name:        "color_shade",
			Description: "Lighten (positive percent) or darken (negative percent) a hex color by moving each channel toward white or black.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Hex color",
					},
					"percent": map[string]interface{}{
						"type":        "number",
						"description": "Fraction in [-1, 1]. 0.25 lightens by 25%, -1 yields black",
						"minimum":     -1,
						"maximum":     1,
					},
				},
				"required": []string{"hex", "percent"},
			},
		},

		// Readability Adaptation
		{
			Name:        "color_ensure_contrast",
			Description: "Shade a foreground color until it reaches a minimum contrast ratio against a background. Returns the adjusted color, the shade applied, the new ratio, its WCAG level and how far the color drifted (CIEDE2000).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"foreground": map[string]interface{}{
						"type":        "string",
						"description": "Foreground (text) hex color",
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Background hex color",
					},
					"min_ratio": map[string]interface{}{
						"type":        "number",
						"description": "Target contrast ratio. Default from configuration (4.5, WCAG AA)",
					},
					"step": map[string]interface{}{
						"type":        "number",
						"description": "Shade increment tried per iteration, in (0, 1]. Default 0.1",
					},
				},
				"required": []string{"foreground", "background"},
			},
		},
		{
			Name:        "color_best_text",
			Description: "Pick black or white text for a background, whichever contrasts more.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Background hex color",
					},
				},
				"required": []string{"background"},
			},
		},
		{
			Name:        "color_swatch",
			Description: "Render a PNG preview of a foreground color on a background color and return it as base64.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"foreground": map[string]interface{}{
						"type":        "string",
						"description": "Foreground hex color (center block)",
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Background hex color (canvas)",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Width in pixels. Default 160",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Height in pixels. Default 80",
					},
				},
				"required": []string{"foreground", "background"},
			},
		},

		// Image Colors
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a specific pixel coordinate, with its luminance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_region_color",
			Description: "Get the average color of a rectangular region.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Return the N most common colors of an image or region, with luminance, as a palette. Useful for finding the background text sits on.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of dominant colors to return (default 5)",
						"default":     5,
					},
					"region": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional region to analyze. If omitted, analyzes entire image.",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_contrast_check",
			Description: "Sample a text pixel and a background pixel (or average two regions) from an image and check their contrast ratio. Failing pairs include a suggested foreground that passes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"foreground": map[string]interface{}{
						"type":        "object",
						"description": "Pixel on the text",
						"properties": map[string]interface{}{
							"x": map[string]interface{}{"type": "integer"},
							"y": map[string]interface{}{"type": "integer"},
						},
						"required": []string{"x", "y"},
					},
					"background": map[string]interface{}{
						"type":        "object",
						"description": "Pixel behind the text",
						"properties": map[string]interface{}{
							"x": map[string]interface{}{"type": "integer"},
							"y": map[string]interface{}{"type": "integer"},
						},
						"required": []string{"x", "y"},
					},
					"foreground_region": regionSchema("Region of text pixels, averaged. Use instead of foreground"),
					"background_region": regionSchema("Region behind the text, averaged. Use instead of background"),
					"min_ratio": map[string]interface{}{
						"type":        "number",
						"description": "Contrast ratio required to pass. Default from configuration (4.5)",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_shade",
			Description: "Lighten or darken every pixel of an image. Returns the result as base64 PNG, or writes it to output_path.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"percent": map[string]interface{}{
						"type":        "number",
						"description": "Fraction in [-1, 1]; positive lightens, negative darkens",
						"minimum":     -1,
						"maximum":     1,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file to write instead of returning base64. Format follows the extension",
					},
				},
				"required": []string{"path", "percent"},
			},
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

// regionSchema describes an imaging.Region argument.
func regionSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer", "description": "exclusive"},
			"y2": map[string]interface{}{"type": "integer", "description": "exclusive"},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}
