// Package server implements the MCP (Model Context Protocol) server for the
// color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the color engine,
// readability adaptation and image color sampling through the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Color Engine:
//   - color_decode: Hex to channels
//   - color_luminance: WCAG relative luminance
//   - color_contrast: Contrast ratio of two colors or two luminances
//   - color_shade: Lighten or darken a color
//
// Readability Adaptation:
//   - color_ensure_contrast: Shade a foreground until it meets a ratio
//   - color_best_text: Black or white text for a background
//   - color_swatch: PNG preview of a foreground on a background
//
// Image Colors:
//   - image_sample_color: Color at a pixel
//   - image_region_color: Average color of a region
//   - image_dominant_colors: Palette of the most common colors
//   - image_contrast_check: Contrast between two sampled pixels
//   - image_shade: Lighten or darken a whole image
//
// # Defaults
//
// min_ratio, delta and step fall back to the contrast section of the loaded
// configuration (see internal/config).
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Logs go to the pkg/logging logger, which must not write to stdout.
package server
