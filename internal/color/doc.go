// Package color implements the color adaptation engine: hex decoding, relative
// luminance, WCAG contrast ratios and shading toward black or white.
//
// Every function in this package is pure. Inputs are plain values, results are
// new values, and nothing here logs, reads the environment or touches the file
// system. All functions are safe to call concurrently from any goroutine.
//
// # Hex Colors
//
// A hex color is exactly six hexadecimal digits with an optional leading '#':
//
//	"#1e90ff", "1E90FF", "#FfFfFf"
//
// Three-digit shorthand and alpha channels are rejected. Rendered colors always
// use the canonical lowercase form with a leading '#'.
//
// # Luminance and Contrast
//
// Relative luminance follows the sRGB gamma model: each channel is normalized
// to [0,1], linearized (v/12.92 at or below 0.03928, ((v+0.055)/1.055)^2.4
// above), then weighted 0.2126 R + 0.7152 G + 0.0722 B.
//
// The contrast ratio of two luminances is (brighter + delta) / (darker + delta)
// with delta defaulting to 0.05, giving a range of 1 (identical) to 21 (black
// on white).
//
// # Shading
//
// Shading interpolates every channel toward white (positive percent) or black
// (negative percent):
//
//	channel' = round((target - channel) * |percent|) + channel
//
// Rounding is half away from zero (math.Round).
//
// # Error Handling
//
// Failures wrap one of two sentinel errors, so callers can test with errors.Is:
//   - ErrInvalidColorFormat: malformed hex string
//   - ErrInvalidPercent: shade percent outside [-1, 1] or NaN
package color
