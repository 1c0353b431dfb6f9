// Package imaging provides image-backed color sources for the color engine.
//
// Colors rarely arrive as hex strings alone: a screenshot of a UI holds the
// real foreground and background a reader sees. This package loads such
// images, samples pixels and regions into color.RGBColor values, checks the
// contrast between two points, extracts palettes, and produces images of its
// own (shaded copies and contrast swatches).
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Individual operations are
// stateless and never modify their input image; ShadeImage and Swatch return
// new images.
//
// # Color Representation
//
// Sampled colors are reported as canonical lowercase "#rrggbb" hex, 8-bit RGB
// components and relative luminance. Alpha is ignored when sampling; shading
// preserves it.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds
//   - Invalid region specifications (x1 >= x2 or y1 >= y2)
//   - Shade percents outside [-1, 1] (wrapping color.ErrInvalidPercent)
//   - File I/O and encoding errors
package imaging
