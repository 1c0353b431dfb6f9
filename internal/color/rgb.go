package color

import "fmt"

// RGBColor represents an RGB color with 8-bit components.
//
// Channel order is fixed (red, green, blue) and there is no alpha channel.
// RGBColor satisfies image/color.Color as a fully opaque color, so it can be
// handed directly to image libraries.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Common endpoints used by shading and contrast checks.
var (
	Black = RGBColor{0, 0, 0}
	White = RGBColor{255, 255, 255}
)

// Packed returns the color as a 24-bit integer with red in bits 16-23, green
// in bits 8-15 and blue in bits 0-7.
func (c RGBColor) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// FromPacked unpacks a 24-bit integer into its channels. Bits above 23 are
// ignored.
func FromPacked(n uint32) RGBColor {
	return RGBColor{
		R: uint8(n >> 16 & 0xff),
		G: uint8(n >> 8 & 0xff),
		B: uint8(n & 0xff),
	}
}

// Hex renders the color as "#rrggbb" in lowercase.
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%06x", c.Packed())
}

// String implements fmt.Stringer.
func (c RGBColor) String() string {
	return c.Hex()
}

// RGBA implements image/color.Color. The color is always fully opaque.
func (c RGBColor) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// EncodeHex renders c as a canonical hex color. It is the inverse of DecodeHex.
func EncodeHex(c RGBColor) string {
	return c.Hex()
}
