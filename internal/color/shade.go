package color

import (
	"fmt"
	"math"
)

// Shade moves every channel of c toward white (percent > 0) or black
// (percent < 0) by the fraction |percent|.
//
// Channels are extracted from and repacked into the 24-bit form (red highest
// byte), and each new channel is round((target - C) * |percent|) + C with
// rounding half away from zero. Percent 0 returns c unchanged, 1 returns
// White and -1 returns Black.
//
// A percent outside [-1, 1], or NaN, returns an error wrapping
// ErrInvalidPercent.
func (c RGBColor) Shade(percent float64) (RGBColor, error) {
	if math.IsNaN(percent) || percent < -1 || percent > 1 {
		return RGBColor{}, fmt.Errorf("%w: %v not in [-1, 1]", ErrInvalidPercent, percent)
	}

	target := 255.0
	if percent < 0 {
		target = 0
	}
	p := math.Abs(percent)

	num := c.Packed()
	r := shadeChannel(num>>16&0xff, target, p)
	g := shadeChannel(num>>8&0xff, target, p)
	b := shadeChannel(num&0xff, target, p)

	return FromPacked(r<<16 | g<<8 | b), nil
}

// shadeChannel interpolates a single channel. The result stays in [0, 255]
// because target and ch are both in range and p is in [0, 1].
func shadeChannel(ch uint32, target, p float64) uint32 {
	c := float64(ch)
	return uint32(math.Round((target-c)*p) + c)
}

// ShadeColor decodes hex, shades it by percent and renders the result as a
// lowercase "#rrggbb" string.
//
// Errors wrap ErrInvalidColorFormat for a malformed hex string and
// ErrInvalidPercent for a percent outside [-1, 1].
//
// # Example
//
//	lighter, _ := color.ShadeColor("#808080", 0.5)  // "#c0c0c0"
//	darker, _ := color.ShadeColor("#808080", -0.5)  // "#404040"
func ShadeColor(hex string, percent float64) (string, error) {
	c, err := DecodeHex(hex)
	if err != nil {
		return "", err
	}
	shaded, err := c.Shade(percent)
	if err != nil {
		return "", err
	}
	return shaded.Hex(), nil
}
