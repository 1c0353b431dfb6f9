package color

import (
	"fmt"
	"regexp"
	"strconv"
)

// hexPattern matches exactly six hex digits with an optional leading '#',
// capturing the red, green and blue pairs.
var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// DecodeHex parses a hex color string into its RGB channels.
//
// The leading '#' is optional and digits are case-insensitive. Any other
// length, a non-hex character, or surrounding whitespace is rejected with an
// error wrapping ErrInvalidColorFormat. No partial result is returned.
//
// # Example
//
//	c, err := color.DecodeHex("#1e90ff")
//	// c == RGBColor{R: 30, G: 144, B: 255}
func DecodeHex(hex string) (RGBColor, error) {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGBColor{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}

	var ch [3]uint8
	for i, pair := range m[1:] {
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			// Unreachable after the pattern match; kept so a bad pattern edit fails loudly.
			return RGBColor{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorFormat, hex, err)
		}
		ch[i] = uint8(v)
	}

	return RGBColor{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// IsValidHex reports whether hex is a well-formed 6-digit hex color.
func IsValidHex(hex string) bool {
	return hexPattern.MatchString(hex)
}

// NormalizeHex decodes and re-renders hex in canonical "#rrggbb" form.
func NormalizeHex(hex string) (string, error) {
	c, err := DecodeHex(hex)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}
