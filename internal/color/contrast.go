package color

// DefaultContrastDelta is the additive offset used by the WCAG contrast formula.
const DefaultContrastDelta = 0.05

// ContrastRatio returns the contrast ratio of two luminances using
// DefaultContrastDelta.
func ContrastRatio(lumA, lumB float64) float64 {
	return ContrastRatioDelta(lumA, lumB, DefaultContrastDelta)
}

// ContrastRatioDelta returns (brighter + delta) / (darker + delta).
//
// Equal luminances always yield exactly 1, including the degenerate case where
// both luminances and delta are zero. Inputs are not range-checked; callers
// should pass luminances in [0, 1] and delta >= 0.
func ContrastRatioDelta(lumA, lumB, delta float64) float64 {
	if lumA == lumB {
		return 1
	}
	brighter, darker := lumA, lumB
	if darker > brighter {
		brighter, darker = darker, brighter
	}
	return (brighter + delta) / (darker + delta)
}

// Contrast returns the contrast ratio between two colors with the default delta.
func Contrast(a, b RGBColor) float64 {
	return ContrastRatio(a.Luminance(), b.Luminance())
}

// HexContrast decodes two hex colors and returns their contrast ratio with the
// given delta.
func HexContrast(hexA, hexB string, delta float64) (float64, error) {
	a, err := RelativeLuminance(hexA)
	if err != nil {
		return 0, err
	}
	b, err := RelativeLuminance(hexB)
	if err != nil {
		return 0, err
	}
	return ContrastRatioDelta(a, b, delta), nil
}
