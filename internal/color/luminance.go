package color

import "math"

// sRGB gamma constants.
const (
	linearKnee    = 0.03928
	linearSlope   = 12.92
	gammaOffset   = 0.055
	gammaScale    = 1.055
	gammaExponent = 2.4
)

// Perceptual channel weights. Green dominates perceived brightness, blue
// contributes least.
const (
	weightR = 0.2126
	weightG = 0.7152
	weightB = 0.0722
)

// Linearize applies sRGB gamma expansion to a normalized channel value v in
// [0, 1].
func Linearize(v float64) float64 {
	if v <= linearKnee {
		return v / linearSlope
	}
	return math.Pow((v+gammaOffset)/gammaScale, gammaExponent)
}

// Luminance returns the relative luminance of c in [0, 1].
func (c RGBColor) Luminance() float64 {
	r := Linearize(float64(c.R) / 255.0)
	g := Linearize(float64(c.G) / 255.0)
	b := Linearize(float64(c.B) / 255.0)
	return weightR*r + weightG*g + weightB*b
}

// RelativeLuminance decodes hex and returns its relative luminance.
//
// Decoding errors are returned unchanged (they wrap ErrInvalidColorFormat);
// the input is never repaired.
func RelativeLuminance(hex string) (float64, error) {
	c, err := DecodeHex(hex)
	if err != nil {
		return 0, err
	}
	return c.Luminance(), nil
}
