package adapt

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// Result describes the outcome of EnsureContrast.
type Result struct {
	Foreground    string  `json:"foreground"`     // Original foreground, canonical hex
	Background    string  `json:"background"`     // Background, canonical hex
	Adjusted      string  `json:"adjusted"`       // Foreground to use
	Percent       float64 `json:"percent"`        // Shade applied to reach Adjusted (0 if unchanged)
	OriginalRatio float64 `json:"original_ratio"` // Contrast before adjustment
	Ratio         float64 `json:"ratio"`          // Contrast of Adjusted on Background
	Level         Level   `json:"level"`          // WCAG grade of Ratio
	Satisfied     bool    `json:"satisfied"`      // Ratio >= MinRatio
	Changed       bool    `json:"changed"`        // Adjusted differs from Foreground
	Drift         float64 `json:"drift"`          // CIEDE2000 distance from Foreground to Adjusted
}

// candidate is one shaded foreground tried during the search.
type candidate struct {
	hex     string
	percent float64
	ratio   float64
}

// EnsureContrast returns a foreground that reaches opts.MinRatio against bg.
//
// When fg already passes it is returned unchanged. Otherwise fg is lightened
// if it is at least as bright as bg, and darkened if not, in steps of
// opts.Step up to a full shade. If that direction cannot reach the target the
// opposite direction is tried. When neither can, the highest-contrast
// candidate is returned with Satisfied set to false.
//
// Zero MinRatio and Step fall back to DefaultOptions. Malformed colors return
// errors wrapping color.ErrInvalidColorFormat.
func EnsureContrast(fg, bg string, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	fgc, err := color.DecodeHex(fg)
	if err != nil {
		return nil, err
	}
	bgc, err := color.DecodeHex(bg)
	if err != nil {
		return nil, err
	}

	bgLum := bgc.Luminance()
	fgLum := fgc.Luminance()
	original := color.ContrastRatioDelta(fgLum, bgLum, opts.Delta)

	res := &Result{
		Foreground:    fgc.Hex(),
		Background:    bgc.Hex(),
		Adjusted:      fgc.Hex(),
		OriginalRatio: original,
		Ratio:         original,
		Level:         Grade(original),
		Satisfied:     original >= opts.MinRatio,
	}
	if res.Satisfied {
		return res, nil
	}

	sign := -1.0
	if fgLum >= bgLum {
		sign = 1.0
	}

	best, ok := search(fgc, bgLum, sign, opts)
	if !ok {
		other, otherOK := search(fgc, bgLum, -sign, opts)
		if otherOK || other.ratio > best.ratio {
			best, ok = other, otherOK
		}
	}

	if best.ratio <= original {
		return res, nil
	}

	res.Adjusted = best.hex
	res.Percent = best.percent
	res.Ratio = best.ratio
	res.Level = Grade(best.ratio)
	res.Satisfied = ok
	res.Changed = best.hex != res.Foreground
	res.Drift = drift(fgc, best.hex)
	return res, nil
}

// search walks one direction and returns the first candidate meeting the
// target, or the best one seen with ok=false.
func search(fg color.RGBColor, bgLum, sign float64, opts Options) (candidate, bool) {
	step := math.Max(opts.Step, MinStep)
	steps := int(math.Ceil(1/step - 1e-9))
	var best candidate

	for i := 1; i <= steps; i++ {
		p := math.Min(float64(i)*step, 1) * sign
		shaded, err := fg.Shade(p)
		if err != nil {
			// p is always within [-1, 1].
			continue
		}
		ratio := color.ContrastRatioDelta(shaded.Luminance(), bgLum, opts.Delta)
		c := candidate{hex: shaded.Hex(), percent: p, ratio: ratio}
		if ratio >= opts.MinRatio {
			return c, true
		}
		if ratio > best.ratio {
			best = c
		}
	}
	return best, false
}

// drift returns the CIEDE2000 distance between c and the color hex.
func drift(c color.RGBColor, hex string) float64 {
	other, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	base, _ := colorful.MakeColor(c)
	return base.DistanceCIEDE2000(other)
}

// BestText returns black or white, whichever contrasts more with bg, together
// with the resulting ratio. Ties go to black.
func BestText(bg string) (string, float64, error) {
	bgc, err := color.DecodeHex(bg)
	if err != nil {
		return "", 0, err
	}
	onBlack := color.Contrast(color.Black, bgc)
	onWhite := color.Contrast(color.White, bgc)
	if onBlack >= onWhite {
		return color.Black.Hex(), onBlack, nil
	}
	return color.White.Hex(), onWhite, nil
}
