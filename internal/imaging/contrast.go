package imaging

import (
	"image"

	"github.com/ironsheep/color-tools-mcp/internal/adapt"
	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// ContrastReport describes the contrast between two sampled pixels.
type ContrastReport struct {
	Foreground ColorSample   `json:"foreground"`
	Background ColorSample   `json:"background"`
	Ratio      float64       `json:"ratio"`
	Level      adapt.Level   `json:"level"`
	Pass       bool          `json:"pass"`                 // Ratio >= MinRatio
	MinRatio   float64       `json:"min_ratio"`            // Target used for Pass
	Suggestion *adapt.Result `json:"suggestion,omitempty"` // Adjusted foreground when Pass is false
}

// CheckContrast samples fg and bg and reports their contrast ratio against
// opts.MinRatio. When the pair fails, Suggestion holds the foreground
// EnsureContrast would use instead.
func CheckContrast(img image.Image, fg, bg Point, opts adapt.Options) (*ContrastReport, error) {
	fgc, err := PixelColor(img, fg.X, fg.Y)
	if err != nil {
		return nil, err
	}
	bgc, err := PixelColor(img, bg.X, bg.Y)
	if err != nil {
		return nil, err
	}
	return contrastReport(fgc, bgc, opts)
}

// CheckRegionContrast is CheckContrast over the average colors of two regions.
func CheckRegionContrast(img image.Image, fg, bg Region, opts adapt.Options) (*ContrastReport, error) {
	fgs, err := RegionColor(img, fg)
	if err != nil {
		return nil, err
	}
	bgs, err := RegionColor(img, bg)
	if err != nil {
		return nil, err
	}
	return contrastReport(fgs.RGB, bgs.RGB, opts)
}

func contrastReport(fg, bg color.RGBColor, opts adapt.Options) (*ContrastReport, error) {
	if opts.MinRatio == 0 {
		opts.MinRatio = adapt.DefaultOptions().MinRatio
	}
	if opts.Step == 0 {
		opts.Step = adapt.DefaultOptions().Step
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	ratio := color.ContrastRatioDelta(fg.Luminance(), bg.Luminance(), opts.Delta)
	report := &ContrastReport{
		Foreground: NewColorSample(fg),
		Background: NewColorSample(bg),
		Ratio:      ratio,
		Level:      adapt.Grade(ratio),
		Pass:       ratio >= opts.MinRatio,
		MinRatio:   opts.MinRatio,
	}

	if !report.Pass {
		suggestion, err := adapt.EnsureContrast(fg.Hex(), bg.Hex(), opts)
		if err != nil {
			return nil, err
		}
		report.Suggestion = suggestion
	}
	return report, nil
}
