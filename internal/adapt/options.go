package adapt

import (
	"errors"
	"fmt"
	"math"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// ErrInvalidOptions is returned when Options fail validation.
var ErrInvalidOptions = errors.New("invalid adaptation options")

// Options controls EnsureContrast.
type Options struct {
	// MinRatio is the contrast ratio the foreground must reach (1-21).
	MinRatio float64 `json:"min_ratio" yaml:"min_ratio"`

	// Delta is the additive offset in the contrast formula.
	Delta float64 `json:"delta" yaml:"delta"`

	// Step is the shade increment tried on each iteration [MinStep, 1].
	Step float64 `json:"step" yaml:"step"`
}

// MinStep is the smallest accepted Step. A full shade moves each channel
// through at most 255 distinct 8-bit values, so finer steps add no candidates.
const MinStep = 1.0 / 255

// DefaultOptions targets WCAG AA with the standard delta and 10% steps.
func DefaultOptions() Options {
	return Options{
		MinRatio: RatioAA,
		Delta:    color.DefaultContrastDelta,
		Step:     0.1,
	}
}

// Validate checks that every field is in range.
func (o Options) Validate() error {
	switch {
	case math.IsNaN(o.MinRatio) || o.MinRatio < 1 || o.MinRatio > 21:
		return fmt.Errorf("%w: min_ratio %v not in [1, 21]", ErrInvalidOptions, o.MinRatio)
	case math.IsNaN(o.Delta) || o.Delta < 0:
		return fmt.Errorf("%w: delta %v is negative", ErrInvalidOptions, o.Delta)
	case math.IsNaN(o.Step) || o.Step < MinStep || o.Step > 1:
		return fmt.Errorf("%w: step %v not in [%.4f, 1]", ErrInvalidOptions, o.Step, MinStep)
	}
	return nil
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MinRatio == 0 {
		o.MinRatio = d.MinRatio
	}
	if o.Step == 0 {
		o.Step = d.Step
	}
	return o
}
