package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// Swatch size limits.
const (
	DefaultSwatchWidth  = 160
	DefaultSwatchHeight = 80
	maxSwatchSide       = 2048
)

// Swatch renders a preview of fg on bg: a bg-filled canvas with a centered
// fg block covering half of each dimension.
//
// Zero width or height use the defaults. Sides must be between 2 and 2048
// pixels.
func Swatch(fg, bg color.RGBColor, width, height int) (*image.NRGBA, error) {
	if width == 0 {
		width = DefaultSwatchWidth
	}
	if height == 0 {
		height = DefaultSwatchHeight
	}
	if width < 2 || height < 2 || width > maxSwatchSide || height > maxSwatchSide {
		return nil, fmt.Errorf("swatch size %dx%d out of range (2-%d)", width, height, maxSwatchSide)
	}

	canvas := imaging.New(width, height, bg)
	block := imaging.New(width/2, height/2, fg)
	return imaging.PasteCenter(canvas, block), nil
}
