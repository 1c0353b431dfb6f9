package imaging

import (
	"fmt"
	"image"
	imgcolor "image/color"

	"github.com/anthonynsimon/bild/adjust"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// ShadeImage returns a copy of img with every pixel shaded by percent, using
// the same per-channel rule as color.ShadeColor.
//
// Fully transparent pixels are left alone and partially transparent pixels
// are shaded on their straight (unpremultiplied) color, keeping alpha.
func ShadeImage(img image.Image, percent float64) (*image.RGBA, error) {
	// Validate once up front; the per-pixel function cannot return errors.
	if _, err := color.Black.Shade(percent); err != nil {
		return nil, fmt.Errorf("failed to shade image: %w", err)
	}

	return adjust.Apply(img, func(c imgcolor.RGBA) imgcolor.RGBA {
		return shadePixel(c, percent)
	}), nil
}

// shadePixel shades one premultiplied pixel. percent is already validated.
func shadePixel(c imgcolor.RGBA, percent float64) imgcolor.RGBA {
	switch c.A {
	case 0:
		return c
	case 0xff:
		s, _ := color.RGBColor{R: c.R, G: c.G, B: c.B}.Shade(percent)
		return imgcolor.RGBA{R: s.R, G: s.G, B: s.B, A: 0xff}
	}

	n := imgcolor.NRGBAModel.Convert(c).(imgcolor.NRGBA)
	s, _ := color.RGBColor{R: n.R, G: n.G, B: n.B}.Shade(percent)
	return imgcolor.RGBAModel.Convert(imgcolor.NRGBA{R: s.R, G: s.G, B: s.B, A: n.A}).(imgcolor.RGBA)
}
