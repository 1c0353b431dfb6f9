package imaging

import (
	"fmt"
	"image"
	imgcolor "image/color"
	"sort"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// Point is a pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Region represents a rectangular region within an image.
//
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect converts the region to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// validate checks that the region is non-empty and inside bounds.
func (r Region) validate(bounds image.Rectangle) error {
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
		return fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return nil
}

// ColorSample is a color read from an image, in the forms the engine uses.
type ColorSample struct {
	Hex       string         `json:"hex"`       // "#rrggbb", lowercase
	RGB       color.RGBColor `json:"rgb"`       // 8-bit components
	Luminance float64        `json:"luminance"` // Relative luminance (0-1)
}

// NewColorSample describes c.
func NewColorSample(c color.RGBColor) ColorSample {
	return ColorSample{
		Hex:       c.Hex(),
		RGB:       c,
		Luminance: c.Luminance(),
	}
}

// toRGB converts any image color to straight (non-premultiplied) 8-bit RGB,
// dropping alpha. This is the same view of a pixel ShadeImage works on.
func toRGB(c imgcolor.Color) color.RGBColor {
	n := imgcolor.NRGBAModel.Convert(c).(imgcolor.NRGBA)
	if n.A == 0 {
		return color.Black
	}
	return color.RGBColor{R: n.R, G: n.G, B: n.B}
}

// PixelColor returns the color at (x, y).
//
// 16-bit images are scaled down to 8 bits. Translucent pixels report their
// unpremultiplied channel values and fully transparent ones read as black.
func PixelColor(img image.Image, x, y int) (color.RGBColor, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return color.RGBColor{}, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	return toRGB(img.At(x, y)), nil
}

// SampleColor returns the color at (x, y) as a ColorSample.
func SampleColor(img image.Image, x, y int) (*ColorSample, error) {
	c, err := PixelColor(img, x, y)
	if err != nil {
		return nil, err
	}
	s := NewColorSample(c)
	return &s, nil
}

// RegionColor returns the average color of a region.
//
// The region is cropped and reduced to a single pixel with a box filter, so
// every pixel in the region contributes equally.
func RegionColor(img image.Image, region Region) (*ColorSample, error) {
	if err := region.validate(img.Bounds()); err != nil {
		return nil, err
	}

	cropped := imaging.Crop(img, region.Rect())
	avg := imaging.Resize(cropped, 1, 1, imaging.Box)
	s := NewColorSample(toRGB(avg.At(0, 0)))
	return &s, nil
}

// PaletteEntry is one color of an extracted palette.
type PaletteEntry struct {
	ColorSample
	Percentage float64 `json:"percentage"` // Share of pixels with this color (0-100)
}

// PaletteResult holds palette colors sorted by frequency, most common first.
type PaletteResult struct {
	Colors []PaletteEntry `json:"colors"`
}

// DominantColors returns up to count of the most common colors in the image,
// or in region if it is non-nil.
//
// Channels are quantized to multiples of 16 before counting so that near
// identical shades (anti-aliasing, compression noise) group together:
//
//	quantized = (original / 16) * 16
//
// Ties in frequency are broken by hex value so results are deterministic.
func DominantColors(img image.Image, count int, region *Region) (*PaletteResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	bounds := img.Bounds()
	if region != nil {
		if err := region.validate(bounds); err != nil {
			return nil, err
		}
		bounds = region.Rect()
	}

	counts := make(map[uint32]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := toRGB(img.At(x, y))
			c = color.RGBColor{R: c.R / 16 * 16, G: c.G / 16 * 16, B: c.B / 16 * 16}
			counts[c.Packed()]++
			total++
		}
	}

	entries := make([]PaletteEntry, 0, len(counts))
	for packed, n := range counts {
		entries = append(entries, PaletteEntry{
			ColorSample: NewColorSample(color.FromPacked(packed)),
			Percentage:  float64(n) / float64(total) * 100,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Percentage != entries[j].Percentage {
			return entries[i].Percentage > entries[j].Percentage
		}
		return entries[i].Hex < entries[j].Hex
	})

	if len(entries) > count {
		entries = entries[:count]
	}

	return &PaletteResult{Colors: entries}, nil
}
