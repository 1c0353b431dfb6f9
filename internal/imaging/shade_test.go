package imaging

import (
	"errors"
	"image"
	imgcolor "image/color"
	"testing"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

func TestShadeImage(t *testing.T) {
	img := createInMemoryImage(20, 10, imgcolor.RGBA{128, 128, 128, 255})

	tests := []struct {
		name    string
		percent float64
		want    string
	}{
		{"lighten", 0.5, "#c0c0c0"},
		{"darken", -0.5, "#404040"},
		{"identity", 0, "#808080"},
		{"white", 1, "#ffffff"},
		{"black", -1, "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ShadeImage(img, tt.percent)
			if err != nil {
				t.Fatalf("ShadeImage failed: %v", err)
			}
			if out.Bounds() != img.Bounds() {
				t.Fatalf("bounds changed: got %v, want %v", out.Bounds(), img.Bounds())
			}
			for _, p := range []Point{{0, 0}, {19, 9}, {7, 3}} {
				got, _ := SampleColor(out, p.X, p.Y)
				if got.Hex != tt.want {
					t.Errorf("pixel (%d,%d): got %s, want %s", p.X, p.Y, got.Hex, tt.want)
				}
			}
		})
	}

	// Source is untouched.
	if got, _ := SampleColor(img, 0, 0); got.Hex != "#808080" {
		t.Errorf("source image modified: %s", got.Hex)
	}
}

func TestShadeImage_MatchesShadeColor(t *testing.T) {
	img := createPatternImage(10, 10)
	out, err := ShadeImage(img, -0.3)
	if err != nil {
		t.Fatalf("ShadeImage failed: %v", err)
	}

	for _, p := range []Point{{2, 2}, {7, 2}, {2, 7}, {7, 7}} {
		src, _ := SampleColor(img, p.X, p.Y)
		want, err := color.ShadeColor(src.Hex, -0.3)
		if err != nil {
			t.Fatal(err)
		}
		got, _ := SampleColor(out, p.X, p.Y)
		if got.Hex != want {
			t.Errorf("pixel (%d,%d): got %s, want %s", p.X, p.Y, got.Hex, want)
		}
	}
}

func TestShadeImage_Alpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, imgcolor.NRGBA{200, 100, 50, 0})    // transparent
	img.Set(1, 0, imgcolor.NRGBA{128, 128, 128, 128}) // half transparent

	out, err := ShadeImage(img, 1)
	if err != nil {
		t.Fatalf("ShadeImage failed: %v", err)
	}

	if a := out.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("transparent pixel alpha: got %d, want 0", a)
	}

	half := imgcolor.NRGBAModel.Convert(out.RGBAAt(1, 0)).(imgcolor.NRGBA)
	if half.A != 128 {
		t.Errorf("alpha: got %d, want 128", half.A)
	}
	if half.R != 255 || half.G != 255 || half.B != 255 {
		t.Errorf("full lighten of translucent gray: got %+v, want white", half)
	}
	if got, _ := SampleColor(out, 1, 0); got.Hex != "#ffffff" {
		t.Errorf("sampled shaded pixel: got %s, want #ffffff", got.Hex)
	}
}

func TestShadeImage_InvalidPercent(t *testing.T) {
	img := createInMemoryImage(2, 2, imgcolor.RGBA{1, 2, 3, 255})

	_, err := ShadeImage(img, 1.5)
	if !errors.Is(err, color.ErrInvalidPercent) {
		t.Errorf("expected ErrInvalidPercent, got %v", err)
	}
}
