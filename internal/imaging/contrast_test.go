package imaging

import (
	"image"
	imgcolor "image/color"
	"testing"

	"github.com/ironsheep/color-tools-mcp/internal/adapt"
	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// createTextImage draws a fg block inside a bg canvas: the block covers
// (10,10)-(20,20) on a 30x30 image.
func createTextImage(fg, bg imgcolor.RGBA) *image.RGBA {
	img := createInMemoryImage(30, 30, bg)
	for y := 10; y < 20; y++ {
		for x := 10; x < 20; x++ {
			img.Set(x, y, fg)
		}
	}
	return img
}

func TestCheckContrast_Pass(t *testing.T) {
	img := createTextImage(imgcolor.RGBA{255, 255, 255, 255}, imgcolor.RGBA{0, 0, 0, 255})

	report, err := CheckContrast(img, Point{15, 15}, Point{2, 2}, adapt.DefaultOptions())
	if err != nil {
		t.Fatalf("CheckContrast failed: %v", err)
	}

	if report.Ratio != 21 {
		t.Errorf("Ratio: got %v, want 21", report.Ratio)
	}
	if report.Level != adapt.LevelAAA || !report.Pass {
		t.Errorf("expected AAA pass, got %s pass=%v", report.Level, report.Pass)
	}
	if report.Suggestion != nil {
		t.Error("passing pair should have no suggestion")
	}
	if report.Foreground.Hex != "#ffffff" || report.Background.Hex != "#000000" {
		t.Errorf("samples: got %s on %s", report.Foreground.Hex, report.Background.Hex)
	}
}

func TestCheckContrast_FailSuggests(t *testing.T) {
	img := createTextImage(imgcolor.RGBA{0x77, 0x77, 0x77, 255}, imgcolor.RGBA{0x1e, 0x1e, 0x1e, 255})

	report, err := CheckContrast(img, Point{15, 15}, Point{2, 2}, adapt.DefaultOptions())
	if err != nil {
		t.Fatalf("CheckContrast failed: %v", err)
	}

	if report.Pass {
		t.Fatalf("expected failure, ratio %v", report.Ratio)
	}
	if report.Level != adapt.LevelAALarge {
		t.Errorf("Level: got %s, want %s", report.Level, adapt.LevelAALarge)
	}
	if report.Suggestion == nil {
		t.Fatal("expected a suggestion")
	}
	if report.Suggestion.Adjusted != "#858585" || !report.Suggestion.Satisfied {
		t.Errorf("suggestion: got %s satisfied=%v", report.Suggestion.Adjusted, report.Suggestion.Satisfied)
	}
}

func TestCheckContrast_OutOfBounds(t *testing.T) {
	img := createTextImage(imgcolor.RGBA{255, 255, 255, 255}, imgcolor.RGBA{0, 0, 0, 255})

	if _, err := CheckContrast(img, Point{30, 0}, Point{0, 0}, adapt.DefaultOptions()); err == nil {
		t.Error("expected error for out-of-bounds foreground")
	}
	if _, err := CheckContrast(img, Point{0, 0}, Point{0, -1}, adapt.DefaultOptions()); err == nil {
		t.Error("expected error for out-of-bounds background")
	}
}

func TestCheckRegionContrast(t *testing.T) {
	img := createTextImage(imgcolor.RGBA{255, 255, 255, 255}, imgcolor.RGBA{0, 0, 0, 255})

	report, err := CheckRegionContrast(img, Region{10, 10, 20, 20}, Region{0, 0, 5, 30}, adapt.Options{Delta: color.DefaultContrastDelta})
	if err != nil {
		t.Fatalf("CheckRegionContrast failed: %v", err)
	}
	if report.Ratio != 21 || report.MinRatio != adapt.RatioAA {
		t.Errorf("got ratio %v min %v", report.Ratio, report.MinRatio)
	}

	if _, err := CheckRegionContrast(img, Region{10, 10, 10, 20}, Region{0, 0, 5, 30}, adapt.DefaultOptions()); err == nil {
		t.Error("expected error for empty region")
	}
}
