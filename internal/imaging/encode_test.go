package imaging

import (
	"bytes"
	"encoding/base64"
	imgcolor "image/color"
	"image/png"
	"path/filepath"
	"testing"
)

func TestEncodePNG(t *testing.T) {
	img := createInMemoryImage(12, 7, imgcolor.RGBA{10, 20, 30, 255})

	enc, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	if enc.Width != 12 || enc.Height != 7 || enc.MimeType != "image/png" {
		t.Errorf("unexpected metadata: %+v", enc)
	}

	data, err := base64.StdEncoding.DecodeString(enc.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	got, _ := SampleColor(decoded, 3, 3)
	if got.Hex != "#0a141e" {
		t.Errorf("decoded pixel: got %s, want #0a141e", got.Hex)
	}
}

func TestSaveImage(t *testing.T) {
	img := createInMemoryImage(8, 8, imgcolor.RGBA{200, 100, 0, 255})
	path := filepath.Join(t.TempDir(), "out.png")

	enc, err := SaveImage(img, path)
	if err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}
	if enc.Path != path || enc.ImageBase64 != "" {
		t.Errorf("unexpected result: %+v", enc)
	}

	loaded, err := NewImageCache().Load(path)
	if err != nil {
		t.Fatalf("reloading saved image failed: %v", err)
	}
	got, _ := SampleColor(loaded, 0, 0)
	if got.Hex != "#c86400" {
		t.Errorf("saved pixel: got %s, want #c86400", got.Hex)
	}
}

func TestSaveImage_UnknownFormat(t *testing.T) {
	img := createInMemoryImage(2, 2, imgcolor.RGBA{0, 0, 0, 255})
	if _, err := SaveImage(img, filepath.Join(t.TempDir(), "out.xyz")); err == nil {
		t.Error("SaveImage should fail for an unsupported extension")
	}
}
