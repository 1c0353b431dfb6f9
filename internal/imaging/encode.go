package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/mitchellh/go-homedir"
)

// EncodedImage contains an image encoded for transport in a JSON result.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64,omitempty"`
	MimeType    string `json:"mime_type,omitempty"`
	Path        string `json:"path,omitempty"` // Set when the image was written to disk instead
}

// EncodePNG encodes img as a base64 PNG.
func EncodePNG(img image.Image) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// SaveImage writes img to path, choosing the format from the extension
// (.png, .jpg, .jpeg, .gif, .bmp, .tif). A leading "~" is expanded.
func SaveImage(img image.Image, path string) (*EncodedImage, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand path %q: %w", path, err)
	}
	if err := imaging.Save(img, expanded); err != nil {
		return nil, fmt.Errorf("failed to save image: %w", err)
	}
	return &EncodedImage{
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
		Path:   expanded,
	}, nil
}
