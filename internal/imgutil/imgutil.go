package imgutil

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
)

// LoadImageFromFile loads an image from a file path.
// Returns the decoded image and any error.
func LoadImageFromFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return LoadImage(data)
}

// LoadImage decodes an image from byte data.
func LoadImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// EncodePNG encodes an image as PNG bytes. PNG is the only supported
// output format: the pixel values carry data, so the encoding must be
// lossless.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// SavePNGToFile encodes an image as PNG and writes it to path.
func SavePNGToFile(img image.Image, path string) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GrayAt returns the 8-bit grayscale value of the pixel at (x, y).
// Non-gray source images are converted through the standard
// luminance model.
func GrayAt(img image.Image, x, y int) uint8 {
	if gray, ok := img.(*image.Gray); ok {
		return gray.GrayAt(x, y).Y
	}
	r, g, b, _ := img.At(x, y).RGBA()
	// Same coefficients the image/color GrayModel uses.
	return uint8((19595*r + 38470*g + 7471*b + 1<<15) >> 24)
}
