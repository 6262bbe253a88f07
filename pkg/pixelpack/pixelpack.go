// Package pixelpack converts arbitrary byte streams into square
// grayscale bitmaps and back, one bit per pixel. A 1 bit becomes a
// white pixel, a 0 bit a black pixel, and unused pixels at the end of
// the square are filled with a gray padding value. Because the
// padding value is distinct from both data values, the format needs
// no header: decoding simply skips every pixel that is not exactly
// black or white.
package pixelpack

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/tuomass/pixelpack/internal/bitstream"
	"github.com/tuomass/pixelpack/internal/imgutil"
)

// Pixel values of the bitmap format. Pad must stay distinct from both
// data values: it is what lets a decoder find the end of the data
// without a stored bit count.
const (
	// White encodes a 1 bit.
	White uint8 = 255
	// Black encodes a 0 bit.
	Black uint8 = 0
	// Pad fills pixels past the end of the data.
	Pad uint8 = 127
)

var (
	// ErrEmptyImage indicates a decoded image held no data pixels at all.
	ErrEmptyImage = errors.New("image is empty or contains no valid data")
	// ErrTruncatedBits indicates the recovered bits do not split into
	// whole bytes. Only possible with strict unpacking; the default is
	// to zero-pad the final group instead.
	ErrTruncatedBits = errors.New("recovered bit count is not a multiple of 8")
)

// UnpackOptions holds options for unpacking.
type UnpackOptions struct {
	// Strict makes Unpack fail with ErrTruncatedBits when the
	// recovered bits do not form whole bytes, instead of zero-padding
	// the final group. A conforming image always yields whole bytes,
	// so a partial group means external corruption; the default
	// zero-padding is a best-effort recovery, not a guarantee that
	// the final byte is correct.
	Strict bool
}

// DefaultUnpackOptions returns the default unpacking options.
func DefaultUnpackOptions() *UnpackOptions {
	return &UnpackOptions{Strict: false}
}

// Pack encodes data into the smallest square grayscale image that
// holds all of its bits. Bytes expand MSB-first; pixels fill in
// row-major order, with every position past the last bit set to Pad.
// Empty input produces a single Pad pixel, which Unpack reports as
// ErrEmptyImage.
func Pack(data []byte) *image.Gray {
	bits := bitstream.BytesToBits(data)
	if len(bits) == 0 {
		img := image.NewGray(image.Rect(0, 0, 1, 1))
		img.Pix[0] = Pad
		return img
	}

	side := int(math.Ceil(math.Sqrt(float64(len(bits)))))
	img := image.NewGray(image.Rect(0, 0, side, side))
	// image.Gray stores pixels row-major, so the grid fills linearly.
	for i := range img.Pix {
		switch {
		case i >= len(bits):
			img.Pix[i] = Pad
		case bits[i]:
			img.Pix[i] = White
		default:
			img.Pix[i] = Black
		}
	}
	return img
}

// Unpack recovers the byte stream encoded in img. Pixels are read in
// row-major order; white pixels yield 1 bits, black pixels 0 bits,
// and every other value is treated as padding and skipped. This
// requires the image to be byte-exact: any lossy recompression or
// resampling shifts pixel values and corrupts the data silently.
//
// A nil opts uses DefaultUnpackOptions.
func Unpack(img image.Image, opts *UnpackOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultUnpackOptions()
	}

	bounds := img.Bounds()
	bits := make([]bool, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			switch imgutil.GrayAt(img, x, y) {
			case White:
				bits = append(bits, true)
			case Black:
				bits = append(bits, false)
			default:
				// Padding or an off-scale value: carries no data.
			}
		}
	}

	if len(bits) == 0 {
		return nil, ErrEmptyImage
	}
	if opts.Strict && !bitstream.Aligned(bits) {
		return nil, fmt.Errorf("%w: got %d bits", ErrTruncatedBits, len(bits))
	}
	return bitstream.BitsToBytes(bits), nil
}
