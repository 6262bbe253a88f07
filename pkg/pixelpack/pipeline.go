package pixelpack

import (
	"fmt"

	"github.com/tuomass/pixelpack/internal/archive"
	"github.com/tuomass/pixelpack/internal/imgutil"
)

// ErrMalformedArchive indicates that the bytes recovered from an
// image do not parse as a zip archive.
var ErrMalformedArchive = archive.ErrMalformedArchive

// EncodeFile converts the file at sourcePath into a bitmap image
// written to imagePath. The source is first wrapped into a
// single-entry zip archive (or passed through unchanged when it
// already is one), so that decoding always yields an archive.
func EncodeFile(sourcePath, imagePath string) error {
	archived, err := archive.Wrap(sourcePath)
	if err != nil {
		return err
	}
	return imgutil.SavePNGToFile(Pack(archived), imagePath)
}

// DecodeFile reads the bitmap image at imagePath, recovers the
// archive bytes it encodes, and extracts the archive's entries into
// destDir. Returns the entry names written. A nil opts uses
// DefaultUnpackOptions.
func DecodeFile(imagePath, destDir string, opts *UnpackOptions) ([]string, error) {
	img, err := imgutil.LoadImageFromFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyImage, err)
	}
	data, err := Unpack(img, opts)
	if err != nil {
		return nil, err
	}
	return archive.Unwrap(data, destDir)
}
