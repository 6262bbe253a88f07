package pixelpack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuomass/pixelpack/internal/imgutil"
)

func TestEncodeDecodeFile(t *testing.T) {
	dir := t.TempDir()
	contents := []byte("round-trip payload\x00\x01\xFE with binary bytes")
	sourcePath := filepath.Join(dir, "payload.bin")
	require.NoError(t, os.WriteFile(sourcePath, contents, 0644))

	imagePath := filepath.Join(dir, "payload.png")
	require.NoError(t, EncodeFile(sourcePath, imagePath))

	destDir := filepath.Join(dir, "restored")
	names, err := DecodeFile(imagePath, destDir, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"payload.bin"}, names)

	restored, err := os.ReadFile(filepath.Join(destDir, "payload.bin"))
	require.NoError(t, err)
	require.Equal(t, contents, restored)
}

func TestEncodeFileZipPassthroughRoundTrip(t *testing.T) {
	dir := t.TempDir()

	// Build a real archive by encoding once and extracting nothing:
	// wrap a plain file, then feed the produced archive back through
	// the pipeline under a .zip name.
	sourcePath := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(sourcePath, []byte("archived twice"), 0644))

	firstImage := filepath.Join(dir, "first.png")
	require.NoError(t, EncodeFile(sourcePath, firstImage))

	img, err := imgutil.LoadImageFromFile(firstImage)
	require.NoError(t, err)
	archiveBytes, err := Unpack(img, nil)
	require.NoError(t, err)

	zipPath := filepath.Join(dir, "bundle.zip")
	require.NoError(t, os.WriteFile(zipPath, archiveBytes, 0644))

	secondImage := filepath.Join(dir, "second.png")
	require.NoError(t, EncodeFile(zipPath, secondImage))

	// The .zip passed through unwrapped, so the second image must
	// decode to the exact same archive bytes.
	img, err = imgutil.LoadImageFromFile(secondImage)
	require.NoError(t, err)
	recovered, err := Unpack(img, nil)
	require.NoError(t, err)
	require.Equal(t, archiveBytes, recovered)

	destDir := filepath.Join(dir, "out")
	names, err := DecodeFile(secondImage, destDir, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"notes.txt"}, names)
}

func TestEncodeFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := EncodeFile(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.png"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeFileMalformedArchive(t *testing.T) {
	dir := t.TempDir()

	// An image packed from bytes that are not a zip decodes cleanly
	// but must fail archive parsing without writing anything.
	imagePath := filepath.Join(dir, "garbage.png")
	require.NoError(t, imgutil.SavePNGToFile(Pack([]byte("not a zip at all")), imagePath))

	destDir := filepath.Join(dir, "out")
	_, err := DecodeFile(imagePath, destDir, nil)
	require.ErrorIs(t, err, ErrMalformedArchive)

	_, statErr := os.Stat(destDir)
	require.True(t, os.IsNotExist(statErr))
}

func TestDecodeFileUnreadableImage(t *testing.T) {
	dir := t.TempDir()
	_, err := DecodeFile(filepath.Join(dir, "missing.png"), filepath.Join(dir, "out"), nil)
	require.ErrorIs(t, err, ErrEmptyImage)
}
