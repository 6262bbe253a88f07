// Package archive wraps source files into single-entry deflate zip
// archives and extracts them back. Wrapping every input keeps the
// image pipeline symmetric: a decoded image always yields an archive,
// never loose bytes of unknown type.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
)

var (
	// ErrMalformedArchive indicates the bytes do not parse as a zip
	// archive.
	ErrMalformedArchive = errors.New("data does not form a valid zip archive")
	// ErrUnsafeEntryName indicates an archive entry path that would
	// escape the destination directory.
	ErrUnsafeEntryName = errors.New("archive entry name escapes destination")
)

// Extension is the archive file extension recognized for passthrough.
const Extension = ".zip"

// IsArchivePath reports whether path names an archive by extension,
// case-insensitively.
func IsArchivePath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Extension)
}

// Wrap returns the archive bytes for the file at path. A file that is
// already a zip by extension is returned byte-for-byte, so re-encoding
// a previously produced archive is lossless and nothing gets
// compressed twice. Any other file becomes a fresh single-entry zip
// holding the file's contents under its base name.
func Wrap(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	if IsArchivePath(path) {
		return data, nil
	}
	return wrapEntry(filepath.Base(path), data)
}

// wrapEntry builds a single-entry deflate zip in memory.
func wrapEntry(name string, contents []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	writer.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.DefaultCompression)
	})

	entry, err := writer.Create(name)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive entry: %w", err)
	}
	if _, err := entry.Write(contents); err != nil {
		return nil, fmt.Errorf("failed to write archive entry: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// Unwrap parses data as a zip archive and extracts every entry into
// destDir, creating the directory if needed. The archive is parsed
// before anything touches the filesystem: malformed input returns
// ErrMalformedArchive with no writes performed. Returns the entry
// names written, in archive order.
func Unwrap(data []byte, destDir string) ([]string, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArchive, err)
	}
	reader.RegisterDecompressor(zip.Deflate, func(in io.Reader) io.ReadCloser {
		return flate.NewReader(in)
	})

	// Reject escaping entry names before creating anything.
	for _, entry := range reader.File {
		if !filepath.IsLocal(filepath.FromSlash(entry.Name)) {
			return nil, fmt.Errorf("%w: %q", ErrUnsafeEntryName, entry.Name)
		}
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create destination directory: %w", err)
	}

	var names []string
	for _, entry := range reader.File {
		if err := extractEntry(entry, destDir); err != nil {
			return names, err
		}
		names = append(names, entry.Name)
	}
	return names, nil
}

func extractEntry(entry *zip.File, destDir string) error {
	target := filepath.Join(destDir, filepath.FromSlash(entry.Name))

	if entry.FileInfo().IsDir() {
		if err := os.MkdirAll(target, 0755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", entry.Name, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create parent of %q: %w", entry.Name, err)
	}

	source, err := entry.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive entry %q: %w", entry.Name, err)
	}
	defer source.Close()

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, source); err != nil {
		return fmt.Errorf("failed to extract %q: %w", entry.Name, err)
	}
	return nil
}
