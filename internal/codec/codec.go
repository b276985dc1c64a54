// Package codec decodes the raster container formats the viewer can open:
// uncompressed 24-bit BMP and binary PPM (P6).
//
// Decoders work on an in-memory byte slice and never panic on malformed
// input; every failure is a *FormatError carrying one of the sentinel errors
// so callers can branch with errors.Is.
package codec

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ironsheep/swiv/internal/imaging"
)

// DecodeFunc decodes a complete file held in memory.
type DecodeFunc func(data []byte) (*imaging.Image, error)

var decoders = map[string]DecodeFunc{
	"bmp": DecodeBMP,
	"ppm": DecodePPM,
}

// Formats returns the supported format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatFor returns the format name for a path based on its extension,
// compared case-insensitively.
func FormatFor(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if _, ok := decoders[ext]; !ok {
		return "", &FormatError{Format: ext, Err: ErrExtension, Detail: fmt.Sprintf("%q", filepath.Base(path))}
	}
	return ext, nil
}

// Decode selects a decoder from the extension of name and decodes data.
func Decode(name string, data []byte) (*imaging.Image, error) {
	format, err := FormatFor(name)
	if err != nil {
		return nil, err
	}
	return decoders[format](data)
}

// Info describes a loaded file.
type Info struct {
	// Path is the path the image was read from.
	Path string `json:"path"`

	// Format is "bmp" or "ppm".
	Format string `json:"format"`

	// Width is the stored image width in pixels.
	Width int `json:"width"`

	// Height is the stored image height in pixels.
	Height int `json:"height"`

	// FileSizeBytes is the size of the file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Load reads and decodes the file at path.
//
// # Errors
//
//   - *FormatError with ErrExtension if the extension is not supported; the
//     file is not read in that case
//   - *IOError if the file cannot be read
//   - *FormatError for any decoding failure
func Load(path string) (*imaging.Image, *Info, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &IOError{Path: path, Err: err}
	}

	img, err := decoders[format](data)
	if err != nil {
		return nil, nil, err
	}

	return img, &Info{
		Path:          path,
		Format:        format,
		Width:         img.Width(),
		Height:        img.Height(),
		FileSizeBytes: int64(len(data)),
	}, nil
}
