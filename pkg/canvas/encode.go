package canvas

import (
	"bytes"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	skyerrors "github.com/matzehuels/skyline/pkg/errors"
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatBMP:  true,
	FormatTIFF: true,
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return skyerrors.New(skyerrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: png, bmp, tiff)", format)
	}
	return nil
}

// FormatFromPath returns the format named by path's extension, or "" if the
// extension is not a supported format. ".tif" is accepted for tiff.
func FormatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "tif" {
		return FormatTIFF
	}
	if ValidFormats[ext] {
		return ext
	}
	return ""
}

// Encode writes the canvas to w in the given format.
func (c *Canvas) Encode(w io.Writer, format string) error {
	if err := ValidateFormat(format); err != nil {
		return err
	}

	img := c.RGBA()
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	if err != nil {
		return skyerrors.Wrap(skyerrors.ErrCodeIO, err, "encode %s", format)
	}
	return nil
}

// Bytes encodes the canvas in memory.
func (c *Canvas) Bytes(format string) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save encodes the canvas and writes it to path. Parent directories are
// created as needed.
func (c *Canvas) Save(path, format string) error {
	data, err := c.Bytes(format)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// WriteFile writes already-encoded image data to path, creating parent
// directories as needed.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return skyerrors.Wrap(skyerrors.ErrCodeIO, err, "create directory %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return skyerrors.Wrap(skyerrors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}
