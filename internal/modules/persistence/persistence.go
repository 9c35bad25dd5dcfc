package persistence

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when the output extension maps to no raster format.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format is a raster image encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

var formatsByExt = map[string]Format{
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".gif":  FormatGIF,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
}

// FormatFromPath picks the raster format from the file extension, ignoring case.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := formatsByExt[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return f, nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case FormatGIF:
		return gif.Encode(w, img, nil)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Save writes img to path, replacing any existing file.
//
// The format is resolved from the extension before the file is touched, so an
// unsupported extension leaves nothing behind. Parent directories are not created.
//
// Parameters:
//   - ctx: Context checked before the file is created.
//   - path: Destination file path.
//   - img: Rendered image.
//   - logger: Logger for progress and errors.
//
// Returns:
//   - An error if the format is unknown, the file cannot be written, or closing it fails.
func Save(ctx context.Context, path string, img image.Image, logger *zap.Logger) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		logger.Warn("save interrupted", zap.Error(err))
		return err
	}

	logger.Debug("persisting image",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Stringer("bounds", img.Bounds()))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := Encode(f, img, format); err != nil {
		logger.Warn("encode failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
