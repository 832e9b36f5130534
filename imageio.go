package mandel

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when the output path's extension does
// not name a supported image format.
var ErrUnsupportedFormat = errors.New("mandel: unsupported image format")

// jpegQuality is the encoding quality used for JPEG output.
const jpegQuality = 95

// SaveImage writes img to path, choosing the encoder from the file
// extension. Supported extensions: .png, .jpg, .jpeg, .bmp, .tif, .tiff.
func SaveImage(img image.Image, path string) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("mandel: create file: %w", err)
	}

	if err := encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("mandel: encode %s: %w", filepath.Ext(path), err)
	}

	return f.Close()
}

// encoderFor maps a path extension to its encoding function.
func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Save shades the grid with the given mode and writes it to path. The
// format follows the file extension, as in SaveImage.
func (g *Grid) Save(path string, mode ShadeMode) error {
	return SaveImage(g.Image(mode), path)
}

// SavePNG saves the grid to a PNG file using the default log shading.
func (g *Grid) SavePNG(path string) error {
	return g.Save(path, ShadeLog)
}
