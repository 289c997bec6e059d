// Package image provides image loading, layer compositing, and PNG output.
package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"comic-relayout/pkg/colorutil"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned for input files whose extension is not
// one of SupportedFormats.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Layer is an image placed somewhere on a composite.
type Layer struct {
	Path  string      // Original file path, empty for derived layers
	Image image.Image // Decoded image data
}

// NewLayer wraps an in-memory image.
func NewLayer(img image.Image) *Layer {
	return &Layer{Image: img}
}

// Load loads an image from the specified path and returns a Layer.
// The decoded image is flattened onto a white background, so the
// returned layer is always an opaque *image.NRGBA.
func Load(path string) (*Layer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return &Layer{
		Path:  path,
		Image: Flatten(img),
	}, nil
}

// Width returns the image width in pixels.
func (l *Layer) Width() int {
	if l.Image == nil {
		return 0
	}
	return l.Image.Bounds().Dx()
}

// Height returns the image height in pixels.
func (l *Layer) Height() int {
	if l.Image == nil {
		return 0
	}
	return l.Image.Bounds().Dy()
}

// Size returns the image dimensions.
func (l *Layer) Size() image.Point {
	return image.Pt(l.Width(), l.Height())
}

// Flatten composites img over white and returns an opaque copy whose
// bounds start at the origin. Transparent regions become background.
func Flatten(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := imaging.New(b.Dx(), b.Dy(), colorutil.White)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

// SupportedFormats returns the list of supported input image formats.
func SupportedFormats() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".tiff", ".tif", ".bmp", ".webp"}
}

// IsSupportedFormat checks if the given path has a supported image format.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}
