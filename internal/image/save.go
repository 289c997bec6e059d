package image

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// FileMode is the permission requested for saved images before the
// process umask is applied.
const FileMode os.FileMode = 0o644

// ParseCompression maps a compression name to a PNG compression level.
func ParseCompression(name string) (png.CompressionLevel, error) {
	switch name {
	case "", "best":
		return png.BestCompression, nil
	case "default":
		return png.DefaultCompression, nil
	case "fast":
		return png.BestSpeed, nil
	case "none":
		return png.NoCompression, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

// SavePNG writes img as a PNG file called name inside dir.
//
// The image is encoded into a temporary file in dir which is renamed over
// the destination once fully written, so a partially written file is never
// visible under the final name. An existing file is replaced. The temporary
// file is removed if anything fails.
func SavePNG(img image.Image, dir, name string, level png.CompressionLevel) (path string, err error) {
	path = filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = imaging.Encode(tmp, img, imaging.PNG, imaging.PNGCompressionLevel(level)); err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err = tmp.Chmod(FileMode &^ Umask()); err != nil {
		return "", fmt.Errorf("failed to set permissions on %s: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to rename into %s: %w", path, err)
	}
	return path, nil
}
