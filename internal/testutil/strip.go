// Package testutil builds synthetic comic strips for tests.
package testutil

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

// Strip describes a synthetic comic strip: solid panels stacked
// vertically on white, separated by blank rows.
type Strip struct {
	Margin    int   // White border on the left, right and top
	Bottom    int   // White rows below the signature; 0 runs the last panel to the edge
	Width     int   // Panel width
	Heights   []int // Panel heights, top to bottom
	Gap       int   // Blank rows between panels
	Signature int   // Rows of signature drawn directly below the last panel
}

// PanelColor returns the fill color of panel i.
func PanelColor(i int) color.NRGBA {
	return color.NRGBA{R: uint8(10 + (i*23)%200), G: uint8(40 + i), B: 90, A: 255}
}

// SignatureColor is the color of the signature strip.
var SignatureColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

// Image renders the strip.
func (s Strip) Image() *image.NRGBA {
	height := s.Margin + s.Signature + s.Bottom
	for i, h := range s.Heights {
		height += h
		if i < len(s.Heights)-1 {
			height += s.Gap
		}
	}

	img := imaging.New(s.Width+2*s.Margin, height, color.White)
	for i, r := range s.Rects() {
		fill(img, r, PanelColor(i))
	}
	if s.Signature > 0 && len(s.Heights) > 0 {
		last := s.Rects()[len(s.Heights)-1]
		sig := image.Rect(last.Min.X, last.Max.Y, last.Min.X+max(1, s.Width/4), last.Max.Y+s.Signature)
		fill(img, sig, SignatureColor)
	}
	return img
}

// Rects returns the artwork rectangle of each panel, excluding the
// signature.
func (s Strip) Rects() []image.Rectangle {
	rects := make([]image.Rectangle, len(s.Heights))
	y := s.Margin
	for i, h := range s.Heights {
		rects[i] = image.Rect(s.Margin, y, s.Margin+s.Width, y+h)
		y += h + s.Gap
	}
	return rects
}

// Save writes the strip as a PNG file in dir and returns its path.
func (s Strip) Save(t testing.TB, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, s.Image()))
	return path
}

// Solid returns a w x h image filled with c.
func Solid(w, h int, c color.Color) *image.NRGBA {
	return imaging.New(w, h, c)
}

// NRGBAAt returns the pixel of img at (x, y) in the NRGBA model.
func NRGBAAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func fill(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}
