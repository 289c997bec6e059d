// Package panel locates and extracts the panels of a vertically stacked
// comic strip.
//
// Panels are found on the color-inverted image, where the background is
// black: a row is a separator iff the sum of its channels is zero. The last
// panel usually carries the author's signature and is therefore taller
// than the others.
package panel

import (
	"errors"
	"fmt"
	"image"

	"comic-relayout/pkg/colorutil"

	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/floats"
)

// ErrBlankImage is returned when an image has no non-background pixels.
var ErrBlankImage = errors.New("image has no content")

// Span is the vertical extent of one panel: rows [Upper, Lower).
type Span struct {
	Upper int
	Lower int
}

// Height returns the number of rows covered by the span.
func (s Span) Height() int {
	return s.Lower - s.Upper
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Upper, s.Lower)
}

// Detection is the result of panel detection on a single image.
type Detection struct {
	Bounds image.Rectangle // Bounding box of all content; Min.X/Max.X are shared by every panel
	Spans  []Span          // Vertical extents in top to bottom order
}

// Rects returns the crop rectangle of each panel, relative to the
// image origin.
func (d *Detection) Rects() []image.Rectangle {
	rects := make([]image.Rectangle, len(d.Spans))
	for i, s := range d.Spans {
		rects[i] = image.Rect(d.Bounds.Min.X, s.Upper, d.Bounds.Max.X, s.Lower)
	}
	return rects
}

// Projection returns, for each row of inv, the sum of the color channels
// of all its pixels. A value is zero iff the whole row is black.
func Projection(inv *image.NRGBA) []float64 {
	b := inv.Bounds()
	proj := make([]float64, b.Dy())
	row := make([]float64, b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			row[x-b.Min.X] = colorutil.Intensity(inv.NRGBAAt(x, y))
		}
		proj[y-b.Min.Y] = floats.Sum(row)
	}
	return proj
}

// BoundingBox returns the smallest rectangle containing every non-black
// pixel of inv, relative to its origin.
func BoundingBox(inv *image.NRGBA) (image.Rectangle, error) {
	b := inv.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if colorutil.IsDark(inv.NRGBAAt(x, y)) {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}

	if maxX < minX || maxY < minY {
		return image.Rectangle{}, ErrBlankImage
	}
	return image.Rect(minX, minY, maxX+1, maxY+1).Sub(b.Min), nil
}

// IdentifySpans scans a row projection top to bottom and returns the
// maximal runs of nonzero rows. A run still open at the last row is closed
// at len(projection).
func IdentifySpans(projection []float64) []Span {
	var spans []Span
	start := -1
	for y, line := range projection {
		if start < 0 {
			if line != 0 {
				start = y
			}
		} else if line == 0 {
			spans = append(spans, Span{Upper: start, Lower: y})
			start = -1
		}
	}
	if start >= 0 {
		spans = append(spans, Span{Upper: start, Lower: len(projection)})
	}
	return spans
}

// Detect finds the panel spans and shared horizontal bounds of img.
func Detect(img image.Image) (*Detection, error) {
	inv := imaging.Invert(img)

	bounds, err := BoundingBox(inv)
	if err != nil {
		return nil, err
	}

	return &Detection{
		Bounds: bounds,
		Spans:  IdentifySpans(Projection(inv)),
	}, nil
}

// Extract splits img into its panels. Every panel is cropped from the
// original image using the horizontal bounds of the whole strip, so all
// panels have the same width.
func Extract(img image.Image) ([]image.Image, error) {
	det, err := Detect(img)
	if err != nil {
		return nil, err
	}

	origin := img.Bounds().Min
	panels := make([]image.Image, 0, len(det.Spans))
	for _, r := range det.Rects() {
		panels = append(panels, imaging.Crop(img, r.Add(origin)))
	}
	return panels, nil
}
