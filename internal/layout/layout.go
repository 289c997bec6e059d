// Package layout recombines comic panels into grids.
package layout

import (
	"errors"
	"fmt"
	"image"

	stripimage "comic-relayout/internal/image"
)

// DefaultPadding is the gap, in pixels, between panels and around the
// edge of a composed image.
const DefaultPadding = 5

var (
	// ErrTooFewPanels is returned when a grid is requested for fewer than
	// two panels.
	ErrTooFewPanels = errors.New("at least two panels are required")

	// ErrLayoutMismatch is returned when a layout does not hold exactly
	// the given panels.
	ErrLayoutMismatch = errors.New("layout does not match panel count")

	// ErrInvalidPadding is returned for negative padding.
	ErrInvalidPadding = errors.New("padding must not be negative")
)

// Layout is a grid shape.
type Layout struct {
	Columns int
	Rows    int
}

func (l Layout) String() string {
	return fmt.Sprintf("%dx%d", l.Columns, l.Rows)
}

// Filename returns the name of the image generated for the layout.
func (l Layout) Filename() string {
	return l.String() + ".png"
}

// Cells returns the number of cells in the grid.
func (l Layout) Cells() int {
	return l.Columns * l.Rows
}

// Cell returns the column and row of panel i. Panels always fill the grid
// row by row, left to right.
func (l Layout) Cell(i int) (col, row int) {
	return i % l.Columns, i / l.Columns
}

// Layouts returns every layout which holds exactly n panels with at least
// two columns and at least two rows, ordered by column count.
func Layouts(n int) []Layout {
	var layouts []Layout
	for cols := 2; cols < n; cols++ {
		if n%cols != 0 {
			continue
		}
		layouts = append(layouts, Layout{Columns: cols, Rows: n / cols})
	}
	return layouts
}

// Grid holds the measurements shared by every layout of one panel set.
type Grid struct {
	PanelWidth   int // Width of the first panel
	PanelHeight  int // Height of the tallest panel other than the last
	SignatureGap int // Extra height of the last panel; may be negative
	Padding      int
}

// NewGrid measures panels. The last panel is expected to be the one with
// the signature below it.
func NewGrid(panels []image.Image, padding int) (Grid, error) {
	if len(panels) < 2 {
		return Grid{}, ErrTooFewPanels
	}
	if padding < 0 {
		return Grid{}, ErrInvalidPadding
	}

	height := 0
	for _, p := range panels[:len(panels)-1] {
		height = max(height, p.Bounds().Dy())
	}

	return Grid{
		PanelWidth:   panels[0].Bounds().Dx(),
		PanelHeight:  height,
		SignatureGap: panels[len(panels)-1].Bounds().Dy() - height,
		Padding:      padding,
	}, nil
}

// Size returns the dimensions of the image composed for l. Room for the
// signature is always reserved below the last row, which is where the
// last panel lands in row-major order.
func (g Grid) Size(l Layout) image.Point {
	width := l.Columns*(g.PanelWidth+g.Padding) + g.Padding
	height := l.Rows*(g.PanelHeight+g.Padding) + g.Padding + g.SignatureGap + g.Padding
	return image.Pt(width, height)
}

// Origin returns the top-left corner of a panel of the given height placed
// at index i. Panels shorter than PanelHeight are centred vertically in
// their cell.
func (g Grid) Origin(l Layout, i, height int) image.Point {
	col, row := l.Cell(i)
	x := g.Padding + col*(g.PanelWidth+g.Padding)
	y := g.Padding + row*(g.PanelHeight+g.Padding)
	if height < g.PanelHeight {
		y += (g.PanelHeight - height) / 2
	}
	return image.Pt(x, y)
}

// Construct composes panels into a single image with layout l.
func Construct(l Layout, panels []image.Image, padding int) (*image.NRGBA, error) {
	if l.Columns < 1 || l.Rows < 1 || l.Cells() != len(panels) {
		return nil, fmt.Errorf("%w: %s for %d panels", ErrLayoutMismatch, l, len(panels))
	}

	grid, err := NewGrid(panels, padding)
	if err != nil {
		return nil, err
	}

	size := grid.Size(l)
	comp := stripimage.NewComposite(size.X, size.Y)
	for i, p := range panels {
		at := grid.Origin(l, i, p.Bounds().Dy())
		comp.AddLayer(stripimage.NewLayer(p), at.X, at.Y)
	}
	return comp.Render(), nil
}
