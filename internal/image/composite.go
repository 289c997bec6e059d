package image

import (
	"image"
	"image/color"

	"comic-relayout/pkg/colorutil"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Composite combines multiple layers into a single image.
type Composite struct {
	Width     int
	Height    int
	Layers    []*CompositeLayer
	BackColor color.Color
}

// CompositeLayer wraps a Layer with its position on the canvas.
type CompositeLayer struct {
	Layer   *Layer
	OffsetX int
	OffsetY int
}

// NewComposite creates a new Composite with the specified dimensions.
func NewComposite(width, height int) *Composite {
	return &Composite{
		Width:     width,
		Height:    height,
		BackColor: colorutil.White,
	}
}

// AddLayer adds a layer to the composite.
func (c *Composite) AddLayer(layer *Layer, offsetX, offsetY int) {
	c.Layers = append(c.Layers, &CompositeLayer{
		Layer:   layer,
		OffsetX: offsetX,
		OffsetY: offsetY,
	})
}

// Render produces the final composited image. Layers are pasted in the
// order they were added; each one overwrites whatever lies beneath it.
func (c *Composite) Render() *image.NRGBA {
	result := imaging.New(c.Width, c.Height, c.BackColor)

	for _, cl := range c.Layers {
		if cl.Layer == nil || cl.Layer.Image == nil {
			continue
		}
		src := cl.Layer.Image
		srcBounds := src.Bounds()
		dstRect := image.Rect(cl.OffsetX, cl.OffsetY,
			cl.OffsetX+srcBounds.Dx(), cl.OffsetY+srcBounds.Dy())
		draw.Draw(result, dstRect, src, srcBounds.Min, draw.Src)
	}

	return result
}
