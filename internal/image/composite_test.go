package image

import (
	"image"
	"image/color"
	"testing"

	"comic-relayout/internal/testutil"
	"comic-relayout/pkg/colorutil"

	"github.com/stretchr/testify/assert"
)

func TestCompositeRender(t *testing.T) {
	red := color.NRGBA{R: 200, A: 255}
	blue := color.NRGBA{B: 200, A: 255}

	comp := NewComposite(10, 8)
	comp.AddLayer(NewLayer(testutil.Solid(4, 4, red)), 1, 1)
	comp.AddLayer(NewLayer(testutil.Solid(4, 4, blue)), 3, 3)
	comp.AddLayer(nil, 0, 0)
	comp.AddLayer(NewLayer(testutil.Solid(4, 4, red)), 8, 6)

	img := comp.Render()
	assert.Equal(t, image.Rect(0, 0, 10, 8), img.Bounds())
	assert.Equal(t, colorutil.White, img.NRGBAAt(0, 0))
	assert.Equal(t, red, img.NRGBAAt(1, 1))
	assert.Equal(t, red, img.NRGBAAt(2, 2))
	// Later layers overwrite earlier ones.
	assert.Equal(t, blue, img.NRGBAAt(3, 3))
	assert.Equal(t, blue, img.NRGBAAt(4, 4))
	// Clipped at the canvas edge.
	assert.Equal(t, red, img.NRGBAAt(9, 7))
}

func TestCompositeSubImageLayer(t *testing.T) {
	src := testutil.Solid(6, 6, color.White)
	src.SetNRGBA(4, 4, colorutil.Black)
	sub := src.SubImage(image.Rect(3, 3, 6, 6))

	comp := NewComposite(5, 5)
	comp.AddLayer(NewLayer(sub), 0, 0)
	img := comp.Render()
	assert.Equal(t, colorutil.Black, img.NRGBAAt(1, 1))
	assert.Equal(t, colorutil.White, img.NRGBAAt(0, 0))
}
