package image

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"comic-relayout/internal/testutil"
	"comic-relayout/pkg/colorutil"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strip.png")
	require.NoError(t, imaging.Save(testutil.Solid(12, 7, testutil.PanelColor(0)), path))

	layer, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, layer.Path)
	assert.Equal(t, image.Pt(12, 7), layer.Size())
	assert.Equal(t, testutil.PanelColor(0), testutil.NRGBAAt(layer.Image, 3, 3))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o644))
	_, err = Load(garbage)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode image")
}

func TestFlatten(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 8, 7))
	src.SetNRGBA(5, 5, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.SetNRGBA(6, 5, color.NRGBA{R: 0, G: 0, B: 0, A: 0})

	flat := Flatten(src)
	assert.Equal(t, image.Rect(0, 0, 3, 2), flat.Bounds())
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, flat.NRGBAAt(0, 0))
	assert.Equal(t, colorutil.White, flat.NRGBAAt(1, 0))
}

func TestLayerSizeNil(t *testing.T) {
	var l Layer
	assert.Equal(t, image.Point{}, l.Size())
}

func TestIsSupportedFormat(t *testing.T) {
	assert.True(t, IsSupportedFormat("strip.PNG"))
	assert.True(t, IsSupportedFormat("scan.tif"))
	assert.True(t, IsSupportedFormat("scan.bmp"))
	assert.False(t, IsSupportedFormat("strip.psd"))
	assert.False(t, IsSupportedFormat("strip"))
}
