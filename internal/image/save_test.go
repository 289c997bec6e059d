package image

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"comic-relayout/internal/testutil"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestSavePNG(t *testing.T) {
	dir := t.TempDir()
	img := testutil.Solid(9, 4, testutil.PanelColor(2))

	path, err := SavePNG(img, dir, "2x3.png", png.BestCompression)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2x3.png"), path)
	assert.Equal(t, []string{"2x3.png"}, dirNames(t, dir))

	got, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(9, 4), got.Bounds().Size())
	assert.Equal(t, testutil.PanelColor(2), testutil.NRGBAAt(got, 8, 3))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, FileMode&^Umask(), info.Mode().Perm())
	}
}

func TestSavePNGReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2x3.png"), []byte("stale"), 0o600))

	path, err := SavePNG(testutil.Solid(3, 3, testutil.PanelColor(1)), dir, "2x3.png", png.DefaultCompression)
	require.NoError(t, err)
	assert.Equal(t, []string{"2x3.png"}, dirNames(t, dir))

	got, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(3, 3), got.Bounds().Size())
}

func TestSavePNGFailureLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "2x3.png")
	require.NoError(t, os.WriteFile(existing, []byte("keep"), 0o644))

	// A zero-sized image cannot be encoded as PNG.
	_, err := SavePNG(image.NewNRGBA(image.Rect(0, 0, 0, 0)), dir, "2x3.png", png.BestCompression)
	require.Error(t, err)

	assert.Equal(t, []string{"2x3.png"}, dirNames(t, dir))
	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestSavePNGMissingDir(t *testing.T) {
	_, err := SavePNG(testutil.Solid(2, 2, testutil.PanelColor(0)),
		filepath.Join(t.TempDir(), "missing"), "2x2.png", png.BestCompression)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		name string
		want png.CompressionLevel
	}{
		{"", png.BestCompression},
		{"best", png.BestCompression},
		{"default", png.DefaultCompression},
		{"fast", png.BestSpeed},
		{"none", png.NoCompression},
	}
	for _, tt := range tests {
		got, err := ParseCompression(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := ParseCompression("maximum")
	assert.Error(t, err)
}
