package capture

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shotbridge/shotbridge/internal/screen"
)

func TestSavePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.png")

	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	require.NoError(t, Save(img, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 8, decoded.Bounds().Dx())
	assert.Equal(t, 4, decoded.Bounds().Dy())
}

func TestSaveBMP(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.bmp")

	require.NoError(t, Save(image.NewRGBA(image.Rect(0, 0, 4, 4)), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSaveBadDirectory(t *testing.T) {
	err := Save(image.NewRGBA(image.Rect(0, 0, 1, 1)), filepath.Join(t.TempDir(), "missing", "shot.png"))
	require.Error(t, err)
	assert.Equal(t, screen.KindIO, screen.KindOf(err))
}
