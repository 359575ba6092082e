package capture

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/shotbridge/shotbridge/internal/screen"
)

// Save encodes img to path, choosing the encoder by extension (.bmp for
// Windows bitmaps, PNG otherwise), then verifies the file actually exists.
// A reported success without a file on disk is an IO failure.
func Save(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return screen.IOf(err, "cannot create output file %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = png.Encode(f, img)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return screen.IOf(err, "cannot encode image to %s", path)
	}

	if _, err := os.Stat(path); err != nil {
		return screen.IOf(err, "output file %s missing after write", path)
	}
	return nil
}
