package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DecodeImageFile reads and decodes a PNG, BMP or WebP image.
func DecodeImageFile(path string) (image.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// ResolvePath joins an asset reference found inside a file under baseDir with
// that directory, leaving absolute references alone.
func ResolvePath(baseDir, ref string) string {
	if ref == "" || filepath.IsAbs(ref) {
		return ref
	}
	s := filepath.FromSlash(strings.TrimPrefix(filepath.ToSlash(ref), "./"))
	return filepath.Join(baseDir, s)
}

// Checkerboard returns a size x size image of 2x2 magenta and black squares.
func Checkerboard(size int) image.Image {
	if size < 2 {
		size = 2
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	half := size / 2
	magenta := color.NRGBA{R: 0xff, B: 0xff, A: 0xff}
	black := color.NRGBA{A: 0xff}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x < half) == (y < half) {
				img.SetNRGBA(x, y, magenta)
			} else {
				img.SetNRGBA(x, y, black)
			}
		}
	}
	return img
}
