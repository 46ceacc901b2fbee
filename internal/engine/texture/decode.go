// Package texture provides image decoding, placeholder generation and GL texture upload.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmptyImage is returned for images with a zero-sized bounds.
var ErrEmptyImage = errors.New("image has no pixels")

// Decode decodes image data into tightly packed RGBA with a top-left origin.
// The file name selects the TGA decoder; everything else goes through the
// registered image formats (png, jpeg, bmp, tiff, webp).
func Decode(data []byte, name string) (*image.RGBA, error) {
	var (
		img image.Image
		err error
	)
	if strings.EqualFold(filepath.Ext(name), ".tga") {
		img, err = DecodeTGA(data)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	rgba := ToRGBA(img)
	if rgba.Bounds().Empty() {
		return nil, fmt.Errorf("decode %s: %w", name, ErrEmptyImage)
	}
	return rgba, nil
}

// ToRGBA converts any image to *image.RGBA anchored at (0,0).
// Images that already qualify are returned as-is.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// Placeholder returns a magenta/black checkerboard used in place of textures
// that failed to load, so broken assets stay visible in the scene.
func Placeholder(size, cells int) *image.RGBA {
	if cells < 1 {
		cells = 1
	}
	magenta := color.RGBA{R: 255, B: 255, A: 255}
	black := color.RGBA{A: 255}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	if cell < 1 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := black
			if (x/cell+y/cell)%2 == 0 {
				c = magenta
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
