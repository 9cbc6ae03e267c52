// Package texture provides image decoding and texture processing utilities.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("texture: empty image")

// Load decodes a PNG, JPEG or BMP file into RGBA, flipped so that row 0
// is the bottom of the image as OpenGL expects.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening texture: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding texture %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %s (%s)", ErrEmptyImage, path, format)
	}

	return ToRGBA(img, true), nil
}

// ToRGBA converts any image.Image to *image.RGBA with origin (0,0).
// If flipY is true, rows are reversed.
func ToRGBA(img image.Image, flipY bool) *image.RGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		dstY := y
		if flipY {
			dstY = h - 1 - y
		}
		for x := 0; x < w; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
			rgba.SetRGBA(x, dstY, c)
		}
	}

	return rgba
}
