// Package debug provides viewer diagnostics such as frame captures.
package debug

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// ErrPixelSize is returned when a frame does not hold width*height RGBA pixels.
var ErrPixelSize = errors.New("debug: pixel data size mismatch")

// Capturer writes frames read back from the GPU as PNG files.
type Capturer struct {
	Dir    string
	Prefix string

	now func() time.Time
}

// NewCapturer creates a capturer writing <prefix>_<timestamp>.png into dir.
func NewCapturer(dir, prefix string) *Capturer {
	return &Capturer{Dir: dir, Prefix: prefix, now: time.Now}
}

// Filename returns the path the next capture will be written to.
func (c *Capturer) Filename() string {
	name := fmt.Sprintf("%s_%s.png", c.Prefix, c.now().Format("2006-01-02_15-04-05"))
	if c.Dir != "" {
		name = filepath.Join(c.Dir, name)
	}
	return name
}

// Save writes RGBA pixels with a bottom-left origin, as returned by
// glReadPixels, and returns the file written.
func (c *Capturer) Save(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("%w: expected %d bytes, got %d", ErrPixelSize, width*height*4, len(pixels))
	}

	if c.Dir != "" {
		if err := os.MkdirAll(c.Dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pixels[src:src+row])
	}

	name := c.Filename()
	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return name, nil
}
