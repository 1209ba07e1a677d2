// Package render casts camera rays through a viewport and writes the shaded
// result as PPM, as an encoded image, or to a terminal.
package render

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/taigrr/raysky/pkg/math3d"
)

// Framebuffer is an in-memory RGBA image. It implements PixelSink so a
// render can be captured for encoding or terminal preview.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []color.RGBA // Row-major pixel data
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// Begin resizes the framebuffer to the image being rendered.
func (fb *Framebuffer) Begin(width, height int) error {
	if width != fb.Width || height != fb.Height || len(fb.Pixels) != width*height {
		*fb = *NewFramebuffer(width, height)
	}
	return nil
}

// WritePixel stores c at (x, y), quantized the same way as the PPM writer.
func (fb *Framebuffer) WritePixel(x, y int, c math3d.Color) error {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return fmt.Errorf("framebuffer: pixel (%d, %d) outside %dx%d", x, y, fb.Width, fb.Height)
	}
	fb.Pixels[y*fb.Width+x] = ToRGBA(c)
	return nil
}

// End is a no-op.
func (fb *Framebuffer) End() error { return nil }

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// ToRGBA converts a [0, 1] color to an opaque 8-bit color.
func ToRGBA(c math3d.Color) color.RGBA {
	return color.RGBA{uint8(quantize(c.X)), uint8(quantize(c.Y)), uint8(quantize(c.Z)), 255}
}

// Resample returns a copy scaled to width x height with nearest-neighbor
// sampling.
func (fb *Framebuffer) Resample(width, height int) *Framebuffer {
	out := NewFramebuffer(width, height)
	if fb.Width == 0 || fb.Height == 0 {
		return out
	}
	for y := range height {
		sy := y * fb.Height / height
		for x := range width {
			sx := x * fb.Width / width
			out.Pixels[y*width+x] = fb.Pixels[sy*fb.Width+sx]
		}
	}
	return out
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// Save encodes the framebuffer to path in the format implied by its
// extension.
func (fb *Framebuffer) Save(path string) (err error) {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return EncodeImage(f, fb.ToImage(), format)
}
