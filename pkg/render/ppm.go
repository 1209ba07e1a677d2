package render

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/taigrr/raysky/pkg/math3d"
)

// quantize maps a color component in [0, 1] to [0, 255] by scaling with
// 255.999 and truncating. No gamma is applied. Out-of-range and NaN inputs
// are clamped.
func quantize(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return min(max(int(255.999*v), 0), 255)
}

// WriteColor writes c as one "r g b" line of a plain PPM body.
func WriteColor(w io.Writer, c math3d.Color) error {
	_, err := fmt.Fprintf(w, "%d %d %d\n", quantize(c.X), quantize(c.Y), quantize(c.Z))
	return err
}

// PPMWriter streams pixels as a plain-text ("P3") PPM image. Pixels are
// written as they arrive; the image is never held in memory.
type PPMWriter struct {
	w       *bufio.Writer
	width   int
	height  int
	written int
}

// NewPPMWriter returns a PPMWriter writing to w.
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// Begin writes the P3 header.
func (p *PPMWriter) Begin(width, height int) error {
	p.width, p.height, p.written = width, height, 0
	_, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", width, height)
	return err
}

// WritePixel appends the next pixel. Pixels must arrive in row-major order
// from the top row down; x and y are only used for sanity checks.
func (p *PPMWriter) WritePixel(x, y int, c math3d.Color) error {
	if want := y*p.width + x; want != p.written {
		return fmt.Errorf("ppm: pixel (%d, %d) out of order, expected index %d", x, y, p.written)
	}
	if err := WriteColor(p.w, c); err != nil {
		return err
	}
	p.written++
	return nil
}

// End flushes buffered output. It fails if fewer pixels were written than
// the header announced.
func (p *PPMWriter) End() error {
	if err := p.w.Flush(); err != nil {
		return err
	}
	if want := p.width * p.height; p.written != want {
		return fmt.Errorf("ppm: wrote %d of %d pixels", p.written, want)
	}
	return nil
}
