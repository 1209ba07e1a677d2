package render

import (
	"fmt"
	"io"

	"github.com/taigrr/raysky/pkg/math3d"
)

// PixelSink receives a rendered image one pixel at a time.
//
// Begin is called once with the image size, then WritePixel once per pixel
// in row-major order starting at the top row (y = 0), then End.
type PixelSink interface {
	Begin(width, height int) error
	WritePixel(x, y int, c math3d.Color) error
	End() error
}

// ShadeFunc returns the color seen along a camera ray.
type ShadeFunc func(r math3d.Ray) math3d.Color

// Renderer casts one ray per pixel through a Camera.
type Renderer struct {
	Config Config
	Camera *Camera
	Shade  ShadeFunc

	// Progress receives a "Scanlines remaining" line per row and a final
	// "Done." line. Nil disables progress output.
	Progress io.Writer
}

// NewRenderer validates cfg and returns a renderer shading with SkyColor.
func NewRenderer(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{
		Config: cfg,
		Camera: NewCamera(cfg),
		Shade:  SkyColor,
	}, nil
}

// Render shades every pixel and streams the result to sink.
//
// Scanlines are visited from the top of the viewport (v = 1) to the bottom
// (v = 0) and pixels left to right, so sink sees them in image order.
func (r *Renderer) Render(sink PixelSink) error {
	width, height := r.Config.Width, r.Config.Height()
	log := Logger()
	log.Debug("render start",
		"width", width,
		"height", height,
		"lower_left", r.Camera.LowerLeft,
		"horizontal", r.Camera.Horizontal,
		"vertical", r.Camera.Vertical,
	)

	if err := sink.Begin(width, height); err != nil {
		return fmt.Errorf("begin image: %w", err)
	}

	for j := height - 1; j >= 0; j-- {
		r.progress("\rScanlines remaining: %d ", j)
		y := height - 1 - j
		v := float64(j) / float64(height-1)
		for i := range width {
			u := float64(i) / float64(width-1)
			c := r.Shade(r.Camera.Ray(u, v))
			if err := sink.WritePixel(i, y, c); err != nil {
				return fmt.Errorf("write pixel (%d, %d): %w", i, y, err)
			}
		}
	}

	if err := sink.End(); err != nil {
		return fmt.Errorf("end image: %w", err)
	}
	r.progress("\nDone.\n")
	log.Info("render complete", "width", width, "height", height)
	return nil
}

func (r *Renderer) progress(format string, args ...any) {
	if r.Progress == nil {
		return
	}
	fmt.Fprintf(r.Progress, format, args...)
}
