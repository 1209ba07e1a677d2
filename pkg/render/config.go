package render

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid render config")

// Default image and camera parameters.
const (
	DefaultWidth          = 400
	DefaultAspectRatio    = 16.0 / 9.0
	DefaultViewportHeight = 2.0
	DefaultFocalLength    = 1.0
)

// Config holds the image size and viewport geometry for a render.
type Config struct {
	Width          int     // Image width in pixels
	AspectRatio    float64 // Width / Height, of both image and viewport
	ViewportHeight float64 // Viewport height in world units
	FocalLength    float64 // Distance from the origin to the viewport plane
}

// DefaultConfig returns a 400x225 image with a 2-unit-high viewport one unit
// in front of the camera.
func DefaultConfig() Config {
	return Config{
		Width:          DefaultWidth,
		AspectRatio:    DefaultAspectRatio,
		ViewportHeight: DefaultViewportHeight,
		FocalLength:    DefaultFocalLength,
	}
}

// Height returns the image height, truncated toward zero.
func (c Config) Height() int {
	return int(float64(c.Width) / c.AspectRatio)
}

// ViewportWidth returns the viewport width in world units.
func (c Config) ViewportWidth() float64 {
	return c.AspectRatio * c.ViewportHeight
}

// Validate reports whether the config can be rendered. The image must be at
// least 2x2 so that u and v can reach both edges of the viewport.
func (c Config) Validate() error {
	switch {
	case !positive(c.AspectRatio):
		return fmt.Errorf("%w: aspect ratio %v", ErrInvalidConfig, c.AspectRatio)
	case !positive(c.ViewportHeight):
		return fmt.Errorf("%w: viewport height %v", ErrInvalidConfig, c.ViewportHeight)
	case !positive(c.FocalLength):
		return fmt.Errorf("%w: focal length %v", ErrInvalidConfig, c.FocalLength)
	case c.Width < 2:
		return fmt.Errorf("%w: width %d", ErrInvalidConfig, c.Width)
	case c.Height() < 2:
		return fmt.Errorf("%w: height %d (width %d, aspect %v)", ErrInvalidConfig, c.Height(), c.Width, c.AspectRatio)
	}
	return nil
}

func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}
