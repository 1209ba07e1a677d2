package render

import (
	"github.com/taigrr/raysky/pkg/math3d"
)

// Camera is a pinhole camera at a fixed origin looking down -Z through a
// rectangular viewport.
type Camera struct {
	Origin     math3d.Point3
	Horizontal math3d.Vec3 // Full viewport width along +X
	Vertical   math3d.Vec3 // Full viewport height along +Y
	LowerLeft  math3d.Point3
}

// NewCamera builds the viewport described by cfg with the camera at the
// world origin.
func NewCamera(cfg Config) *Camera {
	origin := math3d.Zero3()
	horizontal := math3d.V3(cfg.ViewportWidth(), 0, 0)
	vertical := math3d.V3(0, cfg.ViewportHeight, 0)

	lowerLeft := origin.
		Sub(horizontal.Div(2)).
		Sub(vertical.Div(2)).
		Sub(math3d.V3(0, 0, cfg.FocalLength))

	return &Camera{
		Origin:     origin,
		Horizontal: horizontal,
		Vertical:   vertical,
		LowerLeft:  lowerLeft,
	}
}

// Ray returns the ray through viewport coordinates (u, v), where (0, 0) is
// the lower-left corner and (1, 1) the upper-right.
func (c *Camera) Ray(u, v float64) math3d.Ray {
	target := c.LowerLeft.
		Add(c.Horizontal.Scale(u)).
		Add(c.Vertical.Scale(v))
	return math3d.NewRay(c.Origin, target.Sub(c.Origin))
}
