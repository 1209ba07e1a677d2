package render

import (
	"github.com/taigrr/raysky/pkg/math3d"
)

// Gradient endpoints. Rays pointing straight down see White, straight up
// see SkyBlue.
var (
	White   = math3d.V3(1, 1, 1)
	SkyBlue = math3d.V3(0.5, 0.7, 1.0)
)

// SkyColor returns the background color seen along r: a vertical blend from
// White to SkyBlue driven by the height of the unit direction.
func SkyColor(r math3d.Ray) math3d.Color {
	dir := r.Direction().UnitVector()
	t := 0.5 * (dir.Y + 1)
	return White.Lerp(SkyBlue, t)
}
