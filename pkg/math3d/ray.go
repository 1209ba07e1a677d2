package math3d

// Ray is a half-line starting at an origin and heading along a direction.
// The direction is not required to be unit length.
type Ray struct {
	orig Point3
	dir  Vec3
}

// NewRay creates a ray.
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{orig: origin, dir: direction}
}

// Origin returns the ray's starting point.
func (r Ray) Origin() Point3 { return r.orig }

// Direction returns the ray's direction.
func (r Ray) Direction() Vec3 { return r.dir }

// At returns the point origin + t*direction.
func (r Ray) At(t float64) Point3 {
	return r.orig.Add(r.dir.Scale(t))
}
