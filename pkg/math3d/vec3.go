// Package math3d provides the 3D vector primitives used by the raysky renderer.
package math3d

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroLength is returned when a zero-length vector cannot be normalized.
var ErrZeroLength = errors.New("math3d: zero-length vector")

// Vec3 represents a 3D vector.
//
// The named fields are the storage. The indexed accessors (At, Set, Ptr,
// Array) address the same fields, so both views always agree.
type Vec3 struct {
	X, Y, Z float64
}

// Point3 is a Vec3 used as a position.
type Point3 = Vec3

// Color is a Vec3 used as an RGB triple in [0, 1].
type Color = Vec3

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// NewVec3 creates a Vec3 from up to three components.
// Missing trailing components are zero.
func NewVec3(c ...float64) Vec3 {
	if len(c) > 3 {
		panic(fmt.Sprintf("math3d: NewVec3 takes at most 3 components, got %d", len(c)))
	}
	var v Vec3
	for i, x := range c {
		v.Set(i, x)
	}
	return v
}

// FromArray creates a Vec3 by copying the elements of a.
func FromArray(a Float3) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

// Array returns the components as a Float3.
func (a Vec3) Array() Float3 {
	return Float3{a.X, a.Y, a.Z}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// Up returns the world up vector (0, 1, 0).
func Up() Vec3 {
	return Vec3{0, 1, 0}
}

// Forward returns the world forward vector (0, 0, -1).
func Forward() Vec3 {
	return Vec3{0, 0, -1}
}

// Right returns the world right vector (1, 0, 0).
func Right() Vec3 {
	return Vec3{1, 0, 0}
}

// At returns component i (0 = X, 1 = Y, 2 = Z).
// It panics if i is outside [0, 2].
func (a Vec3) At(i int) float64 {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	case 2:
		return a.Z
	}
	panic(indexError(i))
}

// Set assigns component i.
// It panics if i is outside [0, 2].
func (a *Vec3) Set(i int, v float64) {
	*a.Ptr(i) = v
}

// Ptr returns a pointer to component i, for in-place updates.
// It panics if i is outside [0, 2].
func (a *Vec3) Ptr(i int) *float64 {
	switch i {
	case 0:
		return &a.X
	case 1:
		return &a.Y
	case 2:
		return &a.Z
	}
	panic(indexError(i))
}

func indexError(i int) string {
	return fmt.Sprintf("math3d: Vec3 index %d out of range [0,2]", i)
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product a * b.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Div returns the scalar division a / s.
// Dividing by zero yields infinities (or NaN for zero components).
func (a Vec3) Div(s float64) Vec3 {
	return Vec3{a.X / s, a.Y / s, a.Z / s}
}

// AddAssign adds b to a in place and returns a.
func (a *Vec3) AddAssign(b Vec3) *Vec3 {
	a.X += b.X
	a.Y += b.Y
	a.Z += b.Z
	return a
}

// ScaleAssign multiplies a by s in place and returns a.
func (a *Vec3) ScaleAssign(s float64) *Vec3 {
	a.X *= s
	a.Y *= s
	a.Z *= s
	return a
}

// DivAssign divides a by s in place and returns a.
// It scales by the reciprocal of s.
func (a *Vec3) DivAssign(s float64) *Vec3 {
	return a.ScaleAssign(1 / s)
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the length (magnitude) of the vector.
func (a Vec3) Len() float64 {
	return math.Sqrt(a.LenSq())
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec3) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// UnitVector returns a divided by its length.
// The zero vector has no direction; its result has NaN components.
func (a Vec3) UnitVector() Vec3 {
	return a.Div(a.Len())
}

// TryUnitVector is UnitVector that reports a zero-length input as
// ErrZeroLength instead of returning non-finite components.
func (a Vec3) TryUnitVector() (Vec3, error) {
	l := a.Len()
	if l == 0 {
		return Vec3{}, ErrZeroLength
	}
	return a.Div(l), nil
}

// Normalize returns the unit vector in the same direction.
// The zero vector normalizes to itself.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}

// Negate returns the negated vector.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Distance returns the distance between two points.
func (a Vec3) Distance(b Vec3) float64 {
	return a.Sub(b).Len()
}

// Reflect returns the reflection of a around normal n.
func (a Vec3) Reflect(n Vec3) Vec3 {
	return a.Sub(n.Scale(2 * a.Dot(n)))
}

// IsFinite reports whether every component is finite.
func (a Vec3) IsFinite() bool {
	return isFinite(a.X) && isFinite(a.Y) && isFinite(a.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Min returns the component-wise minimum.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{
		math.Min(a.X, b.X),
		math.Min(a.Y, b.Y),
		math.Min(a.Z, b.Z),
	}
}

// Max returns the component-wise maximum.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{
		math.Max(a.X, b.X),
		math.Max(a.Y, b.Y),
		math.Max(a.Z, b.Z),
	}
}

// Abs returns the component-wise absolute value.
func (a Vec3) Abs() Vec3 {
	return Vec3{
		math.Abs(a.X),
		math.Abs(a.Y),
		math.Abs(a.Z),
	}
}

// String formats the vector as "(x, y, z)".
func (a Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", a.X, a.Y, a.Z)
}
