package math3d

// Float3 is the array form of a vector, for callers that work on plain
// [3]float64 values instead of Vec3.
type Float3 = [3]float64

// The functions below write into dst and return it, so calls nest:
//
//	Add3(Sum3(&d, c, b), a) // d = c + b + a
//
// Each one produces exactly the same values as the matching Vec3 method.

// Default3 sets dst to the zero vector.
func Default3(dst *Float3) *Float3 {
	*dst = Float3{}
	return dst
}

// Init3 sets dst to (x, y, z).
func Init3(dst *Float3, x, y, z float64) *Float3 {
	*dst = Float3{x, y, z}
	return dst
}

// Copy3 copies src into dst.
func Copy3(dst *Float3, src Float3) *Float3 {
	*dst = src
	return dst
}

// Add3 adds rh to lh in place.
func Add3(lh *Float3, rh Float3) *Float3 {
	lh[0] += rh[0]
	lh[1] += rh[1]
	lh[2] += rh[2]
	return lh
}

// Sum3 stores lh + rh in dst. dst may alias either operand.
func Sum3(dst *Float3, lh, rh Float3) *Float3 {
	*dst = Sum(lh, rh)
	return dst
}

// Sum returns lh + rh.
func Sum(lh, rh Float3) Float3 {
	return Float3{lh[0] + rh[0], lh[1] + rh[1], lh[2] + rh[2]}
}
