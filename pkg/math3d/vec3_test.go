package math3d

import (
	"errors"
	"math"
	"strings"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func vecApprox(a, b Vec3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

// samples covers mixed signs, fractions and large magnitudes.
var samples = []Vec3{
	V3(1, 2, 3),
	V3(4, 5, 6),
	V3(-1.5, 0.25, 7),
	V3(0, -3, 0.125),
	V3(1e3, -2e-3, 42),
}

func expectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", want)
		}
		msg, _ := r.(string)
		if !strings.Contains(msg, want) {
			t.Fatalf("panic = %v, want it to contain %q", r, want)
		}
	}()
	fn()
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"zero value", Vec3{}, V3(0, 0, 0)},
		{"Zero3", Zero3(), V3(0, 0, 0)},
		{"no components", NewVec3(), V3(0, 0, 0)},
		{"one component", NewVec3(1), V3(1, 0, 0)},
		{"two components", NewVec3(1, 2), V3(1, 2, 0)},
		{"three components", NewVec3(1, 2, 3), V3(1, 2, 3)},
		{"from array", FromArray(Float3{4, 5, 6}), V3(4, 5, 6)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}

	t.Run("too many components", func(t *testing.T) {
		expectPanic(t, "at most 3", func() { NewVec3(1, 2, 3, 4) })
	})
}

func TestCopyIsIndependent(t *testing.T) {
	a := V3(1, 2, 3)
	b := a
	b.X = 9
	if a.X != 1 {
		t.Errorf("copy aliased original: a = %v", a)
	}

	arr := Float3{4, 5, 6}
	c := FromArray(arr)
	arr[0] = 0
	if c.X != 4 {
		t.Errorf("FromArray kept a reference to its input: c = %v", c)
	}
}

func TestIndexedAndNamedViewsAgree(t *testing.T) {
	v := V3(1, 2, 3)
	for i, want := range []float64{1, 2, 3} {
		if got := v.At(i); got != want {
			t.Errorf("At(%d) = %v, want %v", i, got, want)
		}
	}

	v.Set(0, 10)
	v.Set(1, 20)
	*v.Ptr(2) *= 10
	if v != V3(10, 20, 30) {
		t.Errorf("indexed writes not visible through fields: %v", v)
	}

	v.Y = -1
	if v.At(1) != -1 {
		t.Errorf("field write not visible through At: %v", v.At(1))
	}
	if arr := v.Array(); arr != (Float3{10, -1, 30}) {
		t.Errorf("Array() = %v", arr)
	}
}

func TestIndexOutOfRange(t *testing.T) {
	v := V3(1, 2, 3)
	for _, i := range []int{-1, 3, 100} {
		expectPanic(t, "out of range", func() { _ = v.At(i) })
		expectPanic(t, "out of range", func() { v.Set(i, 0) })
		expectPanic(t, "out of range", func() { _ = v.Ptr(i) })
	}
}

func TestNegate(t *testing.T) {
	if got := V3(1, -2, 0.5).Negate(); got != V3(-1, 2, -0.5) {
		t.Errorf("Negate = %v", got)
	}
}

func TestAddCommutesAndIsComponentwise(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			ab, ba := a.Add(b), b.Add(a)
			if ab != ba {
				t.Errorf("%v + %v = %v, but reversed = %v", a, b, ab, ba)
			}
			want := Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
			if ab != want {
				t.Errorf("%v + %v = %v, want %v", a, b, ab, want)
			}
		}
	}
}

func TestSub(t *testing.T) {
	if got := V3(5, 7, 9).Sub(V3(1, 2, 3)); got != V3(4, 5, 6) {
		t.Errorf("Sub = %v", got)
	}
}

func TestScaleDivRoundTrip(t *testing.T) {
	for _, a := range samples {
		for _, s := range []float64{2, -3, 0.1, 1e6} {
			if got := a.Scale(s).Div(s); !vecApprox(got, a) {
				t.Errorf("(%v * %v) / %v = %v", a, s, s, got)
			}
		}
	}
}

func TestDivByZero(t *testing.T) {
	got := V3(1, -1, 0).Div(0)
	if !math.IsInf(got.X, 1) || !math.IsInf(got.Y, -1) || !math.IsNaN(got.Z) {
		t.Errorf("Div(0) = %v, want (+Inf, -Inf, NaN)", got)
	}
	if got.IsFinite() {
		t.Error("IsFinite reported true for infinite vector")
	}
}

func TestCompoundAssignment(t *testing.T) {
	d := V3(4, 5, 6)
	d.AddAssign(V3(1, 2, 3))
	if d != V3(5, 7, 9) {
		t.Errorf("AddAssign = %v", d)
	}

	// Chained through the returned receiver.
	d.ScaleAssign(2).AddAssign(V3(1, 1, 1)).DivAssign(2)
	if !vecApprox(d, V3(5.5, 7.5, 9.5)) {
		t.Errorf("chained assignment = %v", d)
	}

	p := &d
	if p.ScaleAssign(1) != p {
		t.Error("ScaleAssign did not return its receiver")
	}
}

func TestLenSqEqualsSelfDot(t *testing.T) {
	for _, a := range samples {
		if a.LenSq() != a.Dot(a) {
			t.Errorf("LenSq(%v) = %v, Dot = %v", a, a.LenSq(), a.Dot(a))
		}
		if a.LenSq() < 0 {
			t.Errorf("LenSq(%v) negative", a)
		}
		if got := a.Len() * a.Len(); math.Abs(got-a.LenSq()) > eps*a.LenSq() {
			t.Errorf("Len(%v)^2 != LenSq", a)
		}
	}
	if got := V3(3, 4, 0).Len(); got != 5 {
		t.Errorf("Len(3,4,0) = %v, want 5", got)
	}
}

func TestCross(t *testing.T) {
	if got := Right().Cross(Up()); got != V3(0, 0, 1) {
		t.Errorf("x × y = %v, want z (right-handed)", got)
	}

	for _, a := range samples {
		for _, b := range samples {
			c := a.Cross(b)
			if c.LenSq() == 0 {
				continue // parallel inputs
			}
			scale := a.Len() * b.Len() * c.Len()
			if math.Abs(c.Dot(a))/scale > eps || math.Abs(c.Dot(b))/scale > eps {
				t.Errorf("%v × %v = %v is not orthogonal to its inputs", a, b, c)
			}
		}
	}
}

func TestUnitVector(t *testing.T) {
	for _, a := range samples {
		u := a.UnitVector()
		if !approx(u.Len(), 1) {
			t.Errorf("|UnitVector(%v)| = %v", a, u.Len())
		}
		if n := a.Normalize(); !vecApprox(n, u) {
			t.Errorf("Normalize(%v) = %v, UnitVector = %v", a, n, u)
		}
	}
}

func TestZeroLengthNormalization(t *testing.T) {
	if u := Zero3().UnitVector(); u.IsFinite() {
		t.Errorf("UnitVector(0) = %v, want non-finite", u)
	}
	if n := Zero3().Normalize(); n != Zero3() {
		t.Errorf("Normalize(0) = %v, want zero", n)
	}
	if _, err := Zero3().TryUnitVector(); !errors.Is(err, ErrZeroLength) {
		t.Errorf("TryUnitVector(0) err = %v, want ErrZeroLength", err)
	}

	u, err := V3(0, 0, -2).TryUnitVector()
	if err != nil {
		t.Fatalf("TryUnitVector: %v", err)
	}
	if u != Forward() {
		t.Errorf("TryUnitVector = %v, want %v", u, Forward())
	}
}

func TestLerp(t *testing.T) {
	a, b := V3(1, 1, 1), V3(0.5, 0.7, 1)
	tests := []struct {
		t    float64
		want Vec3
	}{
		{0, a},
		{1, b},
		{0.5, V3(0.75, 0.85, 1)},
	}
	for _, tc := range tests {
		if got := a.Lerp(b, tc.t); !vecApprox(got, tc.want) {
			t.Errorf("Lerp(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestMiscHelpers(t *testing.T) {
	a, b := V3(1, -2, 3), V3(-4, 5, 0)
	if got := a.Mul(b); got != V3(-4, -10, 0) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Min(b); got != V3(-4, -2, 0) {
		t.Errorf("Min = %v", got)
	}
	if got := a.Max(b); got != V3(1, 5, 3) {
		t.Errorf("Max = %v", got)
	}
	if got := a.Abs(); got != V3(1, 2, 3) {
		t.Errorf("Abs = %v", got)
	}
	if got := V3(0, 0, 0).Distance(V3(3, 4, 0)); got != 5 {
		t.Errorf("Distance = %v", got)
	}
	if got := V3(1, -1, 0).Reflect(Up()); got != V3(1, 1, 0) {
		t.Errorf("Reflect = %v", got)
	}
	if got := V3(1, 2.5, -3).String(); got != "(1, 2.5, -3)" {
		t.Errorf("String = %q", got)
	}
}
