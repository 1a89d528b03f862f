package vec

import (
	"math"

	"github.com/aqlla/vecmath/functional"
	"github.com/aqlla/vecmath/scalar"
)

func checkDim(a, b []float64) error {
	if len(a) != len(b) {
		return &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}
	return nil
}

// Map applies fn(component, index) to each component of v and
// returns the resulting vector. v is not mutated.
func Map(v []float64, fn func(x float64, i int) float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = fn(x, i)
	}
	return out
}

// Add returns the elementwise sum of a and b.
func Add(a, b []float64) ([]float64, error) {
	if err := checkDim(a, b); err != nil {
		return nil, err
	}
	return functional.ZipWith2(scalar.Add, a, b), nil
}

// Sub returns the elementwise difference a - b.
func Sub(a, b []float64) ([]float64, error) {
	if err := checkDim(a, b); err != nil {
		return nil, err
	}
	return functional.ZipWith2(scalar.Sub, a, b), nil
}

// Mul scales each component of v by s.
func Mul(v []float64, s float64) []float64 {
	mul := scalar.MulBy(s)
	return Map(v, func(x float64, _ int) float64 { return mul(x) })
}

// Div divides each component of v by s. A zero s yields ±Inf or NaN
// components per IEEE-754; this is propagated, not trapped.
func Div(v []float64, s float64) []float64 {
	div := scalar.DivBy(s)
	return Map(v, func(x float64, _ int) float64 { return div(x) })
}

// Dot returns the dot product of a and b, summed in index order as a
// left fold seeded at 0. The summation order is not reorderable.
func Dot(a, b []float64) (float64, error) {
	if err := checkDim(a, b); err != nil {
		return 0, err
	}
	return scalar.Sum(functional.ZipWith2(scalar.Mul, a, b)), nil
}

// MagnitudeSquared returns the sum of the squared components of v.
func MagnitudeSquared(v []float64) float64 {
	return scalar.Sum(Map(v, func(x float64, _ int) float64 {
		return scalar.Square(x)
	}))
}

// Magnitude returns the Euclidean length of v.
func Magnitude(v []float64) float64 {
	return math.Sqrt(MagnitudeSquared(v))
}

// Unit returns v scaled to length 1. A zero vector yields all-NaN
// components (0/0); the degenerate result is observable, not guarded.
func Unit(v []float64) []float64 {
	return Div(v, Magnitude(v))
}

// Angle returns the angle between a and b in radians, computed as
// acos(dot / (|a| * |b|)). Rounding can push the ratio slightly
// outside [-1, 1], in which case acos returns NaN; the ratio is not
// clamped.
func Angle(a, b []float64) (float64, error) {
	d, err := Dot(a, b)
	if err != nil {
		return 0, err
	}
	return math.Acos(d / (Magnitude(a) * Magnitude(b))), nil
}

// Midpoint returns the elementwise average of a and b.
func Midpoint(a, b []float64) ([]float64, error) {
	if err := checkDim(a, b); err != nil {
		return nil, err
	}
	return functional.ZipWith2(func(x, y float64) float64 {
		return (x + y) / 2
	}, a, b), nil
}
