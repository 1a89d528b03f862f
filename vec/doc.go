// Package vec provides pure vector algebra as free functions over
// []float64 slices.
//
// Binary operations require both operands to have the same dimension
// and return *ErrDimensionMismatch before touching any component when
// they do not. Numeric degeneracy is not an error: dividing by a zero
// scalar, normalizing a zero vector, and angle ratios pushed outside
// [-1, 1] by rounding all propagate IEEE-754 special values (±Inf,
// NaN) to the caller untouched.
package vec
