// Package vecmath provides fixed-dimension vector algebra: vectors
// with named component accessors, pure arithmetic operations, and a
// dimension-checked Space handle for constructing and comparing
// vectors of a fixed size.
//
// The algebra itself lives in the vec subpackage as free functions
// over []float64; this package wraps it in the Vector type, which
// exposes the first four axes by name (X, Y, Z, W) over the same
// backing storage as indexed access. All arithmetic methods return
// new instances; Set and the named setters are the only in-place
// mutation paths.
//
// Dimension mismatches between operands are reported as errors, never
// silently truncated. Numeric edge cases (zero-vector normalization,
// division by a zero scalar, rounding pushing an angle ratio out of
// acos's domain) follow IEEE-754 and propagate ±Inf or NaN rather
// than failing.
package vecmath
