package scalar

// Add returns l + r.
func Add(l, r float64) float64 { return l + r }

// Sub returns l - r.
func Sub(l, r float64) float64 { return l - r }

// Mul returns l * r.
func Mul(l, r float64) float64 { return l * r }

// Div returns l / r. Division by zero follows IEEE-754 semantics:
// nonzero/0 is ±Inf and 0/0 is NaN.
func Div(l, r float64) float64 { return l / r }

// Square returns n * n.
func Square(n float64) float64 { return n * n }

// Sum folds Add over xs starting at 0. The sum of an empty sequence
// is 0.
func Sum(xs []float64) float64 {
	var total float64
	for _, x := range xs {
		total = Add(total, x)
	}
	return total
}

// Avg returns Sum(xs) / len(xs). The average of an empty sequence is
// NaN (0/0); callers that need a different convention must guard the
// empty case themselves.
func Avg(xs []float64) float64 {
	return Div(Sum(xs), float64(len(xs)))
}
