package scalar

// Curried forms fix one operand of a binary operation and return a
// function awaiting the other. For the non-commutative operations the
// variant name states which operand is fixed: SubFrom/DivInto fix the
// first operand (minuend/dividend), SubBy/DivBy fix the second
// (subtrahend/divisor). Callers must pick the variant matching the
// intended operand order.

// AddTo fixes l; the returned function computes l + r.
func AddTo(l float64) func(float64) float64 {
	return func(r float64) float64 { return Add(l, r) }
}

// MulBy fixes r; the returned function computes l * r.
func MulBy(r float64) func(float64) float64 {
	return func(l float64) float64 { return Mul(l, r) }
}

// SubFrom fixes the minuend l; the returned function computes l - r.
func SubFrom(l float64) func(float64) float64 {
	return func(r float64) float64 { return Sub(l, r) }
}

// SubBy fixes the subtrahend r; the returned function computes l - r.
func SubBy(r float64) func(float64) float64 {
	return func(l float64) float64 { return Sub(l, r) }
}

// DivInto fixes the dividend l; the returned function computes l / r.
func DivInto(l float64) func(float64) float64 {
	return func(r float64) float64 { return Div(l, r) }
}

// DivBy fixes the divisor r; the returned function computes l / r.
func DivBy(r float64) func(float64) float64 {
	return func(l float64) float64 { return Div(l, r) }
}
