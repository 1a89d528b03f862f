package vecmath

import "github.com/aqlla/vecmath/vec"

// Operand is anything that can supply vector components to an
// arithmetic method: another *Vector, or a Raw slice.
type Operand interface {
	Components() []float64
}

// Raw adapts a plain []float64 so it can be passed as an Operand.
// The slice is used as-is, without copying.
type Raw []float64

// Components implements Operand.
func (r Raw) Components() []float64 { return r }

// Vector wraps a fixed-length sequence of float64 components. The
// dimension is fixed at construction. The first four axes are also
// readable and writable by name (X, Y, Z, W); named and indexed
// access share the single backing slice, so the two views can never
// diverge.
//
// Arithmetic methods never mutate the receiver; they return new
// instances. Set and the named setters are the only in-place
// mutation paths.
type Vector struct {
	components []float64
}

// New creates a Vector from the given components. The input is
// copied.
func New(components ...float64) *Vector {
	return FromSlice(components)
}

// FromSlice creates a Vector from a component slice. The input is
// copied, so later changes to it do not affect the vector.
func FromSlice(components []float64) *Vector {
	c := make([]float64, len(components))
	copy(c, components)
	return &Vector{components: c}
}

// Components returns the backing slice itself, not a copy. Writing
// through it is equivalent to calling Set.
func (v *Vector) Components() []float64 { return v.components }

// Len returns the dimension of the vector.
func (v *Vector) Len() int { return len(v.components) }

// At returns the component at index i.
func (v *Vector) At(i int) float64 { return v.components[i] }

// Set assigns the component at index i in place.
func (v *Vector) Set(i int, x float64) { v.components[i] = x }

// X returns the first component. Panics if the dimension is 0.
func (v *Vector) X() float64 { return v.components[0] }

// Y returns the second component. Panics if the dimension is < 2.
func (v *Vector) Y() float64 { return v.components[1] }

// Z returns the third component. Panics if the dimension is < 3.
func (v *Vector) Z() float64 { return v.components[2] }

// W returns the fourth component. Panics if the dimension is < 4.
func (v *Vector) W() float64 { return v.components[3] }

// SetX assigns the first component in place.
func (v *Vector) SetX(x float64) { v.components[0] = x }

// SetY assigns the second component in place.
func (v *Vector) SetY(y float64) { v.components[1] = y }

// SetZ assigns the third component in place.
func (v *Vector) SetZ(z float64) { v.components[2] = z }

// SetW assigns the fourth component in place.
func (v *Vector) SetW(w float64) { v.components[3] = w }

// Map applies fn(component, index) elementwise and returns the
// result as a new Vector.
func (v *Vector) Map(fn func(x float64, i int) float64) *Vector {
	return &Vector{components: vec.Map(v.components, fn)}
}

// Add returns the elementwise sum of v and o as a new Vector.
func (v *Vector) Add(o Operand) (*Vector, error) {
	c, err := vec.Add(v.components, o.Components())
	if err != nil {
		return nil, err
	}
	return &Vector{components: c}, nil
}

// Sub returns the elementwise difference v - o as a new Vector.
func (v *Vector) Sub(o Operand) (*Vector, error) {
	c, err := vec.Sub(v.components, o.Components())
	if err != nil {
		return nil, err
	}
	return &Vector{components: c}, nil
}

// Mul returns v scaled by s as a new Vector.
func (v *Vector) Mul(s float64) *Vector {
	return &Vector{components: vec.Mul(v.components, s)}
}

// Div returns v divided by s as a new Vector. A zero s yields ±Inf
// or NaN components per IEEE-754.
func (v *Vector) Div(s float64) *Vector {
	return &Vector{components: vec.Div(v.components, s)}
}

// Dot returns the dot product of v and o.
func (v *Vector) Dot(o Operand) (float64, error) {
	return vec.Dot(v.components, o.Components())
}

// MagnitudeSquared returns the sum of the squared components.
func (v *Vector) MagnitudeSquared() float64 {
	return vec.MagnitudeSquared(v.components)
}

// Magnitude returns the Euclidean length of v.
func (v *Vector) Magnitude() float64 {
	return vec.Magnitude(v.components)
}

// Unit returns v scaled to length 1 as a new Vector. A zero vector
// yields all-NaN components.
func (v *Vector) Unit() *Vector {
	return &Vector{components: vec.Unit(v.components)}
}

// Angle returns the angle between v and o in radians.
func (v *Vector) Angle(o Operand) (float64, error) {
	return vec.Angle(v.components, o.Components())
}

// Midpoint returns the elementwise average of v and o as a new
// Vector.
func (v *Vector) Midpoint(o Operand) (*Vector, error) {
	c, err := vec.Midpoint(v.components, o.Components())
	if err != nil {
		return nil, err
	}
	return &Vector{components: c}, nil
}
