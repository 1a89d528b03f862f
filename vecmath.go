package vecmath

import (
	"fmt"
	"math"

	"github.com/aqlla/vecmath/scalar"
	"github.com/aqlla/vecmath/vec"
)

const defaultEpsilon = 1e-9

// Space is a handle for working with vectors of one fixed dimension.
// It validates dimensions at construction time, carries the logger
// and metrics collector for its operations, and provides aggregate
// helpers (centroid, tolerant equality) over same-dimension vectors.
//
// A Space is cheap to create and holds no vector state of its own.
// All operations are synchronous and single-threaded.
type Space struct {
	dim     int
	epsilon float64
	logger  *Logger
	metrics MetricsCollector
}

// NewSpace creates a Space for vectors of the given dimension.
// Returns ErrInvalidDimension if dim is not positive.
func NewSpace(dim int, opts ...Option) (*Space, error) {
	if dim <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}

	o := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
		epsilon: defaultEpsilon,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Space{
		dim:     dim,
		epsilon: o.epsilon,
		logger:  o.logger.WithDimension(dim),
		metrics: o.metrics,
	}, nil
}

// Dimension returns the fixed dimension of the space.
func (s *Space) Dimension() int { return s.dim }

func (s *Space) record(op string, err error) {
	s.metrics.RecordOp(op, s.dim, err)
	s.logger.LogOp(op, err)
}

// New creates a Vector from the given components, which must match
// the space's dimension exactly.
func (s *Space) New(components ...float64) (*Vector, error) {
	var err error
	if len(components) != s.dim {
		err = &vec.ErrDimensionMismatch{Expected: s.dim, Actual: len(components)}
	}
	s.record("new", err)
	if err != nil {
		return nil, err
	}
	return New(components...), nil
}

// Zero returns the zero vector of the space.
func (s *Space) Zero() *Vector {
	s.record("zero", nil)
	return &Vector{components: make([]float64, s.dim)}
}

// Basis returns the i-th standard basis vector (1 at index i, 0
// elsewhere).
func (s *Space) Basis(i int) (*Vector, error) {
	var err error
	if i < 0 || i >= s.dim {
		err = fmt.Errorf("%w: basis %d in dimension %d", ErrIndexOutOfRange, i, s.dim)
	}
	s.record("basis", err)
	if err != nil {
		return nil, err
	}

	c := make([]float64, s.dim)
	c[i] = 1
	return &Vector{components: c}, nil
}

// Centroid returns the per-component average of the given vectors,
// all of which must match the space's dimension. At least one
// operand is required.
func (s *Space) Centroid(vs ...Operand) (*Vector, error) {
	err := s.checkOperands(vs)
	s.record("centroid", err)
	if err != nil {
		return nil, err
	}

	out := make([]float64, s.dim)
	column := make([]float64, len(vs))
	for axis := 0; axis < s.dim; axis++ {
		for j, v := range vs {
			column[j] = v.Components()[axis]
		}
		out[axis] = scalar.Avg(column)
	}
	return &Vector{components: out}, nil
}

// Equal reports whether a and b agree elementwise within the space's
// epsilon. NaN components never compare equal.
func (s *Space) Equal(a, b Operand) (bool, error) {
	err := s.checkOperands([]Operand{a, b})
	s.record("equal", err)
	if err != nil {
		return false, err
	}

	ac, bc := a.Components(), b.Components()
	for i := range ac {
		if !(math.Abs(ac[i]-bc[i]) <= s.epsilon) {
			return false, nil
		}
	}
	return true, nil
}

func (s *Space) checkOperands(vs []Operand) error {
	if len(vs) == 0 {
		return ErrNoOperands
	}
	for _, v := range vs {
		if n := len(v.Components()); n != s.dim {
			return &vec.ErrDimensionMismatch{Expected: s.dim, Actual: n}
		}
	}
	return nil
}
