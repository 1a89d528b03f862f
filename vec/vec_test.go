package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected []float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{5, 7, 9}},
		{"Negative", []float64{1, -1}, []float64{-1, 1}, []float64{0, 0}},
		{"Empty", []float64{}, []float64{}, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Add(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAddCommutative(t *testing.T) {
	a := []float64{1.5, -2, 3.25}
	b := []float64{0.5, 7, -1}

	ab, err := Add(a, b)
	require.NoError(t, err)
	ba, err := Add(b, a)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
}

func TestSub(t *testing.T) {
	got, err := Sub([]float64{5, 7, 9}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)
}

// sub(a,b) == mul(sub(b,a), -1) elementwise.
func TestSubAntisymmetric(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{6, 5, 4}

	ab, err := Sub(a, b)
	require.NoError(t, err)
	ba, err := Sub(b, a)
	require.NoError(t, err)

	negated := Mul(ba, -1)
	for i := range ab {
		assert.InDelta(t, ab[i], negated[i], 1e-12)
	}
}

func TestDimensionMismatch(t *testing.T) {
	short := []float64{1, 2}
	long := []float64{1, 2, 3}

	t.Run("Add", func(t *testing.T) {
		got, err := Add(short, long)
		assert.Nil(t, got)

		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 2, dm.Expected)
		assert.Equal(t, 3, dm.Actual)
	})

	t.Run("Sub", func(t *testing.T) {
		_, err := Sub(long, short)
		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 3, dm.Expected)
		assert.Equal(t, 2, dm.Actual)
	})

	t.Run("Dot", func(t *testing.T) {
		got, err := Dot(short, long)
		assert.Zero(t, got)
		var dm *ErrDimensionMismatch
		assert.ErrorAs(t, err, &dm)
	})

	t.Run("Angle", func(t *testing.T) {
		_, err := Angle(short, long)
		var dm *ErrDimensionMismatch
		assert.ErrorAs(t, err, &dm)
	})

	t.Run("Midpoint", func(t *testing.T) {
		got, err := Midpoint(short, long)
		assert.Nil(t, got)
		var dm *ErrDimensionMismatch
		assert.ErrorAs(t, err, &dm)
	})
}

func TestMul(t *testing.T) {
	assert.Equal(t, []float64{2, 4, 6}, Mul([]float64{1, 2, 3}, 2))
	assert.Equal(t, []float64{-1, -2}, Mul([]float64{1, 2}, -1))
	assert.Equal(t, []float64{0, 0}, Mul([]float64{3, 4}, 0))
}

func TestDiv(t *testing.T) {
	assert.Equal(t, []float64{1, 2}, Div([]float64{2, 4}, 2))

	t.Run("ZeroScalar", func(t *testing.T) {
		got := Div([]float64{1, -1, 0}, 0)
		assert.True(t, math.IsInf(got[0], 1))
		assert.True(t, math.IsInf(got[1], -1))
		assert.True(t, math.IsNaN(got[2]))
	})
}

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 32},
		{"Orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"Empty", []float64{}, []float64{}, 0},
		{"Mixed", []float64{1, -1, 2}, []float64{1, 1, -2}, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dot(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestDotCommutative(t *testing.T) {
	a := []float64{1.5, -2, 3}
	b := []float64{4, 0.5, -6}

	ab, err := Dot(a, b)
	require.NoError(t, err)
	ba, err := Dot(b, a)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
}

func TestMagnitude(t *testing.T) {
	assert.Equal(t, 5.0, Magnitude([]float64{3, 4}))
	assert.Equal(t, 25.0, MagnitudeSquared([]float64{3, 4}))
	assert.Equal(t, 0.0, Magnitude([]float64{0, 0, 0}))
	assert.GreaterOrEqual(t, Magnitude([]float64{-3, -4}), 0.0)
}

func TestUnit(t *testing.T) {
	t.Run("NonZero", func(t *testing.T) {
		u := Unit([]float64{3, 4})
		assert.InDelta(t, 0.6, u[0], 1e-12)
		assert.InDelta(t, 0.8, u[1], 1e-12)
		assert.InDelta(t, 1.0, Magnitude(u), 1e-12)
	})

	t.Run("ZeroVector", func(t *testing.T) {
		// 0/0 per component; NaN is the documented result, not an error.
		u := Unit([]float64{0, 0})
		require.Len(t, u, 2)
		assert.True(t, math.IsNaN(u[0]))
		assert.True(t, math.IsNaN(u[1]))
	})
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Parallel", []float64{1, 0}, []float64{1, 0}, 0},
		{"Orthogonal", []float64{1, 0}, []float64{0, 1}, math.Pi / 2},
		{"Opposite", []float64{1, 0}, []float64{-1, 0}, math.Pi},
		{"FortyFive", []float64{1, 0}, []float64{1, 1}, math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Angle(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestAngleZeroVector(t *testing.T) {
	// dot/(0*|b|) is 0/0; acos(NaN) stays NaN.
	got, err := Angle([]float64{0, 0}, []float64{1, 0})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestMidpoint(t *testing.T) {
	got, err := Midpoint([]float64{0, 0}, []float64{2, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, got)
}

func TestMap(t *testing.T) {
	v := []float64{1, 2, 3}
	got := Map(v, func(x float64, i int) float64 { return x * float64(i) })
	assert.Equal(t, []float64{0, 2, 6}, got)
	assert.Equal(t, []float64{1, 2, 3}, v)
}

func TestOperandsNotMutated(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{3, 4}

	_, err := Add(a, b)
	require.NoError(t, err)
	_, err = Sub(a, b)
	require.NoError(t, err)
	_ = Unit(a)

	assert.Equal(t, []float64{1, 2}, a)
	assert.Equal(t, []float64{3, 4}, b)
}
