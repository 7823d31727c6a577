package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFit(t *testing.T) {

	type test struct {
		x      []float64
		y      []float64
		degree int
		coeffs Polynomial
		err    error
	}

	tests := map[string]test{
		"constant": {
			x:      []float64{1, 2, 3, 4},
			y:      []float64{5, 5, 5, 5},
			degree: 0,
			coeffs: Polynomial{5},
		},
		"line": {
			x:      []float64{0, 1, 2, 3},
			y:      []float64{1, 3, 5, 7},
			degree: 1,
			coeffs: Polynomial{1, 2},
		},
		"parabola": {
			x:      []float64{-2, -1, 0, 1, 2},
			y:      []float64{4, 1, 0, 1, 4},
			degree: 2,
			coeffs: Polynomial{0, 0, 1},
		},
		"interpolation-exact-points": {
			// degree+1 distinct points pin the polynomial down exactly
			x:      []float64{1, 2, 3},
			y:      []float64{2, 5, 10},
			degree: 2,
			coeffs: Polynomial{1, 0, 1},
		},
		"negative-degree": {
			x:      []float64{1, 2},
			y:      []float64{1, 2},
			degree: -1,
			err:    ErrIllConditioned,
		},
		"size-mismatch": {
			x:      []float64{1, 2, 3},
			y:      []float64{1, 2},
			degree: 1,
			err:    ErrIllConditioned,
		},
		"too-few-points": {
			x:      []float64{1},
			y:      []float64{1},
			degree: 1,
			err:    ErrIllConditioned,
		},
		"degenerate-sizes": {
			x:      []float64{3, 3, 3, 3},
			y:      []float64{1, 2, 3, 4},
			degree: 1,
			err:    ErrIllConditioned,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := Fit(tt.x, tt.y, tt.degree)
			if tt.err != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, p)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.degree, p.Degree())
			for i, c := range tt.coeffs {
				assert.InDelta(t, c, p[i], 1e-9, "coefficient %d", i)
			}
			// the fit must reproduce the observations for exact polynomial data
			for i, x := range tt.x {
				assert.InDelta(t, tt.y[i], p.At(x), 1e-9)
			}
		})
	}
}

func TestPolynomial_At(t *testing.T) {

	p := Polynomial{1, -2, 3}

	assert.Equal(t, 1.0, p.At(0))
	assert.Equal(t, 2.0, p.At(1))
	assert.Equal(t, 9.0, p.At(2))
	// extrapolation outside any fitted range is still well-defined
	assert.Equal(t, 1.0+(-2)*10+3*100, p.At(10))
}

func TestFit_Residuals(t *testing.T) {

	// a noisy but clearly increasing series is explained better by a line
	// than by a constant
	x := []float64{100, 200, 400, 800}
	y := []float64{0.011, 0.019, 0.042, 0.078}

	p0, err := Fit(x, y, 0)
	assert.NoError(t, err)
	p1, err := Fit(x, y, 1)
	assert.NoError(t, err)

	assert.True(t, p1[1] > 0, "expected positive slope, got %f", p1[1])
	assert.True(t, RSS(x, y, p1.At) < RSS(x, y, p0.At),
		"linear fit should leave smaller residuals than a constant")
}

func TestFit_HighDegree(t *testing.T) {

	// degree 4 over a linear series, as used for the lines of best fit
	x := Linspace(1, 100, 50)
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2e-6 * v
	}

	p, err := Fit(x, y, 4)
	assert.NoError(t, err)

	for i, v := range x {
		assert.InDelta(t, y[i], p.At(v), math.Max(1e-9, y[i]*1e-3))
	}
}
