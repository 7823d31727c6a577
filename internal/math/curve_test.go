package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurve_At(t *testing.T) {

	type test struct {
		curve  Curve
		x      float64
		output float64
	}

	tests := map[string]test{
		"log": {
			curve:  Logarithmic(1),
			x:      8,
			output: 3,
		},
		"log-stretched": {
			// stretched by 1000 to align with millisecond timings
			curve:  Logarithmic(1000),
			x:      2,
			output: 1000,
		},
		"linear": {
			curve:  Linear(1),
			x:      42,
			output: 42,
		},
		"linearithmic": {
			curve:  Linearithmic(1),
			x:      4,
			output: 8,
		},
		"quadratic": {
			curve:  Quadratic(1),
			x:      9,
			output: 81,
		},
		"exponential": {
			curve:  Exponential(1),
			x:      10,
			output: 1024,
		},
		"exponential-compressed": {
			curve:  Exponential(1.0 / 50),
			x:      10,
			output: 1024.0 / 50,
		},
		"zero-scale-means-identity": {
			curve:  Linear(0),
			x:      7,
			output: 7,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.output, tt.curve.At(tt.x), 1e-9)
		})
	}
}

func TestCurve_Sample(t *testing.T) {

	yy := Quadratic(2).Sample([]float64{1, 2, 3})

	assert.Equal(t, []float64{2, 8, 18}, yy)
}
