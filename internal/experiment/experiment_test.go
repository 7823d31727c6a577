package experiment

import (
	"bytes"
	"testing"

	"github.com/drakos74/big-o/internal/algos"
	"github.com/drakos74/big-o/internal/math"
	"github.com/drakos74/big-o/internal/sampler"
	"github.com/stretchr/testify/assert"
)

func sum() sampler.Target {
	return sampler.Target{
		Name: "sum",
		Build: func(n int) func() {
			xx := algos.Sorted(n)
			return func() {
				algos.Sum(xx)
			}
		},
	}
}

func TestExperiment_Run(t *testing.T) {

	exp := Experiment{
		Name:        "sum",
		Target:      sum(),
		Sizes:       math.Sizes(10, 1000, 10),
		Repetitions: 50,
		Degree:      4,
	}

	report, err := exp.Run()
	assert.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "sum", report.Name)
	assert.Equal(t, 10, len(report.Samples))
	assert.Equal(t, 4, report.Fit.Degree())
	for _, s := range report.Samples {
		assert.True(t, s.Elapsed >= 0)
	}
}

func TestExperiment_Run_Errors(t *testing.T) {

	type test struct {
		exp Experiment
	}

	tests := map[string]test{
		"no-repetitions": {
			exp: Experiment{
				Name:        "sum",
				Target:      sum(),
				Sizes:       []int{10, 20},
				Repetitions: 0,
				Degree:      1,
			},
		},
		"degree-exceeds-samples": {
			exp: Experiment{
				Name:        "sum",
				Target:      sum(),
				Sizes:       []int{10, 20},
				Repetitions: 1,
				Degree:      4,
			},
		},
		"single-point-line": {
			exp: Experiment{
				Name:        "sum",
				Target:      sum(),
				Sizes:       []int{10},
				Repetitions: 1,
				Degree:      1,
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			report, err := tt.exp.Run()
			assert.Error(t, err)
			assert.Nil(t, report)
		})
	}
}

func TestExperiment_Run_IllConditionedFit(t *testing.T) {

	exp := Experiment{
		Name:        "sum",
		Target:      sum(),
		Sizes:       []int{10, 20},
		Repetitions: 1,
		Degree:      4,
	}

	_, err := exp.Run()
	assert.ErrorIs(t, err, math.ErrIllConditioned)
}

func TestReport_Render(t *testing.T) {

	exp := Experiment{
		Name:        "sum",
		Target:      sum(),
		Sizes:       math.Sizes(10, 500, 8),
		Repetitions: 10,
		Degree:      2,
	}

	report, err := exp.Run()
	assert.NoError(t, err)

	var buf bytes.Buffer
	err = report.Render(&buf, math.Linear(1), math.Quadratic(1))
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "sum : n in [10,500]")
	assert.Contains(t, out, "samples")
	assert.Contains(t, out, "fit")
	assert.Contains(t, out, "n^2")

	buf.Reset()
	report.Table(&buf)
	assert.Contains(t, buf.String(), "SECONDS")
}
