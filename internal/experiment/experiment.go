package experiment

import (
	"fmt"
	"io"

	"github.com/drakos74/big-o/internal/math"
	"github.com/drakos74/big-o/internal/metrics"
	"github.com/drakos74/big-o/internal/plot"
	"github.com/drakos74/big-o/internal/sampler"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const plotHeight = 12

// Experiment couples an operation under test with the measurement
// and fit parameters of a single run.
type Experiment struct {
	Name        string
	Target      sampler.Target
	Sizes       []int
	Repetitions int
	// Degree of the line of best fit, typically 4 and up to 10 for wavy data.
	Degree int
}

// Report is the outcome of an experiment run : the raw samples and the fitted curve.
type Report struct {
	ID      string
	Name    string
	Samples sampler.Set
	Fit     math.Polynomial
}

// Run measures the target over all sizes and fits the line of best fit.
// Measurement and fit failures abort the run; there is no partial report.
func (e Experiment) Run() (*Report, error) {

	samples, err := sampler.Measure(e.Sizes, e.Target, e.Repetitions)
	if err != nil {
		return nil, fmt.Errorf("could not measure '%s': %w", e.Name, err)
	}

	p, err := math.Fit(samples.Sizes(), samples.Times(), e.Degree)
	if err != nil {
		return nil, fmt.Errorf("could not fit '%s': %w", e.Name, err)
	}
	metrics.Observer.Increment(e.Name, "fit")

	report := &Report{
		ID:      uuid.New().String(),
		Name:    e.Name,
		Samples: samples,
		Fit:     p,
	}

	log.Info().
		Str("id", report.ID).
		Str("experiment", e.Name).
		Int("samples", len(samples)).
		Int("degree", p.Degree()).
		Float64("total", samples.Total()).
		Msg("experiment done")

	return report, nil
}

// Render plots the measured samples together with the fitted curve
// and any reference curves, each aligned to the magnitude of the measurements.
// Judging which reference shape the fit resembles is left to the reader.
func (r *Report) Render(w io.Writer, refs ...math.Curve) error {

	xx := r.Samples.Sizes()

	series := []plot.Series{
		plot.NewSeries("samples", r.Samples.Times()),
		plot.NewSeries("fit", sample(r.Fit.At, xx)),
	}
	for _, ref := range refs {
		aligned := ref.Align(xx, r.Samples.Times())
		series = append(series, plot.NewSeries(aligned.Name, aligned.Sample(xx)))
	}

	caption := fmt.Sprintf("%s : n in [%d,%d] over %d sizes",
		r.Name, r.Samples[0].Size, r.Samples[len(r.Samples)-1].Size, len(r.Samples))

	return plot.Render(w, caption, plotHeight, series...)
}

// Table writes the measured and fitted values side by side.
func (r *Report) Table(w io.Writer) {
	plot.Table(w, r.Samples.Sizes(), r.Samples.Times(), r.Fit.At)
}

func sample(f func(float64) float64, xx []float64) []float64 {
	yy := make([]float64, len(xx))
	for i, x := range xx {
		yy[i] = f(x)
	}
	return yy
}
