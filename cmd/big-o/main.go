package main

import (
	"os"

	"github.com/drakos74/big-o/infra/config"
	"github.com/drakos74/big-o/internal/algos"
	"github.com/drakos74/big-o/internal/experiment"
	"github.com/drakos74/big-o/internal/math"
	"github.com/drakos74/big-o/internal/plot"
	"github.com/drakos74/big-o/internal/sampler"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

type demo struct {
	exp  experiment.Experiment
	refs []math.Curve
}

// settings are optional overrides for the demo runs,
// e.g. lowering repetitions on a slow machine.
type settings struct {
	Repetitions map[string]int `json:"repetitions"`
}

func main() {

	var s settings
	if _, err := config.Load("demo", &s); err != nil {
		log.Fatal().Err(err).Msg("could not load demo config")
	}

	for _, d := range demos() {
		if reps, ok := s.Repetitions[d.exp.Name]; ok {
			d.exp.Repetitions = reps
		}
		report, err := d.exp.Run()
		if err != nil {
			log.Fatal().Err(err).Str("experiment", d.exp.Name).Msg("could not run experiment")
		}
		if err := report.Render(os.Stdout, d.refs...); err != nil {
			log.Fatal().Err(err).Str("experiment", d.exp.Name).Msg("could not render report")
		}
	}

	// the known runtime shapes on their own, for side by side comparison
	shapes()
}

func demos() []demo {
	return []demo{
		{
			// the library sum over a growing list
			exp: experiment.Experiment{
				Name: "sum",
				Target: sampler.Target{
					Name: "sum",
					Build: func(n int) func() {
						xx := algos.Sorted(n)
						return func() {
							algos.Sum(xx)
						}
					},
				},
				Sizes:       math.Sizes(10, 10000, 50),
				Repetitions: 100,
				Degree:      4,
			},
			refs: []math.Curve{math.Linear(1)},
		},
		{
			// list indexing is independent of the list size
			exp: experiment.Experiment{
				Name: "index",
				Target: sampler.Target{
					Name: "index",
					Build: func(n int) func() {
						xx := algos.Sorted(n)
						return func() {
							_ = xx[n/2]
						}
					},
				},
				Sizes:       math.Sizes(10, 1000000, 50),
				Repetitions: 10000,
				Degree:      4,
			},
		},
		{
			// the hit is found halfway through the shuffled list on average
			exp: experiment.Experiment{
				Name: "linear-search-hit",
				Target: sampler.Target{
					Name: "linear-search-hit",
					Build: func(n int) func() {
						xx := algos.Shuffled(n)
						return func() {
							algos.Contains(xx, 0)
						}
					},
				},
				Sizes:       math.Sizes(10, 10000, 100),
				Repetitions: 100,
				Degree:      4,
			},
			refs: []math.Curve{math.Linear(1)},
		},
		{
			// a miss always walks the full list
			exp: experiment.Experiment{
				Name: "linear-search-miss",
				Target: sampler.Target{
					Name: "linear-search-miss",
					Build: func(n int) func() {
						xx := algos.Sorted(n)
						return func() {
							algos.Contains(xx, -1)
						}
					},
				},
				Sizes:       math.Sizes(10, 10000, 100),
				Repetitions: 100,
				Degree:      4,
			},
			refs: []math.Curve{math.Linear(1)},
		},
		{
			exp: experiment.Experiment{
				Name: "binary-search",
				Target: sampler.Target{
					Name: "binary-search",
					Build: func(n int) func() {
						xx := algos.Sorted(n)
						return func() {
							algos.BinaryContains(xx, n/2)
						}
					},
				},
				Sizes:       math.Sizes(10, 10000, 200),
				Repetitions: 1000,
				// a high degree follows the flattening curve more closely
				Degree: 10,
			},
			refs: []math.Curve{math.Logarithmic(1)},
		},
		{
			// sorting mutates its input, each repetition gets a fresh shuffle
			exp: experiment.Experiment{
				Name: "insertion-sort",
				Target: sampler.Target{
					Name: "insertion-sort",
					Build: func(n int) func() {
						xx := algos.Shuffled(n)
						return func() {
							algos.InsertionSort(xx)
						}
					},
					Mutates: true,
				},
				Sizes:       math.Sizes(100, 2000, 15),
				Repetitions: 1,
				Degree:      4,
			},
			refs: []math.Curve{math.Quadratic(1)},
		},
		{
			// mystery f : index construction dominates the single lookup
			exp: experiment.Experiment{
				Name: "mystery-f",
				Target: sampler.Target{
					Name: "mystery-f",
					Build: func(n int) func() {
						xx := algos.Shuffled(n)
						return func() {
							algos.IndexLookup(xx, n-1)
						}
					},
				},
				Sizes:       math.Range(5, 2000),
				Repetitions: 1,
				Degree:      4,
			},
			refs: []math.Curve{math.Linear(1), math.Linearithmic(1)},
		},
		{
			// mystery g : all index pairs are enumerated
			exp: experiment.Experiment{
				Name: "mystery-g",
				Target: sampler.Target{
					Name: "mystery-g",
					Build: func(n int) func() {
						xx := algos.Sorted(n)
						return func() {
							algos.EqualPairs(xx)
						}
					},
				},
				Sizes:       math.Range(5, 200),
				Repetitions: 1,
				Degree:      4,
			},
			refs: []math.Curve{math.Quadratic(1)},
		},
		{
			// mystery h : naive fibonacci
			exp: experiment.Experiment{
				Name: "mystery-h",
				Target: sampler.Target{
					Name: "mystery-h",
					Build: func(n int) func() {
						return func() {
							algos.Fib(n)
						}
					},
				},
				Sizes:       math.Range(5, 30),
				Repetitions: 1,
				Degree:      4,
			},
			refs: []math.Curve{math.Quadratic(1), math.Exponential(1)},
		},
	}
}

// shapes renders the reference curves over small ranges,
// each on its own axes, as a visual cheat sheet.
func shapes() {
	xx := math.ToFloat(math.Range(1, 100))
	for _, c := range []math.Curve{
		math.Logarithmic(1000),
		math.Linear(1),
		math.Linearithmic(1),
		math.Quadratic(1),
	} {
		if err := plot.Render(os.Stdout, c.Name, 8, plot.NewSeries(c.Name, c.Sample(xx))); err != nil {
			log.Fatal().Err(err).Str("curve", c.Name).Msg("could not render reference curve")
		}
	}
	// the exponential blows up too fast for the shared range
	ex := math.ToFloat(math.Range(1, 10))
	c := math.Exponential(20)
	if err := plot.Render(os.Stdout, c.Name, 8, plot.NewSeries(c.Name, c.Sample(ex))); err != nil {
		log.Fatal().Err(err).Str("curve", c.Name).Msg("could not render reference curve")
	}
}
