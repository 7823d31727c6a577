package sampler

import (
	"fmt"
	"time"

	"github.com/drakos74/big-o/internal/buffer"
	"github.com/drakos74/big-o/internal/metrics"
	"github.com/rs/zerolog/log"
)

// Target describes an operation under measurement.
type Target struct {
	Name string
	// Build constructs a fresh input of the given size and binds the operation to it.
	// The returned closure executes the operation once; only that execution is timed,
	// so construction cost never leaks into the measurement.
	Build func(n int) func()
	// Mutates marks operations that modify their input in place.
	// For these the input is rebuilt before every repetition instead of once per size,
	// e.g. a sort must not be handed an already-sorted input on the second repetition.
	Mutates bool
}

// Measure produces one Sample per size by timing the target operation
// repetitions times at that size on a freshly built input.
// It runs strictly sequentially; timing in parallel would invalidate the isolation
// of the individual measurements.
// A panic in the target propagates to the caller; no partial Set is returned.
func Measure(sizes []int, target Target, repetitions int) (Set, error) {

	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes to measure for '%s'", target.Name)
	}
	if repetitions < 1 {
		return nil, fmt.Errorf("invalid repetitions %d for '%s'", repetitions, target.Name)
	}
	if target.Build == nil {
		return nil, fmt.Errorf("no input builder for '%s'", target.Name)
	}

	samples := make(Set, 0, len(sizes))
	for _, n := range sizes {
		var elapsed float64
		if target.Mutates {
			elapsed = measureEach(target, n, repetitions)
		} else {
			elapsed = measureBatch(target, n, repetitions)
		}
		samples = append(samples, Sample{Size: n, Elapsed: elapsed})
		metrics.Observer.Add(float64(repetitions), target.Name, "measure")
	}

	log.Debug().
		Str("target", target.Name).
		Int("sizes", len(sizes)).
		Int("repetitions", repetitions).
		Float64("total", samples.Total()).
		Msg("measured")

	return samples, nil
}

// measureBatch builds the input once and times all repetitions in one go.
// The clock is read only twice, so granularity affects the batch, not every trial.
func measureBatch(target Target, n, repetitions int) float64 {
	run := target.Build(n)
	start := time.Now()
	for i := 0; i < repetitions; i++ {
		run()
	}
	return time.Since(start).Seconds()
}

// measureEach rebuilds the input and times each repetition separately,
// keeping construction out of the measured interval.
func measureEach(target Target, n, repetitions int) float64 {
	stats := buffer.NewStats()
	for i := 0; i < repetitions; i++ {
		run := target.Build(n)
		start := time.Now()
		run()
		stats.Push(time.Since(start).Seconds())
	}
	if repetitions > 1 {
		log.Debug().
			Str("target", target.Name).
			Int("size", n).
			Float64("mean", stats.Avg()).
			Float64("std", stats.StDev()).
			Msg("trial spread")
	}
	return stats.Sum()
}
