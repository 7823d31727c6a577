package sampler

// Sample is the measured wall-clock duration for a single input size.
type Sample struct {
	Size int
	// Elapsed is the total duration in seconds across all repetitions at this size.
	Elapsed float64
}

// Set is an ordered collection of samples, one per measured size.
type Set []Sample

// Sizes projects the sample sizes as a float series, ready for fitting and plotting.
func (s Set) Sizes() []float64 {
	xx := make([]float64, len(s))
	for i, sample := range s {
		xx[i] = float64(sample.Size)
	}
	return xx
}

// Times projects the elapsed durations as a float series, ready for fitting and plotting.
func (s Set) Times() []float64 {
	yy := make([]float64, len(s))
	for i, sample := range s {
		yy[i] = sample.Elapsed
	}
	return yy
}

// Total is the overall time spent measuring the set.
func (s Set) Total() float64 {
	total := 0.0
	for _, sample := range s {
		total += sample.Elapsed
	}
	return total
}
