package math

// RSS is the residual sum of squares of the given function against the observations.
// It allows to compare how well fits of different degrees explain the same sample.
func RSS(x, y []float64, f func(float64) float64) float64 {
	rss := 0.0
	for i := range x {
		d := y[i] - f(x[i])
		rss += d * d
	}
	return rss
}
