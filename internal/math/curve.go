package math

import "math"

// Curve is a closed-form function of the input size,
// used as a known reference shape for visual comparison against measured timings.
// Scale stretches the curve vertically to align magnitudes with the measurements.
type Curve struct {
	Name  string
	Scale float64
	f     func(x float64) float64
}

// At evaluates the curve at the given x.
func (c Curve) At(x float64) float64 {
	s := c.Scale
	if s == 0 {
		s = 1
	}
	return s * c.f(x)
}

// Align rescales the curve so that its peak over xx matches the peak of yy.
// It gives reference curves of a different magnitude a comparable vertical extent,
// the way one would stretch y = log x against measured millisecond timings.
func (c Curve) Align(xx, yy []float64) Curve {
	peak := 0.0
	for _, y := range yy {
		if y > peak {
			peak = y
		}
	}
	ref := 0.0
	for _, x := range xx {
		if v := c.At(x); v > ref {
			ref = v
		}
	}
	if peak == 0 || ref == 0 || math.IsInf(ref, 1) {
		return c
	}
	scale := c.Scale
	if scale == 0 {
		scale = 1
	}
	return Curve{Name: c.Name, Scale: scale * peak / ref, f: c.f}
}

// Sample evaluates the curve at each of the given points.
func (c Curve) Sample(xx []float64) []float64 {
	yy := make([]float64, len(xx))
	for i, x := range xx {
		yy[i] = c.At(x)
	}
	return yy
}

// Logarithmic is the y = log2(x) reference curve.
func Logarithmic(scale float64) Curve {
	return Curve{Name: "log n", Scale: scale, f: math.Log2}
}

// Linear is the y = x reference curve.
func Linear(scale float64) Curve {
	return Curve{Name: "n", Scale: scale, f: func(x float64) float64 {
		return x
	}}
}

// Linearithmic is the y = x * log2(x) reference curve.
func Linearithmic(scale float64) Curve {
	return Curve{Name: "n log n", Scale: scale, f: func(x float64) float64 {
		return x * math.Log2(x)
	}}
}

// Quadratic is the y = x^2 reference curve.
func Quadratic(scale float64) Curve {
	return Curve{Name: "n^2", Scale: scale, f: func(x float64) float64 {
		return x * x
	}}
}

// Exponential is the y = 2^x reference curve.
func Exponential(scale float64) Curve {
	return Curve{Name: "2^n", Scale: scale, f: math.Exp2}
}
