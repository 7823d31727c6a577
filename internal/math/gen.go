package math

import "math"

// Linspace generates num evenly spaced values over the closed interval [lo,hi].
func Linspace(lo, hi float64, num int) []float64 {
	xx := make([]float64, 0)
	if num <= 0 {
		return xx
	}
	if num == 1 {
		return append(xx, lo)
	}
	step := (hi - lo) / float64(num-1)
	for i := 0; i < num; i++ {
		xx = append(xx, lo+float64(i)*step)
	}
	return xx
}

// Logspace generates num values geometrically spaced over the closed interval [lo,hi].
// Both bounds must be positive.
func Logspace(lo, hi float64, num int) []float64 {
	xx := Linspace(math.Log(lo), math.Log(hi), num)
	for i, x := range xx {
		xx[i] = math.Exp(x)
	}
	return xx
}

// Sizes generates num evenly spaced integer sizes over the closed interval [lo,hi].
// The result is non-decreasing, with repeats possible when num exceeds the range.
func Sizes(lo, hi, num int) []int {
	return ToInt(Linspace(float64(lo), float64(hi), num))
}

// Range generates the integer sizes [lo,hi) with step 1.
func Range(lo, hi int) []int {
	nn := make([]int, 0)
	for n := lo; n < hi; n++ {
		nn = append(nn, n)
	}
	return nn
}
