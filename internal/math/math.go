package math

import (
	"math"
	"strconv"
)

// Format formats a float for display purposes.
// Timings are small fractions of a second, so keep enough digits to tell them apart.
func Format(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

// ToInt converts the values to their rounded integer counterparts.
func ToInt(ff []float64) []int {
	ii := make([]int, len(ff))
	for i, f := range ff {
		ii[i] = int(math.Round(f))
	}
	return ii
}

// ToFloat converts the values to floats.
func ToFloat(ii []int) []float64 {
	ff := make([]float64, len(ii))
	for f, i := range ii {
		ff[f] = float64(i)
	}
	return ff
}
