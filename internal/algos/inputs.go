package algos

import "math/rand"

// Sorted returns the list [0,n) in ascending order.
func Sorted(n int) []int {
	xx := make([]int, n)
	for i := range xx {
		xx[i] = i
	}
	return xx
}

// Shuffled returns the list [0,n) in random order.
func Shuffled(n int) []int {
	xx := Sorted(n)
	rand.Shuffle(len(xx), func(i, j int) {
		xx[i], xx[j] = xx[j], xx[i]
	})
	return xx
}
