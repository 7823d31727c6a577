package algos

// Sum adds up all elements of the list.
func Sum(xx []int) int {
	s := 0
	for _, x := range xx {
		s += x
	}
	return s
}

// Contains scans the list linearly for x.
func Contains(xx []int, x int) bool {
	for _, y := range xx {
		if x == y {
			return true
		}
	}
	return false
}

// BinaryContains searches for x in a sorted list by halving the candidate range.
func BinaryContains(xx []int, x int) bool {
	lo := 0
	hi := len(xx) - 1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case x < xx[mid]:
			hi = mid - 1
		case x > xx[mid]:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}

// InsertionSort sorts the list in place.
func InsertionSort(xx []int) {
	for i := 1; i < len(xx); i++ {
		for j := i; j > 0; j-- {
			if xx[j-1] > xx[j] {
				xx[j-1], xx[j] = xx[j], xx[j-1]
			} else {
				break
			}
		}
	}
}

// IndexLookup builds a value-to-position index over the list and resolves val through it.
// Despite the single lookup at the end, the index construction makes it linear.
func IndexLookup(xx []int, val int) int {
	d := make(map[int]int, len(xx))
	for i, x := range xx {
		d[x] = i
	}
	return d[val]
}

// EqualPairs collects all index pairs (i,j) with i < j that hold equal values.
// The pair enumeration alone makes it quadratic.
func EqualPairs(xx []int) [][2]int {
	pairs := make([][2]int, 0)
	for i := 0; i < len(xx); i++ {
		for j := i + 1; j < len(xx); j++ {
			if xx[i] == xx[j] {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// Fib computes the n-th fibonacci number by naive recursion.
func Fib(n int) int {
	if n <= 1 {
		return n
	}
	return Fib(n-1) + Fib(n-2)
}
