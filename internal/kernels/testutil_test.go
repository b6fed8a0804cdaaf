package kernels

import (
	"math"
	"strconv"
)

// Test helpers shared across the kernel test files.

func closeEnough(a, b float64) bool {
	const epsilon = 1e-12
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if a == 0 || b == 0 {
		return diff < epsilon
	}
	return diff/math.Max(math.Abs(a), math.Abs(b)) < epsilon
}

func sizeStr(n int) string {
	return "n=" + strconv.Itoa(n)
}

// paritySizes exercises every tail length around the 4-lane block width.
var paritySizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 31, 32, 33, 63, 64, 100, 1000, 1023, 1024, 1025}

func patternSlice(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		sign := 1.0
		if i%2 == 0 {
			sign = -1.0
		}
		x[i] = sign * (float64((i*37)%113) + 0.125)
	}
	return x
}
