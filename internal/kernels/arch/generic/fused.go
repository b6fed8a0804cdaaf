package generic

import "math"

// Dot returns the dot product of a and b: sum(a[i] * b[i]).
// Only the minimum length of the two slices is used.
func Dot(a, b []float64) float64 {
	n := min(len(a), len(b))

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}

	return sum
}

// SumAbsDiff returns the sum of absolute differences: sum(|a[i] - b[i]|).
// Only the minimum length of the two slices is used.
func SumAbsDiff(a, b []float64) float64 {
	n := min(len(a), len(b))

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += math.Abs(a[i] - b[i])
	}

	return sum
}

// ScanAdd writes the inclusive prefix sum of src into dst:
// dst[i] = src[0] + ... + src[i]. Lengths must match; the shorter of
// the two bounds the elements processed.
func ScanAdd(dst, src []float64) {
	n := min(len(dst), len(src))

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += src[i]
		dst[i] = sum
	}
}
