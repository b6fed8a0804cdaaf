package block

import "math"

// Dot returns the dot product of a and b using four parallel accumulators.
// Only the minimum length of the two slices is used.
func Dot(a, b []float64) float64 {
	n := min(len(a), len(b))

	var s0, s1, s2, s3 float64

	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}

	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}

	return sum
}

// SumAbsDiff returns sum(|a[i] - b[i]|) using four parallel accumulators.
// Only the minimum length of the two slices is used.
func SumAbsDiff(a, b []float64) float64 {
	n := min(len(a), len(b))

	var s0, s1, s2, s3 float64

	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += math.Abs(a[i] - b[i])
		s1 += math.Abs(a[i+1] - b[i+1])
		s2 += math.Abs(a[i+2] - b[i+2])
		s3 += math.Abs(a[i+3] - b[i+3])
	}

	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		sum += math.Abs(a[i] - b[i])
	}

	return sum
}

// ScanAdd writes the inclusive prefix sum of src into dst. The carried sum
// is sequential by definition; the loop is unrolled by four to cut the
// per-element loop overhead without changing the accumulation order.
func ScanAdd(dst, src []float64) {
	n := min(len(dst), len(src))

	sum := 0.0

	i := 0
	for ; i+4 <= n; i += 4 {
		sum += src[i]
		dst[i] = sum
		sum += src[i+1]
		dst[i+1] = sum
		sum += src[i+2]
		dst[i+2] = sum
		sum += src[i+3]
		dst[i+3] = sum
	}

	for ; i < n; i++ {
		sum += src[i]
		dst[i] = sum
	}
}
