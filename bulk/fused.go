package bulk

import "github.com/cwbudde/algo-array/internal/kernels"

// Dot returns the dot product sum(a[i] * b[i]) over the shorter of the two
// slices. Sum of squares is Dot(x, x).
func Dot[T Number](a, b []T) T {
	if fa, ok := any(a).([]float64); ok {
		return T(kernels.Dot(fa, any(b).([]float64)))
	}

	n := min(len(a), len(b))
	var sum T
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}

	return sum
}

// SumAbsDiff returns sum(|a[i] - b[i]|) over the shorter of the two slices.
func SumAbsDiff[T Number](a, b []T) T {
	if fa, ok := any(a).([]float64); ok {
		return T(kernels.SumAbsDiff(fa, any(b).([]float64)))
	}

	// Branch instead of negating so unsigned differences cannot wrap.
	n := min(len(a), len(b))
	var sum T
	for i := 0; i < n; i++ {
		if a[i] >= b[i] {
			sum += a[i] - b[i]
		} else {
			sum += b[i] - a[i]
		}
	}

	return sum
}

// ScanAdd writes the inclusive prefix sum of src into dst:
// dst[i] = src[0] + ... + src[i]. Processes min(len(dst), len(src)) elements.
func ScanAdd[T Number](dst, src []T) {
	if fd, ok := any(dst).([]float64); ok {
		kernels.ScanAdd(fd, any(src).([]float64))
		return
	}

	n := min(len(dst), len(src))
	var sum T
	for i := 0; i < n; i++ {
		sum += src[i]
		dst[i] = sum
	}
}
