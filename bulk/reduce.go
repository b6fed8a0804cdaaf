package bulk

import "github.com/cwbudde/algo-array/internal/kernels"

// Sum returns the sum of all elements. Empty input returns zero.
func Sum[T Number](xs []T) T {
	if f, ok := any(xs).([]float64); ok {
		return T(kernels.Sum(f))
	}

	var sum T
	for _, v := range xs {
		sum += v
	}

	return sum
}

// Product returns the product of all elements. Empty input returns one.
func Product[T Number](xs []T) T {
	if f, ok := any(xs).([]float64); ok {
		return T(kernels.Product(f))
	}

	prod := T(1)
	for _, v := range xs {
		prod *= v
	}

	return prod
}

// Min returns the smallest element. Empty input returns zero.
func Min[T Number](xs []T) T {
	if len(xs) == 0 {
		var zero T
		return zero
	}

	if f, ok := any(xs).([]float64); ok {
		return T(kernels.Min(f))
	}

	m := xs[0]
	for _, v := range xs[1:] {
		if v < m {
			m = v
		}
	}

	return m
}

// Max returns the largest element. Empty input returns zero.
func Max[T Number](xs []T) T {
	if len(xs) == 0 {
		var zero T
		return zero
	}

	if f, ok := any(xs).([]float64); ok {
		return T(kernels.Max(f))
	}

	m := xs[0]
	for _, v := range xs[1:] {
		if v > m {
			m = v
		}
	}

	return m
}
