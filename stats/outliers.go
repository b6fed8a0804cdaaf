package stats

import "math"

// OutliersZScore flags elements whose z-score magnitude exceeds threshold
// and returns the outlier count. When flags is non-nil, flags[i] is set for
// min(len(flags), len(xs)) elements; pass nil to count only.
//
// Fewer than two samples, zero deviation or a non-finite deviation yield
// zero outliers.
func OutliersZScore(flags []bool, xs []float64, threshold float64) int {
	clearFlags(flags, len(xs))
	if len(xs) < 2 {
		return 0
	}

	mean := Mean(xs)
	sigma := StdDev(xs)
	if sigma == 0 || math.IsInf(sigma, 0) || math.IsNaN(sigma) {
		return 0
	}

	count := 0
	for i, x := range xs {
		if math.Abs(x-mean)/sigma <= threshold {
			continue
		}
		count++
		if i < len(flags) {
			flags[i] = true
		}
	}

	return count
}

// OutliersIQR flags elements outside [Q1 - k*IQR, Q3 + k*IQR] and returns
// the outlier count. Fewer than four samples or a zero or non-finite IQR
// yield zero outliers. The conventional k is 1.5.
func OutliersIQR(flags []bool, xs []float64, k float64) int {
	clearFlags(flags, len(xs))
	if len(xs) < 4 {
		return 0
	}

	q := QuartilesOf(xs)
	if q.IQR == 0 || math.IsNaN(q.IQR) || math.IsInf(q.IQR, 0) {
		return 0
	}

	lo := q.Q1 - k*q.IQR
	hi := q.Q3 + k*q.IQR

	count := 0
	for i, x := range xs {
		if x >= lo && x <= hi {
			continue
		}
		count++
		if i < len(flags) {
			flags[i] = true
		}
	}

	return count
}

func clearFlags(flags []bool, n int) {
	for i := 0; i < min(len(flags), n); i++ {
		flags[i] = false
	}
}
