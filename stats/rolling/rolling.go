// Package rolling provides rolling-window statistics and moving averages
// over float64 series.
//
// Windowed functions produce n-window+1 outputs for a length-n input; a
// window of zero or one larger than the input produces none. Results are
// written to the caller's dst, clamped to its length, and every function
// returns the number of values written.
package rolling

import (
	"github.com/cwbudde/algo-array/internal/kernels"
	"github.com/cwbudde/algo-array/stats"
)

// Reduce slides a window of the given size over xs and writes
// reduce(window) for each position into dst. This is the generic form every
// fixed wrapper in this package specializes.
func Reduce(dst, xs []float64, window int, reduce func([]float64) float64) int {
	if window <= 0 || window > len(xs) || reduce == nil {
		return 0
	}

	n := min(len(xs)-window+1, len(dst))
	for i := 0; i < n; i++ {
		dst[i] = reduce(xs[i : i+window])
	}

	return n
}

// Min writes the rolling minimum.
func Min(dst, xs []float64, window int) int {
	return Reduce(dst, xs, window, kernels.Min)
}

// Max writes the rolling maximum. A window of -Inf values yields -Inf, the
// true maximum of that window.
func Max(dst, xs []float64, window int) int {
	return Reduce(dst, xs, window, kernels.Max)
}

// Sum writes the rolling sum, recomputing each window in full. See SumFast
// for the O(1)-per-step variant.
func Sum(dst, xs []float64, window int) int {
	return Reduce(dst, xs, window, kernels.Sum)
}

// Mean writes the rolling mean. See MeanFast for the O(1)-per-step variant.
func Mean(dst, xs []float64, window int) int {
	return Reduce(dst, xs, window, func(w []float64) float64 {
		return kernels.Sum(w) / float64(len(w))
	})
}

// Range writes the rolling max-min spread.
func Range(dst, xs []float64, window int) int {
	return Reduce(dst, xs, window, func(w []float64) float64 {
		return kernels.Max(w) - kernels.Min(w)
	})
}

// Variance writes the rolling population variance.
func Variance(dst, xs []float64, window int) int {
	return Reduce(dst, xs, window, stats.Variance)
}

// StdDev writes the rolling population standard deviation.
func StdDev(dst, xs []float64, window int) int {
	return Reduce(dst, xs, window, stats.StdDev)
}

// SumFast writes the rolling sum with one subtract and one add per step:
// the element leaving the window is removed from the running sum and the
// entering one added. Equivalent to Sum up to accumulated rounding.
func SumFast(dst, xs []float64, window int) int {
	if window <= 0 || window > len(xs) {
		return 0
	}

	n := min(len(xs)-window+1, len(dst))
	if n == 0 {
		return 0
	}

	sum := kernels.Sum(xs[:window])
	dst[0] = sum
	for i := 1; i < n; i++ {
		sum += xs[i+window-1] - xs[i-1]
		dst[i] = sum
	}

	return n
}

// MeanFast writes the rolling mean on top of the SumFast running window.
func MeanFast(dst, xs []float64, window int) int {
	n := SumFast(dst, xs, window)
	if n > 0 {
		kernels.ScaleBlock(dst[:n], dst[:n], 1/float64(window))
	}

	return n
}
