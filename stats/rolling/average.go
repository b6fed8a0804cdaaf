package rolling

import "github.com/cwbudde/algo-array/internal/kernels"

// SMA writes the simple moving average: the rolling mean over the window.
func SMA(dst, xs []float64, window int) int {
	return MeanFast(dst, xs, window)
}

// EMA writes the exponential moving average with smoothing factor
// alpha = 2/(window+1). The output has the same length as the input (clamped
// to dst); the first value seeds the recurrence.
func EMA(dst, xs []float64, window int) int {
	if window <= 0 || len(xs) == 0 {
		return 0
	}

	n := min(len(xs), len(dst))
	if n == 0 {
		return 0
	}

	alpha := 2 / (float64(window) + 1)
	ema := xs[0]
	dst[0] = ema
	for i := 1; i < n; i++ {
		ema = alpha*xs[i] + (1-alpha)*ema
		dst[i] = ema
	}

	return n
}

// WMA writes the linearly-weighted moving average: weights 1..window with
// the newest element weighted highest. Each output is a dot product of the
// window against the precomputed weight vector.
func WMA(dst, xs []float64, window int) int {
	if window <= 0 || window > len(xs) {
		return 0
	}

	weights := make([]float64, window)
	total := 0.0
	for i := range weights {
		weights[i] = float64(i + 1)
		total += weights[i]
	}

	n := min(len(xs)-window+1, len(dst))
	for i := 0; i < n; i++ {
		dst[i] = kernels.Dot(xs[i:i+window], weights) / total
	}

	return n
}
