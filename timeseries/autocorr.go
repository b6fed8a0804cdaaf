package timeseries

import (
	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-array/internal/kernels"
)

// Autocorrelation computes the normalized autocorrelation of the mean-removed
// series for lags 0..maxLag, so dst[0] == 1. Writes min(maxLag+1, len(dst))
// values and returns the count. A constant series has undefined
// autocorrelation; only the lag-0 value is written, as 1.
func Autocorrelation(dst, xs []float64, maxLag int) (int, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	if maxLag < 0 || maxLag >= len(xs) {
		return 0, ErrBadParam
	}

	n := min(maxLag+1, len(dst))
	if n == 0 {
		return 0, nil
	}

	centered := center(xs)
	denom := kernels.Dot(centered, centered)
	dst[0] = 1
	if denom == 0 {
		return 1, nil
	}

	for lag := 1; lag < n; lag++ {
		dst[lag] = kernels.Dot(centered[:len(xs)-lag], centered[lag:]) / denom
	}

	return n, nil
}

// AutocorrelationFFT computes the same lags through the power spectrum
// (Wiener-Khinchin): forward transform of the zero-padded centered series,
// |X|^2, inverse transform, normalize by lag 0. Agrees with the direct form
// within rounding; preferable when maxLag and len(xs) are both large.
func AutocorrelationFFT(dst, xs []float64, maxLag int) (int, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	if maxLag < 0 || maxLag >= len(xs) {
		return 0, ErrBadParam
	}

	n := min(maxLag+1, len(dst))
	if n == 0 {
		return 0, nil
	}

	centered := center(xs)

	// Pad to at least 2n so the circular correlation is linear.
	fftSize := nextPowerOf2(2 * len(xs))
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, err
	}

	input := make([]complex128, fftSize)
	for i, v := range centered {
		input[i] = complex(v, 0)
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, input); err != nil {
		return 0, err
	}

	re := make([]float64, fftSize)
	im := make([]float64, fftSize)
	for i, c := range spectrum {
		re[i] = real(c)
		im[i] = imag(c)
	}
	power := make([]float64, fftSize)
	vecmath.Power(power, re, im)

	for i, p := range power {
		input[i] = complex(p, 0)
	}
	if err := plan.Inverse(spectrum, input); err != nil {
		return 0, err
	}

	denom := real(spectrum[0])
	dst[0] = 1
	if denom == 0 {
		return 1, nil
	}
	for lag := 1; lag < n; lag++ {
		dst[lag] = real(spectrum[lag]) / denom
	}

	return n, nil
}

func center(xs []float64) []float64 {
	mean := kernels.Sum(xs) / float64(len(xs))
	out := make([]float64, len(xs))
	kernels.OffsetBlock(out, xs, -mean)

	return out
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}
