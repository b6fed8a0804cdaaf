package stats

import (
	"math"

	"github.com/cwbudde/algo-array/internal/kernels"
)

// Summary holds the moment-based descriptive statistics of a sample.
type Summary struct {
	N        int
	Mean     float64
	Variance float64 // population variance
	StdDev   float64
	Skewness float64
	Kurtosis float64 // excess kurtosis
}

// Describe computes the summary from the raw power sums Σx, Σx², Σx³, Σx⁴.
// Empty input returns the zero Summary; zero variance leaves skewness and
// kurtosis at zero.
func Describe(xs []float64) Summary {
	n := len(xs)
	if n == 0 {
		return Summary{}
	}

	x2 := make([]float64, n)
	kernels.MulBlock(x2, xs, xs)

	s1 := kernels.Sum(xs)
	s2 := kernels.Sum(x2)
	s3 := kernels.Dot(x2, xs)
	s4 := kernels.Dot(x2, x2)

	fn := float64(n)
	mean := s1 / fn
	m2 := s2/fn - mean*mean
	if m2 < 0 {
		// Rounding can push a constant sample slightly negative.
		m2 = 0
	}
	m3 := s3/fn - 3*mean*s2/fn + 2*mean*mean*mean
	m4 := s4/fn - 4*mean*s3/fn + 6*mean*mean*s2/fn - 3*mean*mean*mean*mean

	out := Summary{
		N:        n,
		Mean:     mean,
		Variance: m2,
	}
	if m2 > 0 {
		out.StdDev = math.Sqrt(m2)
		out.Skewness = m3 / math.Pow(m2, 1.5)
		out.Kurtosis = m4/(m2*m2) - 3
	}

	return out
}

// Mean returns the arithmetic mean, 0 for empty input.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	return kernels.Sum(xs) / float64(len(xs))
}

// Variance returns the population variance, 0 for empty input.
func Variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	fn := float64(len(xs))
	mean := kernels.Sum(xs) / fn
	v := kernels.Dot(xs, xs)/fn - mean*mean
	if v < 0 {
		// Rounding can push a constant sample slightly negative.
		v = 0
	}

	return v
}

// StdDev returns the population standard deviation, 0 for empty input.
func StdDev(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}
