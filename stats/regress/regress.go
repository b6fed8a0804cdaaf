// Package regress provides simple linear regression, covariance and
// correlation over float64 samples.
package regress

import (
	"math"

	"github.com/cwbudde/algo-array/internal/kernels"
)

// Model is a fitted line y = Slope*x + Intercept.
type Model struct {
	Slope     float64
	Intercept float64
	RSquared  float64
	StdErr    float64 // standard error of the residuals
}

// Predict evaluates the fitted line at x.
func (m Model) Predict(x float64) float64 {
	return m.Slope*x + m.Intercept
}

// Covariance returns the population covariance E[XY] - E[X]E[Y] over the
// shorter of the two slices. Fewer than two samples return NaN.
func Covariance(x, y []float64) float64 {
	n := min(len(x), len(y))
	if n < 2 {
		return math.NaN()
	}

	x = x[:n]
	y = y[:n]
	fn := float64(n)

	return kernels.Dot(x, y)/fn - (kernels.Sum(x)/fn)*(kernels.Sum(y)/fn)
}

// Correlation returns the Pearson correlation coefficient. Fewer than two
// samples or zero variance in either input return NaN.
func Correlation(x, y []float64) float64 {
	n := min(len(x), len(y))
	if n < 2 {
		return math.NaN()
	}

	x = x[:n]
	y = y[:n]
	fn := float64(n)

	meanX := kernels.Sum(x) / fn
	meanY := kernels.Sum(y) / fn
	varX := kernels.Dot(x, x)/fn - meanX*meanX
	varY := kernels.Dot(y, y)/fn - meanY*meanY
	if varX <= 0 || varY <= 0 {
		return math.NaN()
	}

	cov := kernels.Dot(x, y)/fn - meanX*meanY

	return cov / math.Sqrt(varX*varY)
}

// Fit performs least-squares linear regression of y on x over the shorter of
// the two slices. The five power sums Σx, Σy, Σx², Σy², Σxy feed the closed
// form; a single residual pass yields the standard error.
//
// A near-zero denominator (constant x) degrades to a horizontal line through
// mean(y) with zero R².
func Fit(x, y []float64) Model {
	n := min(len(x), len(y))
	if n == 0 {
		return Model{}
	}

	x = x[:n]
	y = y[:n]
	fn := float64(n)

	sumX := kernels.Sum(x)
	sumY := kernels.Sum(y)
	sumXX := kernels.Dot(x, x)
	sumYY := kernels.Dot(y, y)
	sumXY := kernels.Dot(x, y)

	var m Model
	denom := fn*sumXX - sumX*sumX
	if math.Abs(denom) < 1e-15 {
		m.Intercept = sumY / fn
		m.StdErr = residualStdErr(x, y, m)
		return m
	}

	m.Slope = (fn*sumXY - sumX*sumY) / denom
	m.Intercept = (sumY - m.Slope*sumX) / fn

	// R² from the same sums; constant y gives ssTot == 0 and R² stays 0.
	ssTot := sumYY - sumY*sumY/fn
	if ssTot > 0 {
		ssReg := m.Slope * (sumXY - sumX*sumY/fn)
		m.RSquared = ssReg / ssTot
	}

	m.StdErr = residualStdErr(x, y, m)

	return m
}

// residualStdErr is sqrt(Σ(y - ŷ)² / (n-2)); undefined below three samples.
func residualStdErr(x, y []float64, m Model) float64 {
	n := len(x)
	if n < 3 {
		return 0
	}

	resid := make([]float64, n)
	kernels.AxpyBlock(resid, x, y, -m.Slope)
	kernels.OffsetBlock(resid, resid, -m.Intercept)

	return math.Sqrt(kernels.Dot(resid, resid) / float64(n-2))
}
