package stats

import (
	"math"
	"slices"
)

// Quartiles holds the quartile cut points of a sample.
type Quartiles struct {
	Q1     float64
	Median float64
	Q3     float64
	IQR    float64
}

// Percentile returns the p-th percentile of xs, p in [0, 1], using linear
// interpolation at fractional rank p*(n-1). The input is not reordered.
// Empty input returns 0; p outside [0, 1] is clamped, NaN p clamps low.
func Percentile(xs []float64, p float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	return percentileSorted(sorted, p)
}

// Percentiles evaluates several percentiles against one sorted copy of xs,
// writing min(len(dst), len(ps)) results into dst.
func Percentiles(dst, xs []float64, ps []float64) {
	n := min(len(dst), len(ps))
	if n == 0 {
		return
	}
	if len(xs) == 0 {
		for i := 0; i < n; i++ {
			dst[i] = 0
		}
		return
	}

	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	for i := 0; i < n; i++ {
		dst[i] = percentileSorted(sorted, ps[i])
	}
}

// QuartilesOf returns the quartile record of xs. Empty input returns the
// zero record.
func QuartilesOf(xs []float64) Quartiles {
	if len(xs) == 0 {
		return Quartiles{}
	}

	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	q := Quartiles{
		Q1:     percentileSorted(sorted, 0.25),
		Median: percentileSorted(sorted, 0.50),
		Q3:     percentileSorted(sorted, 0.75),
	}
	q.IQR = q.Q3 - q.Q1

	return q
}

// Median returns the 50th percentile.
func Median(xs []float64) float64 {
	return Percentile(xs, 0.5)
}

func percentileSorted(sorted []float64, p float64) float64 {
	// NaN would escape both clamps and poison the rank below.
	if math.IsNaN(p) || p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}

	rank := p * float64(len(sorted)-1)
	lo := int(rank)
	frac := rank - float64(lo)
	if frac == 0 || lo+1 == len(sorted) {
		// Whole rank: no interpolation, so infinite samples
		// yield the sample value instead of Inf-Inf = NaN.
		return sorted[lo]
	}

	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
