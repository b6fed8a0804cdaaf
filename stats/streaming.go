package stats

import "math"

// Streaming accumulates the Summary statistics incrementally across blocks
// of samples, using Welford's online algorithm so the higher moments stay
// stable over long runs. The zero value is ready to use.
type Streaming struct {
	n    int
	mean float64
	m2   float64
	m3   float64
	m4   float64
}

// Add folds a single sample into the accumulator.
func (s *Streaming) Add(x float64) {
	s.n++
	ni := float64(s.n)

	delta := x - s.mean
	deltaN := delta / ni
	deltaN2 := deltaN * deltaN
	term1 := delta * deltaN * float64(s.n-1)

	// M4 before M3 before M2; each update reads the previous moments.
	s.m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*s.m2 - 4*deltaN*s.m3
	s.m3 += term1*deltaN*float64(s.n-2) - 3*deltaN*s.m2
	s.m2 += term1
	s.mean += deltaN
}

// Update folds a block of samples into the accumulator.
func (s *Streaming) Update(xs []float64) {
	for _, x := range xs {
		s.Add(x)
	}
}

// N returns the number of samples seen.
func (s *Streaming) N() int { return s.n }

// Summary returns the statistics of everything accumulated so far. Agrees
// with Describe over the concatenation of all blocks within rounding.
func (s *Streaming) Summary() Summary {
	if s.n == 0 {
		return Summary{}
	}

	fn := float64(s.n)
	out := Summary{
		N:        s.n,
		Mean:     s.mean,
		Variance: s.m2 / fn,
	}
	if out.Variance > 0 {
		out.StdDev = math.Sqrt(out.Variance)
		out.Skewness = (s.m3 / fn) / (out.Variance * out.StdDev)
		out.Kurtosis = (s.m4/fn)/(out.Variance*out.Variance) - 3
	}

	return out
}

// Reset discards all accumulated samples.
func (s *Streaming) Reset() {
	*s = Streaming{}
}
