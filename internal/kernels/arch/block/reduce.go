package block

// Sum returns the sum of all elements in x.
//
// Four independent accumulators cover four lanes per iteration, so partial
// sums combine in a different order than a scalar left-to-right loop.
// Callers compare against the scalar baseline with relative tolerance.
func Sum(x []float64) float64 {
	var s0, s1, s2, s3 float64

	i := 0
	for ; i+4 <= len(x); i += 4 {
		s0 += x[i]
		s1 += x[i+1]
		s2 += x[i+2]
		s3 += x[i+3]
	}

	sum := (s0 + s1) + (s2 + s3)
	for ; i < len(x); i++ {
		sum += x[i]
	}

	return sum
}

// Product returns the product of all elements in x.
// Returns 1 for an empty slice.
func Product(x []float64) float64 {
	p0, p1, p2, p3 := 1.0, 1.0, 1.0, 1.0

	i := 0
	for ; i+4 <= len(x); i += 4 {
		p0 *= x[i]
		p1 *= x[i+1]
		p2 *= x[i+2]
		p3 *= x[i+3]
	}

	p := (p0 * p1) * (p2 * p3)
	for ; i < len(x); i++ {
		p *= x[i]
	}

	return p
}

// Min returns the smallest element in x.
// Returns 0 for an empty slice.
func Min(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	m0, m1, m2, m3 := x[0], x[0], x[0], x[0]

	i := 0
	for ; i+4 <= len(x); i += 4 {
		if x[i] < m0 {
			m0 = x[i]
		}
		if x[i+1] < m1 {
			m1 = x[i+1]
		}
		if x[i+2] < m2 {
			m2 = x[i+2]
		}
		if x[i+3] < m3 {
			m3 = x[i+3]
		}
	}

	m := m0
	if m1 < m {
		m = m1
	}
	if m2 < m {
		m = m2
	}
	if m3 < m {
		m = m3
	}
	for ; i < len(x); i++ {
		if x[i] < m {
			m = x[i]
		}
	}

	return m
}

// Max returns the largest element in x.
// Returns 0 for an empty slice.
func Max(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	m0, m1, m2, m3 := x[0], x[0], x[0], x[0]

	i := 0
	for ; i+4 <= len(x); i += 4 {
		if x[i] > m0 {
			m0 = x[i]
		}
		if x[i+1] > m1 {
			m1 = x[i+1]
		}
		if x[i+2] > m2 {
			m2 = x[i+2]
		}
		if x[i+3] > m3 {
			m3 = x[i+3]
		}
	}

	m := m0
	if m1 > m {
		m = m1
	}
	if m2 > m {
		m = m2
	}
	if m3 > m {
		m = m3
	}
	for ; i < len(x); i++ {
		if x[i] > m {
			m = x[i]
		}
	}

	return m
}
