package generic

// Sum returns the sum of all elements in x, accumulated left to right.
// Returns 0 for an empty slice.
func Sum(x []float64) float64 {
	sum := 0.0
	for i := range x {
		sum += x[i]
	}

	return sum
}

// Product returns the product of all elements in x.
// Returns 1 for an empty slice.
func Product(x []float64) float64 {
	p := 1.0
	for i := range x {
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

	m := x[0]
	for _, v := range x[1:] {
		if v < m {
			m = v
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

	m := x[0]
	for _, v := range x[1:] {
		if v > m {
			m = v
		}
	}

	return m
}
