package bulk

// AllEqual reports whether every element equals v. True for empty input.
// Short-circuits at the first mismatch.
func AllEqual[T Number](xs []T, v T) bool {
	for _, x := range xs {
		if x != v {
			return false
		}
	}

	return true
}

// AnyGreater reports whether any element exceeds v. False for empty input.
// Short-circuits at the first hit.
func AnyGreater[T Number](xs []T, v T) bool {
	for _, x := range xs {
		if x > v {
			return true
		}
	}

	return false
}

// AllGreaterZip reports whether a[i] > b[i] holds pairwise over the shorter
// of the two slices. True when the common length is zero.
func AllGreaterZip[T Number](a, b []T) bool {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] <= b[i] {
			return false
		}
	}

	return true
}
