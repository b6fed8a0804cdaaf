package bulk

// FindIndex returns the index of the first element equal to v, or -1.
func FindIndex[T Number](xs []T, v T) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}

	return -1
}

// Contains reports whether v occurs in xs.
func Contains[T Number](xs []T, v T) bool {
	return FindIndex(xs, v) >= 0
}

// Count returns the number of elements equal to v.
func Count[T Number](xs []T, v T) int {
	count := 0
	for _, x := range xs {
		if x == v {
			count++
		}
	}

	return count
}

// Reverse writes src in reverse order into dst. dst and src may be the same
// slice; partial overlap is not supported.
func Reverse[T Number](dst, src []T) {
	n := min(len(dst), len(src))
	if n == 0 {
		return
	}

	if &dst[0] == &src[0] {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			dst[i], dst[j] = dst[j], dst[i]
		}
		return
	}

	for i := 0; i < n; i++ {
		dst[i] = src[n-1-i]
	}
}

// Replicate fills dst with v.
func Replicate[T Number](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// Range fills dst with start, start+1, start+2, ...
func Range[T Number](dst []T, start T) {
	v := start
	for i := range dst {
		dst[i] = v
		v++
	}
}

// IterateAdd fills dst with the arithmetic sequence init, init+delta, ...
func IterateAdd[T Number](dst []T, init, delta T) {
	v := init
	for i := range dst {
		dst[i] = v
		v += delta
	}
}

// IterateMul fills dst with the geometric sequence init, init*factor, ...
func IterateMul[T Number](dst []T, init, factor T) {
	v := init
	for i := range dst {
		dst[i] = v
		v *= factor
	}
}
