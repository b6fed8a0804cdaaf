// Package hof provides generic higher-order bulk operations: fold, map,
// filter and zip over slices with caller-supplied functions. State that the
// supplied function needs travels in its closure.
//
// Nil slices and nil functions make every operation an inert no-op; fold
// returns its initial accumulator unchanged.
package hof

// Foldl reduces xs left to right: acc = combine(acc, xs[i]), starting from
// init. combine is invoked exactly len(xs) times, in index order.
func Foldl[T, A any](xs []T, init A, combine func(A, T) A) A {
	if combine == nil {
		return init
	}

	acc := init
	for _, x := range xs {
		acc = combine(acc, x)
	}

	return acc
}

// Map writes transform(src[i]) into dst[i], left to right, over the shorter
// of the two slices.
func Map[T, U any](dst []U, src []T, transform func(T) U) {
	if transform == nil {
		return
	}

	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = transform(src[i])
	}
}

// Filter copies the elements of src satisfying pred into dst, preserving
// order, and returns how many were written. dst must have room for len(src)
// elements in the worst case; writing stops when dst is full.
func Filter[T any](dst, src []T, pred func(T) bool) int {
	if pred == nil {
		return 0
	}

	out := 0
	for _, x := range src {
		if !pred(x) {
			continue
		}
		if out == len(dst) {
			break
		}
		dst[out] = x
		out++
	}

	return out
}

// ZipWith writes combine(a[i], b[i]) into dst[i] over the shortest of the
// three slices.
func ZipWith[T, U, V any](dst []V, a []T, b []U, combine func(T, U) V) {
	if combine == nil {
		return
	}

	n := min(len(dst), min(len(a), len(b)))
	for i := 0; i < n; i++ {
		dst[i] = combine(a[i], b[i])
	}
}
