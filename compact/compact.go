// Package compact provides stream compaction: filtering, partitioning and
// prefix selection over slices, preserving element order.
//
// The core loop evaluates the predicate over fixed groups of four elements,
// packs the results into a bitmask and gathers the survivors through a
// precomputed permutation table, so the inner copy loop is branch-free.
// A scalar loop handles the final partial group.
package compact

const laneWidth = 4

// permTable[mask] lists, in ascending order, the lane indices whose mask bit
// is set. permCount[mask] is the popcount.
var permTable = [16][laneWidth]uint8{
	{0, 0, 0, 0}, // 0000
	{0, 0, 0, 0}, // 0001
	{1, 0, 0, 0}, // 0010
	{0, 1, 0, 0}, // 0011
	{2, 0, 0, 0}, // 0100
	{0, 2, 0, 0}, // 0101
	{1, 2, 0, 0}, // 0110
	{0, 1, 2, 0}, // 0111
	{3, 0, 0, 0}, // 1000
	{0, 3, 0, 0}, // 1001
	{1, 3, 0, 0}, // 1010
	{0, 1, 3, 0}, // 1011
	{2, 3, 0, 0}, // 1100
	{0, 2, 3, 0}, // 1101
	{1, 2, 3, 0}, // 1110
	{0, 1, 2, 3}, // 1111
}

var permCount = [16]uint8{0, 1, 1, 2, 1, 2, 2, 3, 1, 2, 2, 3, 2, 3, 3, 4}

// Filter copies the elements of src satisfying pred into dst, preserving
// order, and returns the number written. dst needs room for every survivor;
// len(dst) >= len(src) is always sufficient. dst past the returned count is
// unspecified (the gather writes full groups).
func Filter[T any](dst, src []T, pred func(T) bool) int {
	if pred == nil {
		return 0
	}

	out := 0
	i := 0

	for ; i+laneWidth <= len(src) && out+laneWidth <= len(dst); i += laneWidth {
		var mask uint
		if pred(src[i]) {
			mask |= 1
		}
		if pred(src[i+1]) {
			mask |= 2
		}
		if pred(src[i+2]) {
			mask |= 4
		}
		if pred(src[i+3]) {
			mask |= 8
		}

		perm := &permTable[mask]
		dst[out] = src[i+int(perm[0])]
		dst[out+1] = src[i+int(perm[1])]
		dst[out+2] = src[i+int(perm[2])]
		dst[out+3] = src[i+int(perm[3])]
		out += int(permCount[mask])
	}

	for ; i < len(src); i++ {
		if !pred(src[i]) {
			continue
		}
		if out == len(dst) {
			break
		}
		dst[out] = src[i]
		out++
	}

	return out
}

// Partition splits src into elements satisfying pred (into pass) and the
// rest (into fail), both order-preserving. Returns the two counts; they sum
// to len(src) when both destinations are large enough.
func Partition[T any](pass, fail, src []T, pred func(T) bool) (nPass, nFail int) {
	if pred == nil {
		return 0, 0
	}

	for _, x := range src {
		if pred(x) {
			if nPass < len(pass) {
				pass[nPass] = x
				nPass++
			}
		} else {
			if nFail < len(fail) {
				fail[nFail] = x
				nFail++
			}
		}
	}

	return nPass, nFail
}

// TakeWhile copies the longest prefix of src whose elements all satisfy pred
// into dst and returns its length.
func TakeWhile[T any](dst, src []T, pred func(T) bool) int {
	n := prefixLen(src, pred)
	n = min(n, len(dst))
	copy(dst, src[:n])

	return n
}

// DropWhile copies src minus its longest all-satisfying prefix into dst and
// returns the number of elements written.
func DropWhile[T any](dst, src []T, pred func(T) bool) int {
	if pred == nil {
		return 0
	}

	cut := prefixLen(src, pred)
	n := min(len(src)-cut, len(dst))
	copy(dst, src[cut:cut+n])

	return n
}

// prefixLen finds the cut point group-wise: whole groups where every lane
// satisfies pred are skipped without inspecting lanes individually.
func prefixLen[T any](src []T, pred func(T) bool) int {
	if pred == nil {
		return 0
	}

	i := 0
	for ; i+laneWidth <= len(src); i += laneWidth {
		if !(pred(src[i]) && pred(src[i+1]) && pred(src[i+2]) && pred(src[i+3])) {
			break
		}
	}

	for ; i < len(src); i++ {
		if !pred(src[i]) {
			break
		}
	}

	return i
}
