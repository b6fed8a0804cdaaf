package compact

import "github.com/cwbudde/algo-array/bulk"

// FilterGreater copies the elements of src strictly greater than threshold
// into dst, preserving order, and returns the number written. This is the
// specialized form of Filter for the common threshold predicate; the mask
// computation compiles to straight comparisons.
func FilterGreater[T bulk.Ordered](dst, src []T, threshold T) int {
	out := 0
	i := 0

	for ; i+laneWidth <= len(src) && out+laneWidth <= len(dst); i += laneWidth {
		var mask uint
		if src[i] > threshold {
			mask |= 1
		}
		if src[i+1] > threshold {
			mask |= 2
		}
		if src[i+2] > threshold {
			mask |= 4
		}
		if src[i+3] > threshold {
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
		if src[i] <= threshold {
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

// PartitionGreater splits src by the > threshold test: elements above go to
// pass, the rest to fail, both order-preserving. Returns the two counts.
func PartitionGreater[T bulk.Ordered](pass, fail, src []T, threshold T) (nPass, nFail int) {
	for _, x := range src {
		if x > threshold {
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
