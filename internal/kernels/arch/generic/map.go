package generic

import "math"

// ScaleBlock performs dst[i] = src[i] * c.
func ScaleBlock(dst, src []float64, c float64) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = src[i] * c
	}
}

// OffsetBlock performs dst[i] = src[i] + c.
func OffsetBlock(dst, src []float64, c float64) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = src[i] + c
	}
}

// AxpyBlock performs dst[i] = x[i]*c + y[i].
func AxpyBlock(dst, x, y []float64, c float64) {
	n := min(len(dst), min(len(x), len(y)))
	for i := 0; i < n; i++ {
		dst[i] = x[i]*c + y[i]
	}
}

// AbsBlock performs dst[i] = |src[i]|.
func AbsBlock(dst, src []float64) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = math.Abs(src[i])
	}
}

// ClampBlock performs dst[i] = min(max(src[i], lo), hi).
func ClampBlock(dst, src []float64, lo, hi float64) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		v := src[i]
		if v < lo {
			v = lo
		} else if v > hi {
			v = hi
		}
		dst[i] = v
	}
}

// AddBlock performs dst[i] = a[i] + b[i].
func AddBlock(dst, a, b []float64) {
	n := min(len(dst), min(len(a), len(b)))
	for i := 0; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// MulBlock performs dst[i] = a[i] * b[i].
func MulBlock(dst, a, b []float64) {
	n := min(len(dst), min(len(a), len(b)))
	for i := 0; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}
