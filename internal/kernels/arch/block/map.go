package block

import "math"

// ScaleBlock performs dst[i] = src[i] * c, four lanes per iteration.
func ScaleBlock(dst, src []float64, c float64) {
	n := min(len(dst), len(src))

	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = src[i] * c
		dst[i+1] = src[i+1] * c
		dst[i+2] = src[i+2] * c
		dst[i+3] = src[i+3] * c
	}

	for ; i < n; i++ {
		dst[i] = src[i] * c
	}
}

// OffsetBlock performs dst[i] = src[i] + c, four lanes per iteration.
func OffsetBlock(dst, src []float64, c float64) {
	n := min(len(dst), len(src))

	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = src[i] + c
		dst[i+1] = src[i+1] + c
		dst[i+2] = src[i+2] + c
		dst[i+3] = src[i+3] + c
	}

	for ; i < n; i++ {
		dst[i] = src[i] + c
	}
}

// AxpyBlock performs dst[i] = x[i]*c + y[i], four lanes per iteration.
func AxpyBlock(dst, x, y []float64, c float64) {
	n := min(len(dst), min(len(x), len(y)))

	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = x[i]*c + y[i]
		dst[i+1] = x[i+1]*c + y[i+1]
		dst[i+2] = x[i+2]*c + y[i+2]
		dst[i+3] = x[i+3]*c + y[i+3]
	}

	for ; i < n; i++ {
		dst[i] = x[i]*c + y[i]
	}
}

// AbsBlock performs dst[i] = |src[i]|, four lanes per iteration.
func AbsBlock(dst, src []float64) {
	n := min(len(dst), len(src))

	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = math.Abs(src[i])
		dst[i+1] = math.Abs(src[i+1])
		dst[i+2] = math.Abs(src[i+2])
		dst[i+3] = math.Abs(src[i+3])
	}

	for ; i < n; i++ {
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

// AddBlock performs dst[i] = a[i] + b[i], four lanes per iteration.
func AddBlock(dst, a, b []float64) {
	n := min(len(dst), min(len(a), len(b)))

	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] + b[i]
		dst[i+1] = a[i+1] + b[i+1]
		dst[i+2] = a[i+2] + b[i+2]
		dst[i+3] = a[i+3] + b[i+3]
	}

	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// MulBlock performs dst[i] = a[i] * b[i], four lanes per iteration.
func MulBlock(dst, a, b []float64) {
	n := min(len(dst), min(len(a), len(b)))

	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] * b[i]
		dst[i+1] = a[i+1] * b[i+1]
		dst[i+2] = a[i+2] * b[i+2]
		dst[i+3] = a[i+3] * b[i+3]
	}

	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}
