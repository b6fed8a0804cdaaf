package bulk

import (
	"math"

	"github.com/cwbudde/algo-array/internal/kernels"
)

// Scale performs dst[i] = src[i] * c.
func Scale[T Number](dst, src []T, c T) {
	if fd, ok := any(dst).([]float64); ok {
		kernels.ScaleBlock(fd, any(src).([]float64), any(c).(float64))
		return
	}

	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = src[i] * c
	}
}

// Offset performs dst[i] = src[i] + c.
func Offset[T Number](dst, src []T, c T) {
	if fd, ok := any(dst).([]float64); ok {
		kernels.OffsetBlock(fd, any(src).([]float64), any(c).(float64))
		return
	}

	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = src[i] + c
	}
}

// Axpy performs dst[i] = x[i]*c + y[i].
func Axpy[T Number](dst, x, y []T, c T) {
	if fd, ok := any(dst).([]float64); ok {
		kernels.AxpyBlock(fd, any(x).([]float64), any(y).([]float64), any(c).(float64))
		return
	}

	n := min(len(dst), min(len(x), len(y)))
	for i := 0; i < n; i++ {
		dst[i] = x[i]*c + y[i]
	}
}

// Abs performs dst[i] = |src[i]|. For unsigned types this is a copy.
func Abs[T Number](dst, src []T) {
	if fd, ok := any(dst).([]float64); ok {
		kernels.AbsBlock(fd, any(src).([]float64))
		return
	}

	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		v := src[i]
		if v < 0 {
			v = -v
		}
		dst[i] = v
	}
}

// Clamp performs dst[i] = min(max(src[i], lo), hi).
func Clamp[T Number](dst, src []T, lo, hi T) {
	if fd, ok := any(dst).([]float64); ok {
		kernels.ClampBlock(fd, any(src).([]float64), any(lo).(float64), any(hi).(float64))
		return
	}

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

// Add performs dst[i] = a[i] + b[i].
func Add[T Number](dst, a, b []T) {
	if fd, ok := any(dst).([]float64); ok {
		kernels.AddBlock(fd, any(a).([]float64), any(b).([]float64))
		return
	}

	n := min(len(dst), min(len(a), len(b)))
	for i := 0; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// Mul performs dst[i] = a[i] * b[i].
func Mul[T Number](dst, a, b []T) {
	if fd, ok := any(dst).([]float64); ok {
		kernels.MulBlock(fd, any(a).([]float64), any(b).([]float64))
		return
	}

	n := min(len(dst), min(len(a), len(b)))
	for i := 0; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

// Sqrt performs dst[i] = sqrt(src[i]) for floating-point element types.
func Sqrt[T Real](dst, src []T) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = T(math.Sqrt(float64(src[i])))
	}
}
