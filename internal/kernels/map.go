package kernels

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-array/internal/kernels/registry"
)

var (
	mapImpls    *registry.OpEntry
	mapInitOnce sync.Once
)

// The elementwise maps share one lookup; they are always registered together.
func initMapOperations() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernels: no map implementations registered")
	}
	if entry.ScaleBlock == nil || entry.AddBlock == nil {
		panic("kernels: selected implementation missing map operations")
	}
	mapImpls = entry
}

// ScaleBlock performs dst[i] = src[i] * c.
func ScaleBlock(dst, src []float64, c float64) {
	mapInitOnce.Do(initMapOperations)
	mapImpls.ScaleBlock(dst, src, c)
}

// OffsetBlock performs dst[i] = src[i] + c.
func OffsetBlock(dst, src []float64, c float64) {
	mapInitOnce.Do(initMapOperations)
	mapImpls.OffsetBlock(dst, src, c)
}

// AxpyBlock performs dst[i] = x[i]*c + y[i].
func AxpyBlock(dst, x, y []float64, c float64) {
	mapInitOnce.Do(initMapOperations)
	mapImpls.AxpyBlock(dst, x, y, c)
}

// AbsBlock performs dst[i] = |src[i]|.
func AbsBlock(dst, src []float64) {
	mapInitOnce.Do(initMapOperations)
	mapImpls.AbsBlock(dst, src)
}

// ClampBlock performs dst[i] = min(max(src[i], lo), hi).
func ClampBlock(dst, src []float64, lo, hi float64) {
	mapInitOnce.Do(initMapOperations)
	mapImpls.ClampBlock(dst, src, lo, hi)
}

// AddBlock performs dst[i] = a[i] + b[i].
func AddBlock(dst, a, b []float64) {
	mapInitOnce.Do(initMapOperations)
	mapImpls.AddBlock(dst, a, b)
}

// MulBlock performs dst[i] = a[i] * b[i].
func MulBlock(dst, a, b []float64) {
	mapInitOnce.Do(initMapOperations)
	mapImpls.MulBlock(dst, a, b)
}
