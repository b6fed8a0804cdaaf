package kernels

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-array/internal/kernels/registry"
)

var (
	dotImpl     func([]float64, []float64) float64
	dotInitOnce sync.Once

	sumAbsDiffImpl     func([]float64, []float64) float64
	sumAbsDiffInitOnce sync.Once

	scanAddImpl     func([]float64, []float64)
	scanAddInitOnce sync.Once
)

func initDotOperation() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernels: no dot implementation registered")
	}
	if entry.Dot == nil {
		panic("kernels: selected implementation missing dot operation")
	}
	dotImpl = entry.Dot
}

// Dot returns the dot product of a and b: sum(a[i] * b[i]).
// Only the minimum length of the two slices is used.
//
// Sum of squares is Dot(x, x); there is deliberately no separate kernel.
func Dot(a, b []float64) float64 {
	dotInitOnce.Do(initDotOperation)
	return dotImpl(a, b)
}

func initSumAbsDiffOperation() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernels: no sumabsdiff implementation registered")
	}
	if entry.SumAbsDiff == nil {
		panic("kernels: selected implementation missing sumabsdiff operation")
	}
	sumAbsDiffImpl = entry.SumAbsDiff
}

// SumAbsDiff returns the sum of absolute differences: sum(|a[i] - b[i]|).
// Only the minimum length of the two slices is used.
func SumAbsDiff(a, b []float64) float64 {
	sumAbsDiffInitOnce.Do(initSumAbsDiffOperation)
	return sumAbsDiffImpl(a, b)
}

func initScanAddOperation() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernels: no scanadd implementation registered")
	}
	if entry.ScanAdd == nil {
		panic("kernels: selected implementation missing scanadd operation")
	}
	scanAddImpl = entry.ScanAdd
}

// ScanAdd writes the inclusive prefix sum of src into dst:
// dst[i] = src[0] + ... + src[i].
func ScanAdd(dst, src []float64) {
	scanAddInitOnce.Do(initScanAddOperation)
	scanAddImpl(dst, src)
}
