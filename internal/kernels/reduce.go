package kernels

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-array/internal/kernels/registry"
)

var (
	sumImpl     func([]float64) float64
	sumInitOnce sync.Once

	productImpl     func([]float64) float64
	productInitOnce sync.Once

	minImpl     func([]float64) float64
	minInitOnce sync.Once

	maxImpl     func([]float64) float64
	maxInitOnce sync.Once
)

func initSumOperation() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernels: no sum implementation registered")
	}
	if entry.Sum == nil {
		panic("kernels: selected implementation missing sum operation")
	}
	sumImpl = entry.Sum
}

// Sum returns the sum of all elements in x.
// Returns 0 for an empty slice.
func Sum(x []float64) float64 {
	sumInitOnce.Do(initSumOperation)
	return sumImpl(x)
}

func initProductOperation() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernels: no product implementation registered")
	}
	if entry.Product == nil {
		panic("kernels: selected implementation missing product operation")
	}
	productImpl = entry.Product
}

// Product returns the product of all elements in x.
// Returns 1 for an empty slice.
func Product(x []float64) float64 {
	productInitOnce.Do(initProductOperation)
	return productImpl(x)
}

func initMinOperation() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernels: no min implementation registered")
	}
	if entry.Min == nil {
		panic("kernels: selected implementation missing min operation")
	}
	minImpl = entry.Min
}

// Min returns the smallest element in x.
// Returns 0 for an empty slice.
func Min(x []float64) float64 {
	minInitOnce.Do(initMinOperation)
	return minImpl(x)
}

func initMaxOperation() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernels: no max implementation registered")
	}
	if entry.Max == nil {
		panic("kernels: selected implementation missing max operation")
	}
	maxImpl = entry.Max
}

// Max returns the largest element in x.
// Returns 0 for an empty slice.
func Max(x []float64) float64 {
	maxInitOnce.Do(initMaxOperation)
	return maxImpl(x)
}
