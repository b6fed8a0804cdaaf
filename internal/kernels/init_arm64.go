//go:build arm64

package kernels

// This file imports the arm64 implementation packages to trigger their
// init() functions, which register variants with the global registry.

import (
	_ "github.com/cwbudde/algo-array/internal/kernels/arch/block"
	_ "github.com/cwbudde/algo-array/internal/kernels/arch/generic"
	_ "github.com/cwbudde/algo-array/internal/kernels/registry"
)
