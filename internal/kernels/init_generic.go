//go:build !amd64 && !arm64

package kernels

// Unsupported architectures fall back to the scalar baseline only.

import (
	_ "github.com/cwbudde/algo-array/internal/kernels/arch/generic"
	_ "github.com/cwbudde/algo-array/internal/kernels/registry"
)
