package generic

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-array/internal/kernels/registry"
)

// init registers the scalar baseline implementations.
//
// These serve as the reference fallback when no lane-blocked variant is
// compatible or when ForceGeneric is enabled for testing.
//
// Priority: 0 (lowest).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Sum:     Sum,
		Product: Product,
		Min:     Min,
		Max:     Max,

		Dot:        Dot,
		SumAbsDiff: SumAbsDiff,

		ScanAdd: ScanAdd,

		ScaleBlock:  ScaleBlock,
		OffsetBlock: OffsetBlock,
		AxpyBlock:   AxpyBlock,
		AbsBlock:    AbsBlock,
		ClampBlock:  ClampBlock,
		AddBlock:    AddBlock,
		MulBlock:    MulBlock,
	})
}
