//go:build arm64 && !purego

package block

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-array/internal/kernels/registry"
)

// init registers the lane-blocked implementations for arm64.
//
// Priority: 15 (preferred over generic when NEON is present).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "block",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

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
