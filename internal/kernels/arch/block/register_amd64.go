//go:build amd64 && !purego

package block

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-array/internal/kernels/registry"
)

// init registers the lane-blocked implementations for amd64.
//
// The blocked loops keep four independent dependency chains in flight,
// which the baseline SSE2 register file already accommodates.
//
// Priority: 10 (preferred over generic when SSE2 is present).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "block",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

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
