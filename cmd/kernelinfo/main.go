// Command kernelinfo prints the detected CPU features and the kernel
// implementation the registry selects for them.
//
// Usage:
//
//	kernelinfo [flags]
//
// Examples:
//
//	kernelinfo
//	kernelinfo -force-generic
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"

	_ "github.com/cwbudde/algo-array/internal/kernels"
	"github.com/cwbudde/algo-array/internal/kernels/registry"
)

func levelName(level cpu.SIMDLevel) string {
	switch level {
	case cpu.SIMDNone:
		return "none"
	case cpu.SIMDSSE2:
		return "sse2"
	case cpu.SIMDAVX2:
		return "avx2"
	case cpu.SIMDNEON:
		return "neon"
	default:
		return fmt.Sprintf("level(%d)", int(level))
	}
}

func main() {
	forceGeneric := flag.Bool("force-generic", false, "ignore SIMD features and select the scalar baseline")
	flag.Parse()

	features := cpu.DetectFeatures()
	if *forceGeneric {
		features.ForceGeneric = true
	}

	fmt.Printf("architecture: %s\n", features.Architecture)
	fmt.Printf("sse2=%v avx2=%v neon=%v force-generic=%v\n\n",
		features.HasSSE2, features.HasAVX2, features.HasNEON, features.ForceGeneric)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLEVEL\tPRIORITY\tSELECTED")

	selected := registry.Global.Lookup(features)
	for _, entry := range registry.Global.ListEntries() {
		mark := ""
		if selected != nil && entry.Name == selected.Name {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", entry.Name, levelName(entry.SIMDLevel), entry.Priority, mark)
	}
	w.Flush()

	if selected == nil {
		fmt.Fprintln(os.Stderr, "no compatible kernel implementation registered")
		os.Exit(1)
	}
}
