// Package registry provides the implementation registry for float64 bulk kernels.
//
// Multiple implementation variants (scalar baseline, lane-blocked) coexist;
// arch packages register themselves via init() and the kernels package selects
// the highest-priority variant compatible with the current CPU at first use.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// OpEntry is one registered kernel implementation variant.
//
// Only the operations available at that variant's level need to be populated;
// the dispatch wrappers fall back per operation.
type OpEntry struct {
	// Name is a human-readable identifier ("generic", "block").
	Name string

	// SIMDLevel is the instruction-set level this variant requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders selection when several variants are compatible.
	// Higher wins. Generic baseline is 0.
	Priority int

	// Reductions.
	Sum     func(x []float64) float64
	Product func(x []float64) float64
	Min     func(x []float64) float64
	Max     func(x []float64) float64

	// Fused reductions.
	Dot        func(a, b []float64) float64
	SumAbsDiff func(a, b []float64) float64

	// Inclusive prefix sum: dst[i] = src[0] + ... + src[i].
	ScanAdd func(dst, src []float64)

	// Elementwise maps.
	ScaleBlock  func(dst, src []float64, c float64)
	OffsetBlock func(dst, src []float64, c float64)
	AxpyBlock   func(dst, x, y []float64, c float64)
	AbsBlock    func(dst, src []float64)
	ClampBlock  func(dst, src []float64, lo, hi float64)
	AddBlock    func(dst, a, b []float64)
	MulBlock    func(dst, a, b []float64)
}

// OpRegistry manages registration and lookup of kernel variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default registry used by the kernels package.
var Global = &OpRegistry{}

// Register adds an implementation variant. Typically called from init()
// in arch packages; registrations must complete before the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority variant compatible with features,
// or nil if nothing is registered (which cannot happen while the generic
// fallback package is imported).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority sorts entries by priority, descending.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Insertion sort; the registry holds 2-3 entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries, for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)

	return entries
}

// Reset clears all registered entries. Intended for tests only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
