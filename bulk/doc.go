// Package bulk provides specialized bulk operations over numeric slices.
//
// All functions are generic over the element type; instantiation produces a
// dedicated machine-code kernel per type. The float64 reduction and map paths
// additionally route through internal/kernels, which selects a lane-blocked
// implementation at runtime when the CPU supports it.
//
// Conventions shared by every function: inputs are never written, results go
// to dst only, and mismatched slice lengths are clamped to the shortest
// operand. Integer arithmetic wraps per the usual Go width semantics.
package bulk
