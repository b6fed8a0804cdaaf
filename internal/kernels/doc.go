// Package kernels provides registry-dispatched float64 bulk kernels.
//
// Each operation selects its implementation once, on first use, from the
// registry of variants the arch packages register at init time. The scalar
// generic variant is always available; the lane-blocked variant is preferred
// on CPUs that support it.
//
// Associative reductions (Sum, Dot, ...) are free to combine partial results
// in a different order than a sequential scalar loop, so multi-term floating
// results should be compared with relative tolerance, not bit equality.
package kernels
