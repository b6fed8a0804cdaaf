// Package stats provides descriptive statistics, order statistics and
// outlier detection over float64 samples.
//
// No function reorders or modifies its input; order statistics sort a
// function-scoped copy. Degenerate inputs (empty, constant, too short)
// return documented inert results rather than errors.
package stats
