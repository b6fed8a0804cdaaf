// Package cluster provides k-means clustering over flat row-major point
// data, with k-means++ seeding and an L1 (sum of absolute differences)
// point-to-centroid distance.
package cluster

import (
	"errors"
	"math/rand"

	"github.com/cwbudde/algo-array/bulk"
	"github.com/cwbudde/algo-array/internal/kernels"
)

var (
	// ErrEmptyInput is returned when there are no points.
	ErrEmptyInput = errors.New("cluster: empty input")

	// ErrBadParam is returned for invalid dimensions, k or option values.
	ErrBadParam = errors.New("cluster: invalid parameter")
)

// Options tunes the k-means run. The zero value picks sensible defaults.
type Options struct {
	MaxIter   int     // iteration cap, default 100
	Tolerance float64 // stop when total centroid movement drops below, default 1e-6
	Seed      int64   // seeding RNG, default 1
}

// Result holds the converged clustering.
type Result struct {
	Centroids   []float64 // k*d, row-major
	Assignments []int     // cluster index per point
	Inertia     float64   // sum of point-to-centroid distances
	Iterations  int
}

// KMeans clusters n points of dimension d, given as a flat row-major slice
// of length n*d, into k clusters. Seeding is k-means++ over the same L1
// distance used for assignment.
func KMeans(points []float64, n, d, k int, opts Options) (Result, error) {
	if n == 0 || len(points) == 0 {
		return Result{}, ErrEmptyInput
	}
	if d <= 0 || k <= 0 || k > n || len(points) < n*d {
		return Result{}, ErrBadParam
	}

	if opts.MaxIter <= 0 {
		opts.MaxIter = 100
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = 1e-6
	}
	if opts.Seed == 0 {
		opts.Seed = 1
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	centroids := seedPlusPlus(points, n, d, k, rng)

	assign := make([]int, n)
	counts := make([]int, k)
	next := make([]float64, k*d)
	prev := make([]float64, k*d)

	res := Result{Assignments: assign}
	for iter := 0; iter < opts.MaxIter; iter++ {
		res.Iterations = iter + 1

		// Assignment step.
		res.Inertia = 0
		for i := 0; i < n; i++ {
			p := points[i*d : (i+1)*d]
			best, bestDist := 0, bulk.SumAbsDiff(p, centroids[:d])
			for c := 1; c < k; c++ {
				if dist := bulk.SumAbsDiff(p, centroids[c*d:(c+1)*d]); dist < bestDist {
					best, bestDist = c, dist
				}
			}
			assign[i] = best
			res.Inertia += bestDist
		}

		// Update step: accumulate cluster sums, then scale by the count.
		bulk.Replicate(next, 0)
		for c := range counts {
			counts[c] = 0
		}
		for i := 0; i < n; i++ {
			c := assign[i]
			counts[c]++
			row := next[c*d : (c+1)*d]
			bulk.Add(row, row, points[i*d:(i+1)*d])
		}

		copy(prev, centroids)
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				// Empty cluster keeps its centroid.
				copy(next[c*d:(c+1)*d], centroids[c*d:(c+1)*d])
				continue
			}
			row := next[c*d : (c+1)*d]
			kernels.ScaleBlock(row, row, 1/float64(counts[c]))
		}
		copy(centroids, next)

		if bulk.SumAbsDiff(centroids, prev) < opts.Tolerance {
			break
		}
	}

	res.Centroids = centroids

	return res, nil
}

// seedPlusPlus picks k initial centroids: the first uniformly, the rest
// weighted by distance to the nearest centroid chosen so far.
func seedPlusPlus(points []float64, n, d, k int, rng *rand.Rand) []float64 {
	centroids := make([]float64, 0, k*d)

	first := rng.Intn(n)
	centroids = append(centroids, points[first*d:(first+1)*d]...)

	dists := make([]float64, n)
	for len(centroids) < k*d {
		last := centroids[len(centroids)-d:]

		total := 0.0
		for i := 0; i < n; i++ {
			dist := bulk.SumAbsDiff(points[i*d:(i+1)*d], last)
			if len(centroids) == d || dist < dists[i] {
				dists[i] = dist
			}
			total += dists[i]
		}

		var pick int
		if total == 0 {
			// All points coincide with a centroid; fall back to uniform.
			pick = rng.Intn(n)
		} else {
			target := rng.Float64() * total
			acc := 0.0
			for pick = 0; pick < n-1; pick++ {
				acc += dists[pick]
				if acc >= target {
					break
				}
			}
		}

		centroids = append(centroids, points[pick*d:(pick+1)*d]...)
	}

	return centroids
}
