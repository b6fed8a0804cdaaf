package cluster

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKMeansTwoBlobs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	// Two well-separated 2-D blobs, 50 points each.
	const n, d = 100, 2
	points := make([]float64, n*d)
	for i := 0; i < 50; i++ {
		points[i*d] = rng.NormFloat64() * 0.5
		points[i*d+1] = rng.NormFloat64() * 0.5
	}
	for i := 50; i < n; i++ {
		points[i*d] = 10 + rng.NormFloat64()*0.5
		points[i*d+1] = 10 + rng.NormFloat64()*0.5
	}

	res, err := KMeans(points, n, d, 2, Options{Seed: 7})
	require.NoError(t, err)
	require.Len(t, res.Centroids, 4)
	require.Len(t, res.Assignments, n)

	// Each blob lands in one cluster.
	first := res.Assignments[0]
	for i := 1; i < 50; i++ {
		assert.Equal(t, first, res.Assignments[i], "point %d", i)
	}
	second := res.Assignments[50]
	assert.NotEqual(t, first, second)
	for i := 51; i < n; i++ {
		assert.Equal(t, second, res.Assignments[i], "point %d", i)
	}

	assert.Positive(t, res.Iterations)
}

func TestKMeansDeterministic(t *testing.T) {
	points := []float64{1, 2, 1.1, 1.9, 8, 9, 8.2, 9.1, 4, 4}
	const n, d = 5, 2

	a, err := KMeans(points, n, d, 2, Options{Seed: 3})
	require.NoError(t, err)
	b, err := KMeans(points, n, d, 2, Options{Seed: 3})
	require.NoError(t, err)

	assert.Equal(t, a.Assignments, b.Assignments)
	assert.Equal(t, a.Centroids, b.Centroids)
	assert.Equal(t, a.Inertia, b.Inertia)
}

func TestKMeansKEqualsN(t *testing.T) {
	points := []float64{0, 0, 5, 5, 10, 10}
	res, err := KMeans(points, 3, 2, 3, Options{})
	require.NoError(t, err)

	// Every point gets its own centroid: zero inertia.
	assert.Zero(t, res.Inertia)
	seen := map[int]bool{}
	for _, c := range res.Assignments {
		seen[c] = true
	}
	assert.Len(t, seen, 3)
}

func TestKMeansSingleCluster(t *testing.T) {
	points := []float64{1, 2, 3, 4, 5, 6}
	res, err := KMeans(points, 3, 2, 1, Options{})
	require.NoError(t, err)

	assert.InDelta(t, 3, res.Centroids[0], 1e-9)
	assert.InDelta(t, 4, res.Centroids[1], 1e-9)
	for _, c := range res.Assignments {
		assert.Zero(t, c)
	}
}

func TestKMeansIdenticalPoints(t *testing.T) {
	points := []float64{2, 2, 2, 2, 2, 2, 2, 2}
	res, err := KMeans(points, 4, 2, 2, Options{})
	require.NoError(t, err)
	assert.Zero(t, res.Inertia)
}

func TestKMeansErrors(t *testing.T) {
	_, err := KMeans(nil, 0, 2, 2, Options{})
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = KMeans([]float64{1, 2}, 1, 2, 2, Options{})
	assert.ErrorIs(t, err, ErrBadParam) // k > n

	_, err = KMeans([]float64{1, 2}, 1, 0, 1, Options{})
	assert.ErrorIs(t, err, ErrBadParam)

	_, err = KMeans([]float64{1, 2}, 2, 2, 1, Options{})
	assert.ErrorIs(t, err, ErrBadParam) // too few values for n*d
}
