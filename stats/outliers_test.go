package stats

import (
	"math"
	"testing"
)

func TestOutliersZScore(t *testing.T) {
	// One value far from a tight cluster.
	xs := []float64{10, 11, 9, 10, 10, 11, 9, 10, 50}
	flags := make([]bool, len(xs))

	count := OutliersZScore(flags, xs, 2)
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	if !flags[len(flags)-1] {
		t.Fatal("the extreme element was not flagged")
	}
	for i := 0; i < len(flags)-1; i++ {
		if flags[i] {
			t.Fatalf("flags[%d] set for an inlier", i)
		}
	}
}

func TestOutliersZScoreDegenerate(t *testing.T) {
	if got := OutliersZScore(nil, []float64{1}, 2); got != 0 {
		t.Errorf("single sample: count = %d, want 0", got)
	}
	if got := OutliersZScore(nil, nil, 2); got != 0 {
		t.Errorf("empty: count = %d, want 0", got)
	}
	// Zero deviation: nothing can be an outlier.
	if got := OutliersZScore(nil, []float64{5, 5, 5, 5}, 2); got != 0 {
		t.Errorf("constant sample: count = %d, want 0", got)
	}
}

func TestOutliersZScoreNilFlags(t *testing.T) {
	xs := []float64{0, 0, 0, 0, 0, 0, 0, 100}
	if got := OutliersZScore(nil, xs, 2); got != 1 {
		t.Fatalf("count-only = %d, want 1", got)
	}
}

func TestOutliersIQR(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8, 100}
	flags := make([]bool, len(xs))

	count := OutliersIQR(flags, xs, 1.5)
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	if !flags[len(flags)-1] {
		t.Fatal("the extreme element was not flagged")
	}
}

func TestOutliersIQRDegenerate(t *testing.T) {
	if got := OutliersIQR(nil, []float64{1, 2, 3}, 1.5); got != 0 {
		t.Errorf("n<4: count = %d, want 0", got)
	}
	if got := OutliersIQR(nil, []float64{4, 4, 4, 4, 4}, 1.5); got != 0 {
		t.Errorf("zero IQR: count = %d, want 0", got)
	}
}

// A non-finite spread means nothing can be classified; every element
// flagged would be the failure mode here.
func TestOutliersNonFiniteSpread(t *testing.T) {
	negInf := math.Inf(-1)
	xs := []float64{negInf, negInf, negInf, negInf, negInf}
	flags := make([]bool, len(xs))

	if got := OutliersIQR(flags, xs, 1.5); got != 0 {
		t.Fatalf("all -Inf IQR count = %d, want 0", got)
	}
	for i, f := range flags {
		if f {
			t.Fatalf("flags[%d] set for non-finite spread", i)
		}
	}

	if got := OutliersZScore(flags, xs, 2); got != 0 {
		t.Fatalf("all -Inf z-score count = %d, want 0", got)
	}

	withInf := []float64{1, 2, 3, 4, math.Inf(1)}
	if got := OutliersIQR(nil, withInf, 1.5); got != 1 {
		t.Fatalf("finite IQR with one +Inf element: count = %d, want 1", got)
	}
}

func TestOutlierFlagsCleared(t *testing.T) {
	flags := []bool{true, true, true, true}
	if got := OutliersZScore(flags, []float64{1, 1, 1, 1}, 2); got != 0 {
		t.Fatalf("count = %d, want 0", got)
	}
	for i, f := range flags {
		if f {
			t.Fatalf("flags[%d] not cleared", i)
		}
	}
}
