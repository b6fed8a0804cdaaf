package stats

import (
	"math"
	"testing"
)

func TestStreamingMatchesDescribe(t *testing.T) {
	xs := make([]float64, 500)
	for i := range xs {
		xs[i] = math.Sin(float64(i)*0.37)*10 + float64(i%13)
	}

	var s Streaming
	// Feed in uneven blocks.
	s.Update(xs[:100])
	s.Update(xs[100:101])
	s.Update(xs[101:400])
	s.Update(xs[400:])

	got := s.Summary()
	want := Describe(xs)

	if got.N != want.N {
		t.Fatalf("N = %d, want %d", got.N, want.N)
	}
	if !closeEnough(got.Mean, want.Mean) {
		t.Errorf("Mean = %v, want %v", got.Mean, want.Mean)
	}
	if !closeEnough(got.Variance, want.Variance) {
		t.Errorf("Variance = %v, want %v", got.Variance, want.Variance)
	}
	if math.Abs(got.Skewness-want.Skewness) > 1e-6 {
		t.Errorf("Skewness = %v, want %v", got.Skewness, want.Skewness)
	}
	if math.Abs(got.Kurtosis-want.Kurtosis) > 1e-6 {
		t.Errorf("Kurtosis = %v, want %v", got.Kurtosis, want.Kurtosis)
	}
}

func TestStreamingSampleOrder(t *testing.T) {
	// One sample at a time equals one big block.
	xs := []float64{3, 1, 4, 1, 5, 9, 2, 6}

	var one, all Streaming
	for _, x := range xs {
		one.Add(x)
	}
	all.Update(xs)

	if one.Summary() != all.Summary() {
		t.Fatalf("per-sample %+v differs from block %+v", one.Summary(), all.Summary())
	}
}

func TestStreamingEmptyAndReset(t *testing.T) {
	var s Streaming
	if s.Summary() != (Summary{}) {
		t.Fatal("empty accumulator must yield the zero record")
	}

	s.Update([]float64{1, 2, 3})
	if s.N() != 3 {
		t.Fatalf("N = %d, want 3", s.N())
	}

	s.Reset()
	if s.N() != 0 || s.Summary() != (Summary{}) {
		t.Fatal("Reset must clear the accumulator")
	}
}
