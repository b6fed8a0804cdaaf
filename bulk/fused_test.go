package bulk

import "testing"

func TestDot(t *testing.T) {
	if got := Dot([]float64{1, 2, 3}, []float64{4, 5, 6}); !closeEnough(got, 32) {
		t.Fatalf("Dot() = %v, want 32", got)
	}
	if got := Dot([]int{1, 2, 3, 9}, []int{4, 5, 6}); got != 32 {
		t.Fatalf("Dot() length mismatch = %d, want 32", got)
	}
	if got := Dot[float64](nil, nil); got != 0 {
		t.Fatalf("Dot(nil, nil) = %v, want 0", got)
	}
}

func TestSumAbsDiff(t *testing.T) {
	if got := SumAbsDiff([]float64{1, 5, 2}, []float64{4, 1, 2}); !closeEnough(got, 7) {
		t.Fatalf("SumAbsDiff() = %v, want 7", got)
	}
	if got := SumAbsDiff([]int{-3, 2}, []int{3, -2}); got != 10 {
		t.Fatalf("SumAbsDiff() = %d, want 10", got)
	}
	// Unsigned differences must not wrap.
	if got := SumAbsDiff([]uint8{1, 200}, []uint8{5, 100}); got != 104 {
		t.Fatalf("SumAbsDiff() = %d, want 104", got)
	}
}

func TestScanAdd(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5}
	dst := make([]float64, len(src))
	ScanAdd(dst, src)

	want := []float64{1, 3, 6, 10, 15}
	for i := range want {
		if !closeEnough(dst[i], want[i]) {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	ints := make([]int, 4)
	ScanAdd(ints, []int{2, -1, 2, -1})
	wantInts := []int{2, 1, 3, 2}
	for i := range wantInts {
		if ints[i] != wantInts[i] {
			t.Fatalf("int dst[%d] = %d, want %d", i, ints[i], wantInts[i])
		}
	}
}
