package bulk

import (
	"math"
	"testing"
)

func closeEnough(a, b float64) bool {
	const epsilon = 1e-9
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if a == 0 || b == 0 {
		return diff < epsilon
	}
	return diff/math.Max(math.Abs(a), math.Abs(b)) < epsilon
}

func TestSumFloat64(t *testing.T) {
	cases := []struct {
		name string
		x    []float64
		want float64
	}{
		{name: "empty", x: nil, want: 0},
		{name: "single", x: []float64{4.25}, want: 4.25},
		{name: "simple", x: []float64{1, 2, 3, 4, 5}, want: 15},
		{name: "cancellation", x: []float64{1e10, 1, -1e10}, want: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sum(tc.x); !closeEnough(got, tc.want) {
				t.Fatalf("Sum() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSumInt(t *testing.T) {
	if got := Sum([]int{1, 2, 3, 4, 5}); got != 15 {
		t.Fatalf("Sum() = %d, want 15", got)
	}
	if got := Sum([]int32{-3, 3, -7}); got != -7 {
		t.Fatalf("Sum() = %d, want -7", got)
	}
}

func TestSumWraparound(t *testing.T) {
	// Integer sums wrap at the type width, same as the scalar operators.
	if got := Sum([]uint8{200, 100}); got != 44 {
		t.Fatalf("Sum() = %d, want 44", got)
	}
	if got := Sum([]int8{127, 1}); got != -128 {
		t.Fatalf("Sum() = %d, want -128", got)
	}
}

func TestProduct(t *testing.T) {
	if got := Product([]int{1, 2, 3, 4}); got != 24 {
		t.Fatalf("Product() = %d, want 24", got)
	}
	if got := Product([]float64{0.5, 4, 2}); !closeEnough(got, 4) {
		t.Fatalf("Product() = %v, want 4", got)
	}
	if got := Product[float64](nil); got != 1 {
		t.Fatalf("Product(nil) = %v, want 1", got)
	}
}

func TestMinMax(t *testing.T) {
	xs := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	if got := Min(xs); got != 1 {
		t.Errorf("Min() = %v, want 1", got)
	}
	if got := Max(xs); got != 9 {
		t.Errorf("Max() = %v, want 9", got)
	}

	ints := []int{-5, 12, 0, -9, 7}
	if got := Min(ints); got != -9 {
		t.Errorf("Min() = %d, want -9", got)
	}
	if got := Max(ints); got != 12 {
		t.Errorf("Max() = %d, want 12", got)
	}

	if got := Min[uint16](nil); got != 0 {
		t.Errorf("Min(nil) = %d, want 0", got)
	}
	if got := Max[float64](nil); got != 0 {
		t.Errorf("Max(nil) = %v, want 0", got)
	}
}

// The float64 instantiations route through the dispatched kernels; they must
// agree with the plain left-to-right loop within rounding tolerance.
func TestFloat64RoutingParity(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 31, 32, 33, 63, 64, 100, 1000, 1025}

	for _, n := range sizes {
		x := make([]float64, n)
		for i := range x {
			x[i] = math.Sin(float64(i)*0.911) * 3
		}

		ref := 0.0
		for _, v := range x {
			ref += v
		}
		if got := Sum(x); !closeEnough(got, ref) {
			t.Errorf("n=%d: Sum = %v, reference = %v", n, got, ref)
		}

		refDot := 0.0
		for _, v := range x {
			refDot += v * v
		}
		if got := Dot(x, x); !closeEnough(got, refDot) {
			t.Errorf("n=%d: Dot = %v, reference = %v", n, got, refDot)
		}
	}
}
