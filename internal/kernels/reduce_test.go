package kernels

import (
	"math"
	"testing"
)

func sumRef(x []float64) float64 {
	sum := 0.0
	for i := range x {
		sum += x[i]
	}
	return sum
}

func TestSum(t *testing.T) {
	cases := []struct {
		name string
		x    []float64
		want float64
	}{
		{name: "empty", x: nil, want: 0},
		{name: "single", x: []float64{3.5}, want: 3.5},
		{name: "mixed", x: []float64{-1, 2, -3, 0.5}, want: -1.5},
		{name: "all zeros", x: []float64{0, 0, 0, 0}, want: 0},
		{name: "simple sum", x: []float64{1, 2, 3, 4, 5}, want: 15},
		{name: "includes inf", x: []float64{1, math.Inf(1), 2}, want: math.Inf(1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Sum(tc.x)
			if math.IsInf(tc.want, 1) {
				if !math.IsInf(got, 1) {
					t.Fatalf("Sum() = %v, want +Inf", got)
				}
				return
			}
			if !closeEnough(got, tc.want) {
				t.Fatalf("Sum() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSumReferenceParity(t *testing.T) {
	for _, n := range paritySizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			x := patternSlice(n)
			if got, want := Sum(x), sumRef(x); !closeEnough(got, want) {
				t.Fatalf("Sum() = %v, want %v", got, want)
			}
		})
	}
}

func TestProduct(t *testing.T) {
	cases := []struct {
		name string
		x    []float64
		want float64
	}{
		{name: "empty", x: nil, want: 1},
		{name: "single", x: []float64{2.5}, want: 2.5},
		{name: "factorial", x: []float64{1, 2, 3, 4}, want: 24},
		{name: "with zero", x: []float64{5, 0, 7, 1, 2}, want: 0},
		{name: "negatives", x: []float64{-1, 2, -3}, want: 6},
		{name: "seven elems", x: []float64{1, 2, 1, 2, 1, 2, 2}, want: 16},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Product(tc.x); !closeEnough(got, tc.want) {
				t.Fatalf("Product() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	cases := []struct {
		name    string
		x       []float64
		wantMin float64
		wantMax float64
	}{
		{name: "single", x: []float64{-7}, wantMin: -7, wantMax: -7},
		{name: "ascending", x: []float64{1, 2, 3, 4, 5}, wantMin: 1, wantMax: 5},
		{name: "descending", x: []float64{5, 4, 3, 2, 1}, wantMin: 1, wantMax: 5},
		{name: "tail min", x: []float64{3, 1, 4, 1, 5, 9, 2, 6, -8}, wantMin: -8, wantMax: 9},
		{name: "all equal", x: []float64{2, 2, 2, 2, 2, 2}, wantMin: 2, wantMax: 2},
		{name: "neg inf", x: []float64{math.Inf(-1), math.Inf(-1), math.Inf(-1), math.Inf(-1), math.Inf(-1)}, wantMin: math.Inf(-1), wantMax: math.Inf(-1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Min(tc.x); got != tc.wantMin {
				t.Errorf("Min() = %v, want %v", got, tc.wantMin)
			}
			if got := Max(tc.x); got != tc.wantMax {
				t.Errorf("Max() = %v, want %v", got, tc.wantMax)
			}
		})
	}
}

func TestMinMaxEmpty(t *testing.T) {
	if got := Min(nil); got != 0 {
		t.Errorf("Min(nil) = %v, want 0", got)
	}
	if got := Max(nil); got != 0 {
		t.Errorf("Max(nil) = %v, want 0", got)
	}
}

func TestMinMaxReferenceParity(t *testing.T) {
	for _, n := range paritySizes {
		if n == 0 {
			continue
		}
		t.Run(sizeStr(n), func(t *testing.T) {
			x := patternSlice(n)

			wantMin, wantMax := x[0], x[0]
			for _, v := range x {
				wantMin = math.Min(wantMin, v)
				wantMax = math.Max(wantMax, v)
			}

			if got := Min(x); got != wantMin {
				t.Errorf("Min() = %v, want %v", got, wantMin)
			}
			if got := Max(x); got != wantMax {
				t.Errorf("Max() = %v, want %v", got, wantMax)
			}
		})
	}
}
