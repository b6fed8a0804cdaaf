package bulk_test

import (
	"fmt"

	"github.com/cwbudde/algo-array/bulk"
)

func ExampleSum() {
	fmt.Println(bulk.Sum([]float64{1, 2, 3, 4, 5}))
	fmt.Println(bulk.Sum([]int{10, 20, 30}))
	// Output:
	// 15
	// 60
}

func ExampleDot() {
	x := []float64{1, 2, 3}
	fmt.Println(bulk.Dot(x, x)) // sum of squares
	// Output:
	// 14
}

func ExampleScanAdd() {
	src := []float64{1, 2, 3, 4}
	dst := make([]float64, len(src))
	bulk.ScanAdd(dst, src)
	fmt.Println(dst)
	// Output:
	// [1 3 6 10]
}
