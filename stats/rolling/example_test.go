package rolling_test

import (
	"fmt"

	"github.com/cwbudde/algo-array/stats/rolling"
)

func ExampleMean() {
	xs := []float64{1, 2, 3, 4, 5, 6, 7}
	dst := make([]float64, 5)
	n := rolling.Mean(dst, xs, 3)
	fmt.Println(dst[:n])

	// Output:
	// [2 3 4 5 6]
}

func ExampleEMA() {
	dst := make([]float64, 3)
	rolling.EMA(dst, []float64{10, 20, 30}, 3)
	fmt.Println(dst)

	// Output:
	// [10 15 22.5]
}
