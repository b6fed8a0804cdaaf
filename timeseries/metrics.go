package timeseries

import (
	"math"

	"github.com/cwbudde/algo-array/internal/kernels"
)

// MAE returns the mean absolute error between actual and predicted, over the
// shorter of the two slices.
func MAE(actual, predicted []float64) (float64, error) {
	n := min(len(actual), len(predicted))
	if n == 0 {
		return 0, ErrEmptyInput
	}

	return kernels.SumAbsDiff(actual[:n], predicted[:n]) / float64(n), nil
}

// RMSE returns the root mean squared error.
func RMSE(actual, predicted []float64) (float64, error) {
	n := min(len(actual), len(predicted))
	if n == 0 {
		return 0, ErrEmptyInput
	}

	resid := residuals(actual[:n], predicted[:n])

	return math.Sqrt(kernels.Dot(resid, resid) / float64(n)), nil
}

// MAPE returns the mean absolute percentage error, in percent. Elements
// where the actual value is zero are skipped; if all are, MAPE is 0.
func MAPE(actual, predicted []float64) (float64, error) {
	n := min(len(actual), len(predicted))
	if n == 0 {
		return 0, ErrEmptyInput
	}

	sum := 0.0
	used := 0
	for i := 0; i < n; i++ {
		if actual[i] == 0 {
			continue
		}
		sum += math.Abs((actual[i] - predicted[i]) / actual[i])
		used++
	}
	if used == 0 {
		return 0, nil
	}

	return 100 * sum / float64(used), nil
}
