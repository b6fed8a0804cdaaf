package timeseries

import (
	"math"

	"github.com/cwbudde/algo-array/internal/kernels"
	"github.com/cwbudde/algo-array/stats/regress"
	"github.com/cwbudde/algo-array/stats/rolling"
)

// Forecast is the result of projecting a series forward.
type Forecast struct {
	Values []float64 // projected values, one per horizon step
	Lower  []float64 // lower 95% interval bound
	Upper  []float64 // upper 95% interval bound
	MSE    float64   // in-sample mean squared error of the one-step fit
	MAE    float64   // in-sample mean absolute error of the one-step fit
}

// z for a two-sided 95% interval.
const z95 = 1.959963984540054

// ForecastSMA projects the mean of the trailing window flat across the
// horizon. Requires len(xs) >= window.
func ForecastSMA(xs []float64, window, horizon int) (Forecast, error) {
	if err := checkArgs(xs, horizon); err != nil {
		return Forecast{}, err
	}
	if window <= 0 {
		return Forecast{}, ErrBadParam
	}
	if len(xs) < window {
		return Forecast{}, ErrShortInput
	}

	level := kernels.Sum(xs[len(xs)-window:]) / float64(window)

	// One-step predictions: the mean of the preceding window.
	var resid []float64
	if len(xs) > window {
		means := make([]float64, len(xs)-window+1)
		rolling.MeanFast(means, xs, window)
		resid = residuals(xs[window:], means[:len(xs)-window])
	}

	return flatForecast(level, horizon, resid), nil
}

// ForecastExponential projects single exponential smoothing with the given
// alpha in (0, 1]; the final level is held flat across the horizon.
func ForecastExponential(xs []float64, alpha float64, horizon int) (Forecast, error) {
	if err := checkArgs(xs, horizon); err != nil {
		return Forecast{}, err
	}
	if alpha <= 0 || alpha > 1 {
		return Forecast{}, ErrBadParam
	}

	level := xs[0]
	resid := make([]float64, 0, len(xs)-1)
	for _, x := range xs[1:] {
		resid = append(resid, x-level)
		level = alpha*x + (1-alpha)*level
	}

	return flatForecast(level, horizon, resid), nil
}

// ForecastHolt projects double exponential smoothing (Holt's linear trend)
// with smoothing factors alpha and beta in (0, 1]. Step h of the horizon is
// level + h*trend. Requires at least two points.
func ForecastHolt(xs []float64, alpha, beta float64, horizon int) (Forecast, error) {
	if err := checkArgs(xs, horizon); err != nil {
		return Forecast{}, err
	}
	if alpha <= 0 || alpha > 1 || beta <= 0 || beta > 1 {
		return Forecast{}, ErrBadParam
	}
	if len(xs) < 2 {
		return Forecast{}, ErrShortInput
	}

	level := xs[0]
	trend := xs[1] - xs[0]
	resid := make([]float64, 0, len(xs)-1)
	for _, x := range xs[1:] {
		pred := level + trend
		resid = append(resid, x-pred)

		prevLevel := level
		level = alpha*x + (1-alpha)*(level+trend)
		trend = beta*(level-prevLevel) + (1-beta)*trend
	}

	f := newForecast(horizon, resid)
	for h := 0; h < horizon; h++ {
		f.Values[h] = level + float64(h+1)*trend
	}
	applyInterval(&f, resid)

	return f, nil
}

// ForecastLinearTrend fits a least-squares line over the sample index and
// extrapolates it. Requires at least two points.
func ForecastLinearTrend(xs []float64, horizon int) (Forecast, error) {
	if err := checkArgs(xs, horizon); err != nil {
		return Forecast{}, err
	}
	if len(xs) < 2 {
		return Forecast{}, ErrShortInput
	}

	idx := make([]float64, len(xs))
	for i := range idx {
		idx[i] = float64(i)
	}
	model := regress.Fit(idx, xs)

	resid := make([]float64, len(xs))
	for i, x := range xs {
		resid[i] = x - model.Predict(float64(i))
	}

	f := newForecast(horizon, resid)
	for h := 0; h < horizon; h++ {
		f.Values[h] = model.Predict(float64(len(xs) + h))
	}
	applyInterval(&f, resid)

	return f, nil
}

// ForecastSeasonalNaive repeats the last full season: step h takes the value
// observed one period before the same phase. Requires len(xs) >= period.
func ForecastSeasonalNaive(xs []float64, period, horizon int) (Forecast, error) {
	if err := checkArgs(xs, horizon); err != nil {
		return Forecast{}, err
	}
	if period <= 0 {
		return Forecast{}, ErrBadParam
	}
	if len(xs) < period {
		return Forecast{}, ErrShortInput
	}

	var resid []float64
	if len(xs) > period {
		resid = residuals(xs[period:], xs[:len(xs)-period])
	}

	f := newForecast(horizon, resid)
	for h := 0; h < horizon; h++ {
		f.Values[h] = xs[len(xs)-period+h%period]
	}
	applyInterval(&f, resid)

	return f, nil
}

func checkArgs(xs []float64, horizon int) error {
	if len(xs) == 0 {
		return ErrEmptyInput
	}
	if horizon <= 0 {
		return ErrBadParam
	}

	return nil
}

func residuals(actual, pred []float64) []float64 {
	resid := make([]float64, len(actual))
	kernels.AxpyBlock(resid, pred, actual, -1)

	return resid
}

func newForecast(horizon int, resid []float64) Forecast {
	f := Forecast{
		Values: make([]float64, horizon),
		Lower:  make([]float64, horizon),
		Upper:  make([]float64, horizon),
	}
	if len(resid) > 0 {
		fn := float64(len(resid))
		f.MSE = kernels.Dot(resid, resid) / fn

		abs := make([]float64, len(resid))
		kernels.AbsBlock(abs, resid)
		f.MAE = kernels.Sum(abs) / fn
	}

	return f
}

func flatForecast(level float64, horizon int, resid []float64) Forecast {
	f := newForecast(horizon, resid)
	for h := range f.Values {
		f.Values[h] = level
	}
	applyInterval(&f, resid)

	return f
}

// applyInterval widens Values by ±z95 times the residual deviation.
func applyInterval(f *Forecast, resid []float64) {
	sigma := 0.0
	if len(resid) > 1 {
		fn := float64(len(resid))
		mean := kernels.Sum(resid) / fn
		v := kernels.Dot(resid, resid)/fn - mean*mean
		if v > 0 {
			sigma = math.Sqrt(v)
		}
	}

	margin := z95 * sigma
	kernels.OffsetBlock(f.Lower, f.Values, -margin)
	kernels.OffsetBlock(f.Upper, f.Values, margin)
}
