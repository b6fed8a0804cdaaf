// Package timeseries provides forecasting, autocorrelation and forecast
// error metrics for univariate float64 series.
//
// Every forecaster returns a Forecast record carrying the projected values,
// a 95% interval derived from the in-sample residual spread, and the
// in-sample MSE/MAE of the one-step fit.
package timeseries
