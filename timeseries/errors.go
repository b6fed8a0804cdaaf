package timeseries

import "errors"

var (
	// ErrEmptyInput is returned when the series has no data.
	ErrEmptyInput = errors.New("timeseries: empty input")

	// ErrShortInput is returned when the series is shorter than the
	// forecaster's minimum (window, two points for a trend, one period).
	ErrShortInput = errors.New("timeseries: input too short")

	// ErrBadParam is returned for out-of-range parameters such as a
	// non-positive window, horizon or period.
	ErrBadParam = errors.New("timeseries: invalid parameter")
)
