package state

import "math"

// flatStdDev is the threshold under which a window is treated as flat.
const flatStdDev = 1e-12

// Discretizer converts a raw price series into per-sample market states over
// a trailing lookback window.
type Discretizer struct {
	Lookback int
}

// NewDiscretizer builds a discretizer, substituting the default 42-sample
// lookback when the argument is not positive.
func NewDiscretizer(lookback int) Discretizer {
	if lookback <= 0 {
		lookback = 42
	}
	return Discretizer{Lookback: lookback}
}

// Window returns the trailing lookback slice of prices, or nil when fewer
// than Lookback samples are available.
func (d Discretizer) Window(prices []float64) []float64 {
	if len(prices) < d.Lookback {
		return nil
	}
	return prices[len(prices)-d.Lookback:]
}

// States labels every price in the trailing window with its state. The
// second return is the current state (label of the last price). A flat
// window (zero variance) maps every sample to Neutral.
func (d Discretizer) States(prices []float64) ([]State, State) {
	window := d.Window(prices)
	if window == nil {
		return nil, Neutral
	}

	mean, std := meanStd(window)
	states := make([]State, len(window))
	if std < flatStdDev {
		for i := range states {
			states[i] = Neutral
		}
		return states, Neutral
	}

	for i, p := range window {
		states[i] = FromZ((p - mean) / std)
	}
	return states, states[len(states)-1]
}

// meanStd computes the mean and population standard deviation of xs.
func meanStd(xs []float64) (float64, float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))

	var sq float64
	for _, x := range xs {
		dx := x - mean
		sq += dx * dx
	}
	return mean, math.Sqrt(sq / float64(len(xs)))
}
