// Package market holds shared market-data types and series helpers.
package market

import (
	"math"
	"time"
)

// Candle models one OHLCV observation. Only Close is required by the
// engine; Volume is optional and improves edge weighting when present.
type Candle struct {
	Ts     time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Closes extracts the close series from candles.
func Closes(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Close
	}
	return out
}

// Volumes extracts the volume series from candles, returning nil when no
// candle carries volume.
func Volumes(candles []Candle) []float64 {
	any := false
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Volume
		if c.Volume != 0 {
			any = true
		}
	}
	if !any {
		return nil
	}
	return out
}

// Returns computes simple percentage returns between consecutive prices.
// Samples following a zero price produce a zero return.
func Returns(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}
	out := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			out[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
		}
	}
	return out
}

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// StdDev returns the population standard deviation of xs.
func StdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean := Mean(xs)
	var sq float64
	for _, x := range xs {
		dx := x - mean
		sq += dx * dx
	}
	return math.Sqrt(sq / float64(len(xs)))
}

// Tail returns the last n elements of xs (all of xs when shorter).
func Tail(xs []float64, n int) []float64 {
	if n >= len(xs) {
		return xs
	}
	return xs[len(xs)-n:]
}
