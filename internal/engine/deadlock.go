package engine

import (
	"pathsig-go/internal/market"
	"pathsig-go/internal/state"
)

const (
	deadlockMinSamples = 30
	volWindow          = 10
	rangeStride        = 5
	volDropThreshold   = -0.3
	rangeDropThreshold = -0.2
)

// deadlockDetector scores how "stuck" the market looks: compressing
// volatility, narrowing ranges, short/long trend divergence, and lingering
// at extreme states all suggest an imminent breakout.
type deadlockDetector struct {
	sensitivity float64
}

// score combines the four indicators into a value in [-1, 1]; 0 means no
// deadlock evidence. Windows shorter than 30 samples score 0.
func (d deadlockDetector) score(prices []float64, current state.State) float64 {
	if len(prices) < deadlockMinSamples {
		return 0
	}
	returns := market.Returns(prices)

	volTrend := volCompression(returns)
	rangeTrend := rangeNarrowing(prices)
	divergence := trendDivergence(returns)
	persistence := statePersistence(current)

	score := 0.3*volTrend + 0.2*rangeTrend + 0.3*divergence + 0.2*persistence
	return clip(score*d.sensitivity, -1, 1)
}

// volCompression flags realized volatility that fell by more than 30%
// across the last ten rolling windows.
func volCompression(returns []float64) float64 {
	var vols []float64
	for i := volWindow; i < len(returns); i++ {
		vols = append(vols, market.StdDev(returns[i-volWindow:i]))
	}
	if len(vols) < volWindow {
		return 0
	}
	base := vols[len(vols)-volWindow]
	if base <= 0 {
		return 0
	}
	if vols[len(vols)-1]/base-1 < volDropThreshold {
		return -1
	}
	return 0
}

// rangeNarrowing flags a high-low range that shrank by more than 20%
// across the sampled sub-windows.
func rangeNarrowing(prices []float64) float64 {
	var ranges []float64
	for i := volWindow; i < len(prices); i += rangeStride {
		window := prices[i-volWindow : i]
		lo, hi := window[0], window[0]
		for _, p := range window[1:] {
			if p < lo {
				lo = p
			}
			if p > hi {
				hi = p
			}
		}
		ranges = append(ranges, hi-lo)
	}
	if len(ranges) < 2 || ranges[0] <= 0 {
		return 0
	}
	if ranges[len(ranges)-1]/ranges[0]-1 < rangeDropThreshold {
		return -1
	}
	return 0
}

// trendDivergence fires when the short-term mean return opposes the
// long-term one, signed by the short-term direction.
func trendDivergence(returns []float64) float64 {
	short := market.Mean(market.Tail(returns, 10))
	long := short
	if len(returns) >= 30 {
		long = market.Mean(market.Tail(returns, 30))
	}
	if short*long >= 0 {
		return 0
	}
	if short > 0 {
		return 1
	}
	return -1
}

// statePersistence penalizes sitting at the edges of the state alphabet.
func statePersistence(current state.State) float64 {
	switch current {
	case state.ExtremeLow, state.ExtremeHigh:
		return -0.5
	case state.VeryLow, state.VeryHigh:
		return -0.3
	default:
		return 0
	}
}
