package engine

import (
	"math"

	"pathsig-go/internal/dijkstra"
	"pathsig-go/internal/graph"
	"pathsig-go/internal/market"
	"pathsig-go/internal/state"
)

// trendWindow is the number of trailing returns behind the trend estimate.
const trendWindow = 10

// decide walks the three-level decision tree top-down and returns the
// chosen target state, a confidence in [0, 1], and the level that fired.
//
// Level 3 needs a reachable bullish or bearish path plus agreement between
// the semaphore and the recent trend (or a strong enough trend on its own).
// Level 2 nudges one notch in the direction of a significant trend.
// Level 1 is the unconditional neutral floor.
func (e *Engine) decide(g *graph.Graph, current state.State, returns []float64) (state.State, float64, int) {
	if g == nil || g.Empty() || !current.Valid() {
		return state.Neutral, 0.3, 1
	}

	trend := recentTrend(returns)
	sem := float64(e.semaphore)

	if e.cfg.StructureLevels >= 3 {
		bull := solve(g, current, state.BullishTargets())
		bear := solve(g, current, state.BearishTargets())
		bullExists := anyReachable(bull, state.BullishTargets())
		bearExists := anyReachable(bear, state.BearishTargets())

		gate := e.cfg.StateThreshold * e.cfg.DeadlockSensitivity
		if bullExists &&
			((e.semaphore > 0 && trend > 0) || e.semaphore >= 3 || trend > gate) {
			best := bestTarget(g, bull, state.BullishTargets())
			return best, clip(0.5+0.1*sem+0.2*trend, 0, 1), 3
		}
		if bearExists &&
			((e.semaphore < 0 && trend < 0) || e.semaphore <= -3 || trend < -gate) {
			best := bestTarget(g, bear, state.BearishTargets())
			return best, clip(0.5-0.1*sem-0.2*trend, 0, 1), 3
		}
	}

	if e.cfg.StructureLevels >= 2 {
		if trend > e.cfg.StateThreshold {
			return state.SlightHigh, math.Min(0.7, 0.4+trend), 2
		}
		if trend < -e.cfg.StateThreshold {
			return state.SlightLow, math.Min(0.7, 0.4-trend), 2
		}
	}

	return state.Neutral, 0.3, 1
}

// recentTrend is the volatility-normalized mean of the last trendWindow
// returns, 0 when history or variance is missing.
func recentTrend(returns []float64) float64 {
	if len(returns) < trendWindow {
		return 0
	}
	tail := market.Tail(returns, trendWindow)
	vol := market.StdDev(tail)
	if vol <= 0 {
		return 0
	}
	return sanitize(market.Mean(tail) / vol)
}

func anyReachable(res dijkstra.Result, targets []state.State) bool {
	for _, t := range targets {
		if res.Reachable(t) {
			return true
		}
	}
	return false
}

// bestTarget picks the reachable target with the lowest reconstructed path
// score.
func bestTarget(g *graph.Graph, res dijkstra.Result, targets []state.State) state.State {
	best := state.Neutral
	bestScore := math.Inf(1)
	for _, t := range targets {
		if !res.Reachable(t) {
			continue
		}
		if score := res.PathScore(g, t); score < bestScore {
			bestScore = score
			best = t
		}
	}
	return best
}
