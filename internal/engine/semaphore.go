package engine

import (
	"pathsig-go/internal/market"
	"pathsig-go/internal/state"
)

const (
	semaphoreMin = -5
	semaphoreMax = 5
	// momentumWindow bounds how many trailing returns vote on momentum.
	momentumWindow = 5
	// maxSemaphoreStep caps how far one call can move the counter.
	maxSemaphoreStep = 2
)

// nextSemaphore advances the hysteresis counter given the transition the
// policy asked for. A call that wants no transition decays the counter one
// step toward zero; momentum agreement allows a larger move, disagreement
// only a single step. The result stays in [-5, 5].
func (e *Engine) nextSemaphore(current, target state.State, returns []float64) int {
	sem := e.semaphore

	diff := target.Rank() - current.Rank()
	if diff == 0 {
		if sem > 0 {
			sem--
		} else if sem < 0 {
			sem++
		}
		return sem
	}

	momentum := signSum(market.Tail(returns, momentumWindow))
	step := abs(diff)
	if step > maxSemaphoreStep {
		step = maxSemaphoreStep
	}

	switch {
	case diff > 0 && momentum > 0:
		sem += step
	case diff < 0 && momentum < 0:
		sem -= step
	case diff > 0:
		sem++
	default:
		sem--
	}

	return clampInt(sem, semaphoreMin, semaphoreMax)
}

// signSum adds the signs of xs: +1 per positive, -1 per negative.
func signSum(xs []float64) int {
	var total int
	for _, x := range xs {
		if x > 0 {
			total++
		} else if x < 0 {
			total--
		}
	}
	return total
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
