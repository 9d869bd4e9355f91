package agent

import (
	"pathsig-go/internal/market"
	"pathsig-go/internal/metrics"
)

// Pathfinder adapts the graph decision engine to the Agent boundary. It is
// the stateful member of the agent family: the engine's hysteresis counter
// carries across calls.
type Pathfinder struct {
	engine EngineEvaluator
}

// NewPathfinder wraps an engine in the Agent interface.
func NewPathfinder(engine EngineEvaluator) *Pathfinder {
	return &Pathfinder{engine: engine}
}

// Name returns the identifier used in logs and metrics labels.
func (p *Pathfinder) Name() string { return "pathfinder" }

// Strategy evaluates the candle history through the engine. Insufficient
// data short-circuits to 0 inside the engine.
func (p *Pathfinder) Strategy(candles []market.Candle) float64 {
	sig := p.engine.Evaluate(candles)
	metrics.SignalsTotal.WithLabelValues(p.Name(), metrics.Direction(sig)).Inc()
	return sig
}
