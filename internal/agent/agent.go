// Package agent defines the boundary every signal generator satisfies:
// candle history in, one bounded scalar out.
package agent

import (
	"strings"

	"pathsig-go/internal/market"
)

// Agent produces a trading signal in [-1, 1] from a candle history. A
// history too short for the implementation must yield exactly 0.
type Agent interface {
	Strategy(candles []market.Candle) float64
	Name() string
}

// Build returns the agent implementation matching the configured mode.
func Build(mode string, deps Deps) Agent {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "pathfinder", "graph", "shortest_path":
		return NewPathfinder(deps.Engine)
	case "rsi", "rsi_reversion":
		return NewRSIReversion(deps.RSIPeriod)
	default:
		return NewPathfinder(deps.Engine)
	}
}

// Deps carries the collaborators agent constructors may need.
type Deps struct {
	Engine    EngineEvaluator
	RSIPeriod int
}

// EngineEvaluator is the slice of the decision engine the pathfinder needs.
type EngineEvaluator interface {
	Evaluate(candles []market.Candle) float64
	Fitted() bool
}
