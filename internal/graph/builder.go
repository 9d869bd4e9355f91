package graph

import (
	"math"

	"pathsig-go/internal/state"
)

const (
	defaultRiskWeight = 0.7
	volumeClip        = 2.5
	volumeScale       = 0.2
)

// Builder turns a discretized window into a transition graph. RiskWeight
// blends the risk and reward components of each edge weight.
type Builder struct {
	RiskWeight float64
}

// NewBuilder constructs a Builder, substituting the default risk weight when
// the argument is outside (0, 1].
func NewBuilder(riskWeight float64) Builder {
	if riskWeight <= 0 || riskWeight > 1 {
		riskWeight = defaultRiskWeight
	}
	return Builder{RiskWeight: riskWeight}
}

// Build constructs the graph from parallel per-sample states and prices,
// plus an optional volume series of the same length (nil to disable volume
// weighting). Repeated observations of the same transition are averaged.
// Self-transitions are skipped: with non-negative weights they can never
// shorten a path, and omitting them keeps a flat window a bare node.
func (b Builder) Build(states []state.State, prices, volumes []float64) Graph {
	var g Graph
	if len(states) < 2 || len(prices) != len(states) {
		return g
	}

	var volMean, volStd float64
	if len(volumes) == len(prices) {
		volMean, volStd = meanStd(volumes)
	} else {
		volumes = nil
	}

	var sum [state.Count][state.Count]float64
	var count [state.Count][state.Count]int

	for i := 1; i < len(states); i++ {
		from, to := states[i-1], states[i]
		if from == to {
			continue
		}
		if prices[i-1] == 0 {
			continue
		}
		change := (prices[i] - prices[i-1]) / prices[i-1]
		if math.IsNaN(change) || math.IsInf(change, 0) {
			continue
		}

		volWeight := 1.0
		if volumes != nil && volStd > 0 {
			z := (volumes[i] - volMean) / volStd
			volWeight = 1.0 + volumeScale*clip(z, -volumeClip, volumeClip)
		}

		var reward, risk float64
		if change > 0 {
			reward = -change * volWeight
		} else if change < 0 {
			risk = math.Abs(change) * volWeight
		}
		weight := b.RiskWeight*risk - (1-b.RiskWeight)*reward

		sum[from][to] += weight
		count[from][to]++
	}

	for from := 0; from < state.Count; from++ {
		for to := 0; to < state.Count; to++ {
			if count[from][to] > 0 {
				g.AddEdge(state.State(from), state.State(to), sum[from][to]/float64(count[from][to]))
			}
		}
	}
	return g
}

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

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
