package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"pathsig-go/internal/state"
)

// ramp builds a strictly increasing price series and its per-sample states
// under a 42-sample discretizer.
func ramp(n int) ([]state.State, []float64) {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = 100 + float64(i)
	}
	d := state.NewDiscretizer(n)
	states, _ := d.States(prices)
	return states, prices
}

func TestBuildIdempotent(t *testing.T) {
	states, prices := ramp(42)
	b := NewBuilder(0.7)

	first := b.Build(states, prices, nil)
	second := b.Build(states, prices, nil)
	require.Equal(t, first, second, "identical inputs must yield identical graphs")
}

func TestBuildEdgesAreFiniteAndBounded(t *testing.T) {
	states, prices := ramp(42)
	g := NewBuilder(0.7).Build(states, prices, nil)

	require.True(t, g.Finite())
	require.LessOrEqual(t, g.EdgeCount(), state.Count*state.Count)
	require.False(t, g.Empty())
}

func TestBuildSkipsSelfTransitions(t *testing.T) {
	states, prices := ramp(42)
	g := NewBuilder(0.7).Build(states, prices, nil)

	for s := state.State(0); s < state.Count; s++ {
		require.False(t, g.HasEdge(s, s), "self loop at %s", s)
	}
}

func TestBuildWeightFormula(t *testing.T) {
	// One observed up-transition: weight = (1-riskWeight) * change.
	states := []state.State{state.Low, state.High}
	prices := []float64{100, 110}
	g := NewBuilder(0.7).Build(states, prices, nil)

	w, ok := g.Weight(state.Low, state.High)
	require.True(t, ok)
	require.InDelta(t, 0.3*0.10, w, 1e-12)

	// One observed down-transition: weight = riskWeight * |change|.
	states = []state.State{state.High, state.Low}
	prices = []float64{100, 90}
	g = NewBuilder(0.7).Build(states, prices, nil)

	w, ok = g.Weight(state.High, state.Low)
	require.True(t, ok)
	require.InDelta(t, 0.7*0.10, w, 1e-12)
}

func TestBuildAveragesRepeatedTransitions(t *testing.T) {
	// Neutral -> High twice with different magnitudes; the edge holds the
	// arithmetic mean of both weights.
	states := []state.State{state.Neutral, state.High, state.Neutral, state.High}
	prices := []float64{100, 110, 100, 120}
	g := NewBuilder(0.7).Build(states, prices, nil)

	w, ok := g.Weight(state.Neutral, state.High)
	require.True(t, ok)
	expected := (0.3*0.10 + 0.3*0.20) / 2
	require.InDelta(t, expected, w, 1e-12)
}

func TestBuildVolumeWeighting(t *testing.T) {
	states := []state.State{state.Neutral, state.High, state.Neutral, state.Low}
	prices := []float64{100, 110, 100, 90}

	flat := NewBuilder(0.7).Build(states, prices, []float64{10, 10, 10, 10})
	spiked := NewBuilder(0.7).Build(states, prices, []float64{10, 100, 10, 10})

	base, ok := flat.Weight(state.Neutral, state.High)
	require.True(t, ok)
	boosted, ok := spiked.Weight(state.Neutral, state.High)
	require.True(t, ok)
	// A volume spike on the up-transition amplifies its (positive) weight.
	require.Greater(t, boosted, base)

	// Flat volume carries no information: weights match the no-volume build.
	novolGraph := NewBuilder(0.7).Build(states, prices, nil)
	novol, ok := novolGraph.Weight(state.Neutral, state.High)
	require.True(t, ok)
	require.InDelta(t, novol, base, 1e-12)
}

func TestBuildDegenerateInputs(t *testing.T) {
	b := NewBuilder(0.7)

	g := b.Build(nil, nil, nil)
	require.True(t, g.Empty())
	g = b.Build([]state.State{state.Neutral}, []float64{100}, nil)
	require.True(t, g.Empty())

	// Flat window: every sample is neutral, so no edges survive.
	states := []state.State{state.Neutral, state.Neutral, state.Neutral}
	prices := []float64{100, 100, 100}
	g = b.Build(states, prices, nil)
	require.True(t, g.Empty())

	// A zero price cannot produce a usable return.
	states = []state.State{state.Low, state.High}
	g = b.Build(states, []float64{0, 10}, nil)
	require.True(t, g.Empty())
}

func TestBuilderDefaultRiskWeight(t *testing.T) {
	require.Equal(t, 0.7, NewBuilder(0).RiskWeight)
	require.Equal(t, 0.7, NewBuilder(1.5).RiskWeight)
	require.Equal(t, 0.4, NewBuilder(0.4).RiskWeight)
}

func TestGraphNeighborsOrdered(t *testing.T) {
	var g Graph
	g.AddEdge(state.Neutral, state.High, 2)
	g.AddEdge(state.Neutral, state.Low, 1)

	var seen []state.State
	g.Neighbors(state.Neutral, func(to state.State, w float64) {
		require.False(t, math.IsNaN(w))
		seen = append(seen, to)
	})
	require.Equal(t, []state.State{state.Low, state.High}, seen)
}
