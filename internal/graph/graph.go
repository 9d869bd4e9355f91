// Package graph builds the weighted market-state transition graph.
package graph

import (
	"math"

	"pathsig-go/internal/state"
)

// Graph is a directed weighted graph over the nine market states, stored as
// a fixed-size adjacency matrix. An edge exists only for transitions that
// were observed in the source window. Lower weight means a more attractive
// (higher reward, lower risk) transition.
type Graph struct {
	weight [state.Count][state.Count]float64
	has    [state.Count][state.Count]bool
}

// AddEdge sets the weight of the directed edge from one state to another,
// replacing any existing edge. Invalid states are ignored.
func (g *Graph) AddEdge(from, to state.State, weight float64) {
	if !from.Valid() || !to.Valid() {
		return
	}
	g.weight[from][to] = weight
	g.has[from][to] = true
}

// Weight returns the edge weight from one state to another and whether the
// edge exists.
func (g *Graph) Weight(from, to state.State) (float64, bool) {
	if !from.Valid() || !to.Valid() {
		return 0, false
	}
	return g.weight[from][to], g.has[from][to]
}

// HasEdge reports whether a transition from one state to another was observed.
func (g *Graph) HasEdge(from, to state.State) bool {
	_, ok := g.Weight(from, to)
	return ok
}

// EdgeCount returns the number of distinct edges in the graph.
func (g *Graph) EdgeCount() int {
	var n int
	for from := range g.has {
		for to := range g.has[from] {
			if g.has[from][to] {
				n++
			}
		}
	}
	return n
}

// Empty reports whether the graph holds no edges at all.
func (g *Graph) Empty() bool { return g.EdgeCount() == 0 }

// Neighbors invokes fn for every outgoing edge of from, in state order.
func (g *Graph) Neighbors(from state.State, fn func(to state.State, weight float64)) {
	if !from.Valid() {
		return
	}
	for to := 0; to < state.Count; to++ {
		if g.has[from][to] {
			fn(state.State(to), g.weight[from][to])
		}
	}
}

// Finite reports whether every edge weight is a finite number.
func (g *Graph) Finite() bool {
	ok := true
	g.each(func(_, _ state.State, w float64) {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			ok = false
		}
	})
	return ok
}

func (g *Graph) each(fn func(from, to state.State, weight float64)) {
	for from := 0; from < state.Count; from++ {
		for to := 0; to < state.Count; to++ {
			if g.has[from][to] {
				fn(state.State(from), state.State(to), g.weight[from][to])
			}
		}
	}
}
