// Package dijkstra runs shortest-path searches over the market-state graph.
//
// The solver is a classic Dijkstra with a container/heap min-priority queue
// and lazy decrease-key: improved distances push duplicate entries, stale
// entries are discarded when popped. Ties between equal distances break in
// insertion order so decisions stay reproducible run to run.
package dijkstra

import (
	"container/heap"
	"math"

	"pathsig-go/internal/graph"
	"pathsig-go/internal/state"
)

// NoPredecessor marks a node with no predecessor in a Result.
const NoPredecessor = -1

// Result holds distances from the start state and predecessor links for
// path reconstruction. Unreachable states keep distance +Inf and
// predecessor NoPredecessor.
type Result struct {
	Start state.State
	Dist  [state.Count]float64
	Prev  [state.Count]int
}

// Reachable reports whether a shortest path from the start reaches s.
// The start state itself is not considered reachable as a target.
func (r Result) Reachable(s state.State) bool {
	return s.Valid() && r.Prev[s] != NoPredecessor
}

// PathTo reconstructs the shortest path from the start to target, inclusive
// of both endpoints. It returns nil when the target is unreachable.
func (r Result) PathTo(target state.State) []state.State {
	if !r.Reachable(target) {
		return nil
	}
	var rev []state.State
	for at := target; at != r.Start; {
		rev = append(rev, at)
		prev := r.Prev[at]
		if prev == NoPredecessor {
			return nil
		}
		at = state.State(prev)
	}
	rev = append(rev, r.Start)

	path := make([]state.State, len(rev))
	for i, s := range rev {
		path[len(rev)-1-i] = s
	}
	return path
}

// PathScore sums the edge weights along the reconstructed shortest path to
// target, returning +Inf when no path exists.
func (r Result) PathScore(g *graph.Graph, target state.State) float64 {
	path := r.PathTo(target)
	if path == nil {
		return math.Inf(1)
	}
	var score float64
	for i := 1; i < len(path); i++ {
		if w, ok := g.Weight(path[i-1], path[i]); ok {
			score += w
		}
	}
	return score
}

// Solve runs Dijkstra from start over g, stopping early once every target
// has been finalized. Targets outside the graph simply stay unreachable.
func Solve(g *graph.Graph, start state.State, targets []state.State) Result {
	r := Result{Start: start}
	for i := range r.Dist {
		r.Dist[i] = math.Inf(1)
		r.Prev[i] = NoPredecessor
	}
	if g == nil || !start.Valid() {
		return r
	}
	r.Dist[start] = 0

	wanted := make(map[state.State]bool, len(targets))
	for _, t := range targets {
		if t.Valid() {
			wanted[t] = true
		}
	}

	var visited [state.Count]bool
	pq := newQueue()
	pq.push(start, 0)

	remaining := len(wanted)
	for pq.Len() > 0 {
		item := heap.Pop(pq).(*queueItem)
		u := item.node
		if visited[u] {
			continue
		}
		visited[u] = true
		if wanted[u] {
			remaining--
			if remaining == 0 {
				break
			}
		}

		g.Neighbors(u, func(v state.State, w float64) {
			if visited[v] {
				return
			}
			next := r.Dist[u] + w
			if next < r.Dist[v] {
				r.Dist[v] = next
				r.Prev[v] = int(u)
				pq.push(v, next)
			}
		})
	}
	return r
}

// queueItem pairs a state with its tentative distance. seq preserves
// insertion order among equal distances.
type queueItem struct {
	node state.State
	dist float64
	seq  uint64
}

type queue struct {
	items []*queueItem
	next  uint64
}

func newQueue() *queue {
	q := &queue{items: make([]*queueItem, 0, state.Count)}
	heap.Init(q)
	return q
}

func (q *queue) push(node state.State, dist float64) {
	heap.Push(q, &queueItem{node: node, dist: dist})
}

func (q *queue) Len() int { return len(q.items) }

func (q *queue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.seq < b.seq
}

func (q *queue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *queue) Push(x interface{}) {
	item := x.(*queueItem)
	item.seq = q.next
	q.next++
	q.items = append(q.items, item)
}

func (q *queue) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}
