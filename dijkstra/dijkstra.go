package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/driptrace/driptrace/core"
)

// Run executes one Dijkstra computation over g from source and returns the
// full distance table, predecessor table, and ordered decision trace.
//
// The run is deterministic: frontier ties in (distance, node) break by the
// smaller node index, so the same graph and source always produce the same
// event sequence.
//
// Steps:
//  1. Validate: g non-nil, source in [0, N). Fail fast, zero events.
//  2. Build adjacency lists, both directions per undirected edge, in
//     edge-list order.
//  3. Seed dist[source]=0, everything else +Inf, all predecessors NoPrev,
//     and push (0, source) onto the min-heap frontier.
//  4. Pop the minimum (distance, node). Stale entries (popped distance
//     strictly above the node's recorded best) are discarded silently.
//     A fresh pop finalizes the node and relaxes its neighbors: strict
//     improvements update both tables and push; everything else, ties
//     included, is reported as not better.
//  5. The loop ends when the frontier drains. Unreachable nodes keep
//     +Inf and NoPrev and never finalize.
//
// Complexity: O((V + E) log V) time, O(V + E) space under lazy decrease-key.
func Run(g *core.Graph, source int) (*Result, error) {
	// 1. Validate before any event exists.
	if g == nil {
		return nil, ErrNilGraph
	}
	if source < 0 || source >= g.NodeCount() {
		return nil, fmt.Errorf("%w: %d with %d nodes", ErrInvalidSource, source, g.NodeCount())
	}

	r := newRunner(g, source)
	r.process()

	return &Result{Source: source, Dist: r.dist, Prev: r.prev, Events: r.events}, nil
}

// halfEdge is one direction of an undirected edge inside the adjacency lists.
type halfEdge struct {
	weight float64
	to     int
}

// runner holds the mutable state of a single run.
type runner struct {
	adj    [][]halfEdge
	dist   []float64
	prev   []int
	pq     frontier
	events []Event
}

// newRunner builds the adjacency structure and the seeded initial state.
func newRunner(g *core.Graph, source int) *runner {
	n := g.NodeCount()

	// 2. Insert both directions per edge, in edge-list order, so the
	//    neighbor relation is symmetric even when an unordered pair appears
	//    only once in the graph.
	adj := make([][]halfEdge, n)
	for _, e := range g.Edges() {
		adj[e.U] = append(adj[e.U], halfEdge{weight: e.Weight, to: e.V})
		adj[e.V] = append(adj[e.V], halfEdge{weight: e.Weight, to: e.U})
	}

	// 3. All distances unknown except the source; no predecessors yet.
	dist := make([]float64, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = NoPrev
	}
	dist[source] = 0

	r := &runner{adj: adj, dist: dist, prev: prev}
	heap.Init(&r.pq)
	heap.Push(&r.pq, frontierItem{dist: 0, node: source})

	return r
}

// process drains the frontier, finalizing one node per fresh pop and
// relaxing its neighbors.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 4. Pop the minimum (distance, node) candidate.
		item := heap.Pop(&r.pq).(frontierItem)

		// Stale entry: an earlier, better relaxation already superseded this
		// one. Skip silently, no event.
		if item.dist > r.dist[item.node] {
			continue
		}

		// Fresh pop: this node's shortest distance is now fixed.
		r.events = append(r.events, Finalized{Node: item.node})
		r.relax(item.node, item.dist)
	}
}

// relax examines every neighbor of u in adjacency order. A candidate that
// strictly improves the best known distance updates both tables and joins
// the frontier; any other candidate, equal ones included, only produces a
// CompareWorse event.
func (r *runner) relax(u int, du float64) {
	for _, h := range r.adj[u] {
		candidate := du + h.weight
		if candidate < r.dist[h.to] {
			r.dist[h.to] = candidate
			r.prev[h.to] = u
			heap.Push(&r.pq, frontierItem{dist: candidate, node: h.to})
			r.events = append(r.events, Relaxed{From: u, To: h.to, Distance: candidate})
		} else {
			r.events = append(r.events, CompareWorse{From: u, To: h.to, Distance: candidate})
		}
	}
}

// frontierItem is one (distance, node) candidate awaiting finalization.
type frontierItem struct {
	dist float64
	node int
}

// frontier is a min-heap of candidates under lazy decrease-key: an improved
// distance pushes a duplicate entry, and whichever copy surfaces late is
// skipped as stale. Within one run all live entries are distinct under the
// (dist, node) order, which is what makes pops deterministic.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

// Less orders by distance, then node index; the index is the tie-break key.
func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}

	return f[i].node < f[j].node
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; called by heap.Push, x must be a frontierItem.
func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
