package kruskal

import (
	"iter"
	"sort"

	"github.com/driptrace/driptrace/core"
	"github.com/driptrace/driptrace/unionfind"
)

// Trace returns the ordered Kruskal decision trace for g as a lazy sequence.
//
// Consuming the sequence replays the classic algorithm: edges sorted by
// ascending weight (stable, so equal weights keep the graph's edge order),
// each yielded as a Check and then as an Accept when its endpoints were in
// different components or a Reject when they already shared one.
//
// The sequence is finite and restartable: every range over it starts from
// scratch with a fresh sorted copy and a fresh disjoint-set, so two replays
// of the same graph are identical, and a consumer that breaks out early
// leaves nothing running behind.
//
// The trace covers every edge: it does not stop once the tree holds N-1
// accepted edges, and a disconnected graph is not an error (its trace simply
// accepts N-k edges for k components). The total tree weight is deliberately
// not computed here; fold the Accept events for it.
//
// Steps per replay:
//  1. Copy the edge list and sort it by weight, stable.
//  2. Seed a disjoint-set with N singleton components.
//  3. Per edge: yield Check; Union the endpoints; yield Accept on a merge,
//     Reject on a refused (cycle-closing) union.
//
// Complexity: O(E log E + α(N)·E) per replay. Memory: O(E + N).
func Trace(g *core.Graph) (iter.Seq[Event], error) {
	// Fail fast, before any event can be produced.
	if g == nil {
		return nil, ErrNilGraph
	}

	return func(yield func(Event) bool) {
		// 1. Private sorted copy. Stable sort keeps input order on ties; the
		//    downstream presentation order depends on that.
		edges := g.Edges()
		sort.SliceStable(edges, func(i, j int) bool {
			return edges[i].Weight < edges[j].Weight
		})

		// 2. Fresh component tracking per replay.
		ds := unionfind.New(g.NodeCount())

		// 3. Examine every edge, even after the tree is complete.
		for _, e := range edges {
			if !yield(Check{Weight: e.Weight, U: e.U, V: e.V}) {
				return
			}
			if ds.Union(e.U, e.V) {
				if !yield(Accept{Weight: e.Weight, U: e.U, V: e.V}) {
					return
				}
			} else if !yield(Reject{Weight: e.Weight, U: e.U, V: e.V}) {
				return
			}
		}
	}, nil
}
