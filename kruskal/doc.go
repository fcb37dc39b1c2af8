// Package kruskal produces the decision trace of Kruskal's minimum spanning
// tree algorithm over a weighted undirected graph.
//
// Overview:
//
//   - Trace does not return a finished tree; it returns the ordered sequence
//     of decisions the algorithm makes while building one: every edge is
//     Checked in sorted order, then Accepted into the tree or Rejected as a
//     cycle. Consumers replay those decisions at whatever pace they choose;
//     the generator itself never sleeps, draws, or touches I/O.
//   - Sorting is stable by weight: edges of equal weight keep the order they
//     had in the graph. That ordering is a contract, not an accident, because
//     anything presenting the trace shows edges in exactly this order.
//   - The trace covers the whole sorted edge list. There is no early exit
//     after N-1 accepts; trailing Check/Reject pairs for cycle edges are part
//     of the observable behavior.
//   - Disconnected graphs are fine: a graph with k components yields N-k
//     Accept events and no error.
//
// Laziness and replay:
//
//   - Trace returns an iter.Seq[Event]. Nothing runs until the consumer
//     ranges over it, and each new range replays from scratch on a private
//     sorted copy and a private disjoint-set. Breaking out of a range simply
//     abandons that replay; no goroutines or timers exist to leak.
//
// Totals:
//
//   - The generator never accumulates the tree weight. Summing the Accept
//     weights is a consumer fold (see the report package).
//
// Error handling:
//
//   - ErrNilGraph: Trace was handed a nil graph. Returned before any event.
//   - Everything else is validated when the core.Graph is constructed, so a
//     non-nil graph cannot fail mid-trace.
//
// Complexity:
//
//   - Time:  O(E log E) per replay for the sort, plus near-constant-time
//     disjoint-set work per edge.
//   - Space: O(E + N) per replay.
//
// Thread safety:
//
//   - The graph is read-only here and safe to share. Each replay owns its
//     mutable state, so concurrent ranges over the same sequence are safe.
//
// See also:
//
//   - unionfind.DisjointSet – the component tracking driving Accept/Reject.
//   - report.Summarize – the fold that turns a trace into totals.
package kruskal
