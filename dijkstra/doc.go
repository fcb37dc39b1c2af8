// Package dijkstra computes single-source shortest paths over a weighted
// undirected graph and records every relaxation decision as an ordered,
// deterministic event trace.
//
// Overview:
//
//   - Run returns the complete distance table, the predecessor table, and
//     the trace of every decision: each node finalized in order of confirmed
//     distance, each edge examination reported as a strict improvement
//     (Relaxed) or not (CompareWorse). The trace is data; presenting it, at
//     any pace, is entirely the consumer's business.
//   - The frontier is a min-heap under lazy decrease-key: improvements push
//     duplicate entries, and a popped entry whose distance exceeds the
//     node's current best is stale and skipped without emitting anything.
//   - Ties do not relax. A candidate equal to the best known distance is a
//     CompareWorse event, so the first path found at a given distance keeps
//     its predecessor.
//   - Unreachable nodes are a valid outcome, not an error: they keep +Inf
//     distance and NoPrev, and never produce a Finalized event.
//
// Determinism:
//
//   - The heap orders by (distance, node index), node index breaking ties.
//     Within one run every live frontier entry is distinct under that order,
//     so the pop sequence, and with it the whole event trace, is identical
//     across runs on the same graph and source.
//
// Path reconstruction:
//
//   - ReconstructPath (and the Result.PathTo convenience) walks the
//     predecessor table backward into an oldest-first hop list. An empty
//     route means either source == target or an unreachable target; callers
//     disambiguate with the distance table, never with the route shape.
//
// Error handling:
//
//   - ErrNilGraph:      Run was handed a nil graph.
//   - ErrInvalidSource: the source index lies outside [0, N).
//     Both fail before any event is produced. Edge weights were already
//     validated at graph construction, so a run in progress cannot fail.
//
// Complexity:
//
//   - Time:  O((V + E) log V): each edge may push one frontier entry, each
//     push/pop costs O(log V).
//   - Space: O(V + E) for the tables, adjacency lists, and frontier.
//
// Thread safety:
//
//   - The graph is read-only here and safe to share. Each Run owns its
//     tables and frontier, so sequential re-runs never see residual state;
//     concurrent Runs on the same graph are safe as well.
//
// See also:
//
//   - kruskal.Trace – the spanning-tree counterpart of this trace style.
//   - report.NewRoute – distance, hops, and cost folded for presentation.
package dijkstra
