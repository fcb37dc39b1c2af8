// Package report folds decision traces into presentation-ready summaries.
//
// The algorithm packages deliberately never accumulate totals or money;
// every number here is derived by a consumer-side pass over events and
// result tables.
package report

import (
	"iter"
	"math"

	"github.com/driptrace/driptrace/dijkstra"
	"github.com/driptrace/driptrace/kruskal"
)

// DefaultRate is the default pipe cost per meter of length.
const DefaultRate = 100.0

// TreeSummary is the fold of one Kruskal trace.
type TreeSummary struct {
	// Accepted lists the pipes kept in the spanning forest, in trace order.
	Accepted []kruskal.Accept

	// Total is the summed weight of the accepted pipes.
	Total float64

	// Checked counts every candidate pipe examined.
	Checked int

	// Rejected counts the pipes that would have closed a cycle.
	Rejected int
}

// Summarize drains a Kruskal trace and accumulates its outcome.
func Summarize(events iter.Seq[kruskal.Event]) TreeSummary {
	var s TreeSummary
	for ev := range events {
		switch e := ev.(type) {
		case kruskal.Check:
			s.Checked++
		case kruskal.Accept:
			s.Accepted = append(s.Accepted, e)
			s.Total += e.Weight
		case kruskal.Reject:
			s.Rejected++
		}
	}

	return s
}

// Route is one source-to-target answer extracted from a Dijkstra result.
type Route struct {
	Source, Target int

	// Hops is the reconstructed path, oldest hop first. Empty both when
	// Target equals Source and when Target is unreachable.
	Hops []dijkstra.Hop

	// Distance is the shortest distance to Target, +Inf when unreachable.
	Distance float64
}

// NewRoute extracts the route to target from a finished run. A target
// outside the result's node range counts as unreachable.
func NewRoute(r *dijkstra.Result, target int) Route {
	route := Route{Source: r.Source, Target: target, Distance: math.Inf(1)}
	if target >= 0 && target < len(r.Dist) {
		route.Distance = r.Dist[target]
		route.Hops = r.PathTo(target)
	}

	return route
}

// Reachable reports whether water can flow from Source to Target.
func (r Route) Reachable() bool {
	return !math.IsInf(r.Distance, 1)
}

// Cost prices the route at rate per meter. Unreachable routes cost +Inf
// regardless of rate.
func (r Route) Cost(rate float64) float64 {
	if !r.Reachable() {
		return math.Inf(1)
	}

	return r.Distance * rate
}
