// Package core defines the immutable graph model shared by every algorithm
// in driptrace: dense integer node indices, weighted undirected edges, and
// the validation that keeps bad input out of the trace generators.
package core

import "errors"

// Sentinel errors raised during Graph construction.
var (
	// ErrInvalidNodeCount indicates a negative node count was supplied to New.
	ErrInvalidNodeCount = errors.New("core: negative node count")

	// ErrInvalidEdge indicates an edge with an out-of-range endpoint, a
	// self-loop, or a weight that is negative, NaN, or infinite. The wrapped
	// message names the offending edge and the reason.
	ErrInvalidEdge = errors.New("core: invalid edge")
)

// Edge is one undirected pipe segment between nodes U and V.
//
// (U,V) and (V,U) denote the same edge; parallel edges between the same pair
// are permitted and remain distinct entries in the edge list. Weight must be
// finite and non-negative: the shortest-path tables reserve +Inf for
// "unreachable", so infinite pipe lengths are rejected up front.
type Edge struct {
	// Weight is the pipe length in meters.
	Weight float64

	// U and V are the endpoint node indices in [0, N).
	U, V int
}
