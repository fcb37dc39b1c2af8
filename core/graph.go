package core

import (
	"fmt"
	"math"
)

// Graph is an immutable weighted undirected graph over nodes 0..N-1.
//
// It owns a private copy of its edge list, in the order the edges were
// supplied; that order is observable downstream (stable sorting in Kruskal
// and adjacency construction in Dijkstra both preserve it). Once New returns,
// nothing can mutate the graph, so any number of algorithm runs may share it.
type Graph struct {
	n     int
	edges []Edge
}

// New validates n and edges and constructs a Graph.
//
// Validation fails fast, before any algorithm can run:
//   - n < 0                          → ErrInvalidNodeCount
//   - endpoint outside [0, n)        → ErrInvalidEdge
//   - self-loop (U == V)             → ErrInvalidEdge
//   - weight negative, NaN, or ±Inf  → ErrInvalidEdge
//
// The edges slice is copied; callers keep ownership of their own slice.
// Complexity: O(E). A graph with zero nodes or zero edges is valid.
func New(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNodeCount, n)
	}

	owned := make([]Edge, len(edges))
	copy(owned, edges)
	for i, e := range owned {
		if err := validateEdge(n, i, e); err != nil {
			return nil, err
		}
	}

	return &Graph{n: n, edges: owned}, nil
}

// validateEdge checks one edge against the node range and weight invariants.
func validateEdge(n, i int, e Edge) error {
	if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
		return fmt.Errorf("%w: edge %d endpoints %d-%d outside [0,%d)", ErrInvalidEdge, i, e.U, e.V, n)
	}
	if e.U == e.V {
		return fmt.Errorf("%w: edge %d is a self-loop on node %d", ErrInvalidEdge, i, e.U)
	}
	if e.Weight < 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
		return fmt.Errorf("%w: edge %d weight %v is not a finite non-negative number", ErrInvalidEdge, i, e.Weight)
	}

	return nil
}

// NodeCount returns N, the number of nodes.
func (g *Graph) NodeCount() int { return g.n }

// EdgeCount returns the number of edges, parallel edges counted separately.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of the edge list in construction order. Mutating the
// returned slice does not affect the graph.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
