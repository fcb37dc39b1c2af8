// Package farm ships the built-in irrigation network: a water source and
// four fields on an 800×500 plan, joined by seven candidate pipes.
//
// The package is pure data plus one constructor. Labels, kinds, and
// coordinates exist for presentation; the algorithms see only the node
// count and the edge list that Network produces.
package farm

import (
	"errors"
	"fmt"

	"github.com/driptrace/driptrace/core"
)

// ErrWeightCount indicates that WithWeights supplied a slice whose length
// does not match the pipe list.
var ErrWeightCount = errors.New("farm: weight count mismatch")

// Kind classifies a node of the irrigation network.
type Kind string

const (
	// KindSource marks the water source.
	KindSource Kind = "source"

	// KindField marks an irrigated field.
	KindField Kind = "field"
)

// Node is one point of the network. X and Y are canvas positions at the
// 800×500 design size; scaling to a viewport is the consumer's concern.
type Node struct {
	Label string
	Kind  Kind
	X, Y  float64
}

var defaultNodes = []Node{
	{Label: "Water Source", Kind: KindSource, X: 100, Y: 100},
	{Label: "Field A", Kind: KindField, X: 400, Y: 50},
	{Label: "Field B", Kind: KindField, X: 700, Y: 200},
	{Label: "Field C", Kind: KindField, X: 200, Y: 400},
	{Label: "Field D", Kind: KindField, X: 600, Y: 450},
}

var defaultEdges = []core.Edge{
	{Weight: 10, U: 0, V: 1},
	{Weight: 15, U: 0, V: 3},
	{Weight: 5, U: 1, V: 2},
	{Weight: 25, U: 1, V: 3},
	{Weight: 20, U: 2, V: 4},
	{Weight: 12, U: 3, V: 4},
	{Weight: 30, U: 0, V: 4},
}

// Nodes returns the five nodes of the fixture. The slice is a fresh copy.
func Nodes() []Node {
	return append([]Node(nil), defaultNodes...)
}

// DefaultEdges returns the seven default pipes in their canonical order.
// The slice is a fresh copy.
func DefaultEdges() []core.Edge {
	return append([]core.Edge(nil), defaultEdges...)
}

// Options configures Network.
//
// Weights – positional replacements for the pipe lengths (nil keeps defaults).
// Edges   – a wholesale replacement pipe list (nil keeps the default seven).
type Options struct {
	Weights []float64
	Edges   []core.Edge
}

// Option represents a functional option for configuring Network.
type Option func(*Options)

// WithWeights substitutes user-edited lengths positionally over the pipe
// list. The slice length must match the number of pipes; a mismatch makes
// Network return ErrWeightCount.
func WithWeights(w []float64) Option {
	return func(o *Options) {
		o.Weights = w
	}
}

// WithEdges replaces the pipe list wholesale. Endpoints still refer to the
// five fixture nodes and are validated at Graph construction.
func WithEdges(edges []core.Edge) Option {
	return func(o *Options) {
		o.Edges = edges
	}
}

// Network builds the irrigation Graph from the fixture.
//
// Steps:
//  1. Apply options onto a zero Options value.
//  2. Copy the pipe list (the caller's slices stay untouched).
//  3. Substitute weights positionally when WithWeights was given.
//  4. Hand the result to core.New for validation.
func Network(opts ...Option) (*core.Graph, error) {
	// 1. Apply options.
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Work on a copy.
	edges := DefaultEdges()
	if o.Edges != nil {
		edges = append([]core.Edge(nil), o.Edges...)
	}

	// 3. Positional weight substitution.
	if o.Weights != nil {
		if len(o.Weights) != len(edges) {
			return nil, fmt.Errorf("%w: got %d weights for %d pipes",
				ErrWeightCount, len(o.Weights), len(edges))
		}
		for i := range edges {
			edges[i].Weight = o.Weights[i]
		}
	}

	// 4. Validate and build.
	return core.New(len(defaultNodes), edges)
}
