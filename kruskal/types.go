// Package kruskal defines the event variants and sentinel errors of the
// minimum-spanning-tree trace generator.
package kruskal

import (
	"errors"
	"fmt"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to Trace.
var ErrNilGraph = errors.New("kruskal: graph is nil")

// Event is one Kruskal decision. Exactly three variants exist (Check,
// Accept, Reject), each carrying the edge it concerns. Events are
// immutable values; consumers own whatever they pull from the trace.
type Event interface {
	mstEvent()
}

// Check records an edge drawn from the sorted order for consideration.
// Every edge produces a Check, followed by its Accept or Reject.
type Check struct {
	Weight float64
	U, V   int
}

// Accept records an edge that joined two components: it enters the tree.
type Accept struct {
	Weight float64
	U, V   int
}

// Reject records an edge whose endpoints already shared a component, so
// adding it would close a cycle.
type Reject struct {
	Weight float64
	U, V   int
}

func (Check) mstEvent()  {}
func (Accept) mstEvent() {}
func (Reject) mstEvent() {}

func (e Check) String() string  { return fmt.Sprintf("check %d-%d w=%g", e.U, e.V, e.Weight) }
func (e Accept) String() string { return fmt.Sprintf("accept %d-%d w=%g", e.U, e.V, e.Weight) }
func (e Reject) String() string { return fmt.Sprintf("reject %d-%d w=%g", e.U, e.V, e.Weight) }
