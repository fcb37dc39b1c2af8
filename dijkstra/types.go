// Package dijkstra defines the event variants, result tables, and sentinel
// errors of the shortest-path trace generator.
package dijkstra

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// Sentinel errors returned by Run before any event is produced.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Run.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidSource indicates a source node index outside [0, N).
	ErrInvalidSource = errors.New("dijkstra: source node out of range")
)

// NoPrev marks the absence of a predecessor in Result.Prev: the source
// itself, and every node the source cannot reach.
const NoPrev = -1

// Event is one Dijkstra decision. Exactly three variants exist (Finalized,
// Relaxed, CompareWorse). Events are immutable values.
type Event interface {
	pathEvent()
}

// Finalized marks a node popped from the frontier with its shortest distance
// confirmed. Unreachable nodes never finalize.
type Finalized struct {
	Node int
}

// Relaxed records an edge that strictly improved the best known distance to
// To: Distance is the new best, reached through From.
type Relaxed struct {
	From, To int
	Distance float64
}

// CompareWorse records an examined edge whose candidate distance did not
// improve on the best known distance to To. Ties land here too: equal
// candidates do not relax.
type CompareWorse struct {
	From, To int
	Distance float64
}

func (Finalized) pathEvent()    {}
func (Relaxed) pathEvent()      {}
func (CompareWorse) pathEvent() {}

func (e Finalized) String() string { return fmt.Sprintf("finalize %d", e.Node) }
func (e Relaxed) String() string   { return fmt.Sprintf("relax %d->%d d=%g", e.From, e.To, e.Distance) }
func (e CompareWorse) String() string {
	return fmt.Sprintf("worse %d->%d d=%g", e.From, e.To, e.Distance)
}

// Result carries everything one Run produces. The caller owns it; the next
// Run allocates fresh tables and never touches an earlier Result.
type Result struct {
	// Source is the node the run started from.
	Source int

	// Dist maps node index to its shortest distance from Source.
	// Unreachable nodes hold math.Inf(1).
	Dist []float64

	// Prev maps node index to its predecessor on one shortest path from
	// Source, or NoPrev for the source itself and unreachable nodes.
	Prev []int

	// Events is the ordered decision trace of the run.
	Events []Event
}

// Trace exposes the recorded events as a pull-based sequence, matching the
// replayable shape of the Kruskal generator.
func (r *Result) Trace() iter.Seq[Event] {
	return slices.Values(r.Events)
}
