package kruskal_test

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driptrace/driptrace/core"
	"github.com/driptrace/driptrace/kruskal"
	"github.com/driptrace/driptrace/unionfind"
)

// buildTriangle constructs a weighted triangle:
// 0-1 (weight 1), 1-2 (weight 2), 0-2 (weight 4).
// Its MST keeps 0-1 and 1-2 with total weight 3.
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.New(3, []core.Edge{
		{Weight: 1, U: 0, V: 1},
		{Weight: 2, U: 1, V: 2},
		{Weight: 4, U: 0, V: 2},
	})
	require.NoError(t, err)

	return g
}

// farmEdges is the default irrigation network: five nodes, seven pipes.
func farmEdges() []core.Edge {
	return []core.Edge{
		{Weight: 10, U: 0, V: 1},
		{Weight: 15, U: 0, V: 3},
		{Weight: 5, U: 1, V: 2},
		{Weight: 25, U: 1, V: 3},
		{Weight: 20, U: 2, V: 4},
		{Weight: 12, U: 3, V: 4},
		{Weight: 30, U: 0, V: 4},
	}
}

// buildMediumGraph creates a connected weighted graph with n nodes and
// edgesCount total edges: a chain through all nodes guarantees connectivity,
// then random extra edges are added. Deterministic via a fixed seed.
func buildMediumGraph(n, edgesCount int) *core.Graph {
	r := rand.New(rand.NewSource(42))

	edges := make([]core.Edge, 0, edgesCount)
	for i := 1; i < n; i++ {
		w := 1.0 + r.Float64() + float64(r.Intn(10))
		edges = append(edges, core.Edge{Weight: w, U: i - 1, V: i})
	}
	for len(edges) < edgesCount {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue // no self-loops
		}
		w := 1.0 + r.Float64() + float64(r.Intn(100))
		edges = append(edges, core.Edge{Weight: w, U: u, V: v})
	}

	// Edge data above is valid by construction.
	g, _ := core.New(n, edges)

	return g
}

// collect drains a trace into a slice.
func collect(t *testing.T, g *core.Graph) []kruskal.Event {
	t.Helper()
	seq, err := kruskal.Trace(g)
	require.NoError(t, err)

	return slices.Collect(seq)
}

// accepts filters the Accept events out of a trace and sums their weights.
func accepts(events []kruskal.Event) (edges []kruskal.Accept, total float64) {
	for _, ev := range events {
		if a, ok := ev.(kruskal.Accept); ok {
			edges = append(edges, a)
			total += a.Weight
		}
	}

	return edges, total
}

// primTotal computes the MST weight independently with Prim's algorithm,
// growing the tree from node 0. Assumes g is connected.
func primTotal(g *core.Graph) float64 {
	n := g.NodeCount()
	if n == 0 {
		return 0
	}

	type half struct {
		w  float64
		to int
	}
	adj := make([][]half, n)
	for _, e := range g.Edges() {
		adj[e.U] = append(adj[e.U], half{e.Weight, e.V})
		adj[e.V] = append(adj[e.V], half{e.Weight, e.U})
	}

	best := make([]float64, n)
	inTree := make([]bool, n)
	for i := range best {
		best[i] = math.MaxFloat64
	}
	best[0] = 0

	var total float64
	for range best {
		u := -1
		for v, b := range best {
			if !inTree[v] && (u < 0 || b < best[u]) {
				u = v
			}
		}
		if u < 0 || best[u] == math.MaxFloat64 {
			break
		}
		inTree[u] = true
		total += best[u]
		for _, h := range adj[u] {
			if !inTree[h.to] && h.w < best[h.to] {
				best[h.to] = h.w
			}
		}
	}

	return total
}

func TestTrace_NilGraph(t *testing.T) {
	seq, err := kruskal.Trace(nil)
	assert.ErrorIs(t, err, kruskal.ErrNilGraph)
	assert.Nil(t, seq)
}

func TestTrace_Triangle(t *testing.T) {
	g := buildTriangle(t)

	got := collect(t, g)
	want := []kruskal.Event{
		kruskal.Check{Weight: 1, U: 0, V: 1},
		kruskal.Accept{Weight: 1, U: 0, V: 1},
		kruskal.Check{Weight: 2, U: 1, V: 2},
		kruskal.Accept{Weight: 2, U: 1, V: 2},
		kruskal.Check{Weight: 4, U: 0, V: 2},
		kruskal.Reject{Weight: 4, U: 0, V: 2},
	}
	assert.Equal(t, want, got)
}

// TestTrace_FarmNetwork pins the full decision trace for the default farm
// network: four accepts totalling 42, then trailing rejects for the three
// cycle pipes.
func TestTrace_FarmNetwork(t *testing.T) {
	g, err := core.New(5, farmEdges())
	require.NoError(t, err)

	got := collect(t, g)
	want := []kruskal.Event{
		kruskal.Check{Weight: 5, U: 1, V: 2},
		kruskal.Accept{Weight: 5, U: 1, V: 2},
		kruskal.Check{Weight: 10, U: 0, V: 1},
		kruskal.Accept{Weight: 10, U: 0, V: 1},
		kruskal.Check{Weight: 12, U: 3, V: 4},
		kruskal.Accept{Weight: 12, U: 3, V: 4},
		kruskal.Check{Weight: 15, U: 0, V: 3},
		kruskal.Accept{Weight: 15, U: 0, V: 3},
		kruskal.Check{Weight: 20, U: 2, V: 4},
		kruskal.Reject{Weight: 20, U: 2, V: 4},
		kruskal.Check{Weight: 25, U: 1, V: 3},
		kruskal.Reject{Weight: 25, U: 1, V: 3},
		kruskal.Check{Weight: 30, U: 0, V: 4},
		kruskal.Reject{Weight: 30, U: 0, V: 4},
	}
	assert.Equal(t, want, got)

	edges, total := accepts(got)
	assert.Equal(t, 42.0, total)
	assert.Len(t, edges, 4)
}

// TestTrace_StableTies verifies the tie contract: equal weights keep the
// graph's edge order in the trace.
func TestTrace_StableTies(t *testing.T) {
	g, err := core.New(3, []core.Edge{
		{Weight: 1, U: 0, V: 1},
		{Weight: 1, U: 1, V: 2},
		{Weight: 1, U: 0, V: 2},
	})
	require.NoError(t, err)

	got := collect(t, g)
	want := []kruskal.Event{
		kruskal.Check{Weight: 1, U: 0, V: 1},
		kruskal.Accept{Weight: 1, U: 0, V: 1},
		kruskal.Check{Weight: 1, U: 1, V: 2},
		kruskal.Accept{Weight: 1, U: 1, V: 2},
		kruskal.Check{Weight: 1, U: 0, V: 2},
		kruskal.Reject{Weight: 1, U: 0, V: 2},
	}
	assert.Equal(t, want, got)
}

// TestTrace_NoEarlyStop: the tree is complete after the first accept, yet the
// remaining edges must still be checked and rejected.
func TestTrace_NoEarlyStop(t *testing.T) {
	g, err := core.New(2, []core.Edge{
		{Weight: 1, U: 0, V: 1},
		{Weight: 2, U: 0, V: 1},
		{Weight: 3, U: 0, V: 1},
	})
	require.NoError(t, err)

	got := collect(t, g)
	require.Len(t, got, 6, "every edge yields a Check plus its decision")
	assert.Equal(t, kruskal.Reject{Weight: 2, U: 0, V: 1}, got[3])
	assert.Equal(t, kruskal.Reject{Weight: 3, U: 0, V: 1}, got[5])
}

// TestTrace_ParallelEdges: the lighter of two parallel pipes wins.
func TestTrace_ParallelEdges(t *testing.T) {
	g, err := core.New(2, []core.Edge{
		{Weight: 5, U: 0, V: 1},
		{Weight: 1, U: 0, V: 1},
	})
	require.NoError(t, err)

	edges, total := accepts(collect(t, g))
	require.Len(t, edges, 1)
	assert.Equal(t, 1.0, total)
}

// TestTrace_Restartable ranges the same sequence twice and expects identical
// replays; a broken-off replay must not disturb the next one.
func TestTrace_Restartable(t *testing.T) {
	g, err := core.New(5, farmEdges())
	require.NoError(t, err)

	seq, err := kruskal.Trace(g)
	require.NoError(t, err)

	first := slices.Collect(seq)

	// Abandon a replay midway; nothing persists between ranges.
	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}

	second := slices.Collect(seq)
	assert.Equal(t, first, second)
}

// TestTrace_Disconnected: k components accept exactly N-k edges, no error.
func TestTrace_Disconnected(t *testing.T) {
	edges := []core.Edge{
		{Weight: 1, U: 0, V: 1},
		{Weight: 2, U: 2, V: 3},
		{Weight: 5, U: 1, V: 0}, // parallel, closes a cycle
	}
	g, err := core.New(5, edges) // node 4 is isolated: 3 components
	require.NoError(t, err)

	acc, _ := accepts(collect(t, g))
	assert.Len(t, acc, 2, "N-k = 5-3 accepted edges")

	// Cross-check the component count with a plain disjoint-set fold.
	ds := unionfind.New(g.NodeCount())
	for _, e := range g.Edges() {
		ds.Union(e.U, e.V)
	}
	assert.Equal(t, g.NodeCount()-ds.Count(), len(acc))
}

func TestTrace_EmptyAndSingleNode(t *testing.T) {
	empty, err := core.New(0, nil)
	require.NoError(t, err)
	assert.Empty(t, collect(t, empty))

	single, err := core.New(1, nil)
	require.NoError(t, err)
	assert.Empty(t, collect(t, single))
}

// TestComparison_MediumGraph cross-checks the accepted total against an
// independent Prim computation on a random connected graph.
func TestComparison_MediumGraph(t *testing.T) {
	g := buildMediumGraph(10, 20)

	acc, total := accepts(collect(t, g))
	assert.Len(t, acc, g.NodeCount()-1, "connected graph keeps N-1 edges")

	const tolerance = 1e-10
	assert.InDelta(t, primTotal(g), total, tolerance)
}

// TestComparison_LargerGraph repeats the cross-check on a denser instance.
func TestComparison_LargerGraph(t *testing.T) {
	g := buildMediumGraph(50, 200)

	acc, total := accepts(collect(t, g))
	assert.Len(t, acc, g.NodeCount()-1)

	const tolerance = 1e-9
	assert.InDelta(t, primTotal(g), total, tolerance)
}

func TestEventStrings(t *testing.T) {
	assert.Equal(t, "check 1-2 w=5", fmt.Sprint(kruskal.Check{Weight: 5, U: 1, V: 2}))
	assert.Equal(t, "accept 0-1 w=10", fmt.Sprint(kruskal.Accept{Weight: 10, U: 0, V: 1}))
	assert.Equal(t, "reject 0-4 w=30", fmt.Sprint(kruskal.Reject{Weight: 30, U: 0, V: 4}))
}
