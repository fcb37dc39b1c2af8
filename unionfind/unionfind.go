// Package unionfind implements a disjoint-set (union-find) structure over
// dense integer elements, with full path compression and union by rank.
//
// Kruskal's trace generator drives one instance per replay, with Union
// doubling as the cycle test: a false return means both endpoints already
// share a component, so the edge under consideration would close a cycle.
//
// Complexity: a sequence of m Find/Union operations over n elements runs in
// O(m α(n)), α being the inverse Ackermann function (effectively constant).
//
// Indices are the caller's responsibility: they must lie in [0, Len()).
// The graph model validates endpoints once at construction, so no bounds
// errors are defined here; out-of-range access panics like any slice access.
package unionfind

// DisjointSet partitions the elements 0..n-1 into mergeable components.
// The zero value is unusable; construct with New.
type DisjointSet struct {
	parent []int
	rank   []int
	count  int
}

// New returns a DisjointSet of n singleton components.
func New(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Find returns the representative of i's component.
//
// As a side effect it compresses the walked path: every node visited on the
// way up is re-pointed directly at the root, so future queries on those nodes
// are O(1). Find is idempotent and always terminates.
func (d *DisjointSet) Find(i int) int {
	// First pass: locate the root.
	root := i
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// Second pass: re-point the whole walked path at the root.
	for i != root {
		d.parent[i], i = root, d.parent[i]
	}

	return root
}

// Union merges the components containing i and j.
//
// It reports false when both already share a representative: the merge is a
// no-op and, for Kruskal, the edge i-j would close a cycle. Otherwise the
// lower-rank root is attached under the higher-rank root (on equal ranks j's
// root goes under i's root, whose rank then grows by one), the component
// count drops by one, and Union reports true.
func (d *DisjointSet) Union(i, j int) bool {
	ri, rj := d.Find(i), d.Find(j)
	if ri == rj {
		return false
	}

	switch {
	case d.rank[ri] < d.rank[rj]:
		d.parent[ri] = rj
	case d.rank[ri] > d.rank[rj]:
		d.parent[rj] = ri
	default:
		d.parent[rj] = ri
		d.rank[ri]++
	}
	d.count--

	return true
}

// Count returns the number of live components.
func (d *DisjointSet) Count() int { return d.count }

// Len returns the number of elements the set was built over.
func (d *DisjointSet) Len() int { return len(d.parent) }
