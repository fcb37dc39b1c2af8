package dijkstra

// Hop is one edge of a reconstructed route, traversed From → To.
type Hop struct {
	From, To int
}

// ReconstructPath walks the predecessor table backward from target and
// returns the route from source to target as hops, oldest-first.
//
// The walk prepends each visited node and stops at the source or at a NoPrev
// link. Three cases return an empty route:
//
//   - source == target: a route of zero edges, not a failure;
//   - target unreachable: the walk hits NoPrev before the source;
//   - source or target outside prev's range.
//
// Empty is the same shape in the first two cases on purpose: callers
// disambiguate with the distance table (0 versus +Inf), never with the route
// alone. The walk is bounded by len(prev) hops, so a malformed table cannot
// loop.
func ReconstructPath(prev []int, source, target int) []Hop {
	if source < 0 || source >= len(prev) || target < 0 || target >= len(prev) {
		return nil
	}
	if source == target {
		return nil
	}

	// Walk target → source, newest node first.
	nodes := []int{target}
	cur := target
	for steps := 0; cur != source && steps < len(prev); steps++ {
		p := prev[cur]
		if p == NoPrev {
			break
		}
		nodes = append(nodes, p)
		cur = p
	}
	if cur != source {
		// The walk never reached the source: target is unreachable.
		return nil
	}

	// Emit hops oldest-first.
	hops := make([]Hop, 0, len(nodes)-1)
	for i := len(nodes) - 1; i > 0; i-- {
		hops = append(hops, Hop{From: nodes[i], To: nodes[i-1]})
	}

	return hops
}

// PathTo reconstructs the route from the run's source to target using the
// run's own predecessor table.
func (r *Result) PathTo(target int) []Hop {
	return ReconstructPath(r.Prev, r.Source, target)
}
