package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/driptrace/driptrace/core"
	"github.com/driptrace/driptrace/farm"
)

// networkFile mirrors the TOML network format: [[node]] entries carrying
// label/kind/x/y and [[edge]] entries carrying weight/u/v.
type networkFile struct {
	Nodes []nodeEntry `toml:"node"`
	Edges []edgeEntry `toml:"edge"`
}

type nodeEntry struct {
	Label string  `toml:"label"`
	Kind  string  `toml:"kind"`
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
}

type edgeEntry struct {
	Weight float64 `toml:"weight"`
	U      int     `toml:"u"`
	V      int     `toml:"v"`
}

// loadNetwork returns the graph to run on plus node metadata for display.
// An empty path selects the built-in farm fixture. Metadata is nil when a
// TOML file carries no [[node]] entries.
func (c *CLI) loadNetwork(path string) (*core.Graph, []farm.Node, error) {
	if path == "" {
		c.Logger.Debug("using built-in farm network")
		g, err := farm.Network()
		if err != nil {
			return nil, nil, err
		}

		return g, farm.Nodes(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load network %s: %w", path, err)
	}
	var file networkFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parse network %s: %w", path, err)
	}

	edges := make([]core.Edge, len(file.Edges))
	maxEndpoint := -1
	for i, e := range file.Edges {
		edges[i] = core.Edge{Weight: e.Weight, U: e.U, V: e.V}
		if e.U > maxEndpoint {
			maxEndpoint = e.U
		}
		if e.V > maxEndpoint {
			maxEndpoint = e.V
		}
	}

	// Node entries fix the node count; without them the edges do.
	n := len(file.Nodes)
	var nodes []farm.Node
	if n > 0 {
		nodes = make([]farm.Node, n)
		for i, entry := range file.Nodes {
			nodes[i] = farm.Node{Label: entry.Label, Kind: farm.Kind(entry.Kind), X: entry.X, Y: entry.Y}
		}
	} else {
		n = maxEndpoint + 1
	}

	// Graph validation errors pass through untouched so the offending
	// edge's position and values stay visible.
	g, err := core.New(n, edges)
	if err != nil {
		return nil, nil, err
	}
	c.Logger.Debugf("loaded %s: %d nodes, %d pipes", path, g.NodeCount(), g.EdgeCount())

	return g, nodes, nil
}

// label returns the display name for a node: its metadata label when known,
// the bare index otherwise.
func label(nodes []farm.Node, i int) string {
	if i >= 0 && i < len(nodes) && nodes[i].Label != "" {
		return nodes[i].Label
	}

	return fmt.Sprintf("node %d", i)
}
