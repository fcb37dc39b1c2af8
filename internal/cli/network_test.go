package cli

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/driptrace/driptrace/core"
	"github.com/driptrace/driptrace/farm"
)

func newTestCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func TestLoadNetwork_DefaultFixture(t *testing.T) {
	g, nodes, err := newTestCLI().loadNetwork("")
	if err != nil {
		t.Fatal(err)
	}

	if g.NodeCount() != 5 || g.EdgeCount() != 7 {
		t.Errorf("fixture = %d nodes / %d pipes; want 5 / 7", g.NodeCount(), g.EdgeCount())
	}
	if len(nodes) != 5 || nodes[0].Label != "Water Source" {
		t.Errorf("fixture metadata = %+v; want the five farm nodes", nodes)
	}
}

func TestLoadNetwork_TOMLWithNodes(t *testing.T) {
	path := writeNetwork(t, `
[[node]]
label = "Well"
kind = "source"
x = 10.0
y = 20.0

[[node]]
label = "Orchard"
kind = "field"
x = 30.0
y = 40.0

[[edge]]
weight = 4.5
u = 0
v = 1
`)

	g, nodes, err := newTestCLI().loadNetwork(path)
	if err != nil {
		t.Fatal(err)
	}

	if g.NodeCount() != 2 {
		t.Errorf("NodeCount = %d; node entries must fix the count", g.NodeCount())
	}
	if g.Edges()[0].Weight != 4.5 {
		t.Errorf("edge weight = %g; want 4.5", g.Edges()[0].Weight)
	}
	if len(nodes) != 2 || nodes[0].Kind != farm.KindSource || nodes[1].Label != "Orchard" {
		t.Errorf("metadata = %+v; want Well/Orchard", nodes)
	}
}

func TestLoadNetwork_TOMLWithoutNodes(t *testing.T) {
	path := writeNetwork(t, islandsTOML)

	g, nodes, err := newTestCLI().loadNetwork(path)
	if err != nil {
		t.Fatal(err)
	}

	// Highest endpoint is 3, so four nodes and no metadata.
	if g.NodeCount() != 4 {
		t.Errorf("NodeCount = %d; want 1 + max endpoint = 4", g.NodeCount())
	}
	if nodes != nil {
		t.Errorf("metadata = %+v; want nil without [[node]] entries", nodes)
	}
}

func TestLoadNetwork_InvalidEdge(t *testing.T) {
	path := writeNetwork(t, `
[[edge]]
weight = -3.0
u = 0
v = 1
`)

	_, _, err := newTestCLI().loadNetwork(path)
	if !errors.Is(err, core.ErrInvalidEdge) {
		t.Fatalf("expected core validation error to pass through, got %v", err)
	}
}

func TestLoadNetwork_MissingFile(t *testing.T) {
	_, _, err := newTestCLI().loadNetwork("does/not/exist.toml")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist in the chain, got %v", err)
	}
}

func TestLoadNetwork_BadTOML(t *testing.T) {
	path := writeNetwork(t, "[[edge]\nweight = ")

	_, _, err := newTestCLI().loadNetwork(path)
	if err == nil {
		t.Fatal("expected a parse error for malformed TOML")
	}
}

func TestLabel(t *testing.T) {
	nodes := farm.Nodes()

	if got := label(nodes, 0); got != "Water Source" {
		t.Errorf("label(nodes, 0) = %q", got)
	}
	if got := label(nil, 3); got != "node 3" {
		t.Errorf("label(nil, 3) = %q", got)
	}
	if got := label(nodes, 99); got != "node 99" {
		t.Errorf("label(nodes, 99) = %q", got)
	}
}
