// Package driptrace computes classic graph algorithms over small irrigation
// networks and records every intermediate decision as an ordered, replayable
// event trace.
//
// 🚰 What is driptrace?
//
//	A small, deterministic trace engine for weighted undirected graphs:
//		• Core model:    immutable node/edge graphs with strict validation
//		• Disjoint-set:  path compression + union by rank, live component count
//		• Kruskal:       minimum spanning tree as a lazy Check/Accept/Reject trace
//		• Dijkstra:      shortest paths with Finalized/Relaxed/CompareWorse events
//		• Routes:        predecessor-walk path reconstruction
//		• Farm fixture:  the five-node irrigation network with its default pipes
//		• Reports:       spanning-tree totals and per-meter route costs
//
// ✨ Why traces instead of plain results?
//
//   - Every decision the algorithms make is observable, in order
//   - Replaying a trace on the same input is byte-for-byte identical
//   - Consumers pace the replay themselves; the engine never sleeps or draws
//
// The engine packages (core, unionfind, kruskal, dijkstra) do no I/O and hold
// no shared state between runs. Presentation lives at the edges: farm supplies
// the concrete network, report folds traces into totals and costs, and
// cmd/driptrace is a terminal front end over all of it.
//
// Quick ASCII sketch of the default farm network:
//
//	    [0]──10──[1]──5──[2]
//	     │  ╲      ╲       │
//	     15  30     25     20
//	     │     ╲      ╲    │
//	    [3]──────12──────[4]
//
// Node 0 is the water source; 1–4 are fields. Kruskal keeps pipes
// {1-2, 0-1, 3-4, 0-3} for a total length of 42; the cheapest route from the
// source to field 4 runs 0→3→4 at distance 27.
//
//	go get github.com/driptrace/driptrace
package driptrace
