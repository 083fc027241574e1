package core

import (
	"fmt"
	"sort"
)

// Graph is the in-memory adjacency-list model. It owns every node, its
// ordered outgoing edge list, and the optional coordinate of each node.
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	// adj maps node label → outgoing edges in insertion order.
	adj map[string][]Edge

	// coords maps node label → optional 2-D position.
	coords map[string]Coord
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adj:    make(map[string][]Edge),
		coords: make(map[string]Coord),
	}
}

// AddNode ensures id exists with an (initially empty) outgoing edge list.
// Calling it again for a known node is a no-op, except that a coordinate
// passed via WithNodeCoord always sets or overwrites the stored position.
// Complexity: O(1)
func (g *Graph) AddNode(id string, opts ...NodeOption) {
	var cfg nodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, exists := g.adj[id]; !exists {
		g.adj[id] = nil
	}
	if cfg.hasCoord {
		g.coords[id] = cfg.coord
	}
}

// AddEdge appends a directed edge u→v with the given base distance and, by
// default, the mirror edge v→u with the same distance and traffic factor.
// Unknown endpoints are created implicitly. Use WithTrafficFactor to set the
// congestion multiplier and WithDirected to suppress the mirror.
//
// Validation happens before any mutation: on ErrInvalidEdgeWeight the graph
// is exactly as it was, with no nodes or edges added.
//
// Complexity: O(1) amortized per insert.
func (g *Graph) AddEdge(u, v string, distance float64, opts ...EdgeOption) error {
	cfg := edgeConfig{trafficFactor: 1.0}
	for _, opt := range opts {
		opt(&cfg)
	}

	if distance < 0 || cfg.trafficFactor <= 0 {
		return fmt.Errorf("%w: %s→%s distance=%g factor=%g",
			ErrInvalidEdgeWeight, u, v, distance, cfg.trafficFactor)
	}

	g.AddNode(u)
	g.AddNode(v)

	g.adj[u] = append(g.adj[u], Edge{From: u, To: v, Distance: distance, TrafficFactor: cfg.trafficFactor})
	if !cfg.directed {
		g.adj[v] = append(g.adj[v], Edge{From: v, To: u, Distance: distance, TrafficFactor: cfg.trafficFactor})
	}

	return nil
}

// HasNode reports whether id is a known node.
// Complexity: O(1)
func (g *Graph) HasNode(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// Neighbors returns the outgoing edges of id in insertion order. An unknown
// id yields an empty slice, not an error: for iteration purposes a missing
// node simply has no neighbors. The returned slice is a copy and may be
// retained by the caller.
// Complexity: O(d) for out-degree d.
func (g *Graph) Neighbors(id string) []Edge {
	edges := g.adj[id]
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out
}

// CoordOf returns the stored coordinate of id and whether one exists.
// Complexity: O(1)
func (g *Graph) CoordOf(id string) (Coord, bool) {
	c, ok := g.coords[id]
	return c, ok
}

// Nodes returns every known node label in lexicographic order, so iteration
// is stable across calls within a process run.
// Complexity: O(V log V)
func (g *Graph) Nodes() []string {
	out := make([]string, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges enumerates every stored directed adjacency entry, grouped by source
// node in lexicographic order and, within a source, in insertion order.
// A bidirectional insert contributes two entries.
// Complexity: O(V log V + E)
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for _, id := range g.Nodes() {
		out = append(out, g.adj[id]...)
	}

	return out
}

// NodeCount returns the number of known nodes.
// Complexity: O(1)
func (g *Graph) NodeCount() int {
	return len(g.adj)
}

// EdgeCount returns the number of stored directed edges (a bidirectional
// insert counts twice).
// Complexity: O(V)
func (g *Graph) EdgeCount() int {
	n := 0
	for _, edges := range g.adj {
		n += len(edges)
	}

	return n
}
