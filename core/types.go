// Package core declares Graph, Edge, Coord, the sentinel errors and the
// functional options used when inserting nodes and edges.
package core

import "errors"

// ErrInvalidEdgeWeight is returned by AddEdge when the base distance is
// negative or the traffic factor is not strictly positive. The graph is left
// untouched: neither direction of a bidirectional pair is inserted.
var ErrInvalidEdgeWeight = errors.New("core: edge requires distance >= 0 and traffic factor > 0")

// Coord is a 2-D position attached to a node. Units are whatever the caller
// populates the graph with; the core never interprets them beyond Euclidean
// arithmetic performed by heuristic consumers.
type Coord struct {
	X float64
	Y float64
}

// Edge is one directed adjacency record. A bidirectional insert stores two
// independent Edge values, one per direction; they start out with identical
// Distance and TrafficFactor but nothing requires the two sides of a road to
// stay symmetric if the caller inserts them separately.
type Edge struct {
	// From is the source node label.
	From string

	// To is the destination node label.
	To string

	// Distance is the non-negative base length of the edge.
	Distance float64

	// TrafficFactor is the positive congestion multiplier (1.0 = free flow).
	TrafficFactor float64
}

// EffectiveWeight returns Distance × TrafficFactor, the cost minimized by
// every search algorithm operating on this graph.
func (e Edge) EffectiveWeight() float64 {
	return e.Distance * e.TrafficFactor
}

// NodeOption configures a single AddNode call.
type NodeOption func(*nodeConfig)

type nodeConfig struct {
	coord    Coord
	hasCoord bool
}

// WithNodeCoord attaches (or overwrites) the 2-D coordinate of the node being
// added. Coordinates only influence heuristic-guided search; nodes without
// them are perfectly valid.
func WithNodeCoord(x, y float64) NodeOption {
	return func(c *nodeConfig) {
		c.coord = Coord{X: x, Y: y}
		c.hasCoord = true
	}
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	trafficFactor float64
	directed      bool
}

// WithTrafficFactor sets the congestion multiplier for the edge (and its
// mirror, for bidirectional inserts). Defaults to 1.0 when omitted.
// Values ≤ 0 cause AddEdge to fail with ErrInvalidEdgeWeight.
func WithTrafficFactor(f float64) EdgeOption {
	return func(c *edgeConfig) { c.trafficFactor = f }
}

// WithDirected inserts only the u→v direction instead of the default
// bidirectional pair. Two separate directed inserts may carry different
// distances or factors, modeling asymmetric congestion.
func WithDirected() EdgeOption {
	return func(c *edgeConfig) { c.directed = true }
}
