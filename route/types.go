// Package route declares sentinel errors, the pluggable cost/heuristic
// function types and the functional options shared by both search modes.
package route

import (
	"errors"
	"math"

	"github.com/trafficwise/flowroute/core"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned when a nil graph pointer is passed.
	ErrGraphNil = errors.New("route: graph is nil")

	// ErrStartNotFound is returned when the start node is absent from the
	// graph. Both search modes require the start to exist.
	ErrStartNotFound = errors.New("route: start node not found")

	// ErrGoalNotFound is returned by AStar when the goal node is absent.
	// Uniform-cost search does not require the goal to pre-exist: it computes
	// distances to everything reachable, so an unknown end is simply
	// unreachable.
	ErrGoalNotFound = errors.New("route: goal node not found")
)

// CostFunc maps an edge to the non-negative cost the search accumulates for
// traversing it.
type CostFunc func(e core.Edge) float64

// Heuristic estimates the remaining cost from one node to another. It must
// be admissible (never overestimate) for A* to stay optimal.
type Heuristic func(from, to string) float64

// EffectiveWeight is the default CostFunc: distance × traffic factor.
func EffectiveWeight(e core.Edge) float64 {
	return e.EffectiveWeight()
}

// ZeroHeuristic estimates zero everywhere, degrading A* to uniform-cost
// search.
func ZeroHeuristic(_, _ string) float64 {
	return 0
}

// EuclideanHeuristic builds a Heuristic over the coordinates stored in g:
// the straight-line distance when both endpoints carry coordinates, zero
// otherwise. It is admissible as long as every edge's effective weight is at
// least the Euclidean distance between its endpoints in the caller's units.
func EuclideanHeuristic(g *core.Graph) Heuristic {
	return func(from, to string) float64 {
		a, okA := g.CoordOf(from)
		b, okB := g.CoordOf(to)
		if !okA || !okB {
			return 0
		}

		return math.Hypot(b.X-a.X, b.Y-a.Y)
	}
}

// Options configures a single search invocation.
type Options struct {
	// Cost decides what traversing an edge adds to the accumulated total.
	Cost CostFunc

	// Heuristic estimates remaining cost toward the goal (A* only).
	// nil selects EuclideanHeuristic over the queried graph.
	Heuristic Heuristic
}

// Option is a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns the standard configuration: effective-weight edge
// costs and the coordinate-based Euclidean heuristic.
func DefaultOptions() Options {
	return Options{
		Cost:      EffectiveWeight,
		Heuristic: nil,
	}
}

// WithCost overrides the edge cost function.
func WithCost(fn CostFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// WithHeuristic overrides the remaining-cost estimate used by AStar.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}
