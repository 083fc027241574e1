package route

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/trafficwise/flowroute/core"
)

// Dijkstra runs uniform-cost search from start over graph g and returns the
// full distance map (node → minimum accumulated cost, math.Inf(1) when
// unreachable) together with the predecessor map for path reconstruction.
//
// Validation, in order:
//  1. g must be non-nil (ErrGraphNil).
//  2. start must exist in g (ErrStartNotFound).
//
// The queue is keyed by accumulated cost alone; entries whose cost exceeds
// the node's current best are stale duplicates and skipped. The loop runs
// until the queue empties, settling every node reachable from start.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, start string, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	r := newRunner(g, cfg.Cost, start, 0)
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if item.g > r.dist[item.id] {
			continue // stale duplicate, superseded by a cheaper entry
		}
		r.relax(item.id, zeroPriority)
	}

	return r.dist, r.prev, nil
}

// ShortestPath answers a point query start→end via uniform-cost search.
// An end node that is unknown or unreachable is a normal result reported as
// (empty path, +Inf) — never an error. A start equal to end yields the
// single-element path and zero cost.
func ShortestPath(g *core.Graph, start, end string, opts ...Option) ([]string, float64, error) {
	dist, prev, err := Dijkstra(g, start, opts...)
	if err != nil {
		return nil, math.Inf(1), err
	}

	d, known := dist[end]
	if !known || math.IsInf(d, 1) {
		return nil, math.Inf(1), nil
	}

	return ReconstructPath(prev, start, end), d, nil
}

// zeroPriority keeps the queue keyed by accumulated cost alone.
func zeroPriority(string) float64 { return 0 }
