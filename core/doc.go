// Package core provides the fundamental in-memory graph for congestion-aware
// routing: nodes identified by opaque string labels, directed edges carrying
// a base distance and a traffic multiplier, and optional 2-D coordinates used
// as heuristic input by callers.
//
// The quantity that matters everywhere downstream is the effective weight of
// an edge:
//
//	effective weight = Distance × TrafficFactor
//
// A TrafficFactor of 1.0 means free flow; values above 1.0 model congestion
// slowing the edge down. Search engines built on this package minimize
// effective weight, never raw distance.
//
// Mutation and iteration:
//
//   - AddNode is idempotent; nodes are also created implicitly whenever an
//     edge references them.
//   - AddEdge appends to the tail of the outgoing adjacency list, and
//     Neighbors returns that list in insertion order. Insertion order is part
//     of the contract: it drives priority-queue tie-breaks during search and
//     keeps query results reproducible for a fixed build sequence.
//   - Edges are immutable once inserted; there are no removal operations.
//
// Concurrency: Graph carries no internal locking. A single query runs to
// completion before another begins, and the calling context must serialize
// mutation against queries (single-writer-or-query-at-a-time). Layers that
// share a Graph across goroutines, such as an HTTP server, own that
// synchronization themselves.
package core
