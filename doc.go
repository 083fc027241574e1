// Package flowroute is a congestion-aware shortest-path toolkit for
// road-style networks: model a weighted graph where every edge carries a
// base distance and a traffic multiplier, then query it with uniform-cost
// or heuristic-guided search.
//
// 🚦 What is flowroute?
//
//	A small, focused library plus the glue around it:
//		• core/   — Graph, Edge and Coord primitives with congestion-aware weights
//		• route/  — Dijkstra and A* over effective weight (distance × traffic factor)
//		• loader/ — CSV and edge-list ingestion plus a bundled sample network
//		• render/ — Graphviz DOT emission with route highlighting
//		• server/ — HTTP query surface (gin) for interactive clients
//		• cmd/    — flowroute CLI: one-shot queries, demo mode, serving
//
// The engine minimizes effective weight, never raw distance: an edge of
// length 2 under traffic factor 1.2 costs 2.4. A* uses the Euclidean
// distance between stored coordinates as its heuristic and degrades to
// uniform-cost search when coordinates are absent.
//
// Quick start:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", 4)
//	g.AddEdge("A", "C", 2, core.WithTrafficFactor(1.2))
//	path, cost, err := route.ShortestPath(g, "A", "B")
//
// See route's example tests for runnable queries over the sample network.
//
//	go get github.com/trafficwise/flowroute
package flowroute
