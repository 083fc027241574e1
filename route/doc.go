// Package route implements shortest-path search over a core.Graph using the
// effective weight (distance × traffic factor) of every edge.
//
// Two entry points share one engine:
//
//   - Dijkstra / ShortestPath — uniform-cost search from a start node,
//     producing the full distance and predecessor maps, or a single
//     reconstructed path.
//   - AStar — heuristic-guided best-first search toward a known goal,
//     returning as soon as the goal is settled.
//
// The engine is written once and parameterized: a CostFunc decides what an
// edge costs (EffectiveWeight by default) and a Heuristic estimates the
// remaining cost to the goal (Euclidean distance over stored coordinates by
// default, zero when either coordinate is missing). A zero heuristic
// degrades A* to uniform-cost search over the same metric — intentional, not
// a defect. The heuristic must never overestimate the true remaining
// effective-weight cost; unit consistency between coordinates and distances
// is the caller's responsibility.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is settled at most once: V pops that survive the stale check.
//   - Each relaxation may push a duplicate entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) distance and predecessor maps, freshly allocated per query.
//   - O(E) worst-case heap occupancy under lazy decrease-key.
//
// The priority queue has no decrease-key operation, so improved distances
// push duplicate entries and stale ones are discarded on pop (the popped
// tentative cost exceeding the node's best-known cost identifies them).
//
// Unreachability is a normal result, not an error: point queries report an
// empty path and +Inf cost. Only a missing start node (both algorithms) or a
// missing goal node (A* only) aborts a query.
package route
