// Package route_test validates both search modes over the demo road
// network: optimal costs, path reconstruction, unreachable handling,
// validation errors, and agreement between uniform-cost and
// heuristic-guided search.
package route_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trafficwise/flowroute/core"
	"github.com/trafficwise/flowroute/route"
)

// tolerance for float comparisons on accumulated costs.
const eps = 1e-9

// buildRoadNetwork constructs the nine-edge demo network. Every insert is
// bidirectional; effective weights range from 1.0 (B—C) to 13.0 (C—E).
func buildRoadNetwork(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	edges := []struct {
		u, v  string
		d, tf float64
	}{
		{"A", "B", 4, 1.0},
		{"A", "C", 2, 1.2},
		{"B", "C", 1, 1.0},
		{"B", "D", 5, 1.1},
		{"C", "D", 8, 1.0},
		{"C", "E", 10, 1.3},
		{"D", "E", 2, 1.0},
		{"D", "Z", 6, 1.4},
		{"E", "Z", 3, 1.0},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.d, core.WithTrafficFactor(e.tf)))
	}

	return g
}

// withCoords attaches the admissible demo coordinates: the survey sketch
// scaled down by 4, so every edge's effective weight is at least the
// straight-line distance between its endpoints and the Euclidean heuristic
// never overestimates.
func withCoords(g *core.Graph) *core.Graph {
	coords := map[string][2]float64{
		"A": {0, 0}, "B": {1, 0}, "C": {0.25, 0.5},
		"D": {1.5, 0.5}, "E": {1.75, 1}, "Z": {2.25, 1.25},
	}
	for id, xy := range coords {
		g.AddNode(id, core.WithNodeCoord(xy[0], xy[1]))
	}

	return g
}

// withUnscaledCoords attaches the survey sketch at its original scale. At
// that scale the straight-line distance overestimates a few short hops
// (B—C is 1.0 effective but √13 apart), so only queries whose corridor is
// unaffected, such as A→Z, are compared against uniform cost with it.
func withUnscaledCoords(g *core.Graph) *core.Graph {
	coords := map[string][2]float64{
		"A": {0, 0}, "B": {4, 0}, "C": {1, 2},
		"D": {6, 2}, "E": {7, 4}, "Z": {9, 5},
	}
	for id, xy := range coords {
		g.AddNode(id, core.WithNodeCoord(xy[0], xy[1]))
	}

	return g
}

// pathCost sums effective weights along consecutive path hops, failing the
// test if any hop is not a stored edge.
func pathCost(t *testing.T, g *core.Graph, path []string) float64 {
	t.Helper()
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		found := false
		for _, e := range g.Neighbors(path[i]) {
			if e.To == path[i+1] {
				total += e.EffectiveWeight()
				found = true
				break
			}
		}
		require.True(t, found, "path hop %s→%s is not a stored edge", path[i], path[i+1])
	}

	return total
}

// ------------------------------------------------------------------------
// Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := route.Dijkstra(nil, "A")
	assert.ErrorIs(t, err, route.ErrGraphNil)
}

func TestDijkstra_UnknownStart(t *testing.T) {
	g := buildRoadNetwork(t)
	_, _, err := route.Dijkstra(g, "nowhere")
	assert.ErrorIs(t, err, route.ErrStartNotFound)
}

func TestAStar_UnknownStartAndGoal(t *testing.T) {
	g := buildRoadNetwork(t)

	_, _, err := route.AStar(g, "nowhere", "Z")
	assert.ErrorIs(t, err, route.ErrStartNotFound)

	_, _, err = route.AStar(g, "A", "nowhere")
	assert.ErrorIs(t, err, route.ErrGoalNotFound)
}

func TestShortestPath_UnknownEndIsUnreachableNotError(t *testing.T) {
	g := buildRoadNetwork(t)

	path, cost, err := route.ShortestPath(g, "A", "nowhere")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.True(t, math.IsInf(cost, 1))
}

// ------------------------------------------------------------------------
// Optimal cost and path on the demo network
// ------------------------------------------------------------------------

func TestShortestPath_RoadNetworkAtoZ(t *testing.T) {
	g := buildRoadNetwork(t)

	path, cost, err := route.ShortestPath(g, "A", "Z")
	require.NoError(t, err)

	// A→C(2.4) →B(1.0) →D(5.5) →E(2.0) →Z(3.0) = 13.9
	assert.InDelta(t, 13.9, cost, eps)
	assert.Equal(t, []string{"A", "C", "B", "D", "E", "Z"}, path)

	// The reported cost must equal the sum of effective weights along the
	// returned path.
	assert.InDelta(t, cost, pathCost(t, g, path), eps)
}

func TestDijkstra_FullDistanceMap(t *testing.T) {
	g := buildRoadNetwork(t)

	dist, prev, err := route.Dijkstra(g, "A")
	require.NoError(t, err)

	want := map[string]float64{
		"A": 0, "B": 3.4, "C": 2.4, "D": 8.9, "E": 10.9, "Z": 13.9,
	}
	for id, w := range want {
		assert.InDelta(t, w, dist[id], eps, "dist[%s]", id)
	}

	// Predecessor chain backs the A→Z route.
	assert.Equal(t, "E", prev["Z"])
	assert.Equal(t, "D", prev["E"])
	assert.Equal(t, "B", prev["D"])
	assert.Equal(t, "C", prev["B"])
	assert.Equal(t, "A", prev["C"])
	_, hasStartPrev := prev["A"]
	assert.False(t, hasStartPrev, "start carries no predecessor")
}

func TestAStar_MatchesUniformCost(t *testing.T) {
	for name, g := range map[string]*core.Graph{
		"ScaledCoords":   withCoords(buildRoadNetwork(t)),
		"UnscaledCoords": withUnscaledCoords(buildRoadNetwork(t)),
	} {
		t.Run(name, func(t *testing.T) {
			path, cost, err := route.AStar(g, "A", "Z")
			require.NoError(t, err)

			assert.InDelta(t, 13.9, cost, eps)
			assert.Equal(t, []string{"A", "C", "B", "D", "E", "Z"}, path)
			assert.InDelta(t, cost, pathCost(t, g, path), eps)
		})
	}
}

// TestAStar_ShortHopsStayOptimal pins the pairs where an overestimating
// heuristic would shortcut past a cheap multi-hop detour: D→C is 6.5 via B
// (5.5 + 1.0), beating the direct 8.0 edge, and A→B is 3.4 via C. With the
// admissible coordinate set A* must find both detours, agreeing with
// uniform cost.
func TestAStar_ShortHopsStayOptimal(t *testing.T) {
	g := withCoords(buildRoadNetwork(t))

	path, cost, err := route.AStar(g, "D", "C")
	require.NoError(t, err)
	assert.InDelta(t, 6.5, cost, eps)
	assert.Equal(t, []string{"D", "B", "C"}, path)

	path, cost, err = route.AStar(g, "A", "B")
	require.NoError(t, err)
	assert.InDelta(t, 3.4, cost, eps)
	assert.Equal(t, []string{"A", "C", "B"}, path)
}

// TestAgreement_AllPairs cross-checks the two algorithms over every ordered
// pair of known nodes: optimal costs must coincide exactly (within float
// tolerance), with or without coordinates attached.
func TestAgreement_AllPairs(t *testing.T) {
	bare := buildRoadNetwork(t)
	located := withCoords(buildRoadNetwork(t))

	for _, g := range []*core.Graph{bare, located} {
		nodes := g.Nodes()
		for _, s := range nodes {
			for _, e := range nodes {
				_, dCost, err := route.ShortestPath(g, s, e)
				require.NoError(t, err)
				_, aCost, err := route.AStar(g, s, e)
				require.NoError(t, err)

				if math.IsInf(dCost, 1) {
					assert.True(t, math.IsInf(aCost, 1), "%s→%s", s, e)
					continue
				}
				assert.InDelta(t, dCost, aCost, eps, "%s→%s", s, e)
			}
		}
	}
}

// ------------------------------------------------------------------------
// Boundary behavior
// ------------------------------------------------------------------------

func TestSearch_StartEqualsEnd(t *testing.T) {
	g := buildRoadNetwork(t)

	path, cost, err := route.ShortestPath(g, "C", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, path)
	assert.InDelta(t, 0, cost, eps)

	path, cost, err = route.AStar(g, "C", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, path)
	assert.InDelta(t, 0, cost, eps)
}

func TestSearch_IsolatedStartIsUnreachable(t *testing.T) {
	g := buildRoadNetwork(t)
	g.AddNode("island")

	path, cost, err := route.ShortestPath(g, "island", "Z")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.True(t, math.IsInf(cost, 1))

	path, cost, err = route.AStar(g, "island", "Z")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.True(t, math.IsInf(cost, 1))
}

func TestSearch_DirectedEdgeTraversedOnlyForward(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1, core.WithDirected()))

	// Forward works, backward is unreachable.
	_, cost, err := route.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	assert.InDelta(t, 1, cost, eps)

	path, cost, err := route.ShortestPath(g, "B", "A")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.True(t, math.IsInf(cost, 1))
}

// TestSearch_CongestionRedirectsRoute pins down that searches minimize
// effective weight, not raw distance: a short but jammed edge loses to a
// longer free-flowing detour.
func TestSearch_CongestionRedirectsRoute(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 2, core.WithTrafficFactor(3.0))) // effective 6
	require.NoError(t, g.AddEdge("A", "C", 2.5))
	require.NoError(t, g.AddEdge("C", "B", 2.5)) // detour effective 5

	path, cost, err := route.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, path)
	assert.InDelta(t, 5.0, cost, eps)

	// Raw-distance costing flips the decision back to the direct edge.
	path, cost, err = route.ShortestPath(g, "A", "B",
		route.WithCost(func(e core.Edge) float64 { return e.Distance }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, path)
	assert.InDelta(t, 2.0, cost, eps)
}

func TestAStar_ZeroHeuristicDegradesToUniformCost(t *testing.T) {
	g := withCoords(buildRoadNetwork(t))

	path, cost, err := route.AStar(g, "A", "Z", route.WithHeuristic(route.ZeroHeuristic))
	require.NoError(t, err)
	assert.InDelta(t, 13.9, cost, eps)
	assert.Equal(t, []string{"A", "C", "B", "D", "E", "Z"}, path)
}

// ------------------------------------------------------------------------
// Path reconstruction
// ------------------------------------------------------------------------

func TestReconstructPath_WalksBackward(t *testing.T) {
	prev := map[string]string{"B": "A", "C": "B", "D": "C"}
	assert.Equal(t, []string{"A", "B", "C", "D"}, route.ReconstructPath(prev, "A", "D"))
	assert.Equal(t, []string{"A"}, route.ReconstructPath(prev, "A", "A"))
}

func TestReconstructPath_BrokenChainIsEmpty(t *testing.T) {
	// D points at C, but C has no predecessor and is not the start.
	prev := map[string]string{"D": "C"}
	assert.Empty(t, route.ReconstructPath(prev, "A", "D"))
}

// ------------------------------------------------------------------------
// Error wrapping
// ------------------------------------------------------------------------

func TestErrors_CarryNodeContext(t *testing.T) {
	g := buildRoadNetwork(t)

	_, _, err := route.Dijkstra(g, "QQ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, route.ErrStartNotFound))
	assert.Contains(t, err.Error(), `"QQ"`)
}
