package loader

import "github.com/trafficwise/flowroute/core"

// sampleEdges is the bundled demo network: nine bidirectional road segments
// between six junctions. Factors above 1.0 mark congested segments.
var sampleEdges = []EdgeRecord{
	{From: "A", To: "B", Distance: 4, TrafficFactor: 1.0},
	{From: "A", To: "C", Distance: 2, TrafficFactor: 1.2},
	{From: "B", To: "C", Distance: 1, TrafficFactor: 1.0},
	{From: "B", To: "D", Distance: 5, TrafficFactor: 1.1},
	{From: "C", To: "D", Distance: 8, TrafficFactor: 1.0},
	{From: "C", To: "E", Distance: 10, TrafficFactor: 1.3},
	{From: "D", To: "E", Distance: 2, TrafficFactor: 1.0},
	{From: "D", To: "Z", Distance: 6, TrafficFactor: 1.4},
	{From: "E", To: "Z", Distance: 3, TrafficFactor: 1.0},
}

// sampleCoords positions the junctions for the Euclidean heuristic. The
// layout is the survey sketch scaled down by 4 so the heuristic stays
// admissible: every edge's effective weight is at least the straight-line
// distance between its endpoints (tightest margins: B—C 0.90 ≤ 1.0 and
// D—E 0.56 ≤ 2.0).
var sampleCoords = map[string]core.Coord{
	"A": {X: 0, Y: 0},
	"B": {X: 1, Y: 0},
	"C": {X: 0.25, Y: 0.5},
	"D": {X: 1.5, Y: 0.5},
	"E": {X: 1.75, Y: 1},
	"Z": {X: 2.25, Y: 1.25},
}

// Sample returns a fresh copy of the bundled demo network, coordinates
// included. Mutating the returned graph never affects later calls.
func Sample() *core.Graph {
	g, err := FromEdgeList(sampleEdges)
	if err != nil {
		// The bundled data is static and valid; a failure here is a
		// programming error, not an input error.
		panic(err)
	}
	for id, c := range sampleCoords {
		g.AddNode(id, core.WithNodeCoord(c.X, c.Y))
	}

	return g
}
