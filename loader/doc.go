// Package loader populates a core.Graph from tabular input.
//
// Supported sources:
//
//   - FromCSV: edge rows with header "u,v,distance,traffic_factor" (the
//     factor column may be omitted and defaults to 1.0); every row inserts a
//     bidirectional pair.
//   - CoordsFromCSV: "node,x,y" rows attaching 2-D coordinates for the
//     heuristic.
//   - FromEdgeList: programmatic population from in-memory records.
//   - Sample: the bundled nine-edge demo network with coordinates, useful
//     for demos and tests.
//
// All inserts go through core.AddEdge/core.AddNode so the graph invariants
// hold; malformed input is reported with row context wrapped around the
// sentinel errors.
package loader
