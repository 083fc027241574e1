package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/trafficwise/flowroute/core"
)

// Sentinel errors for tabular input.
var (
	// ErrBadHeader is returned when a CSV header is missing required columns.
	ErrBadHeader = errors.New("loader: bad CSV header")

	// ErrBadRecord is returned when a CSV row cannot be parsed or violates
	// the edge weight invariants.
	ErrBadRecord = errors.New("loader: bad CSV record")
)

// EdgeRecord is one edge tuple as supplied by a data source. Bidirectional
// records insert both directions with identical distance and factor.
type EdgeRecord struct {
	From          string
	To            string
	Distance      float64
	TrafficFactor float64
}

// FromEdgeList builds a graph from in-memory edge records, inserting each as
// a bidirectional pair. A zero TrafficFactor is treated as the free-flow
// default 1.0 so literal record lists stay terse.
func FromEdgeList(records []EdgeRecord) (*core.Graph, error) {
	g := core.NewGraph()
	for i, rec := range records {
		tf := rec.TrafficFactor
		if tf == 0 {
			tf = 1.0
		}
		if err := g.AddEdge(rec.From, rec.To, rec.Distance, core.WithTrafficFactor(tf)); err != nil {
			return nil, fmt.Errorf("loader: record %d (%s→%s): %w", i, rec.From, rec.To, err)
		}
	}

	return g, nil
}

// FromCSV reads edge rows from r and returns the populated graph.
//
// The header must contain "u", "v" and "distance"; "traffic_factor" is
// optional and defaults to 1.0 per row when the column is absent or empty.
// Column order is free. Every row inserts a bidirectional pair.
func FromCSV(r io.Reader) (*core.Graph, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	col := indexColumns(header)
	for _, required := range []string{"u", "v", "distance"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrBadHeader, required)
		}
	}

	g := core.NewGraph()
	for row := 2; ; row++ { // header was row 1
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrBadRecord, row, err)
		}

		u := strings.TrimSpace(rec[col["u"]])
		v := strings.TrimSpace(rec[col["v"]])
		d, err := strconv.ParseFloat(strings.TrimSpace(rec[col["distance"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: distance: %v", ErrBadRecord, row, err)
		}

		tf := 1.0
		if fi, ok := col["traffic_factor"]; ok && fi < len(rec) {
			raw := strings.TrimSpace(rec[fi])
			if raw != "" {
				tf, err = strconv.ParseFloat(raw, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: row %d: traffic_factor: %v", ErrBadRecord, row, err)
				}
			}
		}

		if err := g.AddEdge(u, v, d, core.WithTrafficFactor(tf)); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrBadRecord, row, err)
		}
	}

	return g, nil
}

// CoordsFromCSV reads "node,x,y" rows from r and attaches each coordinate to
// g, creating nodes as needed.
func CoordsFromCSV(g *core.Graph, r io.Reader) error {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	col := indexColumns(header)
	for _, required := range []string{"node", "x", "y"} {
		if _, ok := col[required]; !ok {
			return fmt.Errorf("%w: missing column %q", ErrBadHeader, required)
		}
	}

	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: row %d: %v", ErrBadRecord, row, err)
		}

		x, errX := strconv.ParseFloat(strings.TrimSpace(rec[col["x"]]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(rec[col["y"]]), 64)
		if errX != nil || errY != nil {
			return fmt.Errorf("%w: row %d: coordinate parse failure", ErrBadRecord, row)
		}

		g.AddNode(strings.TrimSpace(rec[col["node"]]), core.WithNodeCoord(x, y))
	}
}

// indexColumns maps lower-cased header names to their positions.
func indexColumns(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}

	return col
}
