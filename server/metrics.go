package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// routeQueries counts shortest-path queries by algorithm and outcome
	// (found, unreachable, rejected).
	routeQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flowroute_route_queries_total",
		Help: "Shortest-path queries served, by algorithm and outcome.",
	}, []string{"algorithm", "outcome"})

	// routeDuration tracks query latency per algorithm.
	routeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "flowroute_route_duration_seconds",
		Help:    "Shortest-path query duration, by algorithm.",
		Buckets: prometheus.DefBuckets,
	}, []string{"algorithm"})

	// edgeInserts counts mutation requests by outcome (ok, invalid).
	edgeInserts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flowroute_edge_inserts_total",
		Help: "Edge insertion requests, by outcome.",
	}, []string{"outcome"})
)
