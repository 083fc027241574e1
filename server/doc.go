// Package server exposes the routing engine over HTTP for interactive
// clients: graph inspection, edge insertion, and shortest-path queries via
// either algorithm.
//
// The engine itself is single-query-at-a-time by contract, so this layer
// owns the synchronization: a read-write mutex serializes mutation against
// in-flight queries on the shared graph. Request logging (logrus), request
// IDs and Prometheus metrics live here too — the core stays free of I/O and
// observability concerns.
package server
