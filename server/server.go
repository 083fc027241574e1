package server

import (
	"errors"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/trafficwise/flowroute/core"
	"github.com/trafficwise/flowroute/route"
)

// Server wraps a shared graph behind HTTP handlers. The mutex enforces the
// single-writer-or-query-at-a-time discipline the engine requires: queries
// take the read lock, edge insertion the write lock.
type Server struct {
	mu  sync.RWMutex
	g   *core.Graph
	log *logrus.Logger
}

// New creates a Server over g. A nil logger falls back to the logrus
// standard logger.
func New(g *core.Graph, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Server{g: g, log: log}
}

// Router assembles the gin engine: CORS, request-ID/access-log middleware,
// the API routes and the Prometheus endpoint.
func (s *Server) Router(corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID(s.log))

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else if len(corsOrigins) > 0 {
		corsCfg.AllowOrigins = corsOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	r.GET("/health", s.handleHealth)
	r.GET("/graph", s.handleGraph)
	r.POST("/graph/edges", s.handleAddEdge)
	r.POST("/route", s.handleRoute)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type nodeJSON struct {
	ID string   `json:"id"`
	X  *float64 `json:"x,omitempty"`
	Y  *float64 `json:"y,omitempty"`
}

type edgeJSON struct {
	From            string  `json:"u"`
	To              string  `json:"v"`
	Distance        float64 `json:"distance"`
	TrafficFactor   float64 `json:"traffic_factor"`
	EffectiveWeight float64 `json:"effective_weight"`
}

type addEdgeRequest struct {
	From          string   `json:"u" binding:"required"`
	To            string   `json:"v" binding:"required"`
	Distance      *float64 `json:"distance" binding:"required"`
	TrafficFactor *float64 `json:"traffic_factor"`
	Directed      bool     `json:"directed"`
}

type routeRequest struct {
	Start     string `json:"start" binding:"required"`
	End       string `json:"end" binding:"required"`
	Algorithm string `json:"algorithm"`
}

type routeResponse struct {
	Found     bool     `json:"found"`
	Algorithm string   `json:"algorithm"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
	Path      []string `json:"path"`
	Cost      *float64 `json:"cost,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	s.mu.RLock()
	nodes, edges := s.g.NodeCount(), s.g.EdgeCount()
	s.mu.RUnlock()

	c.JSON(http.StatusOK, gin.H{"status": "ok", "nodes": nodes, "edges": edges})
}

func (s *Server) handleGraph(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := make([]nodeJSON, 0, s.g.NodeCount())
	for _, id := range s.g.Nodes() {
		n := nodeJSON{ID: id}
		if coord, ok := s.g.CoordOf(id); ok {
			x, y := coord.X, coord.Y
			n.X, n.Y = &x, &y
		}
		nodes = append(nodes, n)
	}

	edges := make([]edgeJSON, 0, s.g.EdgeCount())
	for _, e := range s.g.Edges() {
		edges = append(edges, edgeJSON{
			From:            e.From,
			To:              e.To,
			Distance:        e.Distance,
			TrafficFactor:   e.TrafficFactor,
			EffectiveWeight: e.EffectiveWeight(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"nodes": nodes, "edges": edges})
}

func (s *Server) handleAddEdge(c *gin.Context) {
	var req addEdgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		edgeInserts.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := make([]core.EdgeOption, 0, 2)
	if req.TrafficFactor != nil {
		opts = append(opts, core.WithTrafficFactor(*req.TrafficFactor))
	}
	if req.Directed {
		opts = append(opts, core.WithDirected())
	}

	s.mu.Lock()
	err := s.g.AddEdge(req.From, req.To, *req.Distance, opts...)
	s.mu.Unlock()

	if err != nil {
		edgeInserts.WithLabelValues("invalid").Inc()
		status := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidEdgeWeight) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	edgeInserts.WithLabelValues("ok").Inc()
	c.Status(http.StatusCreated)
}

func (s *Server) handleRoute(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Algorithm == "" {
		req.Algorithm = "dijkstra"
	}

	var (
		path []string
		cost float64
		err  error
	)
	started := time.Now()
	s.mu.RLock()
	switch req.Algorithm {
	case "dijkstra":
		path, cost, err = route.ShortestPath(s.g, req.Start, req.End)
	case "astar":
		path, cost, err = route.AStar(s.g, req.Start, req.End)
	default:
		s.mu.RUnlock()
		routeQueries.WithLabelValues(req.Algorithm, "rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "algorithm must be dijkstra or astar"})
		return
	}
	s.mu.RUnlock()
	routeDuration.WithLabelValues(req.Algorithm).Observe(time.Since(started).Seconds())

	if err != nil {
		routeQueries.WithLabelValues(req.Algorithm, "rejected").Inc()
		status := http.StatusInternalServerError
		if errors.Is(err, route.ErrStartNotFound) || errors.Is(err, route.ErrGoalNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	resp := routeResponse{
		Algorithm: req.Algorithm,
		Start:     req.Start,
		End:       req.End,
		Path:      path,
	}
	if math.IsInf(cost, 1) {
		// Unreachable is a normal result; JSON cannot carry +Inf, so the
		// cost field is simply absent.
		resp.Path = []string{}
		routeQueries.WithLabelValues(req.Algorithm, "unreachable").Inc()
	} else {
		resp.Found = true
		resp.Cost = &cost
		routeQueries.WithLabelValues(req.Algorithm, "found").Inc()
	}

	c.JSON(http.StatusOK, resp)
}
