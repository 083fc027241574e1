package route

import (
	"container/heap"
	"math"

	"github.com/trafficwise/flowroute/core"
)

// runner holds the mutable state of one search invocation. Every query
// allocates a fresh runner and discards it on return; nothing is shared
// between queries beyond the graph itself.
type runner struct {
	g    *core.Graph
	cost CostFunc

	// dist maps node → best-known accumulated cost from the start
	// (math.Inf(1) until improved).
	dist map[string]float64

	// prev maps node → predecessor on the best-known path. Nodes never
	// reached have no entry.
	prev map[string]string

	pq nodePQ
}

// newRunner initializes dist to +Inf for every known node, seeds the start
// at zero cost and pushes it with the given initial priority.
func newRunner(g *core.Graph, cost CostFunc, start string, startPriority float64) *runner {
	nodes := g.Nodes()
	r := &runner{
		g:    g,
		cost: cost,
		dist: make(map[string]float64, len(nodes)),
		prev: make(map[string]string, len(nodes)),
		pq:   make(nodePQ, 0, len(nodes)),
	}
	for _, id := range nodes {
		r.dist[id] = math.Inf(1)
	}
	r.dist[start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, g: 0, f: startPriority})

	return r
}

// relax examines every outgoing edge of u and records strictly better
// accumulated costs, pushing a new heap entry per improvement. The heap has
// no decrease-key, so superseded entries stay behind and are dropped by the
// stale check on pop. h shapes the queue priority only; the accumulated g
// cost is what relaxation compares.
func (r *runner) relax(u string, h func(id string) float64) {
	du := r.dist[u]
	var nd float64
	for _, e := range r.g.Neighbors(u) {
		nd = du + r.cost(e)
		if nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, g: nd, f: nd + h(e.To)})
	}
}

// ReconstructPath walks the predecessor map backward from goal to start and
// returns the forward-ordered node sequence. A node without a predecessor
// that is not the start itself means the chain is broken (goal unreachable):
// the result is then empty. The walk never cycles because prev encodes a
// shortest-path tree.
func ReconstructPath(prev map[string]string, start, goal string) []string {
	path := make([]string, 0, len(prev)+1)
	cur := goal
	for cur != start {
		path = append(path, cur)
		p, ok := prev[cur]
		if !ok {
			return nil // unreachable
		}
		cur = p
	}
	path = append(path, start)

	// Reverse in place: the walk collected goal→start.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is one priority-queue entry: a node with the accumulated cost g
// at push time and the queue priority f (equal to g for uniform-cost search,
// g + heuristic for A*).
type nodeItem struct {
	id string
	g  float64
	f  float64
}

// nodePQ is a min-heap of *nodeItem ordered by f ascending. Duplicate
// entries per node are expected under lazy decrease-key; for equal f values
// the heap's own element order decides, which is deterministic for a fixed
// graph and insertion sequence.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].f < pq[j].f }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
