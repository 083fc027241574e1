// Package render turns a core.Graph into Graphviz DOT text, optionally
// highlighting a computed route. It exists so drivers can visualize results
// without the engine itself acquiring a rendering dependency: the output is
// plain text consumable by any dot-compatible tool.
package render

import (
	"fmt"
	"strings"

	"github.com/trafficwise/flowroute/core"
)

// Options configures one DOT emission.
type Options struct {
	// Title becomes the graph label, when non-empty.
	Title string

	// Path is the node sequence to highlight; consecutive hops are drawn
	// red and heavy.
	Path []string
}

// Option is a functional option for configuring DOT output.
type Option func(*Options)

// WithTitle sets the graph label.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithPath highlights the hops of the given route.
func WithPath(path []string) Option {
	return func(o *Options) { o.Path = path }
}

// DOT renders g as a directed Graphviz graph: one node statement per known
// node (with a pos attribute when a coordinate is stored) and one edge
// statement per stored directed edge, labeled with its effective weight to
// two decimals. Output is deterministic: nodes sorted, edges grouped by
// sorted source in insertion order.
func DOT(g *core.Graph, opts ...Option) string {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	onPath := make(map[string]bool, len(cfg.Path))
	for i := 0; i+1 < len(cfg.Path); i++ {
		onPath[hopKey(cfg.Path[i], cfg.Path[i+1])] = true
	}

	var b strings.Builder
	b.WriteString("digraph flowroute {\n")
	if cfg.Title != "" {
		fmt.Fprintf(&b, "  label=%q;\n", cfg.Title)
	}

	for _, id := range g.Nodes() {
		if c, ok := g.CoordOf(id); ok {
			fmt.Fprintf(&b, "  %q [pos=\"%g,%g!\"];\n", id, c.X, c.Y)
		} else {
			fmt.Fprintf(&b, "  %q;\n", id)
		}
	}

	for _, e := range g.Edges() {
		attrs := fmt.Sprintf("label=\"%.2f\"", e.EffectiveWeight())
		if onPath[hopKey(e.From, e.To)] {
			attrs += ", color=red, penwidth=3.0"
		}
		fmt.Fprintf(&b, "  %q -> %q [%s];\n", e.From, e.To, attrs)
	}
	b.WriteString("}\n")

	return b.String()
}

func hopKey(from, to string) string {
	return from + "\x00" + to
}
