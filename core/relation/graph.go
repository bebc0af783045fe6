package relation

import (
	"github.com/shopspring/decimal"

	"modcheck/core/taxonomy"
	"modcheck/core/types"
	"modcheck/internal/errors"
)

// Edge is a directed, typed relationship between two nodes.
// Threshold is an open-ended map of numeric trigger conditions
// (e.g. boost_increase_psi = 5) interpreted only by callers that know the
// magnitude of a planned change; the graph just stores it.
type Edge struct {
	From        types.NodeKey              `json:"from"`
	To          types.NodeKey              `json:"to"`
	Type        Type                       `json:"type"`
	Description string                     `json:"description,omitempty"`
	Threshold   map[string]decimal.Decimal `json:"threshold,omitempty"`
}

// Severity returns the display severity class of the edge's type
func (e Edge) Severity() types.Severity {
	return SeverityOf(e.Type)
}

// Graph is the immutable set of edges with from/to indexes.
// Built once at startup and safe for concurrent reads.
type Graph struct {
	edges []Edge
	from  map[types.NodeKey][]int
	to    map[types.NodeKey][]int
}

// NewGraph builds and validates a relationship graph against a taxonomy.
// Both endpoints must be defined nodes, the type must be known, and
// self-loops are rejected.
func NewGraph(tax *taxonomy.Store, edges []Edge) (*Graph, error) {
	g := &Graph{
		edges: make([]Edge, 0, len(edges)),
		from:  make(map[types.NodeKey][]int),
		to:    make(map[types.NodeKey][]int),
	}

	for _, e := range edges {
		if !e.Type.IsValid() {
			return nil, errors.Dataf("edge %s -> %s has unknown relationship type %q", e.From, e.To, e.Type)
		}
		if e.From == e.To {
			return nil, errors.Dataf("edge %s -> %s is a self-loop", e.From, e.To)
		}
		if !tax.HasNode(e.From) {
			return nil, errors.Dataf("edge references undefined node %q", e.From)
		}
		if !tax.HasNode(e.To) {
			return nil, errors.Dataf("edge references undefined node %q", e.To)
		}
		idx := len(g.edges)
		g.edges = append(g.edges, e)
		g.from[e.From] = append(g.from[e.From], idx)
		g.to[e.To] = append(g.to[e.To], idx)
	}

	return g, nil
}

// Edges returns all edges in definition order
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// From returns the edges originating at a node, in definition order
func (g *Graph) From(node types.NodeKey) []Edge {
	return g.collect(g.from[node])
}

// To returns the edges terminating at a node, in definition order
func (g *Graph) To(node types.NodeKey) []Edge {
	return g.collect(g.to[node])
}

// Between returns the edges from one node to another, in definition order
func (g *Graph) Between(from, to types.NodeKey) []Edge {
	var out []Edge
	for _, i := range g.from[from] {
		if g.edges[i].To == to {
			out = append(out, g.edges[i])
		}
	}
	return out
}

// Len returns the number of edges
func (g *Graph) Len() int {
	return len(g.edges)
}

func (g *Graph) collect(idx []int) []Edge {
	if len(idx) == 0 {
		return nil
	}
	out := make([]Edge, len(idx))
	for i, j := range idx {
		out[i] = g.edges[j]
	}
	return out
}
