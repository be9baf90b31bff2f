package wgraph

import (
	"fmt"
	"strings"
)

// New builds a Graph from explicit per-vertex edge lists. adj[v] lists the
// edges leaving v in the order they will be reported by EdgesOf.
//
// Validation (in order, per edge):
//  1. Target in [0, len(adj)) (ErrOutOfRange).
//  2. Weight >= 0 (ErrNegativeWeight).
//  3. Reverse is NoEdge, or resolves to an edge To->From whose own Reverse
//     points back at this edge (ErrInvalidLocator).
//
// The input is deep-copied; later changes to adj do not affect the Graph.
// A zero-valued Reverse (EdgeLocator{0, 0}) is a real locator, so unpaired
// edges should be written with NewEdge (or Reverse: NoEdge).
func New(adj [][]Edge) (*Graph, error) {
	n := len(adj)
	g := &Graph{adj: make([][]Edge, n)}
	for v, list := range adj {
		g.adj[v] = append([]Edge(nil), list...)
		g.edges += len(list)
	}

	for v, list := range g.adj {
		for i, e := range list {
			if e.To < 0 || e.To >= n {
				return nil, fmt.Errorf("New: edge (%d,%d) target %d: %w", v, i, e.To, ErrOutOfRange)
			}
			if e.Weight < 0 {
				return nil, fmt.Errorf("New: edge (%d,%d) weight=%d: %w", v, i, e.Weight, ErrNegativeWeight)
			}
			if e.Reverse.IsNone() {
				continue
			}
			if err := g.checkReverse(EdgeLocator{From: v, Index: i}, e); err != nil {
				return nil, fmt.Errorf("New: %w", err)
			}
		}
	}

	return g, nil
}

// checkReverse verifies that e (located at loc) and e.Reverse form a pair.
func (g *Graph) checkReverse(loc EdgeLocator, e Edge) error {
	r := e.Reverse
	if r.From != e.To {
		return fmt.Errorf("edge %s reverse %s does not start at target %d: %w", loc, r, e.To, ErrInvalidLocator)
	}
	back, err := g.EdgeAt(r)
	if err != nil {
		return fmt.Errorf("edge %s reverse: %w", loc, err)
	}
	if back.To != loc.From || back.Reverse != loc {
		return fmt.Errorf("edge %s reverse %s is not paired back: %w", loc, r, ErrInvalidLocator)
	}
	return nil
}

// NewUnweighted builds a Graph from a plain adjacency list, giving every
// edge the same weight (pass DefaultWeight for the demo's uniform 5). Zero
// is a valid weight; a negative one fails with ErrNegativeWeight. Edges
// carry no reverse pairing.
func NewUnweighted(adj [][]int, weight int64) (*Graph, error) {
	if weight < 0 {
		return nil, fmt.Errorf("NewUnweighted: weight %d: %w", weight, ErrNegativeWeight)
	}
	lists := make([][]Edge, len(adj))
	for v, targets := range adj {
		lists[v] = make([]Edge, len(targets))
		for i, to := range targets {
			lists[v][i] = NewEdge(to, weight)
		}
	}
	return New(lists)
}

// NewUndirected builds a Graph with n vertices where each link U—V becomes
// the directed pair U->V and V->U, wired to each other through Reverse.
// Edges are appended to their source lists in link order. A self-loop link
// produces a single edge that is its own reverse.
func NewUndirected(n int, links []Link) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewUndirected: n=%d: %w", n, ErrOutOfRange)
	}
	lists := make([][]Edge, n)
	for k, l := range links {
		if l.U < 0 || l.U >= n || l.V < 0 || l.V >= n {
			return nil, fmt.Errorf("NewUndirected: link %d (%d—%d): %w", k, l.U, l.V, ErrOutOfRange)
		}
		fwd := EdgeLocator{From: l.U, Index: len(lists[l.U])}
		if l.U == l.V {
			lists[l.U] = append(lists[l.U], Edge{To: l.V, Weight: l.Weight, Reverse: fwd})
			continue
		}
		bwd := EdgeLocator{From: l.V, Index: len(lists[l.V])}
		lists[l.U] = append(lists[l.U], Edge{To: l.V, Weight: l.Weight, Reverse: bwd})
		lists[l.V] = append(lists[l.V], Edge{To: l.U, Weight: l.Weight, Reverse: fwd})
	}
	return New(lists)
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the total number of directed edges.
func (g *Graph) EdgeCount() int { return g.edges }

// HasVertex reports whether v is a vertex of g.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.adj) }

// OutDegree returns the number of edges leaving v.
func (g *Graph) OutDegree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, fmt.Errorf("OutDegree(%d): %w", v, ErrOutOfRange)
	}
	return len(g.adj[v]), nil
}

// EdgesOf returns a copy of v's outgoing edges in construction order.
func (g *Graph) EdgesOf(v int) ([]Edge, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("EdgesOf(%d): %w", v, ErrOutOfRange)
	}
	return append([]Edge(nil), g.adj[v]...), nil
}

// Locators returns the locators of v's outgoing edges in order.
func (g *Graph) Locators(v int) ([]EdgeLocator, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("Locators(%d): %w", v, ErrOutOfRange)
	}
	out := make([]EdgeLocator, len(g.adj[v]))
	for i := range out {
		out[i] = EdgeLocator{From: v, Index: i}
	}
	return out, nil
}

// Validate reports whether loc resolves to an edge of g.
func (g *Graph) Validate(loc EdgeLocator) error {
	if !g.HasVertex(loc.From) || loc.Index < 0 || loc.Index >= len(g.adj[loc.From]) {
		return fmt.Errorf("locator %s: %w", loc, ErrInvalidLocator)
	}
	return nil
}

// EdgeAt resolves loc to its edge.
func (g *Graph) EdgeAt(loc EdgeLocator) (Edge, error) {
	if err := g.Validate(loc); err != nil {
		return Edge{}, fmt.Errorf("EdgeAt: %w", err)
	}
	return g.adj[loc.From][loc.Index], nil
}

// PrincipalForm returns the canonical locator for the connection loc belongs
// to. For a paired edge the half whose source has the lower vertex index
// wins; unpaired edges and self-loops are their own principal form.
//
// PrincipalForm is idempotent and maps both halves of a pair to the same
// locator.
func (g *Graph) PrincipalForm(loc EdgeLocator) (EdgeLocator, error) {
	e, err := g.EdgeAt(loc)
	if err != nil {
		return NoEdge, fmt.Errorf("PrincipalForm: %w", err)
	}
	if e.Reverse.IsNone() || loc.From <= e.To {
		return loc, nil
	}
	return e.Reverse, nil
}

// String renders the adjacency lists, one vertex per line.
func (g *Graph) String() string {
	var b strings.Builder
	for v, list := range g.adj {
		fmt.Fprintf(&b, "%d:", v)
		for _, e := range list {
			fmt.Fprintf(&b, " %d(%d)", e.To, e.Weight)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
