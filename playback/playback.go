// Package playback turns the stepper's event stream into highlight state
// for a rendered graph.
//
// The colouring follows a fixed protocol:
//
//   - VertexSelected paints the vertex red, VertexFinalized paints it blue.
//   - EdgeExamined paints the edge red. On the following event that edge
//     is reset to white before the new event is applied.
//   - RelaxationResult resets the previous best edge into the target to
//     white and paints the current best edge blue.
//
// Edge colours are stored against the principal form of a locator, so both
// halves of an undirected edge always share one colour.
package playback

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dijkstep/dijkstra"
	"github.com/katalvlaran/dijkstep/graphout"
	"github.com/katalvlaran/dijkstep/wgraph"
)

// Color is a highlight colour.
type Color uint8

const (
	// White is the resting colour of every vertex and edge.
	White Color = iota
	Red
	Blue
)

// String returns the Graphviz colour name.
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// ErrNilGraph is returned by New for a nil graph.
var ErrNilGraph = errors.New("playback: graph is nil")

// Highlighter accumulates colours for one run over one graph.
// It is not safe for concurrent use.
type Highlighter struct {
	g        *wgraph.Graph
	vertices []Color
	edges    map[wgraph.EdgeLocator]Color
	examined wgraph.EdgeLocator
	// wasColor is the colour the examined edge's slot held before it turned
	// red. Undirected halves share a slot, so this may be a blue best edge.
	wasColor Color
	applied  int
}

// New returns a Highlighter with everything white.
func New(g *wgraph.Graph) (*Highlighter, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	return &Highlighter{
		g:        g,
		vertices: make([]Color, g.VertexCount()),
		edges:    make(map[wgraph.EdgeLocator]Color),
		examined: wgraph.NoEdge,
	}, nil
}

// Apply folds one event into the highlight state.
func (h *Highlighter) Apply(ev dijkstra.Event) error {
	if !h.examined.IsNone() {
		if err := h.paintEdge(h.examined, h.wasColor); err != nil {
			return err
		}
		h.examined, h.wasColor = wgraph.NoEdge, White
	}

	switch ev.Kind {
	case dijkstra.VertexSelected:
		if err := h.paintVertex(ev.Vertex, Red); err != nil {
			return err
		}
	case dijkstra.VertexFinalized:
		if err := h.paintVertex(ev.Vertex, Blue); err != nil {
			return err
		}
	case dijkstra.EdgeExamined:
		was := h.EdgeColor(ev.Edge)
		if err := h.paintEdge(ev.Edge, Red); err != nil {
			return err
		}
		h.examined, h.wasColor = ev.Edge, was
	case dijkstra.RelaxationResult:
		if !ev.PrevBest.IsNone() {
			if err := h.paintEdge(ev.PrevBest, White); err != nil {
				return err
			}
		}
		if !ev.NewBest.IsNone() {
			if err := h.paintEdge(ev.NewBest, Blue); err != nil {
				return err
			}
		}
	case dijkstra.RunFinished:
	default:
		return fmt.Errorf("playback: Apply(%s): unknown event kind", ev)
	}
	h.applied++
	return nil
}

// Observer adapts the highlighter to dijkstra.WithObserver. Errors cannot
// surface through an observer, so they are handed to onErr when non-nil.
func (h *Highlighter) Observer(onErr func(error)) func(dijkstra.Event) {
	return func(ev dijkstra.Event) {
		if err := h.Apply(ev); err != nil && onErr != nil {
			onErr(err)
		}
	}
}

func (h *Highlighter) paintVertex(v int, c Color) error {
	if v < 0 || v >= len(h.vertices) {
		return fmt.Errorf("playback: vertex %d: %w", v, wgraph.ErrOutOfRange)
	}
	h.vertices[v] = c
	return nil
}

func (h *Highlighter) paintEdge(loc wgraph.EdgeLocator, c Color) error {
	p, err := h.g.PrincipalForm(loc)
	if err != nil {
		return fmt.Errorf("playback: edge %s: %w", loc, err)
	}
	if c == White {
		delete(h.edges, p)
		return nil
	}
	h.edges[p] = c
	return nil
}

// VertexColor returns the colour of v; out-of-range vertices are White.
func (h *Highlighter) VertexColor(v int) Color {
	if v < 0 || v >= len(h.vertices) {
		return White
	}
	return h.vertices[v]
}

// EdgeColor returns the colour shared by loc and its reverse.
func (h *Highlighter) EdgeColor(loc wgraph.EdgeLocator) Color {
	p, err := h.g.PrincipalForm(loc)
	if err != nil {
		return White
	}
	return h.edges[p]
}

// Applied returns how many events have been folded in.
func (h *Highlighter) Applied() int { return h.applied }

// Reset paints everything white again.
func (h *Highlighter) Reset() {
	clear(h.vertices)
	clear(h.edges)
	h.examined, h.wasColor = wgraph.NoEdge, White
	h.applied = 0
}

// Dot returns a DOT writer that renders the current colours. White
// elements are drawn without a colour attribute.
func (h *Highlighter) Dot(label func(int) string) graphout.Dot {
	return graphout.Dot{
		Undirected: h.undirected(),
		Label:      label,
		NodeAttrs: func(v int) []graphout.DotAttr {
			if c := h.VertexColor(v); c != White {
				return []graphout.DotAttr{{Name: "color", Val: c.String()}, {Name: "style", Val: graphout.DotLiteral("filled")}, {Name: "fillcolor", Val: c.String()}}
			}
			return nil
		},
		EdgeAttrs: func(loc wgraph.EdgeLocator, e wgraph.Edge) []graphout.DotAttr {
			attrs := []graphout.DotAttr{{Name: "label", Val: e.Weight}}
			if c := h.EdgeColor(loc); c != White {
				attrs = append(attrs, graphout.DotAttr{Name: "color", Val: c.String()})
			}
			return attrs
		},
	}
}

// undirected reports whether every edge of the graph is paired.
func (h *Highlighter) undirected() bool {
	if h.g.EdgeCount() == 0 {
		return false
	}
	for v := 0; v < h.g.VertexCount(); v++ {
		edges, _ := h.g.EdgesOf(v)
		for _, e := range edges {
			if e.Reverse.IsNone() {
				return false
			}
		}
	}
	return true
}
