// Package dijkstra implements Dijkstra's shortest-path algorithm as a
// pull-based stepper over an immutable wgraph.Graph.
//
// Complexity (whole run):
//
//   - Time:  O((V + E) log V)
//   - Each vertex is selected once: V PopMin calls on an ordered frontier.
//   - Each improving relaxation re-keys one frontier entry: up to E Delete+Set.
//   - Each Advance call does O(log V) work at most.
//   - Space: O(V)
//   - dist, prev and frontier membership per vertex.
//
// Notes on implementation choices:
//
//   - The frontier starts with every vertex, unreachable ones included, so
//     the run always ends with V selections and the event stream has the
//     same shape regardless of connectivity.
//   - The frontier is ordered by (distance, vertex index); ties go to the
//     lowest index. This is part of the contract, not an accident of the
//     scan order.
//   - Relaxation uses strict "<": an equal-length alternative never replaces
//     the recorded predecessor edge.
//   - Distances saturate at Infinity instead of overflowing.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/dijkstep/wgraph"
)

// Stepper holds the mutable state of one run from a start vertex.
//
// A Stepper is not safe for concurrent use; callers that share one must
// serialize Advance. The graph is only read, so any number of steppers may
// run over the same *wgraph.Graph at once.
type Stepper struct {
	g       *wgraph.Graph
	start   int
	options Options

	dist     []int64              // vertex → tentative distance (Infinity if unreached)
	prev     []wgraph.EdgeLocator // vertex → best predecessor edge (NoEdge if none)
	frontier *frontier

	state State
	u     int           // vertex being processed
	edges []wgraph.Edge // u's outgoing edges
	next  int           // index of the edge to examine / relax
	steps int
}

// NewStepper prepares a run over g from start. No work is done until the
// first Advance.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrOutOfRange if start is not a vertex of g.
func NewStepper(g *wgraph.Graph, start int, opts ...Option) (*Stepper, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %d not in [0,%d)", ErrOutOfRange, start, g.VertexCount())
	}

	n := g.VertexCount()
	s := &Stepper{
		g:       g,
		start:   start,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]wgraph.EdgeLocator, n),
		state:   StateReady,
		u:       -1,
	}
	for v := range s.dist {
		s.dist[v] = Infinity
		s.prev[v] = wgraph.NoEdge
	}
	s.dist[start] = 0
	s.frontier = newFrontier(s.dist)

	return s, nil
}

// Advance performs exactly one micro-step and returns the event describing
// it. After RunFinished has been returned, every further call fails with
// ErrStepperExhausted and leaves the stepper untouched.
func (s *Stepper) Advance() (Event, error) {
	var ev Event
	switch s.state {
	case StateReady, StateSelecting:
		ev = s.selectVertex()
	case StateExamining:
		ev = edgeExamined(wgraph.EdgeLocator{From: s.u, Index: s.next})
		s.state = StateRelaxing
	case StateRelaxing:
		ev = s.relax()
	case StateVertexDone:
		ev = vertexEvent(VertexFinalized, s.u)
		s.u, s.edges, s.next = -1, nil, 0
		s.state = StateSelecting
	case StateFinished:
		return Event{}, fmt.Errorf("Advance after %d steps: %w", s.steps, ErrStepperExhausted)
	default:
		return Event{}, fmt.Errorf("Advance: unknown state %d", s.state)
	}

	s.steps++
	for _, fn := range s.options.Observers {
		fn(ev)
	}
	return ev, nil
}

// selectVertex pops the closest frontier vertex, or finishes the run.
func (s *Stepper) selectVertex() Event {
	u, ok := s.frontier.PopMin()
	if !ok {
		s.state = StateFinished
		return runFinished()
	}

	// u is valid, so EdgesOf cannot fail.
	s.edges, _ = s.g.EdgesOf(u)
	s.u, s.next = u, 0
	if len(s.edges) == 0 {
		s.state = StateVertexDone
	} else {
		s.state = StateExamining
	}
	return vertexEvent(VertexSelected, u)
}

// relax tries to improve the target of edge (u, next) and moves the cursor on.
func (s *Stepper) relax() Event {
	loc := wgraph.EdgeLocator{From: s.u, Index: s.next}
	e := s.edges[s.next]
	old := s.prev[e.To]

	improved := false
	if alt := addDist(s.dist[s.u], e.Weight); alt < s.dist[e.To] {
		s.frontier.Decrease(e.To, s.dist[e.To], alt)
		s.dist[e.To] = alt
		s.prev[e.To] = loc
		improved = true
	}

	s.next++
	if s.next < len(s.edges) {
		s.state = StateExamining
	} else {
		s.state = StateVertexDone
	}
	return relaxationResult(loc, improved, s.prev[e.To], old)
}

// addDist returns d+w, saturating at Infinity. An Infinity d stays Infinity.
func addDist(d, w int64) int64 {
	if d == Infinity || w >= Infinity-d {
		return Infinity
	}
	return d + w
}

// State returns the current protocol state.
func (s *Stepper) State() State { return s.state }

// Done reports whether RunFinished has been emitted.
func (s *Stepper) Done() bool { return s.state == StateFinished }

// Steps returns how many events Advance has produced.
func (s *Stepper) Steps() int { return s.steps }

// Start returns the start vertex.
func (s *Stepper) Start() int { return s.start }

// Graph returns the graph the stepper runs over.
func (s *Stepper) Graph() *wgraph.Graph { return s.g }

// Current returns the vertex being processed, or -1 between vertices.
func (s *Stepper) Current() int { return s.u }

// DistanceTo returns v's tentative distance, Infinity meaning unreachable.
// After RunFinished the value is the exact shortest-path distance.
func (s *Stepper) DistanceTo(v int) (int64, error) {
	if !s.g.HasVertex(v) {
		return 0, fmt.Errorf("DistanceTo(%d): %w", v, ErrOutOfRange)
	}
	return s.dist[v], nil
}

// PredecessorEdge returns the best known edge into v, or wgraph.NoEdge for
// the start vertex and for vertices not reached.
func (s *Stepper) PredecessorEdge(v int) (wgraph.EdgeLocator, error) {
	if !s.g.HasVertex(v) {
		return wgraph.NoEdge, fmt.Errorf("PredecessorEdge(%d): %w", v, ErrOutOfRange)
	}
	return s.prev[v], nil
}

// PathTo walks predecessor edges back from v and returns them in start→v
// order. The path to the start vertex is empty.
//
// Errors:
//   - ErrOutOfRange if v is not a vertex.
//   - ErrUnreachable if v has no recorded path.
func (s *Stepper) PathTo(v int) ([]wgraph.EdgeLocator, error) {
	if !s.g.HasVertex(v) {
		return nil, fmt.Errorf("PathTo(%d): %w", v, ErrOutOfRange)
	}
	if s.dist[v] == Infinity {
		return nil, fmt.Errorf("PathTo(%d): %w", v, ErrUnreachable)
	}

	var path []wgraph.EdgeLocator
	// Every hop strictly walks towards the start, so at most V-1 hops.
	for cur, hops := v, 0; cur != s.start; hops++ {
		loc := s.prev[cur]
		if loc.IsNone() || hops >= s.g.VertexCount() {
			return nil, fmt.Errorf("PathTo(%d): broken predecessor chain at %d: %w", v, cur, ErrUnreachable)
		}
		path = append(path, loc)
		cur = loc.From
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Distances returns a copy of every vertex's tentative distance.
func (s *Stepper) Distances() []int64 {
	return append([]int64(nil), s.dist...)
}

// Predecessors returns a copy of every vertex's best predecessor edge.
func (s *Stepper) Predecessors() []wgraph.EdgeLocator {
	return append([]wgraph.EdgeLocator(nil), s.prev...)
}

// Drain advances s until RunFinished, handing every event to fn. It stops
// early and returns fn's error if fn fails. Draining an already finished
// stepper returns ErrStepperExhausted.
func Drain(s *Stepper, fn func(Event) error) error {
	for {
		ev, err := s.Advance()
		if err != nil {
			return err
		}
		if fn != nil {
			if err := fn(ev); err != nil {
				return err
			}
		}
		if ev.Kind == RunFinished {
			return nil
		}
	}
}

// Run computes every shortest distance from start in one call, returning
// the distance and predecessor-edge tables indexed by vertex.
func Run(g *wgraph.Graph, start int, opts ...Option) ([]int64, []wgraph.EdgeLocator, error) {
	s, err := NewStepper(g, start, opts...)
	if err != nil {
		return nil, nil, err
	}
	if err := Drain(s, nil); err != nil {
		return nil, nil, err
	}
	return s.dist, s.prev, nil
}
