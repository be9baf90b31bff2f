// Package dijkstra defines the event vocabulary, states, sentinel errors and
// options of the step-wise single-source shortest-path engine.
//
// A Stepper never runs on its own. Every call to Advance performs exactly one
// micro-step and returns the Event describing it:
//
//	VertexSelected(u)                    – u left the frontier
//	EdgeExamined((u,i))                  – edge i of u is about to be relaxed
//	RelaxationResult(improved, new, old) – outcome of that relaxation
//	VertexFinalized(u)                   – all of u's edges were examined
//	RunFinished                          – frontier exhausted
//
// Options:
//
//	– WithObserver: callback invoked with every event Advance returns.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrOutOfRange       if the start vertex is not a vertex of the graph.
//	– ErrStepperExhausted if Advance is called after RunFinished.
//	– ErrUnreachable      if PathTo is asked for a vertex with no path.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/dijkstep/wgraph"
)

// Sentinel errors returned by the stepper.
var (
	// ErrNilGraph indicates that a nil *wgraph.Graph was passed to NewStepper.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrOutOfRange indicates a vertex index outside the graph. It wraps
	// wgraph.ErrOutOfRange, so errors.Is matches either sentinel.
	ErrOutOfRange = fmt.Errorf("dijkstra: %w", wgraph.ErrOutOfRange)

	// ErrStepperExhausted indicates Advance was called after RunFinished.
	ErrStepperExhausted = errors.New("dijkstra: stepper exhausted")

	// ErrUnreachable indicates that no path exists from the start vertex.
	ErrUnreachable = errors.New("dijkstra: vertex unreachable")
)

// Infinity is the tentative distance of a vertex no path has reached yet.
const Infinity int64 = math.MaxInt64

// State is the position of a Stepper in its step protocol.
type State int

const (
	// StateReady: constructed, no step taken yet.
	StateReady State = iota
	// StateSelecting: the next step picks the closest frontier vertex.
	StateSelecting
	// StateExamining: the next step reports edge (u, next) as examined.
	StateExamining
	// StateRelaxing: the next step relaxes the edge just examined.
	StateRelaxing
	// StateVertexDone: every edge of u was examined; the next step finalizes u.
	StateVertexDone
	// StateFinished: terminal.
	StateFinished
)

// String returns a readable name for s.
func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateSelecting:
		return "SelectingVertex"
	case StateExamining:
		return "ExaminingEdges"
	case StateRelaxing:
		return "Relaxing"
	case StateVertexDone:
		return "VertexDone"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// EventKind tags the variant carried by an Event.
type EventKind uint8

const (
	_ EventKind = iota
	// VertexSelected: Event.Vertex left the frontier.
	VertexSelected
	// EdgeExamined: Event.Edge is about to be relaxed.
	EdgeExamined
	// RelaxationResult: Event.Improved, Event.NewBest and Event.PrevBest
	// describe the outcome of relaxing Event.Edge.
	RelaxationResult
	// VertexFinalized: Event.Vertex has had all its edges examined.
	VertexFinalized
	// RunFinished: the frontier is empty.
	RunFinished
)

// String returns the variant name.
func (k EventKind) String() string {
	switch k {
	case VertexSelected:
		return "VertexSelected"
	case EdgeExamined:
		return "EdgeExamined"
	case RelaxationResult:
		return "RelaxationResult"
	case VertexFinalized:
		return "VertexFinalized"
	case RunFinished:
		return "RunFinished"
	default:
		return "Unknown"
	}
}

// Event is one observable moment of a run. Only the fields of the variant
// named by Kind are meaningful; the others hold -1 / wgraph.NoEdge / false.
//
//	Kind              Vertex  Edge  Improved  NewBest  PrevBest
//	VertexSelected      u       –
//	EdgeExamined        –     (u,i)
//	RelaxationResult    –     (u,i)    ✓        ✓        ✓
//	VertexFinalized     u       –
//	RunFinished         –       –
type Event struct {
	Kind     EventKind
	Vertex   int
	Edge     wgraph.EdgeLocator
	Improved bool
	NewBest  wgraph.EdgeLocator // best predecessor edge of the target after relaxing
	PrevBest wgraph.EdgeLocator // best predecessor edge of the target before relaxing
}

func vertexEvent(k EventKind, v int) Event {
	return Event{Kind: k, Vertex: v, Edge: wgraph.NoEdge, NewBest: wgraph.NoEdge, PrevBest: wgraph.NoEdge}
}

func edgeExamined(loc wgraph.EdgeLocator) Event {
	return Event{Kind: EdgeExamined, Vertex: -1, Edge: loc, NewBest: wgraph.NoEdge, PrevBest: wgraph.NoEdge}
}

func relaxationResult(loc wgraph.EdgeLocator, improved bool, newBest, prevBest wgraph.EdgeLocator) Event {
	return Event{Kind: RelaxationResult, Vertex: -1, Edge: loc, Improved: improved, NewBest: newBest, PrevBest: prevBest}
}

func runFinished() Event {
	return vertexEvent(RunFinished, -1)
}

// String renders e in call notation, e.g. "EdgeExamined(0,1)".
func (e Event) String() string {
	switch e.Kind {
	case VertexSelected, VertexFinalized:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Vertex)
	case EdgeExamined:
		return fmt.Sprintf("%s%s", e.Kind, e.Edge)
	case RelaxationResult:
		return fmt.Sprintf("%s(improved=%t, new=%s, prev=%s)", e.Kind, e.Improved, e.NewBest, e.PrevBest)
	case RunFinished:
		return e.Kind.String()
	default:
		return "Event(?)"
	}
}

// Options configures a Stepper.
//
// Observers – callbacks invoked, in registration order, with every event
// Advance returns (after the state change has been applied).
type Options struct {
	Observers []func(Event)
}

// Option represents a functional option for configuring a Stepper.
type Option func(*Options)

// WithObserver registers fn to receive every event. Panics on nil.
func WithObserver(fn func(Event)) Option {
	if fn == nil {
		panic("dijkstra: WithObserver(nil)")
	}
	return func(o *Options) {
		o.Observers = append(o.Observers, fn)
	}
}

// DefaultOptions returns an Options with no observers.
func DefaultOptions() Options {
	return Options{}
}
