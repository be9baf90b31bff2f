// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// as a resumable, pull-based stepper, so a driver can observe every internal
// decision instead of only the final distances.
//
// Overview:
//
//   - NewStepper(g, start) prepares a run over an immutable *wgraph.Graph.
//   - Each Advance() performs exactly one micro-step and returns an Event.
//   - The driver chooses the pace; the stepper never runs by itself.
//   - After RunFinished, DistanceTo/PredecessorEdge/PathTo hold final answers.
//
// When to use:
//
//   - Visualizers and teaching tools that highlight the vertex being selected,
//     the edge being examined and whether a relaxation improved a distance.
//   - Test harnesses that assert on the exact order of algorithm decisions.
//   - Anything that needs plain shortest paths: Run drives a stepper to the end.
//
// Step protocol for a vertex u:
//
//  1. VertexSelected(u): u is the frontier vertex with the smallest tentative
//     distance; ties go to the lowest vertex index. If the frontier is empty,
//     RunFinished is emitted instead and the stepper becomes terminal.
//  2. For each edge (u,i) in order: EdgeExamined((u,i)), then
//     RelaxationResult(improved, newBest, prevBest). The result is emitted
//     whether or not the distance improved.
//  3. VertexFinalized(u), immediately after selection when u has no edges.
//
// Determinism:
//
//   - The same graph and start vertex always produce the same event stream.
//   - Tie-break is by lowest vertex index; relaxation uses strict "<".
//
// Concurrency:
//
//   - A Stepper is single-goroutine state and takes no locks.
//   - A *wgraph.Graph is read-only and may back many steppers at once.
//   - Cancelling a run means no longer calling Advance; nothing leaks.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned by NewStepper for a nil graph.
//   - ErrOutOfRange:
//     Returned by NewStepper and the query methods for an invalid vertex.
//   - ErrStepperExhausted:
//     Returned by every Advance after RunFinished; state is never touched.
//   - ErrUnreachable:
//     Returned by PathTo for a vertex without a path from the start.
//
// API reference:
//
//	func NewStepper(g *wgraph.Graph, start int, opts ...Option) (*Stepper, error)
//	func (s *Stepper) Advance() (Event, error)
//	func Drain(s *Stepper, fn func(Event) error) error
//	func Run(g *wgraph.Graph, start int, opts ...Option) ([]int64, []wgraph.EdgeLocator, error)
package dijkstra
