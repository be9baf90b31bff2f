// Package dijkstep is a step-by-step Dijkstra playground: instead of
// handing back a finished distance table, the search is exposed as a
// sequence of small, observable events that a caller advances one at a
// time, which makes it suitable for visualizers, tutorials and tests that
// need to see the algorithm think.
//
// 🚀 What is in the box?
//
//	• wgraph    – immutable weighted adjacency lists, stable edge locators
//	              and the principal form shared by both halves of an
//	              undirected edge
//	• dijkstra  – the pull-based Stepper (Advance → one Event), Run and
//	              Drain helpers, deterministic lowest-index tie-breaking
//	• builder   – deterministic topologies (cycle, path, star, wheel,
//	              complete, grid, random, Platonic solids incl. the cube)
//	• playback  – red/blue/white highlight state driven by events
//	• graphout  – Graphviz DOT rendering of a graph and its highlights
//	• cmd/dijkstep – CLI that plays a YAML scenario on Enter or a timer
//
// The default cube scenario (every edge weighs 5, search from 0):
//
//	bottom face 0─1─2─3─0, top face 4─5─6─7─4, verticals 0─4 1─5 2─6 3─7
//	distances   [0 5 10 5 5 10 15 10]
//
// Each Advance reports one of VertexSelected, EdgeExamined,
// RelaxationResult, VertexFinalized or RunFinished; after RunFinished every
// further call fails with dijkstra.ErrStepperExhausted.
//
//	go run ./cmd/dijkstep -scenario scenarios/cube.yaml
package dijkstep
