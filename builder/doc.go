// Package builder provides reusable “functional‐options”‐style topology
// constructors that produce immutable *wgraph.Graph values for the stepper
// and the demo scenarios.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(opts, cons...): runs constructors against one draft and
//     freezes it. Constructors compose as a disjoint union, each one
//     appending its vertices after those already present.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, weight function and directed mode.
//   - Topologies:
//     – Cycle, Path, Star, Wheel, Complete, Grid, RandomSparse, PlatonicSolid.
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight (5).
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), rounded and clipped.
//   - Vertex labels (LabelFn implementations), used only for rendering:
//     – DefaultLabelFn, SymbolLabelFn, ExcelColumnLabelFn, AlphanumericLabelFn,
//     HexLabelFn, PrefixLabelFn, ListLabelFn and LabelScheme lookup.
//
// Guarantees:
//
//   - Undirected (default) graphs are built from paired edges, so every edge
//     has a principal form and highlight state can be shared between halves.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Constructors never panic; they return wrapped sentinel errors.
//   - Deterministic: same constructors, options and seed ⇒ identical graphs.
//
// Example (the cube demo graph, every edge weight 5):
//
//	g, err := builder.BuildGraph(nil, builder.PlatonicSolid(builder.Cube, false))
package builder
