package config

import (
	"fmt"
	"time"

	"github.com/katalvlaran/dijkstep/builder"
	"github.com/katalvlaran/dijkstep/wgraph"
)

// Build materializes the scenario's graph and checks the start vertex
// against it.
func (s *Scenario) Build() (*wgraph.Graph, error) {
	var (
		g   *wgraph.Graph
		err error
	)
	if s.Graph.Topology != nil {
		g, err = s.Graph.buildTopology()
	} else {
		g, err = s.Graph.buildEdges()
	}
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	if !g.HasVertex(s.Start) {
		return nil, fmt.Errorf("scenario %q: start %d of %d vertices: %w", s.Name, s.Start, g.VertexCount(), wgraph.ErrOutOfRange)
	}
	return g, nil
}

func (gc GraphConf) weight(e EdgeConf) int64 {
	if e.Weight != nil {
		return *e.Weight
	}
	return gc.defaultWeight()
}

// defaultWeight is the configured uniform weight, or wgraph.DefaultWeight
// when the scenario was built by hand without applyDefaults.
func (gc GraphConf) defaultWeight() int64 {
	if gc.DefaultWeight != nil {
		return *gc.DefaultWeight
	}
	return wgraph.DefaultWeight
}

func (gc GraphConf) buildEdges() (*wgraph.Graph, error) {
	if !gc.Directed {
		links := make([]wgraph.Link, len(gc.Edges))
		for i, e := range gc.Edges {
			links[i] = wgraph.Link{U: e.From, V: e.To, Weight: gc.weight(e)}
		}
		return wgraph.NewUndirected(gc.Vertices, links)
	}
	adj := make([][]wgraph.Edge, gc.Vertices)
	for _, e := range gc.Edges {
		if e.From < 0 || e.From >= gc.Vertices {
			return nil, fmt.Errorf("edge %d→%d: %w", e.From, e.To, wgraph.ErrOutOfRange)
		}
		adj[e.From] = append(adj[e.From], wgraph.NewEdge(e.To, gc.weight(e)))
	}
	return wgraph.New(adj)
}

func (gc GraphConf) buildTopology() (*wgraph.Graph, error) {
	t := gc.Topology
	opts := []builder.BuilderOption{builder.WithSeed(t.Seed)}
	if t.Weights != nil {
		opts = append(opts, builder.WithUniformWeight(t.Weights.Min, t.Weights.Max))
	} else {
		opts = append(opts, builder.WithConstantWeight(gc.defaultWeight()))
	}
	if gc.Directed {
		opts = append(opts, builder.WithDirected())
	}

	var ctor builder.Constructor
	switch t.Kind {
	case "cycle":
		ctor = builder.Cycle(t.N)
	case "path":
		ctor = builder.Path(t.N)
	case "star":
		ctor = builder.Star(t.N)
	case "wheel":
		ctor = builder.Wheel(t.N)
	case "complete":
		ctor = builder.Complete(t.N)
	case "grid":
		ctor = builder.Grid(t.Rows, t.Cols)
	case "random":
		ctor = builder.RandomSparse(t.N, t.P)
	case "platonic":
		name, ok := builder.ParsePlatonicName(t.Solid)
		if !ok {
			return nil, fmt.Errorf("solid %q: %w", t.Solid, builder.ErrOptionViolation)
		}
		ctor = builder.PlatonicSolid(name, t.Center)
	default:
		return nil, fmt.Errorf("topology %q: %w", t.Kind, builder.ErrOptionViolation)
	}
	return builder.BuildGraph(opts, ctor)
}

// LabelFn resolves the scenario's vertex naming.
func (s *Scenario) LabelFn() (builder.LabelFn, error) {
	scheme, err := builder.LabelScheme(s.Labels.Scheme)
	if err != nil {
		return nil, err
	}
	if len(s.Labels.Names) == 0 {
		return scheme, nil
	}
	names := builder.ListLabelFn(s.Labels.Names)
	return func(v int) string {
		if v >= 0 && v < len(s.Labels.Names) && s.Labels.Names[v] != "" {
			return names(v)
		}
		return scheme(v)
	}, nil
}

// Interval returns the auto-play delay between steps.
func (p PlaybackConf) Interval() time.Duration {
	return time.Duration(p.IntervalMs) * time.Millisecond
}
