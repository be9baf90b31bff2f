// Package builder_test contains functional tests for all Constructor
// implementations, verifying topology, counts, pairing and weights.
package builder_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstep/builder"
	"github.com/katalvlaran/dijkstep/wgraph"
)

// hasEdge reports whether u→v exists and returns its weight.
func hasEdge(t *testing.T, g *wgraph.Graph, u, v int) (int64, bool) {
	t.Helper()
	edges, err := g.EdgesOf(u)
	require.NoError(t, err)
	for _, e := range edges {
		if e.To == v {
			return e.Weight, true
		}
	}
	return 0, false
}

// degrees returns the out-degree of every vertex.
func degrees(t *testing.T, g *wgraph.Graph) []int {
	t.Helper()
	out := make([]int, g.VertexCount())
	for v := range out {
		d, err := g.OutDegree(v)
		require.NoError(t, err)
		out[v] = d
	}
	return out
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	// Undirected: every link yields two directed edges.
	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int // directed edge count
		check func(t *testing.T, g *wgraph.Graph)
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 10,
			check: func(t *testing.T, g *wgraph.Graph) {
				for i := 0; i < 5; i++ {
					w, ok := hasEdge(t, g, i, (i+1)%5)
					assert.True(t, ok, "missing %d→%d", i, (i+1)%5)
					assert.Equal(t, builder.DefaultEdgeWeight, w)
				}
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 6,
			check: func(t *testing.T, g *wgraph.Graph) {
				assert.Equal(t, []int{1, 2, 2, 1}, degrees(t, g))
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 8,
			check: func(t *testing.T, g *wgraph.Graph) {
				assert.Equal(t, []int{4, 1, 1, 1, 1}, degrees(t, g))
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 16,
			check: func(t *testing.T, g *wgraph.Graph) {
				assert.Equal(t, []int{4, 3, 3, 3, 3}, degrees(t, g))
				_, ok := hasEdge(t, g, 4, 1)
				assert.True(t, ok, "ring must wrap 4—1")
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 12,
			check: func(t *testing.T, g *wgraph.Graph) {
				assert.Equal(t, []int{3, 3, 3, 3}, degrees(t, g))
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 14,
			check: func(t *testing.T, g *wgraph.Graph) {
				_, ok := hasEdge(t, g, builder.GridIndex(0, 1, 3), builder.GridIndex(1, 1, 3))
				assert.True(t, ok)
				assert.Equal(t, []int{2, 3, 2, 2, 3, 2}, degrees(t, g))
			},
		},
		{
			name: "Cube", ctor: builder.PlatonicSolid(builder.Cube, false), wantV: 8, wantE: 24,
			check: func(t *testing.T, g *wgraph.Graph) {
				for _, d := range degrees(t, g) {
					assert.Equal(t, 3, d)
				}
			},
		},
		{
			name: "Icosahedron+hub", ctor: builder.PlatonicSolid(builder.Icosahedron, true), wantV: 13, wantE: 84,
			check: func(t *testing.T, g *wgraph.Graph) {
				d, err := g.OutDegree(12)
				require.NoError(t, err)
				assert.Equal(t, 12, d)
			},
		},
		{
			name: "RandomSparse(p=1)", ctor: builder.RandomSparse(4, 1), wantV: 4, wantE: 12,
		},
		{
			name: "RandomSparse(p=0)", ctor: builder.RandomSparse(4, 0), wantV: 4, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.Build(tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_UndirectedEdgesArePaired(t *testing.T) {
	t.Parallel()
	g, err := builder.Build(builder.PlatonicSolid(builder.Dodecahedron, false))
	require.NoError(t, err)

	for v := 0; v < g.VertexCount(); v++ {
		locs, err := g.Locators(v)
		require.NoError(t, err)
		for _, loc := range locs {
			e, err := g.EdgeAt(loc)
			require.NoError(t, err)
			require.False(t, e.Reverse.IsNone(), "edge %s is unpaired", loc)

			back, err := g.EdgeAt(e.Reverse)
			require.NoError(t, err)
			assert.Equal(t, v, back.To)
			assert.Equal(t, loc, back.Reverse)

			p1, _ := g.PrincipalForm(loc)
			p2, _ := g.PrincipalForm(e.Reverse)
			assert.Equal(t, p1, p2)
		}
	}
}

func TestBuilders_CubeNeighbourOrder(t *testing.T) {
	t.Parallel()
	want := [][]int{
		{1, 3, 4}, {0, 2, 5}, {1, 3, 6}, {0, 2, 7},
		{0, 5, 7}, {1, 4, 6}, {2, 5, 7}, {3, 4, 6},
	}
	for _, directed := range []bool{false, true} {
		var opts []builder.BuilderOption
		if directed {
			opts = append(opts, builder.WithDirected())
		}
		g, err := builder.BuildGraph(opts, builder.PlatonicSolid(builder.Cube, false))
		require.NoError(t, err)
		for v, nbrs := range want {
			edges, err := g.EdgesOf(v)
			require.NoError(t, err)
			got := make([]int, len(edges))
			for i, e := range edges {
				got[i] = e.To
			}
			assert.Equal(t, nbrs, got, "vertex %d directed=%v", v, directed)
		}
	}
}

func TestBuilders_DirectedMode(t *testing.T) {
	t.Parallel()

	// Cycle is oriented; symmetric shapes are mirrored as two unpaired arcs.
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithDirected()},
		builder.Cycle(3), builder.Star(3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 3+4, g.EdgeCount())

	_, ok := hasEdge(t, g, 1, 0)
	assert.False(t, ok, "directed cycle must not contain 1→0")

	_, ok = hasEdge(t, g, 4, 3)
	assert.True(t, ok, "star spokes are mirrored")

	e, err := g.EdgeAt(wgraph.EdgeLocator{From: 0, Index: 0})
	require.NoError(t, err)
	assert.True(t, e.Reverse.IsNone())
}

func TestBuilders_DisjointUnionOffsets(t *testing.T) {
	t.Parallel()
	g, err := builder.Build(builder.Path(2), builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())

	_, ok := hasEdge(t, g, 4, 2)
	assert.True(t, ok, "cycle vertices start after the path")
	_, ok = hasEdge(t, g, 1, 2)
	assert.False(t, ok, "components stay disjoint")
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"Platonic(unknown)", builder.PlatonicSolid(builder.PlatonicName(42), false), builder.ErrOptionViolation},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.Build(tc.ctor)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()
	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 9)}
	a, err := builder.BuildGraph(opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	opts = []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 9)}
	b, err := builder.BuildGraph(opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestWeightFns(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, int64(9), builder.ConstantWeightFn(9)(rng))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(1, 3)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.NormalWeightFn(10, 2)(nil))

	u := builder.UniformWeightFn(2, 4)
	n := builder.NormalWeightFn(0, 5)
	for i := 0; i < 200; i++ {
		w := u(rng)
		assert.GreaterOrEqual(t, w, int64(2))
		assert.LessOrEqual(t, w, int64(4))
		assert.GreaterOrEqual(t, n(rng), int64(0))
	}

	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.Panics(t, func() { builder.NormalWeightFn(0, -1) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestLabels(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "7", builder.DefaultLabelFn(7))
	assert.Equal(t, "A", builder.SymbolLabelFn(0))
	assert.Equal(t, "AA", builder.SymbolLabelFn(26))
	assert.Equal(t, "AB", builder.ExcelColumnLabelFn(27))
	assert.Equal(t, "z", builder.AlphanumericLabelFn(35))
	assert.Equal(t, "ff", builder.HexLabelFn(255))
	assert.Equal(t, "v3", builder.PrefixLabelFn("v")(3))

	names := builder.ListLabelFn([]string{"src", "", "dst"})
	assert.Equal(t, "src", names(0))
	assert.Equal(t, "1", names(1))
	assert.Equal(t, "3", names(3))

	fn, err := builder.LabelScheme("prefix:n")
	require.NoError(t, err)
	assert.Equal(t, "n2", fn(2))
	fn, err = builder.LabelScheme("Symbol")
	require.NoError(t, err)
	assert.Equal(t, "C", fn(2))
	_, err = builder.LabelScheme("roman")
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
}

func TestParsePlatonicName(t *testing.T) {
	t.Parallel()
	p, ok := builder.ParsePlatonicName(" cube ")
	require.True(t, ok)
	assert.Equal(t, builder.Cube, p)
	_, ok = builder.ParsePlatonicName("sphere")
	assert.False(t, ok)
}
