package config_test

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstep/builder"
	"github.com/katalvlaran/dijkstep/dijkstra"
	"github.com/katalvlaran/dijkstep/internal/config"
	"github.com/katalvlaran/dijkstep/wgraph"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadCubeScenario(t *testing.T) {
	l, err := config.NewLoader("../../scenarios/cube.yaml")
	require.NoError(t, err)
	cfg := l.Config()
	assert.Equal(t, "cube", cfg.Name)
	assert.Equal(t, config.ModeStep, cfg.Playback.Mode)
	assert.Equal(t, 500*time.Millisecond, cfg.Playback.Interval())

	g, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, 8, g.VertexCount())
	assert.Equal(t, 24, g.EdgeCount())

	dist, _, err := dijkstra.Run(g, cfg.Start)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 5, 10, 5, 5, 10, 15, 10}, dist)

	label, err := cfg.LabelFn()
	require.NoError(t, err)
	assert.Equal(t, "H", label(7))
}

func TestLoadTriangleScenario(t *testing.T) {
	l, err := config.NewLoader("../../scenarios/triangle.yaml")
	require.NoError(t, err)
	cfg := l.Config()

	g, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	e, err := g.EdgeAt(wgraph.EdgeLocator{From: 0, Index: 1})
	require.NoError(t, err)
	assert.Equal(t, wgraph.NewEdge(2, 4), e)

	label, err := cfg.LabelFn()
	require.NoError(t, err)
	assert.Equal(t, "mid", label(1))
	assert.Equal(t, "3", label(3))
	assert.Equal(t, 250*time.Millisecond, cfg.Playback.Interval())
}

func TestDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("graph: {vertices: 2, edges: [{from: 0, to: 1}]}"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultVersion, cfg.Version)
	require.NotNil(t, cfg.Graph.DefaultWeight)
	assert.Equal(t, wgraph.DefaultWeight, *cfg.Graph.DefaultWeight)
	assert.Equal(t, config.DefaultScheme, cfg.Labels.Scheme)
	assert.Equal(t, config.ModeStep, cfg.Playback.Mode)
	assert.Equal(t, config.DefaultIntervalMs, cfg.Playback.IntervalMs)

	g, err := cfg.Build()
	require.NoError(t, err)
	// Undirected by default: one link, two paired halves.
	e, err := g.EdgeAt(wgraph.EdgeLocator{From: 1, Index: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(5), e.Weight)
	assert.Equal(t, wgraph.EdgeLocator{From: 0, Index: 0}, e.Reverse)
}

func TestExplicitZeroDefaultWeightIsKept(t *testing.T) {
	for _, body := range []string{
		"graph: {default_weight: 0, vertices: 2, edges: [{from: 0, to: 1}]}",
		"graph: {default_weight: 0, topology: {kind: path, n: 2}}",
	} {
		cfg, err := config.Parse([]byte(body))
		require.NoError(t, err, body)
		g, err := cfg.Build()
		require.NoError(t, err, body)

		e, err := g.EdgeAt(wgraph.EdgeLocator{From: 0, Index: 0})
		require.NoError(t, err, body)
		assert.Zero(t, e.Weight, body)
	}

	_, err := config.Parse([]byte("graph: {default_weight: -2, vertices: 1}"))
	assert.ErrorContains(t, err, "graph.default_weight: -2 is negative")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"both sources", "graph: {vertices: 2, topology: {kind: cycle, n: 3}}", "only one of topology"},
		{"no vertices", "graph: {}", "graph.vertices"},
		{"edge out of range", "graph: {vertices: 2, edges: [{from: 0, to: 2}]}", "graph.edges[0]"},
		{"negative weight", "graph: {vertices: 2, edges: [{from: 0, to: 1, weight: -1}]}", "weight -1 is negative"},
		{"start out of range", "start: 4\ngraph: {vertices: 2}", "start: 4"},
		{"unknown kind", "graph: {topology: {kind: torus}}", "unknown \"torus\""},
		{"unknown solid", "graph: {topology: {kind: platonic, solid: sphere}}", "graph.topology.solid"},
		{"bad weights", "graph: {topology: {kind: cycle, n: 3, weights: {min: 4, max: 1}}}", "graph.topology.weights"},
		{"bad scheme", "labels: {scheme: roman}\ngraph: {vertices: 1}", "labels.scheme"},
		{"bad mode", "playback: {mode: loop}\ngraph: {vertices: 1}", "playback.mode"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestBuildTopologyErrors(t *testing.T) {
	cfg, err := config.Parse([]byte("graph: {topology: {kind: cycle, n: 2}}"))
	require.NoError(t, err)
	_, err = cfg.Build()
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	cfg, err = config.Parse([]byte("start: 9\ngraph: {topology: {kind: path, n: 3}}"))
	require.NoError(t, err)
	_, err = cfg.Build()
	assert.ErrorIs(t, err, wgraph.ErrOutOfRange)
}

func TestBuildSeededTopologyIsDeterministic(t *testing.T) {
	body := "graph: {topology: {kind: random, n: 10, p: 0.4, seed: 3, weights: {min: 1, max: 9}}}"
	a, err := config.Parse([]byte(body))
	require.NoError(t, err)
	b, err := config.Parse([]byte(body))
	require.NoError(t, err)

	ga, err := a.Build()
	require.NoError(t, err)
	gb, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, ga.String(), gb.String())
}

func TestLoaderErrors(t *testing.T) {
	_, err := config.NewLoader(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.NewLoader(writeScenario(t, "graph: [unterminated"))
	assert.ErrorContains(t, err, "parse")
}

func TestReloadNotifies(t *testing.T) {
	path := writeScenario(t, "name: a\ngraph: {vertices: 1}")
	l, err := config.NewLoader(path)
	require.NoError(t, err)

	var got atomic.Value
	l.OnChange(func(s *config.Scenario) { got.Store(s.Name) })

	require.NoError(t, os.WriteFile(path, []byte("name: b\ngraph: {vertices: 1}"), 0o644))
	cfg, err := l.Reload()
	require.NoError(t, err)
	assert.Equal(t, "b", cfg.Name)
	assert.Equal(t, "b", got.Load())
	assert.Same(t, cfg, l.Config())

	// A broken file keeps the previous scenario.
	require.NoError(t, os.WriteFile(path, []byte("graph: {}"), 0o644))
	_, err = l.Reload()
	assert.Error(t, err)
	assert.Equal(t, "b", l.Config().Name)
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := writeScenario(t, "name: first\ngraph: {vertices: 1}")
	l, err := config.NewLoader(path)
	require.NoError(t, err)

	var reloads, failures atomic.Int32
	l.OnChange(func(*config.Scenario) { reloads.Add(1) })
	l.OnError(func(error) { failures.Add(1) })

	stop, err := l.Watch()
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte("name: second\ngraph: {vertices: 2}"), 0o644))
	require.Eventually(t, func() bool {
		return l.Config().Name == "second"
	}, 5*time.Second, 20*time.Millisecond)
	assert.Positive(t, reloads.Load())

	require.NoError(t, os.WriteFile(path, []byte("graph: {vertices: -1}"), 0o644))
	require.Eventually(t, func() bool {
		return failures.Load() > 0
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, "second", l.Config().Name)

	stop()
	stop()
}
