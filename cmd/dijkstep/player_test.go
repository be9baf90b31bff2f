package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstep/internal/config"
)

func TestOverrides(t *testing.T) {
	pc := config.PlaybackConf{Mode: config.ModeStep, IntervalMs: 500, DotPath: "a.dot"}

	mode, interval, dot := playbackOverrides{}.apply(pc)
	assert.Equal(t, config.ModeStep, mode)
	assert.Equal(t, 500*time.Millisecond, interval)
	assert.Equal(t, "a.dot", dot)

	mode, interval, dot = playbackOverrides{mode: config.ModeAuto, interval: time.Second, dotPath: "b.dot"}.apply(pc)
	assert.Equal(t, config.ModeAuto, mode)
	assert.Equal(t, time.Second, interval)
	assert.Equal(t, "b.dot", dot)

	assert.Error(t, playbackOverrides{mode: "loop"}.validate())
	assert.Error(t, playbackOverrides{interval: -time.Second}.validate())
	assert.NoError(t, playbackOverrides{}.validate())
}

func TestRunAutoWritesDot(t *testing.T) {
	sc, err := config.Parse([]byte("name: cube\ngraph: {topology: {kind: platonic}}\nplayback: {mode: auto, interval_ms: 1}"))
	require.NoError(t, err)

	dot := filepath.Join(t.TempDir(), "run.dot")
	p := &player{overrides: playbackOverrides{dotPath: dot}}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	next, err := p.run(ctx, sc)
	require.NoError(t, err)
	assert.Nil(t, next)

	data, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.Contains(t, string(data), "graph \"\" {")
	assert.Contains(t, string(data), `fillcolor="blue"`)
}

func TestRunStepModeFastForwardsOnClosedInput(t *testing.T) {
	sc, err := config.Parse([]byte("graph: {vertices: 2, edges: [{from: 0, to: 1}]}"))
	require.NoError(t, err)

	enter := make(chan struct{})
	close(enter)
	p := &player{enter: enter}
	next, err := p.run(context.Background(), sc)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestRunAutoModeIgnoresEnter(t *testing.T) {
	sc, err := config.Parse([]byte("graph: {vertices: 1}\nplayback: {mode: auto, interval_ms: 3600000}"))
	require.NoError(t, err)

	enter := make(chan struct{}, 10)
	for i := 0; i < cap(enter); i++ {
		enter <- struct{}{}
	}
	p := &player{enter: enter}
	assert.Nil(t, p.input(config.ModeAuto))
	assert.NotNil(t, p.input(config.ModeStep))

	// Presses would finish the run at once; the hour-long timer must not.
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err = p.run(ctx, sc)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Len(t, enter, cap(enter))
}

func TestRunRestartsOnReload(t *testing.T) {
	sc, err := config.Parse([]byte("name: first\ngraph: {vertices: 2, edges: [{from: 0, to: 1}]}"))
	require.NoError(t, err)
	second, err := config.Parse([]byte("name: second\ngraph: {vertices: 1}"))
	require.NoError(t, err)

	reloads := make(chan *config.Scenario, 1)
	reloads <- second
	// No input and no timer: the only ready case is the reload.
	p := &player{reloads: reloads}
	next, err := p.run(context.Background(), sc)
	require.NoError(t, err)
	assert.Same(t, second, next)
}

func TestRunStopsOnCancel(t *testing.T) {
	sc, err := config.Parse([]byte("graph: {vertices: 1}"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = (&player{}).run(ctx, sc)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatDist(t *testing.T) {
	assert.Equal(t, "inf", formatDist(int64(^uint64(0)>>1)))
	assert.Equal(t, "7", formatDist(7))
}
