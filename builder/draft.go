// SPDX-License-Identifier: MIT
// Package: dijkstep/builder
//
// draft.go — mutable staging area that constructors write into.
//
// A wgraph.Graph is immutable, so constructors record vertices and links in
// a draft and BuildGraph freezes it once at the end:
//   • undirected drafts become paired edges via wgraph.NewUndirected;
//   • directed drafts become one unpaired arc per link via wgraph.New.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dijkstep/wgraph"
)

type draft struct {
	directed bool
	n        int
	links    []wgraph.Link
}

func newDraft(directed bool) *draft {
	return &draft{directed: directed}
}

// addVertices reserves k new vertices and returns the index of the first.
func (d *draft) addVertices(k int) int {
	base := d.n
	d.n += k
	return base
}

// link records u—v (u→v in directed mode).
func (d *draft) link(u, v int, w int64) error {
	if u < 0 || u >= d.n || v < 0 || v >= d.n {
		return fmt.Errorf("link %d—%d with %d vertices: %w", u, v, d.n, wgraph.ErrOutOfRange)
	}
	if w < 0 {
		return fmt.Errorf("link %d—%d w=%d: %w", u, v, w, wgraph.ErrNegativeWeight)
	}
	d.links = append(d.links, wgraph.Link{U: u, V: v, Weight: w})
	return nil
}

// mirror records u—v and, in directed mode, also v→u, so symmetric shapes
// stay symmetric regardless of mode.
func (d *draft) mirror(u, v int, w int64) error {
	if err := d.link(u, v, w); err != nil {
		return err
	}
	if d.directed {
		return d.link(v, u, w)
	}
	return nil
}

// freeze converts the draft into an immutable graph.
func (d *draft) freeze() (*wgraph.Graph, error) {
	if !d.directed {
		return wgraph.NewUndirected(d.n, d.links)
	}
	adj := make([][]wgraph.Edge, d.n)
	for _, l := range d.links {
		adj[l.U] = append(adj[l.U], wgraph.NewEdge(l.V, l.Weight))
	}
	return wgraph.New(adj)
}
