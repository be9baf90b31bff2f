// Package wgraph defines the immutable, index-addressed weighted graph that
// the step-wise shortest-path engine runs over.
//
// Vertices are dense integers in [0, VertexCount()). Every vertex owns an
// ordered list of outgoing edges, and an edge is identified by its position
// in that list: EdgeLocator{From, Index}. Locators are plain lookup keys and
// carry no reference to the graph; a locator is only meaningful against the
// graph instance that produced it.
//
// Graphs built from an undirected edge set store every connection as two
// directed edges whose Reverse fields point at each other. PrincipalForm maps
// both halves of such a pair onto one canonical locator, so observers that
// draw "one stick per connection" always address the same directed instance.
//
// Errors:
//
//	ErrOutOfRange     - vertex index outside [0, VertexCount()).
//	ErrInvalidLocator - locator does not resolve to an edge of this graph.
//	ErrNegativeWeight - a negative edge weight was supplied at construction.
package wgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrOutOfRange = errors.New("wgraph: vertex index out of range")

	// ErrInvalidLocator indicates an EdgeLocator whose source or position
	// does not resolve to an edge of the graph it was used against.
	ErrInvalidLocator = errors.New("wgraph: invalid edge locator")

	// ErrNegativeWeight indicates a negative edge weight at construction time.
	ErrNegativeWeight = errors.New("wgraph: negative edge weight")
)

// DefaultWeight is the uniform edge weight of the demo graphs and of
// scenario files that set no weight.
const DefaultWeight int64 = 5

// EdgeLocator identifies one directed edge by its source vertex and its
// position in that vertex's edge list.
//
// Two locators are equal iff both fields match, so EdgeLocator is usable as
// a map key. NoEdge stands for "no edge".
type EdgeLocator struct {
	From  int // source vertex
	Index int // position in the source vertex's edge list
}

// NoEdge is the locator value meaning "none".
var NoEdge = EdgeLocator{From: -1, Index: -1}

// IsNone reports whether l is NoEdge.
func (l EdgeLocator) IsNone() bool { return l == NoEdge }

// String renders l as "(from,index)" or "none".
func (l EdgeLocator) String() string {
	if l.IsNone() {
		return "none"
	}
	return fmt.Sprintf("(%d,%d)", l.From, l.Index)
}

// Edge is one directed, weighted edge owned by its source vertex.
type Edge struct {
	// To is the target vertex.
	To int

	// Weight is the non-negative traversal cost.
	Weight int64

	// Reverse locates the paired edge in the opposite direction when the
	// graph was built from an undirected edge set; NoEdge otherwise.
	Reverse EdgeLocator
}

// String renders e for debugging.
func (e Edge) String() string {
	return fmt.Sprintf("Edge{to=%d, w=%d, rev=%s}", e.To, e.Weight, e.Reverse)
}

// NewEdge returns an unpaired edge to `to` with weight w.
func NewEdge(to int, w int64) Edge {
	return Edge{To: to, Weight: w, Reverse: NoEdge}
}

// NewPairedEdge returns an edge to `to` with weight w whose opposite-direction
// twin is located at rev.
func NewPairedEdge(to int, w int64, rev EdgeLocator) Edge {
	return Edge{To: to, Weight: w, Reverse: rev}
}

// Link is an undirected connection U—V used by NewUndirected.
type Link struct {
	U, V   int
	Weight int64
}

// Graph is an immutable directed weighted graph in adjacency-list form.
//
// The zero value is an empty graph. A *Graph is safe for concurrent use by
// any number of readers because nothing mutates it after construction.
type Graph struct {
	adj   [][]Edge
	edges int
}
