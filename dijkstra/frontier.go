package dijkstra

import "github.com/tidwall/btree"

// frontierItem is a frontier vertex keyed by its tentative distance.
type frontierItem struct {
	dist   int64
	vertex int
}

// frontierLess orders by distance, then by vertex index. The minimum is
// therefore the closest vertex, and among equally close vertices the one
// with the lowest index.
func frontierLess(a, b frontierItem) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.vertex < b.vertex
}

// frontier is the set of vertices whose distance is not final yet.
//
// Each member is stored once under its current distance; decrease moves it
// to its new key. Not safe for concurrent use.
type frontier struct {
	tree *btree.BTreeG[frontierItem]
	in   []bool
}

// newFrontier returns a frontier holding every vertex in [0, n), keyed by dist.
func newFrontier(dist []int64) *frontier {
	f := &frontier{
		tree: btree.NewBTreeGOptions(frontierLess, btree.Options{NoLocks: true}),
		in:   make([]bool, len(dist)),
	}
	for v, d := range dist {
		f.tree.Set(frontierItem{dist: d, vertex: v})
		f.in[v] = true
	}
	return f
}

// Len returns the number of vertices left.
func (f *frontier) Len() int { return f.tree.Len() }

// Contains reports whether v is still in the frontier.
func (f *frontier) Contains(v int) bool { return f.in[v] }

// PopMin removes and returns the closest vertex.
func (f *frontier) PopMin() (int, bool) {
	item, ok := f.tree.PopMin()
	if !ok {
		return -1, false
	}
	f.in[item.vertex] = false
	return item.vertex, true
}

// Decrease re-keys v from oldDist to newDist. It is a no-op when v has
// already left the frontier.
func (f *frontier) Decrease(v int, oldDist, newDist int64) {
	if !f.in[v] {
		return
	}
	f.tree.Delete(frontierItem{dist: oldDist, vertex: v})
	f.tree.Set(frontierItem{dist: newDist, vertex: v})
}
