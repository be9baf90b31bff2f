// Package graphout renders a *wgraph.Graph as Graphviz DOT.
//
// Vertices are emitted as n0, n1, ... in index order, followed by
// their out-edges in locator order. In undirected mode a paired edge
// is emitted once, through its principal form, so the two halves of
// an undirected edge share one line and one set of attributes.
package graphout

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/dijkstep/wgraph"
)

// Dot contains options for generating a Graphviz Dot graph from a
// wgraph.Graph.
type Dot struct {
	// Name is the name given to the graph. Usually this can be
	// left blank.
	Name string

	// Undirected emits "graph" with "--" edges and writes each
	// paired edge once. Unpaired edges are still written.
	Undirected bool

	// Label returns the string to use as a label for the given
	// vertex. If nil, vertices are labeled with their indices.
	Label func(v int) string

	// NodeAttrs, if non-nil, returns a set of attributes for a
	// vertex. If this includes a "label" attribute, it overrides
	// the label returned by Label.
	NodeAttrs func(v int) []DotAttr

	// EdgeAttrs, if non-nil, returns a set of attributes for an
	// edge. If nil, edges are labeled with their weights.
	EdgeAttrs func(loc wgraph.EdgeLocator, e wgraph.Edge) []DotAttr
}

// DotAttr is an attribute for a Dot node or edge.
type DotAttr struct {
	Name string
	// Val is the value of this attribute. It may be a string
	// (which will be escaped), bool, int, int64, uint, float64 or
	// DotLiteral.
	Val any
}

// DotLiteral is a string literal that should be passed to dot
// unescaped.
type DotLiteral string

func defaultLabel(v int) string {
	return fmt.Sprintf("%d", v)
}

func defaultEdgeAttrs(_ wgraph.EdgeLocator, e wgraph.Edge) []DotAttr {
	return []DotAttr{{"label", e.Weight}}
}

// Print writes the Dot form of g to os.Stdout.
func (d Dot) Print(g *wgraph.Graph) error {
	return d.Fprint(g, os.Stdout)
}

// Sprint returns the Dot form of g as a string.
func (d Dot) Sprint(g *wgraph.Graph) string {
	var buf strings.Builder
	_ = d.Fprint(g, &buf)
	return buf.String()
}

// Fprint writes the Dot form of g to w.
func (d Dot) Fprint(g *wgraph.Graph, w io.Writer) error {
	label := d.Label
	if label == nil {
		label = defaultLabel
	}
	edgeAttrs := d.EdgeAttrs
	if edgeAttrs == nil {
		edgeAttrs = defaultEdgeAttrs
	}
	kind, arrow := "digraph", "->"
	if d.Undirected {
		kind, arrow = "graph", "--"
	}

	_, err := fmt.Fprintf(w, "%s %s {\n", kind, DotString(d.Name))
	if err != nil {
		return err
	}

	for v := 0; v < g.VertexCount(); v++ {
		// Define vertex.
		var attrList []DotAttr
		var haveLabel bool
		if d.NodeAttrs != nil {
			attrList = d.NodeAttrs(v)
			for _, attr := range attrList {
				if attr.Name == "label" {
					haveLabel = true
					break
				}
			}
		}
		if !haveLabel {
			attrList = attrList[:len(attrList):len(attrList)]
			attrList = append(attrList, DotAttr{"label", label(v)})
		}
		if _, err = fmt.Fprintf(w, "n%d%s;\n", v, formatAttrs(attrList)); err != nil {
			return err
		}

		// Connect vertex.
		locs, err := g.Locators(v)
		if err != nil {
			return err
		}
		for _, loc := range locs {
			e, err := g.EdgeAt(loc)
			if err != nil {
				return err
			}
			if d.Undirected {
				p, err := g.PrincipalForm(loc)
				if err != nil {
					return err
				}
				if p != loc {
					continue
				}
			}
			attrs := formatAttrs(edgeAttrs(loc, e))
			if _, err = fmt.Fprintf(w, "n%d %s n%d%s;\n", v, arrow, e.To, attrs); err != nil {
				return err
			}
		}
	}

	_, err = fmt.Fprintf(w, "}\n")
	return err
}

// DotString returns s as a quoted dot string.
//
// Users of the Dot type don't need to call this, since it will
// automatically quote strings. However, this is useful for building
// custom dot output.
func DotString(s string) string {
	buf := []byte{'"'}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\\', '"', '{', '}', '<', '>', '|':
			buf = append(buf, '\\', s[i])
		default:
			buf = append(buf, s[i])
		}
	}
	buf = append(buf, '"')
	return string(buf)
}

// formatAttrs formats attrs as a dot attribute set, including the
// surrounding brackets. If attrs is empty, it returns an empty
// string.
func formatAttrs(attrs []DotAttr) string {
	if len(attrs) == 0 {
		return ""
	}
	var buf strings.Builder
	buf.WriteString(" [")
	for i, attr := range attrs {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString(attr.Name)
		buf.WriteString("=")
		switch val := attr.Val.(type) {
		case string:
			buf.WriteString(DotString(val))
		case bool, int, int64, uint, float64:
			fmt.Fprintf(&buf, "%v", val)
		case DotLiteral:
			buf.WriteString(string(val))
		default:
			panic(fmt.Sprintf("dot attribute %s had unknown type %T", attr.Name, attr.Val))
		}
	}
	buf.WriteString("]")
	return buf.String()
}
