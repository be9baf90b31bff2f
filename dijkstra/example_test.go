// Package dijkstra_test provides examples demonstrating how to drive the stepper.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/dijkstep/dijkstra"
	"github.com/katalvlaran/dijkstep/wgraph"
)

// ExampleStepper_Advance pulls one event at a time, the way an interactive
// driver advances on each key press.
func ExampleStepper_Advance() {
	// 1) Vertices {0,1,2}; edges 0→1, 1→0, 0→2, all weight 1.
	g, err := wgraph.New([][]wgraph.Edge{
		{wgraph.NewEdge(1, 1), wgraph.NewEdge(2, 1)},
		{wgraph.NewEdge(0, 1)},
		{},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Prepare a run from vertex 0. Nothing happens yet.
	s, err := dijkstra.NewStepper(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Advance until the run reports completion.
	for {
		ev, err := s.Advance()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(ev)
		if ev.Kind == dijkstra.RunFinished {
			break
		}
	}

	// 4) Final distances.
	for v := 0; v < g.VertexCount(); v++ {
		d, _ := s.DistanceTo(v)
		fmt.Printf("dist[%d]=%d\n", v, d)
	}
	// Output:
	// VertexSelected(0)
	// EdgeExamined(0,0)
	// RelaxationResult(improved=true, new=(0,0), prev=none)
	// EdgeExamined(0,1)
	// RelaxationResult(improved=true, new=(0,1), prev=none)
	// VertexFinalized(0)
	// VertexSelected(1)
	// EdgeExamined(1,0)
	// RelaxationResult(improved=false, new=none, prev=none)
	// VertexFinalized(1)
	// VertexSelected(2)
	// VertexFinalized(2)
	// RunFinished
	// dist[0]=0
	// dist[1]=1
	// dist[2]=1
}

// ExampleRun computes a whole run at once and rebuilds a path from the
// predecessor edges.
func ExampleRun() {
	// A—B(1), B—C(2), A—C(5) as an undirected graph.
	g, err := wgraph.NewUndirected(3, []wgraph.Link{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 0, V: 2, Weight: 5},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	s, _ := dijkstra.NewStepper(g, 0)
	if err := dijkstra.Drain(s, nil); err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := s.DistanceTo(2)
	p, _ := s.PathTo(2)
	fmt.Printf("dist[2]=%d via %v\n", d, p)
	// Output: dist[2]=3 via [(0,0) (1,1)]
}

// ExampleEvent dispatches on the event variant with an exhaustive switch.
func ExampleEvent() {
	g, _ := wgraph.NewUnweighted([][]int{{1}, {}}, wgraph.DefaultWeight)
	s, _ := dijkstra.NewStepper(g, 0)

	_ = dijkstra.Drain(s, func(ev dijkstra.Event) error {
		switch ev.Kind {
		case dijkstra.VertexSelected:
			fmt.Println("visit", ev.Vertex)
		case dijkstra.EdgeExamined:
			fmt.Println("look at", ev.Edge)
		case dijkstra.RelaxationResult:
			fmt.Println("improved:", ev.Improved)
		case dijkstra.VertexFinalized:
			fmt.Println("done with", ev.Vertex)
		case dijkstra.RunFinished:
			fmt.Println("finished")
		}
		return nil
	})
	d, _ := s.DistanceTo(1)
	fmt.Println("dist[1] =", d)
	// Output:
	// visit 0
	// look at (0,0)
	// improved: true
	// done with 0
	// visit 1
	// done with 1
	// finished
	// dist[1] = 5
}
