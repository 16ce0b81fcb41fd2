// Package matrix_test provides runnable documentation examples for the
// adjacency/incidence wrappers and the dense linear-algebra kernels.
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lkgo/core"
	"github.com/katalvlaran/lkgo/matrix"
)

// ExampleAdjacencyWorkflow builds a small weighted triangle, constructs its
// adjacency matrix, reads a neighbor list, then exports the matrix back to a
// core.Graph.
func ExampleAdjacencyWorkflow() {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddVertex("a")
	_ = g.AddVertex("b")
	_ = g.AddVertex("c")
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("b", "c", 2)
	_, _ = g.AddEdge("a", "c", 3)

	am, err := matrix.NewAdjacencyMatrix(g, matrix.NewMatrixOptions(matrix.WithWeighted()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	neighbors, err := am.Neighbors("a")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("neighbors of a:", len(neighbors))

	g2, err := am.ToGraph(matrix.WithKeepWeights())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("round-trip vertices:", len(g2.Vertices()))
	fmt.Println("round-trip edges:", len(g2.Edges()))

	// Output:
	// neighbors of a: 2
	// round-trip vertices: 3
	// round-trip edges: 3
}

// ExampleIncidenceWorkflow builds the path a-b-c and inspects the
// vertex-edge incidence matrix.
func ExampleIncidenceWorkflow() {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddVertex("a")
	_ = g.AddVertex("b")
	_ = g.AddVertex("c")
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("b", "c", 1)

	im, err := matrix.NewIncidenceMatrix(g, matrix.NewMatrixOptions(matrix.WithWeighted()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	n, err := im.VertexCount()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	m, err := im.EdgeCount()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("vertices:", n)
	fmt.Println("edges:", m)

	row, err := im.VertexIncidence("b")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	var incident int
	for _, v := range row {
		if v != 0 {
			incident++
		}
	}
	fmt.Println("incident edges at b:", incident)

	// Output:
	// vertices: 3
	// edges: 2
	// incident edges at b: 2
}

// ExampleMatrixMethods demonstrates the universal Add/Transpose/Scale
// kernels over Dense matrices.
func ExampleMatrixMethods() {
	a, _ := matrix.NewDense(2, 2)
	_ = a.Set(0, 0, 1)
	_ = a.Set(0, 1, 2)
	_ = a.Set(1, 0, 3)
	_ = a.Set(1, 1, 4)

	doubled, err := matrix.Scale(a, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ := doubled.At(1, 1)
	fmt.Println("scaled (1,1):", v)

	t, err := matrix.Transpose(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ = t.At(0, 1)
	fmt.Println("transposed (0,1):", v)

	sum, err := matrix.Add(a, t)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ = sum.At(0, 1)
	fmt.Println("symmetrized sum (0,1):", v)

	// Output:
	// scaled (1,1): 8
	// transposed (0,1): 3
	// symmetrized sum (0,1): 5
}
