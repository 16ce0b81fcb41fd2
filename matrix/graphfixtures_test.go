// Package matrix_test - small deterministic core.Graph fixtures for adjacency
// and incidence tests. These replace the generator package the rest of the
// module no longer depends on: a complete graph K_n and a path P_n, built
// directly through core.Graph's own constructor/AddVertex/AddEdge surface.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lkgo/core"
	"github.com/stretchr/testify/require"
)

// vertexID renders the i-th vertex identifier for a fixture graph. An empty
// prefix yields plain decimal IDs ("0","1",...); a non-empty prefix yields
// "v0","v1",... style IDs.
func vertexID(prefix string, i int) string {
	return fmt.Sprintf("%s%d", prefix, i)
}

// newCompleteGraph builds the complete simple graph K_n: n vertices with
// prefix-derived IDs and every unordered pair {i,j}, i<j connected once,
// mirrored to j->i when the graph is directed.
func newCompleteGraph(t *testing.T, n int, prefix string, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(vertexID(prefix, i)))
	}
	var weight int64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.Weighted() {
				weight = 1
			}
			_, err := g.AddEdge(vertexID(prefix, i), vertexID(prefix, j), weight)
			require.NoError(t, err)
			if g.Directed() {
				_, err = g.AddEdge(vertexID(prefix, j), vertexID(prefix, i), weight)
				require.NoError(t, err)
			}
		}
	}
	if g.Looped() {
		for i := 0; i < n; i++ {
			_, err := g.AddEdge(vertexID(prefix, i), vertexID(prefix, i), 0)
			require.NoError(t, err)
		}
	}
	return g
}

// newPathGraph builds the simple path P_n: n vertices with edges (i-1)->i
// for i=1..n-1 in increasing order.
func newPathGraph(t *testing.T, n int, prefix string, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(vertexID(prefix, i)))
	}
	var weight int64
	for i := 1; i < n; i++ {
		if g.Weighted() {
			weight = 1
		}
		_, err := g.AddEdge(vertexID(prefix, i-1), vertexID(prefix, i), weight)
		require.NoError(t, err)
	}
	return g
}
