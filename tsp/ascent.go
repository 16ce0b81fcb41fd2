// Package tsp — Held–Karp 1-tree subgradient ascent and α-nearness ranking.
//
// This module grounds the Lin–Kernighan candidate set in the same Lagrangian
// relaxation already used for the Branch&Bound lower bound in
// bound_onetree.go: a minimum 1-tree on reduced costs, refined by subgradient
// ascent on the node potentials π. Unlike OneTreeLowerBound (which only needs
// the final bound value), ascent() also needs, for every ordered pair (i,j),
// the α-nearness value used to rank candidate edges:
//
//	α(i,j) = c'(i,j) − maxEdge(treePath(i,j))   for tree-external pairs
//	α(i,j) = 0                                  for edges already in the 1-tree
//
// where c'(i,j) is the reduced cost and maxEdge(treePath(i,j)) is the weight
// of the heaviest edge on the unique tree path between i and j in the 1-tree
// recorded at the best bound. Smaller α means "closer to being in a good
// tour"; candidates.go ranks each node's neighbor list by ascending α.
// Pairs that involve the root get α = 0 (the root is not part of the
// lifting tables, so no tree path is found for it); the root's own row is
// therefore ordered by raw cost.
//
// Implementation notes:
//   - The Prim/1-tree construction and subgradient loop reuse the exact
//     design of oneTreeEngine (bound_onetree.go): O(n²) dense Prim, root
//     excluded from the MST then reattached via its two cheapest edges,
//     s_i = deg(i)-2 subgradient, step-halving schedule driven by
//     Options.InitialPeriod (the sibling of OneTreeConfig.MaxIter).
//   - Tree-path bottleneck queries use binary lifting over the 1-tree viewed
//     as a tree rooted at the Prim seed (the ascent root is left out): O(n log n)
//     preprocessing, O(log n) per query.
//
// Complexity: O(DefaultAscentMaxIter · n²) for the ascent loop; each
// alphaRank(u) call costs O(n log n), so O(n² log n) for every row.
// Space: O(n log n) for the lifting tables.
package tsp

import (
	"math"
	"sort"
)

// candidateEdge is one ranked neighbor entry: To is the neighbor's vertex
// index, Alpha is its α-nearness value, and Cost is the raw (unreduced)
// edge cost, kept for tie-breaking and for the gain computations in lk.go.
type candidateEdge struct {
	To    int
	Alpha float64
	Cost  float64
}

// ascentResult bundles everything candidates.go and lk.go need from the
// ascent phase: the final potentials, a closure returning each node's
// candidates sorted by ascending α (ties broken by raw cost then index),
// the best lower bound observed, and a normalization constant (the maximum
// finite edge weight, used by candidates.go to detect "no real neighbors").
type ascentResult struct {
	pi         []float64
	alphaRank  func(u int) []candidateEdge
	lowerBound float64
	norm       float64
}

// ascent runs the Held–Karp subgradient loop on the dense weights w (n×n,
// row-major) rooted at root, then builds the tree tables from which
// alphaRank computes α(u,·) on demand, using the 1-tree recorded at the best
// bound and the final potentials. period seeds the step-halving schedule
// (Options.InitialPeriod); it is halved whenever the bound fails to improve
// for `period` consecutive iterations, down to a floor of 1.
//
// Errors: ErrAscentFailed if no 1-tree can be built (mirrors
// OneTreeLowerBound's ErrIncompleteGraph, renamed for the LK entry surface).
func ascent(w []float64, n, root, period int) (ascentResult, error) {
	if n < 3 {
		return ascentResult{}, ErrAscentFailed
	}
	if period <= 0 {
		period = DefaultInitialPeriod
	}

	eng := oneTreeEngine{
		n:      n,
		root:   root,
		w:      w,
		pi:     make([]float64, n),
		deg:    make([]int, n),
		inTree: make([]bool, n),
		parent: make([]int, n),
		key:    make([]float64, n),
	}

	var (
		bestLB     = math.Inf(-1)
		noImprove  int
		stepPeriod = period
		finalParent []int
	)

	for iter := 0; iter < DefaultAscentMaxIter; iter++ {
		redCost, err := eng.buildOneTreeReduced()
		if err != nil {
			return ascentResult{}, ErrAscentFailed
		}

		var sumPi float64
		for i := 0; i < n; i++ {
			sumPi += eng.pi[i]
		}
		bound := redCost - 2*sumPi
		if bound > bestLB+symTol {
			bestLB = bound
			noImprove = 0
			finalParent = append([]int(nil), eng.parent...)
		} else {
			noImprove++
		}

		var norm2 float64
		for i := 0; i < n; i++ {
			d := float64(eng.deg[i] - 2)
			norm2 += d * d
		}
		if norm2 == 0 {
			finalParent = append([]int(nil), eng.parent...)
			break
		}

		if noImprove >= stepPeriod {
			stepPeriod /= 2
			if stepPeriod < 1 {
				stepPeriod = 1
			}
			noImprove = 0
		}

		step := AscentStepAlpha * float64(stepPeriod) / norm2
		for i := 0; i < n; i++ {
			eng.pi[i] += step * float64(eng.deg[i]-2)
		}
	}

	if finalParent == nil {
		return ascentResult{}, ErrAscentFailed
	}

	tree := buildTreeAdjacency(finalParent, root, n, w, eng.pi)
	lca := newLCATable(tree, root, n)

	var maxW float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && !math.IsInf(w[i*n+j], 0) && w[i*n+j] > maxW {
				maxW = w[i*n+j]
			}
		}
	}

	result := ascentResult{
		pi:         eng.pi,
		lowerBound: round1e9(bestLB),
		norm:       maxW,
	}
	result.alphaRank = func(u int) []candidateEdge {
		return alphaNearnessRow(w, eng.pi, lca, u, n)
	}

	return result, nil
}

// DefaultAscentMaxIter bounds the subgradient loop (ascent has no UB
// feedback, so it runs to this cap unless the 1-tree becomes a tour, i.e.
// every degree is 2).
const DefaultAscentMaxIter = 64

// AscentStepAlpha is the fixed step scale, matching OneTreeConfig's default.
const AscentStepAlpha = 0.9

// treeEdge is one adjacency entry of the rooted 1-tree: To is the child/
// parent vertex, W is the (reduced) weight of the connecting edge.
type treeEdge struct {
	To int
	W  float64
}

// buildTreeAdjacency turns a Prim parent array (MST over V\{root}, root
// reattached via its two cheapest edges — both already folded into parent[]
// by the caller never being asked to look past index bounds) into an
// adjacency list suitable for LCA preprocessing. The two root edges are not
// tracked by parent[], so the adjacency covers only the spanning tree over
// V\{root}; root has no entries and every pair involving it gets α = 0 in
// alphaNearnessRow.
//
// Each treeEdge.W is the reduced cost c'(v,parent[v]) = w(v,parent[v]) +
// pi[v] + pi[parent[v]], the same reduction alphaNearnessRow applies to
// non-tree edges — bottleneck() must return a maximum over reduced weights
// since it is subtracted from a reduced cost in alphaNearnessRow.
func buildTreeAdjacency(parent []int, root, n int, w, pi []float64) [][]treeEdge {
	adj := make([][]treeEdge, n)
	for v := 0; v < n; v++ {
		if v == root || parent[v] == -1 {
			continue
		}
		u := parent[v]
		rw := w[v*n+u] + pi[v] + pi[u]
		adj[v] = append(adj[v], treeEdge{To: u, W: rw})
		adj[u] = append(adj[u], treeEdge{To: v, W: rw})
	}
	return adj
}

// lcaTable holds binary-lifting ancestor tables for O(log n) LCA queries
// plus, per node, the maximum edge weight seen on the path up to each
// ancestor power, so bottleneck(i,j) = maxEdge(path(i,j)) is also O(log n).
type lcaTable struct {
	depth []int
	up    [][]int
	upMax [][]float64
	log2n int
}

// newLCATable builds binary-lifting tables over the MST-over-V\{root}
// component containing the Prim seed. root itself is attached with depth 0
// and no parent in this table, so bottleneck reports no path for it.
func newLCATable(adj [][]treeEdge, root, n int) *lcaTable {
	log2n := 1
	for (1 << uint(log2n)) < n {
		log2n++
	}
	log2n++

	depth := make([]int, n)
	parent0 := make([]int, n)
	parentW := make([]float64, n)
	for i := range parent0 {
		parent0[i] = -1
	}

	// BFS/DFS from the Prim seed (any non-root vertex with a recorded edge);
	// root is excluded from this tree and handled as a special case by
	// alphaNearnessRow. Iterative DFS to avoid recursion-depth concerns on
	// large instances.
	visited := make([]bool, n)
	seed := -1
	for v := 0; v < n; v++ {
		if v != root && len(adj[v]) > 0 {
			seed = v
			break
		}
	}
	if seed == -1 {
		seed = 0
	}
	stack := []int{seed}
	visited[seed] = true
	depth[seed] = 0
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range adj[v] {
			if e.To == root || visited[e.To] {
				continue
			}
			visited[e.To] = true
			depth[e.To] = depth[v] + 1
			parent0[e.To] = v
			parentW[e.To] = e.W
			stack = append(stack, e.To)
		}
	}

	up := make([][]int, log2n)
	upMax := make([][]float64, log2n)
	for k := 0; k < log2n; k++ {
		up[k] = make([]int, n)
		upMax[k] = make([]float64, n)
		for v := 0; v < n; v++ {
			up[k][v] = -1
		}
	}
	for v := 0; v < n; v++ {
		up[0][v] = parent0[v]
		upMax[0][v] = parentW[v]
	}
	for k := 1; k < log2n; k++ {
		for v := 0; v < n; v++ {
			mid := up[k-1][v]
			if mid == -1 {
				up[k][v] = -1
				continue
			}
			up[k][v] = up[k-1][mid]
			m := upMax[k-1][v]
			if upMax[k-1][mid] > m {
				m = upMax[k-1][mid]
			}
			upMax[k][v] = m
		}
	}

	return &lcaTable{depth: depth, up: up, upMax: upMax, log2n: log2n}
}

// bottleneck returns the maximum edge weight on the tree path between i and
// j, or (0, false) if either vertex is isolated in the table (the root, or a
// vertex never reached from the seed — both treated as "no tree path" by the
// caller, which falls back to α=0 for that pair).
func (t *lcaTable) bottleneck(i, j int) (float64, bool) {
	if i == j {
		return 0, true
	}
	if t.depth[i] < 0 || t.depth[j] < 0 {
		return 0, false
	}

	var best float64
	a, b := i, j
	if t.depth[a] < t.depth[b] {
		a, b = b, a
	}
	diff := t.depth[a] - t.depth[b]
	for k := 0; k < t.log2n; k++ {
		if (diff>>uint(k))&1 == 1 {
			if t.up[k][a] == -1 {
				return 0, false
			}
			if t.upMax[k][a] > best {
				best = t.upMax[k][a]
			}
			a = t.up[k][a]
		}
	}
	if a == b {
		return best, true
	}
	for k := t.log2n - 1; k >= 0; k-- {
		if t.up[k][a] != t.up[k][b] {
			if t.upMax[k][a] > best {
				best = t.upMax[k][a]
			}
			if t.upMax[k][b] > best {
				best = t.upMax[k][b]
			}
			a, b = t.up[k][a], t.up[k][b]
		}
	}
	if t.up[0][a] == -1 || t.up[0][b] == -1 {
		return 0, false
	}
	if t.upMax[0][a] > best {
		best = t.upMax[0][a]
	}
	if t.upMax[0][b] > best {
		best = t.upMax[0][b]
	}
	return best, true
}

// alphaNearnessRow computes α(u,v) for every v≠u and returns them sorted by
// ascending α, ties broken by raw cost then by vertex index.
func alphaNearnessRow(w []float64, pi []float64, lca *lcaTable, u, n int) []candidateEdge {
	out := make([]candidateEdge, 0, n-1)
	for v := 0; v < n; v++ {
		if v == u {
			continue
		}
		raw := w[u*n+v]
		if math.IsInf(raw, 0) {
			continue
		}
		reduced := raw + pi[u] + pi[v]

		var alpha float64
		if bn, ok := lca.bottleneck(u, v); ok {
			alpha = reduced - bn
			if alpha < 0 {
				alpha = 0
			}
		}
		out = append(out, candidateEdge{To: v, Alpha: alpha, Cost: raw})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Alpha != out[j].Alpha {
			return out[i].Alpha < out[j].Alpha
		}
		if out[i].Cost != out[j].Cost {
			return out[i].Cost < out[j].Cost
		}
		return out[i].To < out[j].To
	})
	return out
}
