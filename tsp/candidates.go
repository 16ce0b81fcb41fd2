// Package tsp — α-ranked candidate edge sets for the Lin–Kernighan engine.
//
// A CandidateSet restricts the sequential search in lk.go to a small,
// promising neighbor list per node instead of scanning all n-1 neighbors.
// CreateCandidateSet builds it directly from ascent()'s α ranking; Extend/Reset/Adjust
// let trial.go/run.go reshape the set between trials without rebuilding the
// ascent phase (which dominates cost for large n).
//
// Grounded on the same tie-break discipline used by prim_kruskal's edge-heap
// construction elsewhere in this module: ties in the ranking key are broken
// by raw cost, then by vertex index, for full determinism.
package tsp

// CandidateSet holds, for each node u, its K nearest neighbors by ascending
// α-nearness (neighbors[u]) and — only when Options.BackboneTrials > 0 — a
// parallel, smaller "promoted" list (backbone[u]), a prefix of neighbors[u]
// returned by Backbone; the search in lk.go and trial.go reads only
// neighbors[u].
type CandidateSet struct {
	neighbors [][]candidateEdge
	backbone  [][]candidateEdge
	k         int
}

// CreateCandidateSet builds the initial K-wide candidate set from an
// already-computed ascent result. K is clamped to [1, n-1]; BackboneTrials>0
// allocates (but does not yet populate beyond a copy of the top entries) a
// parallel backbone list — see DESIGN.md for why FindTour() does not consult
// it yet.
//
// Errors: ErrNoCandidates if n < 2 or k <= 0 after clamping.
func CreateCandidateSet(res ascentResult, n, k, backboneTrials int) (*CandidateSet, error) {
	if n < 2 {
		return nil, ErrNoCandidates
	}
	if k <= 0 {
		return nil, ErrNoCandidates
	}
	if k > n-1 {
		k = n - 1
	}

	cs := &CandidateSet{
		neighbors: make([][]candidateEdge, n),
		k:         k,
	}
	for u := 0; u < n; u++ {
		row := res.alphaRank(u)
		if len(row) > k {
			row = row[:k]
		}
		cs.neighbors[u] = append([]candidateEdge(nil), row...)
	}

	if backboneTrials > 0 {
		// Promote a smaller prefix (half-width, at least 1) of each node's
		// ranked neighbors into the backbone list; trial.go's no-op consumer
		// is documented in DESIGN.md pending a first caller.
		bw := k/2 + 1
		cs.backbone = make([][]candidateEdge, n)
		for u := 0; u < n; u++ {
			row := cs.neighbors[u]
			if len(row) > bw {
				row = row[:bw]
			}
			cs.backbone[u] = append([]candidateEdge(nil), row...)
		}
	}

	return cs, nil
}

// Neighbors returns node u's ranked candidate list (ascending α). The
// returned slice must not be mutated by the caller.
func (cs *CandidateSet) Neighbors(u int) []candidateEdge {
	if cs == nil || u < 0 || u >= len(cs.neighbors) {
		return nil
	}
	return cs.neighbors[u]
}

// Backbone returns node u's promoted backbone list, or nil if backbone
// promotion is disabled (BackboneTrials == 0).
func (cs *CandidateSet) Backbone(u int) []candidateEdge {
	if cs == nil || cs.backbone == nil || u < 0 || u >= len(cs.backbone) {
		return nil
	}
	return cs.backbone[u]
}

// K reports the configured candidate-list width.
func (cs *CandidateSet) K() int {
	if cs == nil {
		return 0
	}
	return cs.k
}

// Extend appends a single extra neighbor to u's candidate list if it is not
// already present, preserving the ascending-α order. Adjust uses it (via
// extendIfAbsent) to add best-tour neighbors missing from the K-width list.
func (cs *CandidateSet) Extend(u int, edge candidateEdge) {
	if cs == nil || u < 0 || u >= len(cs.neighbors) {
		return
	}
	for _, e := range cs.neighbors[u] {
		if e.To == edge.To {
			return
		}
	}
	row := cs.neighbors[u]
	i := len(row)
	for i > 0 && row[i-1].Alpha > edge.Alpha {
		i--
	}
	row = append(row, candidateEdge{})
	copy(row[i+1:], row[i:])
	row[i] = edge
	cs.neighbors[u] = row
}

// Reset restores u's candidate list to its top-K entries, undoing any
// Extend calls. run.go calls it for every node at each run boundary.
func (cs *CandidateSet) Reset(u int, res ascentResult) {
	if cs == nil || u < 0 || u >= len(cs.neighbors) {
		return
	}
	row := res.alphaRank(u)
	if len(row) > cs.k {
		row = row[:cs.k]
	}
	cs.neighbors[u] = append([]candidateEdge(nil), row...)
}

// Adjust implements backbone prioritization: called after a new best tour is
// found, it (1) makes sure every node's list contains its best-tour successor
// and predecessor (extending the list if necessary) and (2) moves any edge
// shared by best and secondBest ahead of edges present in only one of them,
// preserving each partition's existing relative order (a stable partition,
// not a full re-sort — α order is not meaningful once an edge is
// backbone-promoted).
//
// best must be a closed tour (len == n+1, best[0] == best[n]); secondBest may
// be nil (no second-best recorded yet), in which case step (2) is skipped but
// step (1) still runs. cost supplies the raw edge weight for any newly
// extended entry.
//
// Guarantees (spec invariant): after Adjust, {best_succ(u), best_pred(u)} ⊆
// candidates(u) for every node u in best.
func (cs *CandidateSet) Adjust(best, secondBest []int, cost CostFunc) {
	if cs == nil || len(best) < 2 {
		return
	}
	n := len(best) - 1

	bestSucc := make([]int, n)
	bestPred := make([]int, n)
	for i := 0; i < n; i++ {
		u, v := best[i], best[i+1]
		bestSucc[u] = v
		bestPred[v] = u
	}

	var inSecond map[int64]bool
	if len(secondBest) >= 2 {
		inSecond = make(map[int64]bool, len(secondBest)*2)
		for i := 0; i < len(secondBest)-1; i++ {
			inSecond[edgeKeyPair(secondBest[i], secondBest[i+1])] = true
		}
	}

	for u := 0; u < n; u++ {
		cs.extendIfAbsent(u, bestSucc[u], cost)
		cs.extendIfAbsent(u, bestPred[u], cost)

		if inSecond == nil {
			continue
		}
		row := cs.neighbors[u]
		shared := make([]candidateEdge, 0, len(row))
		rest := make([]candidateEdge, 0, len(row))
		for _, e := range row {
			if inSecond[edgeKeyPair(u, e.To)] && (e.To == bestSucc[u] || e.To == bestPred[u]) {
				shared = append(shared, e)
			} else {
				rest = append(rest, e)
			}
		}
		cs.neighbors[u] = append(shared, rest...)
	}
}

// extendIfAbsent adds (u,v) to u's candidate list via Extend if it is not
// already present; v == u (no tour neighbor, e.g. an isolated graph) is
// ignored.
func (cs *CandidateSet) extendIfAbsent(u, v int, cost CostFunc) {
	if u == v || u < 0 || u >= len(cs.neighbors) {
		return
	}
	c := cost(u, v)
	cs.Extend(u, candidateEdge{To: v, Alpha: c, Cost: c})
}

// edgeKeyPair packs an undirected edge (a,b) into a single order-independent
// key, mirroring merge.go's edgeKey.
func edgeKeyPair(a, b int) int64 {
	if a > b {
		a, b = b, a
	}
	return int64(a)<<32 | int64(uint32(b))
}
