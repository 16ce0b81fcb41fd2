// Package tsp — sequential variable-depth edge exchange (Lin–Kernighan).
//
// lkStep implements the classical LK step for a single base city
// t1: break edge (t1,t2), then repeatedly pick a candidate closing edge
// (t_{2i},t_{2i+1}) that keeps the partial gain positive, until either a
// feasible tour-closing edge yields a strictly positive total gain (move
// accepted) or the configured depth (Options.MoveType) / backtracking budget
// (Options.Backtracking) is exhausted (move rejected; lkStep then tries t1's
// other tour edge, and returns 0 if that fails too).
//
// The depth-2 case is exactly 2-opt (two_opt.go's Δ criterion, reused here
// through costFn rather than the dense w[] buffer two_opt.go prefetches,
// since twoLevelList already gives O(1) Next/Prev/Between). Depth>2 chains
// generalize it: at each level the move must remain "sequential" (each
// newly added edge shares a city with the most recently removed edge) and
// "feasible" (closing it at any point must yield a single Hamiltonian
// cycle, checked via Between on the two-level tour — the standard test for
// whether reversing the implied segment preserves a single cycle rather
// than splitting it in two).
package tsp

import "math"

// CostFunc evaluates the (already potential-shifted, if applicable) cost of
// the directed arc i->j. For symmetric instances CostFunc(i,j)==CostFunc(j,i).
type CostFunc func(i, j int) float64

// lkStep tries to find one improving sequential move starting from base
// city t1, applying it in place on tl if found. Returns the gain applied
// (>0) or 0 if no improving move exists within the configured depth and
// backtracking budget.
func lkStep(tl *twoLevelList, cs *CandidateSet, cost CostFunc, t1 int, opts Options) (float64, error) {
	maxDepth := int(opts.MoveType)
	if maxDepth < 2 {
		maxDepth = 2
	}
	backtrack := opts.Backtracking
	if backtrack <= 0 {
		backtrack = 1
	}

	// Try breaking each of t1's two tour edges as the initial removed edge.
	for _, t2 := range [2]int{tl.Next(t1), tl.Prev(t1)} {
		g1 := cost(t1, t2)
		gain, path, ok := searchChain(tl, cs, cost, t1, t2, g1, 1, maxDepth, backtrack)
		if ok && gain > DefaultEps {
			if err := applyChain(tl, path); err != nil {
				return 0, err
			}
			return gain, nil
		}
	}
	return 0, nil
}

// lkChainLink records one (broken, added) edge pair considered by
// searchChain; tour mutation is deferred to applyChain so a rejected branch
// never touches tl.
type lkChainLink struct {
	removedFrom int // t_{2i-1}
	removedTo   int // t_{2i}
	addedTo     int // t_{2i+1}: the candidate closing/continuing city
}

// searchChain explores sequential extensions from the partial gain g
// accumulated after removing edge (tFrom,tLast) where tLast is the free
// endpoint available for the next added edge. depth counts edges removed so
// far (starts at 1 after the caller's initial removal). Returns the best
// strictly-positive total gain found by closing back to t1, the sequence of
// links to apply, and whether a closing move was found at all.
func searchChain(
	tl *twoLevelList, cs *CandidateSet, cost CostFunc,
	t1, tLast int, g float64, depth, maxDepth, backtrack int,
) (float64, []lkChainLink, bool) {
	bestGain := 0.0
	var bestPath []lkChainLink

	neighbors := cs.Neighbors(tLast)
	// Alternatives are explored only at the first two levels; deeper levels
	// follow a single continuation.
	limit := backtrack
	if depth > 2 {
		limit = 1
	}
	tried := 0
	for _, cand := range neighbors {
		if tried >= limit {
			break
		}
		t3 := cand.To
		if t3 == t1 || t3 == tLast {
			continue
		}
		addCost := cand.Cost
		gainAfterAdd := g - addCost
		if gainAfterAdd <= DefaultEps {
			// Candidates are α-sorted, not cost-sorted, so we cannot break
			// early here; just skip non-improving ones.
			continue
		}
		tried++

		// t4 is the tour neighbor of t3 whose removal keeps the move
		// sequential and feasible: the one such that flipping the segment
		// [t2tLast..t3] reconnects into a single cycle when we later close
		// with edge (t4,t1).
		for _, t4 := range [2]int{tl.Next(t3), tl.Prev(t3)} {
			if t4 == t3 || t4 == tLast {
				continue
			}
			if !feasibleClosure(tl, t1, tLast, t3, t4) {
				continue
			}
			removedEdgeCost := cost(t3, t4)
			gainAfterRemove := gainAfterAdd + removedEdgeCost

			// Option A: close the tour now with edge (t4,t1).
			closeCost := cost(t4, t1)
			totalGain := gainAfterRemove - closeCost
			link := lkChainLink{removedFrom: tLast, removedTo: t3, addedTo: t4}
			if totalGain > bestGain+DefaultEps {
				bestGain = totalGain
				bestPath = append(append([]lkChainLink(nil), lkChainLink{removedFrom: t1, removedTo: tLast, addedTo: t3}), link)
			}

			// Option B: extend the chain one more level if depth allows.
			if depth+1 < maxDepth {
				subGain, subPath, ok := searchChain(tl, cs, cost, t1, t4, gainAfterRemove, depth+1, maxDepth, backtrack)
				if ok && subGain > bestGain+DefaultEps {
					bestGain = subGain
					head := []lkChainLink{{removedFrom: t1, removedTo: tLast, addedTo: t3}, link}
					bestPath = append(head, subPath...)
				}
			}
		}
	}

	if bestPath == nil {
		return 0, nil, false
	}
	return bestGain, bestPath, true
}

// feasibleClosure reports whether removing (t3,t4) and later adding (t4,t1)
// keeps the move within a single Hamiltonian cycle: t4 must lie on the arc
// from tLast to t3 that does NOT already contain t1, i.e. the standard
// Lin–Kernighan "between" feasibility test.
func feasibleClosure(tl *twoLevelList, t1, tLast, t3, t4 int) bool {
	if t4 == t1 {
		return false
	}
	return tl.Between(tLast, t4, t3) || tl.Between(t3, t4, tLast)
}

// applyChain performs the accumulated sequence of edge removals/additions
// as a series of Flip operations on tl. Each link (from,to,added) is applied
// as Flip(to, added) — reversing the segment between the freed endpoint and
// the new connection — matching reverseArcInPlace's 2-opt primitive
// generalized to the two-level structure.
func applyChain(tl *twoLevelList, path []lkChainLink) error {
	for _, link := range path {
		if err := tl.Flip(link.removedTo, link.addedTo); err != nil {
			return err
		}
	}
	return nil
}

// RunLinKernighan applies lkStep repeatedly over all cities (in index order,
// continuing the scan with the next city after an accepted move) until a
// full pass finds no improvement or
// opts.TwoOptMaxIters accepted moves have been applied. Returns the final
// flattened tour (closed, length n+1) and its cost.
func RunLinKernighan(tl *twoLevelList, cs *CandidateSet, cost CostFunc, start int, opts Options) ([]int, float64, error) {
	maxMoves := opts.TwoOptMaxIters
	if maxMoves <= 0 {
		maxMoves = DefaultTwoOptMaxIters
	}

	moves := 0
	improvedAny := true
	for improvedAny && moves < maxMoves {
		improvedAny = false
		for t1 := 0; t1 < tl.n; t1++ {
			gain, err := lkStep(tl, cs, cost, t1, opts)
			if err != nil {
				return nil, 0, err
			}
			if gain > DefaultEps {
				improvedAny = true
				moves++
				if moves >= maxMoves {
					break
				}
			}
		}
	}

	order := tl.toOrder()
	tour, err := RotateTourToStart(order, start)
	if err != nil {
		return nil, 0, err
	}
	var total float64
	for i := 0; i < len(tour)-1; i++ {
		c := cost(tour[i], tour[i+1])
		if math.IsInf(c, 0) {
			return nil, 0, ErrIncompleteGraph
		}
		total += c
	}
	return tour, round1e9(total), nil
}
