// Package tsp — single-trial driver for the Lin–Kernighan engine.
//
// FindTour runs one complete local-search trial: build an initial tour with
// the configured constructor (initial.go), wrap it in a twoLevelList
// (twolevel.go), repeatedly apply lkStep from every city (lk.go) until no
// city yields an improving move, then report the resulting tour and cost.
// Duplicate-tour rejection across trials (so run.go's multi-trial loop does
// not waste search effort rediscovering the same local optimum) is handled
// by a tourHashTable shared across the calling run.
package tsp

import "math/rand"

// FindTour executes a single Lin–Kernighan trial from the given initial
// tour algorithm and seed, returning the locally-optimal tour it converges
// to. seen, if non-nil, is consulted and updated so the caller's multi-trial
// loop (run.go) can skip trials that reconverge on an already-seen tour.
//
// Errors: propagates BuildInitialTour/newTwoLevelList/RunLinKernighan errors.
func FindTour(w []float64, n int, cs *CandidateSet, opts Options, rng *rand.Rand, seen *tourHashTable) ([]int, float64, bool, error) {
	init, err := BuildInitialTour(w, n, opts.StartVertex, opts.InitialTourAlgorithm, rng)
	if err != nil {
		return nil, 0, false, err
	}

	groupSize := isqrt(n)
	tl, err := newTwoLevelList(init, groupSize)
	if err != nil {
		return nil, 0, false, err
	}

	cost := func(i, j int) float64 { return w[i*n+j] }

	tour, tourCost, err := RunLinKernighan(tl, cs, cost, opts.StartVertex, opts)
	if err != nil {
		return nil, 0, false, err
	}

	if seen == nil {
		return tour, tourCost, true, nil
	}
	key := hashTour(tour)
	fresh := seen.Insert(key)
	return tour, tourCost, fresh, nil
}
