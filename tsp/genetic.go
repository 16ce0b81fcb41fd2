// Package tsp — population-based recombination layer over Lin–Kernighan.
//
// GeneticSearch seeds a population of locally-optimal tours (one FindTour
// trial per individual), then repeatedly selects two parents by rank-biased
// sampling — the same "sorted pool, weighted pick" shape as
// cbarrick/evo's round-robin selector (sel/round_robin.go), simplified from
// a tournament to a direct rank-proportional weight since MergeTours (not a
// second tournament round) does the real recombination work — recombines
// them with MergeTours (merge.go, itself grounded on this module's existing
// Kruskal/DSU discipline rather than perm/cross.go's array-index crossover,
// since tours here are city permutations over a dense cost matrix rather
// than the abstract integer sequences perm.EdgeX operates on), re-optimizes
// the child with a short Lin–Kernighan polish, and keeps the population's
// best PopulationSize individuals each generation (elitist replacement).
package tsp

import (
	"math/rand"
	"sort"
	"time"
)

// genIndividual pairs a closed tour with its cost for population bookkeeping.
type genIndividual struct {
	tour []int
	cost float64
}

// rankBias is the rank-proportional selection pressure (weight ∝
// rankBias^-rank, rank 0 = best), matching the 1.25 bias commonly used for
// rank-based selection in the evo-style selectors this module draws on.
const rankBias = 1.25

// GeneticSearch runs a population-recombination search on top of the
// Lin–Kernighan local-search engine. It reuses the single ascent/candidate
// computation (dominant one-time cost) across the whole population, exactly
// as RunLinKernighanSearch does across its trials.
//
// Errors: propagates ascent/CreateCandidateSet/FindTour/MergeTours errors;
// ErrEmptyPopulation if opts.PopulationSize <= 0.
func GeneticSearch(w []float64, n int, opts Options) (TSResult, error) {
	if opts.PopulationSize <= 0 {
		return TSResult{}, ErrEmptyPopulation
	}

	res, err := ascent(w, n, opts.StartVertex, opts.InitialPeriod)
	if err != nil {
		return TSResult{}, err
	}
	k := opts.MaxCandidates
	if k <= 0 {
		k = DefaultMaxCandidates
	}
	cs, err := CreateCandidateSet(res, n, k, opts.BackboneTrials)
	if err != nil {
		return TSResult{}, err
	}

	cost := func(i, j int) float64 { return w[i*n+j] }
	baseRNG := rngFromSeed(opts.Seed)

	pop := make([]genIndividual, 0, opts.PopulationSize)
	for i := 0; i < opts.PopulationSize; i++ {
		memberRNG := deriveRNG(baseRNG, uint64(i))
		tour, c, _, err := FindTour(w, n, cs, opts, memberRNG, nil)
		if err != nil {
			return TSResult{}, err
		}
		pop = append(pop, genIndividual{tour: tour, cost: c})
	}
	sortPopulation(pop)
	var secondBest []int
	if len(pop) > 1 {
		secondBest = pop[1].tour
	}
	cs.Adjust(pop[0].tour, secondBest, cost)

	generations := opts.Runs
	if generations <= 0 {
		generations = 1
	}
	genRNG := deriveRNG(baseRNG, uint64(opts.PopulationSize)+1)

	var deadline time.Time
	useDeadline := compatibleTimeBudget(opts.TimeLimit) && opts.TimeLimit > 0
	if useDeadline {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	for g := 0; g < generations; g++ {
		if useDeadline && time.Now().After(deadline) {
			break
		}
		momIdx := rankProportionalPick(len(pop), genRNG)
		dadIdx := rankProportionalPick(len(pop), genRNG)
		if dadIdx == momIdx {
			dadIdx = (dadIdx + 1) % len(pop)
		}

		child, childCost, err := MergeTours(pop[momIdx].tour, pop[dadIdx].tour, n, cost)
		if err != nil {
			return TSResult{}, err
		}

		groupSize := isqrt(n)
		tl, err := newTwoLevelList(child, groupSize)
		if err != nil {
			return TSResult{}, err
		}
		polished, polishedCost, err := RunLinKernighan(tl, cs, cost, opts.StartVertex, opts)
		if err == nil && polishedCost < childCost {
			child, childCost = polished, polishedCost
		}

		prevBestCost := pop[0].cost
		pop = append(pop, genIndividual{tour: child, cost: childCost})
		sortPopulation(pop)
		pop = pop[:opts.PopulationSize]

		if pop[0].cost < prevBestCost-DefaultEps {
			var second []int
			if len(pop) > 1 {
				second = pop[1].tour
			}
			cs.Adjust(pop[0].tour, second, cost)
		}

		if opts.StopAtOptimum && pop[0].cost <= opts.Optimum+DefaultEps {
			break
		}
	}

	return TSResult{Tour: pop[0].tour, Cost: round1e9(pop[0].cost)}, nil
}

func sortPopulation(pop []genIndividual) {
	sort.Slice(pop, func(i, j int) bool { return pop[i].cost < pop[j].cost })
}

// rankProportionalPick draws an index into a size-sorted (best-first)
// population with probability proportional to rankBias^-rank, implemented
// by cumulative-weight roulette selection (the same normalized-weight
// sampling idea RoundRobinPool's scored pool reduces to once sorted).
func rankProportionalPick(size int, rng *rand.Rand) int {
	if size <= 1 {
		return 0
	}
	weights := make([]float64, size)
	var total float64
	w := 1.0
	for i := 0; i < size; i++ {
		weights[i] = w
		total += w
		w /= rankBias
	}
	target := rng.Float64() * total
	var running float64
	for i, wv := range weights {
		running += wv
		if target <= running {
			return i
		}
	}
	return size - 1
}
