// Package lkgo is a Lin–Kernighan / Held–Karp Traveling Salesman Problem
// solver.
//
// 🚀 What is lkgo?
//
//	A deterministic, dependency-light engine for near-optimal tours on
//	symmetric and asymmetric complete weighted graphs:
//
//	  • Held–Karp 1-tree subgradient ascent for lower bounds and α-ranked
//	    candidate edges (tsp/ascent.go, tsp/candidates.go)
//	  • Sequential variable-depth edge exchange (Lin–Kernighan) over a
//	    two-level doubly linked tour representation (tsp/lk.go, tsp/twolevel.go)
//	  • A trial/run driver with duplicate-tour hashing and a small
//	    population-based genetic recombination layer (tsp/trial.go,
//	    tsp/run.go, tsp/genetic.go)
//	  • The pre-existing Christofides / exact / 2-opt / 3-opt solvers this
//	    module was built on top of remain available as comparison baselines
//	    and as initial-tour sources.
//
// ✨ Why lkgo?
//
//   - Deterministic — identical seed, problem, and parameters reproduce the
//     exact same search; the only randomness is a seeded PRNG.
//   - Pure Go — no cgo, no network calls, no hidden dependencies.
//   - Layered — `core`/`matrix` provide the graph and dense-matrix
//     primitives; `tsp` is the solver; `tsplib` reads/writes TSPLIB95
//     problem, tour, and parameter files; `cmd/lkhsolve` is the CLI.
//
// Under the hood:
//
//	core/        — Graph, Vertex, Edge primitives
//	matrix/      — dense distance matrices, adjacency/incidence views
//	tsp/         — the solver: ascent, candidate sets, Lin–Kernighan, genetic layer
//	tsplib/      — TSPLIB95 problem/tour readers and writers, parameter files
//	cmd/lkhsolve — CLI: one positional argument, a parameter file
//
// See SPEC_FULL.md and DESIGN.md for the full design and grounding notes.
package lkgo
