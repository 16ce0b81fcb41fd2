// Command lkhsolve runs the Lin–Kernighan TSP engine against a TSPLIB95
// problem described by a parameter file, following spec §6's interface
// exactly: one positional argument (the parameter file path), exit 0 on
// success, nonzero on parse/I/O failure, no flags. Mirrors the teacher's
// minimal-main style: fmt.Fprintln(os.Stderr, ...) on fatal conditions
// followed by a non-zero os.Exit, no logging framework.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lkgo/matrix"
	"github.com/katalvlaran/lkgo/tsp"
	"github.com/katalvlaran/lkgo/tsplib"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: lkhsolve <parameter-file>")
		os.Exit(1)
	}

	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, "lkhsolve:", err)
		os.Exit(1)
	}
}

func run(paramPath string) error {
	pf, err := os.Open(paramPath)
	if err != nil {
		return err
	}
	defer pf.Close()

	params, err := tsplib.ReadParams(pf)
	if err != nil {
		return err
	}
	if params.ProblemFile == "" {
		return fmt.Errorf("lkhsolve: parameter file missing PROBLEM_FILE")
	}

	problemFile, err := os.Open(params.ProblemFile)
	if err != nil {
		return err
	}
	problem, err := tsplib.ReadProblem(problemFile)
	problemFile.Close()
	if err != nil {
		return err
	}

	dist, err := matrix.NewDense(problem.Dimension, problem.Dimension)
	if err != nil {
		return err
	}
	for i := 0; i < problem.Dimension; i++ {
		for j := 0; j < problem.Dimension; j++ {
			if serr := dist.Set(i, j, problem.At(i, j)); serr != nil {
				return serr
			}
		}
	}

	opts := params.ToOptions(problem.Dimension)
	result, err := tsp.SolveWithMatrix(dist, nil, opts)
	if err != nil {
		return err
	}

	var out = os.Stdout
	if params.OutputTourFile != "" {
		f, cerr := os.Create(params.OutputTourFile)
		if cerr != nil {
			return cerr
		}
		defer f.Close()
		return tsplib.WriteTour(f, problem.Name, result.Tour)
	}

	return tsplib.WriteTour(out, problem.Name, result.Tour)
}
