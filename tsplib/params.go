// Package tsplib — Lin–Kernighan style parameter file reader.
//
// Line-oriented "KEY = VALUE" parsing (case-insensitive keys), matching
// spec §6 exactly: unknown keys are a fatal parse error. Recognized keys
// map directly onto tsp.Options fields plus the three file paths the CLI
// needs (PROBLEM_FILE, OUTPUT_TOUR_FILE/TOUR_FILE).
package tsplib

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/lkgo/tsp"
)

// Params holds the parsed parameter-file contents.
type Params struct {
	ProblemFile    string
	OutputTourFile string

	Runs                 int
	MaxTrials            int
	MaxCandidates        int
	MoveType             int
	Backtracking         int
	Precision            int64
	Seed                 int64
	TimeLimit            time.Duration
	PopulationSize       int
	StopAtOptimum        bool
	Optimum              float64
	InitialPeriod        int
	InitialTourAlgorithm string
	SubproblemSize       int
}

// ReadParams parses a parameter file, applying spec §6's defaults for any
// key not present, and fails eagerly on any unrecognized key.
func ReadParams(r io.Reader) (*Params, error) {
	p := &Params{
		Runs:          10,
		MaxTrials:     0, // 0 ⇒ "problem dimension", resolved by the caller once DIMENSION is known
		MaxCandidates: 5,
		MoveType:      5,
		Backtracking:  0,
		Precision:     100,
		Seed:          1,
		TimeLimit:     0,
		InitialPeriod: 100,
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := splitParamLine(line)
		if !ok {
			return nil, ErrMalformedLine
		}

		switch strings.ToUpper(key) {
		case "PROBLEM_FILE":
			p.ProblemFile = val
		case "OUTPUT_TOUR_FILE", "TOUR_FILE":
			p.OutputTourFile = val
		case "RUNS":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, ErrMalformedLine
			}
			p.Runs = n
		case "MAX_TRIALS":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, ErrMalformedLine
			}
			p.MaxTrials = n
		case "MAX_CANDIDATES":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, ErrMalformedLine
			}
			p.MaxCandidates = n
		case "MOVE_TYPE":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, ErrMalformedLine
			}
			p.MoveType = n
		case "BACKTRACKING":
			n, err := parseParamInt(val)
			if err != nil {
				return nil, err
			}
			p.Backtracking = n
		case "PRECISION":
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return nil, ErrMalformedLine
			}
			p.Precision = n
		case "SEED":
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return nil, ErrMalformedLine
			}
			p.Seed = n
		case "TIME_LIMIT":
			secs, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, ErrMalformedLine
			}
			p.TimeLimit = time.Duration(secs * float64(time.Second))
		case "POPULATION_SIZE", "MAX_POPULATION_SIZE":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, ErrMalformedLine
			}
			p.PopulationSize = n
		case "STOP_AT_OPTIMUM":
			b, err := parseParamBool(val)
			if err != nil {
				return nil, err
			}
			p.StopAtOptimum = b
		case "OPTIMUM":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, ErrMalformedLine
			}
			p.Optimum = f
		case "INITIAL_PERIOD":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, ErrMalformedLine
			}
			p.InitialPeriod = n
		case "INITIAL_TOUR_ALGORITHM":
			p.InitialTourAlgorithm = strings.ToUpper(val)
		case "SUBPROBLEM_SIZE":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, ErrMalformedLine
			}
			p.SubproblemSize = n
		default:
			return nil, ErrUnknownParameterKey
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func splitParamLine(line string) (string, string, bool) {
	idx := strings.Index(line, "=")
	if idx == -1 {
		return "", "", false
	}
	key := strings.TrimSpace(line[:idx])
	val := strings.TrimSpace(line[idx+1:])
	if key == "" {
		return "", "", false
	}
	return key, val, true
}

func parseParamBool(val string) (bool, error) {
	switch strings.ToUpper(val) {
	case "YES", "TRUE", "1":
		return true, nil
	case "NO", "FALSE", "0":
		return false, nil
	default:
		return false, ErrMalformedLine
	}
}

func parseParamInt(val string) (int, error) {
	if b, err := parseParamBool(val); err == nil {
		if b {
			return tsp.DefaultBacktracking, nil
		}
		return 0, nil
	}
	return strconv.Atoi(val)
}

// initialTourAlgoByName maps the parameter file's enum spelling onto
// tsp.InitialTourAlgorithm.
func initialTourAlgoByName(name string) tsp.InitialTourAlgorithm {
	switch name {
	case "GREEDY":
		return tsp.InitGreedyEdge
	case "BORUVKA":
		return tsp.InitBoruvka
	case "RANDOM":
		return tsp.InitRandom
	case "WALK":
		return tsp.InitWalk
	default:
		return tsp.InitNearestNeighbor
	}
}

// ToOptions builds a tsp.Options from the parsed parameters, starting from
// tsp.DefaultOptions() and overriding every LK-relevant field. n is the
// problem's DIMENSION, used to resolve MaxTrials' "0 ⇒ problem dimension"
// default.
func (p *Params) ToOptions(n int) tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Algo = tsp.LinKernighan
	opts.Runs = p.Runs
	opts.MaxTrials = p.MaxTrials
	if opts.MaxTrials <= 0 {
		opts.MaxTrials = n
	}
	opts.MaxCandidates = p.MaxCandidates
	opts.MoveType = tsp.MoveType(p.MoveType)
	opts.Backtracking = p.Backtracking
	opts.Precision = p.Precision
	opts.Seed = p.Seed
	opts.TimeLimit = p.TimeLimit
	opts.PopulationSize = p.PopulationSize
	if opts.PopulationSize <= 0 {
		opts.PopulationSize = 1
	}
	opts.StopAtOptimum = p.StopAtOptimum
	opts.Optimum = p.Optimum
	opts.InitialPeriod = p.InitialPeriod
	opts.InitialTourAlgorithm = initialTourAlgoByName(p.InitialTourAlgorithm)
	opts.SubproblemSize = p.SubproblemSize
	return opts
}
