// Package tsplib — TSPLIB95 tour reader/writer.
package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteTour writes tour (0-based city indices, closed: tour[0]==tour[len-1])
// in TSPLIB95 TOUR_SECTION format (1-based ids, terminated by -1 and EOF).
func WriteTour(w io.Writer, name string, tour []int) error {
	if len(tour) < 2 {
		return ErrEmptyTour
	}
	bw := bufio.NewWriter(w)
	if name != "" {
		fmt.Fprintf(bw, "NAME : %s\n", name)
	}
	fmt.Fprintln(bw, "TYPE : TOUR")
	fmt.Fprintf(bw, "DIMENSION : %d\n", len(tour)-1)
	fmt.Fprintln(bw, "TOUR_SECTION")
	for _, city := range tour[:len(tour)-1] {
		fmt.Fprintln(bw, city+1)
	}
	fmt.Fprintln(bw, -1)
	fmt.Fprintln(bw, "EOF")
	return bw.Flush()
}

// ReadTour reads a TOUR_SECTION and returns a closed 0-based tour
// (len == len(ids)+1, first == last).
func ReadTour(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	var (
		ids       []int
		inSection bool
	)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "EOF" {
			break
		}
		if strings.EqualFold(line, "TOUR_SECTION") {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, ErrMalformedLine
		}
		if v == -1 {
			break
		}
		ids = append(ids, v-1)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrEmptyTour
	}
	closed := make([]int, len(ids)+1)
	copy(closed, ids)
	closed[len(ids)] = ids[0]
	return closed, nil
}
