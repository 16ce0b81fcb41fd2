// Package tsplib reads TSPLIB95 problem/tour files and Lin–Kernighan style
// parameter files, and writes TSPLIB95 tour files. It mirrors the tsp
// package's validation posture: eager parsing, sentinel errors, no panics.
package tsplib

import "errors"

var (
	// ErrUnknownParameterKey is returned when a parameter file names a key
	// this reader does not recognize; parameter parsing is fatal on any
	// unknown key, matching spec §6 precisely.
	ErrUnknownParameterKey = errors.New("tsplib: unknown parameter key")

	// ErrMalformedLine is returned for a line that cannot be parsed in its
	// section's expected shape.
	ErrMalformedLine = errors.New("tsplib: malformed line")

	// ErrMissingDimension is returned when a section needing DIMENSION is
	// encountered before DIMENSION has been set.
	ErrMissingDimension = errors.New("tsplib: DIMENSION missing before section")

	// ErrUnsupportedEdgeWeightType is returned for an EDGE_WEIGHT_TYPE this
	// reader cannot compute a cost matrix for.
	ErrUnsupportedEdgeWeightType = errors.New("tsplib: unsupported EDGE_WEIGHT_TYPE")

	// ErrUnsupportedEdgeWeightFormat is returned for an EDGE_WEIGHT_FORMAT
	// this reader cannot parse.
	ErrUnsupportedEdgeWeightFormat = errors.New("tsplib: unsupported EDGE_WEIGHT_FORMAT")

	// ErrDimensionMismatch is returned when a parsed section's entry count
	// disagrees with DIMENSION.
	ErrDimensionMismatch = errors.New("tsplib: dimension mismatch")

	// ErrEmptyTour is returned by the tour writer when given fewer than two
	// entries, and by the tour reader when TOUR_SECTION lists no city.
	ErrEmptyTour = errors.New("tsplib: empty tour")
)
