package tsplib

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteThenReadTourRoundTrip(t *testing.T) {
	tour := []int{0, 1, 2, 3, 0}

	var buf bytes.Buffer
	if err := WriteTour(&buf, "demo", tour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := ReadTour(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(tour) {
		t.Fatalf("expected %d entries, got %d", len(tour), len(got))
	}
	for i, c := range tour[:len(tour)-1] {
		if got[i] != c {
			t.Fatalf("tour mismatch at %d: want %d got %d", i, c, got[i])
		}
	}
}

func TestWriteTourRejectsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTour(&buf, "", nil); err != ErrEmptyTour {
		t.Fatalf("expected ErrEmptyTour, got %v", err)
	}
}

func TestReadTourRejectsEmptySection(t *testing.T) {
	_, err := ReadTour(strings.NewReader("TOUR_SECTION\n-1\nEOF\n"))
	if err != ErrEmptyTour {
		t.Fatalf("expected ErrEmptyTour, got %v", err)
	}
}
