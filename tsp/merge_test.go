package tsp

import "testing"

// square4CostFunc returns a symmetric cost function over 4 cities arranged as
// a unit square: 0-1-2-3-0 is the optimal tour (cost 4), while the diagonals
// (0-2, 1-3) cost 2.
func square4CostFunc() CostFunc {
	w := [4][4]float64{
		{0, 1, 2, 1},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{1, 2, 1, 0},
	}
	return func(i, j int) float64 { return w[i][j] }
}

func TestMergeToursIdenticalParentsReturnsSameTour(t *testing.T) {
	cost := square4CostFunc()
	a := []int{0, 1, 2, 3, 0}

	child, c, err := MergeTours(a, a, 4, cost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != 4 {
		t.Fatalf("expected cost 4, got %v", c)
	}
	if err := ValidateTour(child, 4, child[0]); err != nil {
		t.Fatalf("expected valid child tour: %v", err)
	}
}

func TestMergeToursDifferentParentsProducesValidTour(t *testing.T) {
	cost := square4CostFunc()
	a := []int{0, 1, 2, 3, 0}
	b := []int{0, 2, 1, 3, 0}

	child, c, err := MergeTours(a, b, 4, cost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateTour(child, 4, child[0]); err != nil {
		t.Fatalf("expected valid child tour: %v", err)
	}
	if c <= 0 {
		t.Fatalf("expected positive cost, got %v", c)
	}
}

func TestEdgeKeySymmetric(t *testing.T) {
	if edgeKey(1, 3, 10) != edgeKey(3, 1, 10) {
		t.Fatalf("expected edgeKey to be symmetric in its endpoints")
	}
}

func TestDSUUnionFind(t *testing.T) {
	d := newDSU(5)
	d.union(0, 1)
	d.union(1, 2)
	if d.find(0) != d.find(2) {
		t.Fatalf("expected 0 and 2 to be in the same component")
	}
	if d.find(3) == d.find(0) {
		t.Fatalf("expected 3 to remain its own component")
	}
}
