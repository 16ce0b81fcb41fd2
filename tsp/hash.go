// Package tsp — open-addressed hash filter for duplicate-tour rejection.
//
// trial.go needs to reject tours it has already seen within the same run so
// FindTour() does not waste sequential-search effort rediscovering the same
// local optimum from a different base city. Grounded on the teacher's
// deterministic-hashing discipline (validateIDs's use of a Go map for
// uniqueness, in validate.go) but generalized to a fixed-size open-addressed
// array rather than a map, so repeated trials stay allocation-light: one
// array, reused via Reset rather than reallocated per trial.
package tsp

// tourHashTable is a fixed-capacity open-addressed set of uint64 tour
// fingerprints (linear probing, tombstone-free since entries are never
// removed individually — only cleared in bulk via Reset).
type tourHashTable struct {
	slots    []uint64
	occupied []bool
	count    int
}

// newTourHashTable allocates a table sized for approximately capacityHint
// entries at a load factor of ~0.5 (rounded up to a power of two for cheap
// masking).
func newTourHashTable(capacityHint int) *tourHashTable {
	size := 16
	for size < capacityHint*2 {
		size *= 2
	}
	return &tourHashTable{
		slots:    make([]uint64, size),
		occupied: make([]bool, size),
	}
}

// Reset clears all entries without reallocating the backing arrays.
func (h *tourHashTable) Reset() {
	for i := range h.occupied {
		h.occupied[i] = false
	}
	h.count = 0
}

// hashTour XOR-combines one term per tour edge (city pairs
// (tour[i],tour[i+1])), so it is order-independent: reading the same cyclic
// tour from a different rotation or direction combines the same set of
// undirected edges, and each edge contributes the same term regardless of
// which endpoint is read first.
func hashTour(tour []int) uint64 {
	const (
		prime1 uint64 = 1099511628211
		prime2 uint64 = 14695981039346656037
	)
	var h uint64 = prime2
	n := len(tour) - 1
	for i := 0; i < n; i++ {
		a, b := uint64(tour[i]), uint64(tour[i+1])
		if a > b {
			a, b = b, a
		}
		edgeKey := (a * prime1) ^ (b*prime1 + 0x9e3779b97f4a7c15)
		// XOR-combine (not positional) so the hash is independent of edge order.
		h ^= edgeKey * prime1
	}
	return h
}

// Contains reports whether key is already present.
func (h *tourHashTable) Contains(key uint64) bool {
	idx := h.index(key)
	for h.occupied[idx] {
		if h.slots[idx] == key {
			return true
		}
		idx = (idx + 1) & (uint64(len(h.slots)) - 1)
	}
	return false
}

// Insert adds key, growing (and rehashing) the table first if the load
// factor would exceed 0.7. Returns true if key was newly inserted, false if
// it was already present.
func (h *tourHashTable) Insert(key uint64) bool {
	if (h.count+1)*10 >= len(h.slots)*7 {
		h.grow()
	}
	idx := h.index(key)
	for h.occupied[idx] {
		if h.slots[idx] == key {
			return false
		}
		idx = (idx + 1) & (uint64(len(h.slots)) - 1)
	}
	h.slots[idx] = key
	h.occupied[idx] = true
	h.count++
	return true
}

// index computes the initial probe slot for key (table size is always a
// power of two, so masking replaces modulo).
func (h *tourHashTable) index(key uint64) uint64 {
	return key & (uint64(len(h.slots)) - 1)
}

// grow doubles capacity and rehashes all live entries.
func (h *tourHashTable) grow() {
	old := h.slots
	oldOcc := h.occupied
	h.slots = make([]uint64, len(old)*2)
	h.occupied = make([]bool, len(old)*2)
	h.count = 0
	for i, occ := range oldOcc {
		if occ {
			h.Insert(old[i])
		}
	}
}
