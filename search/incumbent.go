package search

import (
	"math"
	"sync"
)

// Incumbent is the best-result register shared by all workers.
//
// Its length only ever decreases: TryImprove accepts a candidate iff no path
// is stored yet or the candidate is strictly shorter. All reads and writes go
// through one mutex, so a Bound observed by a worker happens-after every
// update that preceded it.
type Incumbent struct {
	mu      sync.Mutex
	path    []int
	length  float64
	version uint64 // number of accepted updates
}

// NewIncumbent returns an empty register (no path, length +Inf).
func NewIncumbent() *Incumbent {
	return &Incumbent{length: math.Inf(1)}
}

// TryImprove stores a copy of path if it beats the current incumbent and
// returns whether it did, together with the register version after the call.
func (in *Incumbent) TryImprove(path []int, length float64) (bool, uint64) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.version > 0 && !(length < in.length) {
		return false, in.version
	}
	in.path = append(make([]int, 0, len(path)), path...)
	in.length = length
	in.version++

	return true, in.version
}

// Bound returns the incumbent length and whether an incumbent exists.
func (in *Incumbent) Bound() (float64, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()

	return in.length, in.version > 0
}

// Best returns a copy of the incumbent path and its length.
func (in *Incumbent) Best() ([]int, float64, bool) {
	path, length, version := in.snapshot()

	return path, length, version > 0
}

// snapshot returns a copy of the state including the version.
func (in *Incumbent) snapshot() ([]int, float64, uint64) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.version == 0 {
		return nil, in.length, 0
	}

	return append([]int(nil), in.path...), in.length, in.version
}
