package search

import "sync/atomic"

// budget is the iteration allowance shared by all workers.
type budget struct {
	max   int64 // NoIterationLimit or ≥ 0
	taken atomic.Int64
}

// take claims one expansion and reports whether it was within the budget.
func (b *budget) take() bool {
	if b.max == NoIterationLimit {
		return true
	}

	return b.taken.Add(1) <= b.max
}
