// Branch-and-bound expansion for the turn-constrained Hamiltonian path.
//
// engine.Expand processes one Task popped from the shared WorkQueue and
// returns its children. It holds no lock across the call; the only shared
// mutable state it touches is the Incumbent (through its own mutex) and the
// publisher (outside the incumbent lock).
//
// Rationale (succinct):
//  1. The distance matrix is prefetched into a dense buffer w[u*n+v] so the
//     hot loop reads a flat slice instead of a bounds-checked accessor.
//  2. Successors come from AngleAdjacency.Candidates(prev, cur), which lists
//     only admissible turns, nearest first with an index tiebreak. The free
//     set filters out points already on the path.
//  3. Bound: a partial path is dropped when its length is ≥ the incumbent.
//     Edges are non-negative, so no completion of it can be strictly shorter.
//  4. Children are returned nearest first; the queue keeps children[0] on top,
//     so a single worker explores in deterministic depth-first order.
//
// Complexity:
//   - Per expansion: O(K) candidate scans for K = len(Candidates(prev, cur))
//     plus O(N/64) per child for the free-set clone and O(N) for the path copy.
//   - Memory: O(N²) for the prefetched weights, shared by all workers.
//
// Governance:
//   - Replacement is strict (<); pruning is inclusive (≥). Equal-length
//     alternatives never replace the incumbent and never survive the bound.
//   - Every expansion is counted once, whatever its outcome; the counter is
//     Result.Iterations.

package search

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/katalvlaran/turnpath/metric"
)

// engine expands tasks against the read-only tables and the shared incumbent.
// It keeps no per-task state, so one engine serves every worker.
type engine struct {
	n   int
	w   []float64 // dense distance buffer: w[u*n+v]
	adj *metric.AngleAdjacency

	inc *Incumbent
	pub *publisher
	ins *instruments

	expanded atomic.Int64
}

// newEngine prefetches the distance matrix into a flat buffer. NaN and
// negative distances cannot come out of metric.Build; they are rejected
// anyway because the bound relies on non-negative edges.
func newEngine(tbl *metric.Table, inc *Incumbent, pub *publisher, ins *instruments) (*engine, error) {
	e := &engine{n: tbl.Size(), adj: tbl.Adj, inc: inc, pub: pub, ins: ins}
	e.w = make([]float64, e.n*e.n)

	var (
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < e.n; i++ {
		for j = 0; j < e.n; j++ {
			x, err = tbl.Dist.At(i, j)
			if err != nil {
				return nil, err
			}
			if math.IsNaN(x) || x < 0 {
				return nil, fmt.Errorf("distance (%d,%d)=%g: %w", i, j, x, ErrInvalidDistance)
			}
			e.w[i*e.n+j] = x
		}
	}

	return e, nil
}

// at is a fast accessor into the dense weight buffer.
func (e *engine) at(u, v int) float64 { return e.w[u*e.n+v] }

// Expand processes one task and returns its children, nearest successor first.
//
//  1. Complete path: offer it to the incumbent, publish if accepted. No children.
//  2. Bound: a partial path whose length is ≥ the incumbent is dropped.
//  3. Branch: one child per admissible successor of (prev, cur) still free.
//  4. No child: dead end; the caller simply moves on.
func (e *engine) Expand(ctx context.Context, t Task) []Task {
	e.expanded.Add(1)
	e.ins.expanded.Add(ctx, 1)

	if len(t.Path) == e.n {
		if ok, version := e.inc.TryImprove(t.Path, t.Length); ok {
			e.ins.improvements.Add(ctx, 1)
			e.pub.improved(ctx, version)
		}

		return nil
	}
	if len(t.Path) < 2 {
		return nil
	}

	if bound, ok := e.inc.Bound(); ok && t.Length >= bound {
		e.ins.pruned.Add(ctx, 1)

		return nil
	}

	prev, cur := t.tail()
	var children []Task
	for _, c := range e.adj.Candidates(prev, cur) {
		if !t.Free.Test(uint(c)) {
			continue
		}
		children = append(children, t.child(c, e.at(cur, c)))
	}
	if len(children) == 0 {
		e.ins.deadEnds.Add(ctx, 1)
	}

	return children
}
