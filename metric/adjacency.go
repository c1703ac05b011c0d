package metric

// AngleAdjacency maps an ordered pair (prev, cur) to the admissible successors
// of cur when it was entered from prev.
//
// Lists are shared with every reader; callers must not modify them.
type AngleAdjacency struct {
	n       int
	lists   [][]int // lists[prev*n+cur]
	entries int
}

// Size returns N.
func (a *AngleAdjacency) Size() int { return a.n }

// Candidates returns the admissible successors for (prev, cur) sorted by
// ascending distance from cur. Out-of-range or equal indices yield nil.
//
// Complexity: O(1).
func (a *AngleAdjacency) Candidates(prev, cur int) []int {
	if prev < 0 || prev >= a.n || cur < 0 || cur >= a.n {
		return nil
	}

	return a.lists[prev*a.n+cur]
}

// Entries returns the total number of candidates over all keys.
func (a *AngleAdjacency) Entries() int { return a.entries }

// candidateOrder sorts one candidate row by D[cur][k], then by k.
type candidateOrder struct {
	cur  int
	row  []int
	dist *DistanceMatrix
}

func (o candidateOrder) Len() int { return len(o.row) }
func (o candidateOrder) Less(i, j int) bool {
	ki, kj := o.row[i], o.row[j]
	di, dj := o.dist.at(o.cur, ki), o.dist.at(o.cur, kj)
	if di == dj {
		return ki < kj
	}

	return di < dj
}
func (o candidateOrder) Swap(i, j int) { o.row[i], o.row[j] = o.row[j], o.row[i] }
