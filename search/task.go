package search

import "github.com/bits-and-blooms/bitset"

// Task is one node of the branch-and-bound tree: a partial path, the indices
// not yet on it and the accumulated length. A task is owned by exactly one
// worker between Pop and Push; children never share slices with their parent.
type Task struct {
	Path   []int
	Free   *bitset.BitSet
	Length float64

	seed int // index of the start path this task descends from
}

// newTask builds a task from an explicit path over n points.
func newTask(path []int, n int, length float64) Task {
	free := bitset.New(uint(n))
	var i int
	for i = 0; i < n; i++ {
		free.Set(uint(i))
	}
	for _, v := range path {
		free.Clear(uint(v))
	}

	return Task{Path: path, Free: free, Length: length}
}

// tail returns the last two indices of the path.
func (t Task) tail() (prev, cur int) {
	return t.Path[len(t.Path)-2], t.Path[len(t.Path)-1]
}

// child extends t by next at extra cost d.
func (t Task) child(next int, d float64) Task {
	path := make([]int, len(t.Path)+1)
	copy(path, t.Path)
	path[len(t.Path)] = next

	free := t.Free.Clone()
	free.Clear(uint(next))

	return Task{Path: path, Free: free, Length: t.Length + d, seed: t.seed}
}
