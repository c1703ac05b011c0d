package search

import "sync"

// WorkQueue is the shared LIFO frontier of the search.
//
// Besides the stack it tracks how many popped tasks are still being expanded.
// Pop blocks while the stack is empty but some task is in flight, because that
// task may still push children; it reports false once the stack is empty with
// nothing in flight (the search is exhausted) or after Close.
//
// Protocol for workers: every successful Pop is followed by Push of the
// children (possibly none) and then Done.
type WorkQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	stack  []Task
	active int
	closed bool
}

// NewWorkQueue returns a queue holding seeds with seeds[0] on top.
func NewWorkQueue(seeds []Task) *WorkQueue {
	q := &WorkQueue{}
	q.cond = sync.NewCond(&q.mu)
	q.pushLocked(seeds)

	return q
}

// Push adds tasks so that tasks[0] is popped first.
func (q *WorkQueue) Push(tasks ...Task) {
	if len(tasks) == 0 {
		return
	}
	q.mu.Lock()
	q.pushLocked(tasks)
	q.mu.Unlock()
	q.cond.Broadcast()
}

func (q *WorkQueue) pushLocked(tasks []Task) {
	var i int
	for i = len(tasks) - 1; i >= 0; i-- {
		q.stack = append(q.stack, tasks[i])
	}
}

// Pop removes the top task. See the type comment for blocking behaviour.
func (q *WorkQueue) Pop() (Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.stack) == 0 && q.active > 0 && !q.closed {
		q.cond.Wait()
	}
	if q.closed || len(q.stack) == 0 {
		return Task{}, false
	}

	top := len(q.stack) - 1
	t := q.stack[top]
	q.stack[top] = Task{}
	q.stack = q.stack[:top]
	q.active++

	return t, true
}

// Done marks one popped task as fully expanded.
func (q *WorkQueue) Done() {
	q.mu.Lock()
	q.active--
	drained := q.active == 0 && len(q.stack) == 0
	q.mu.Unlock()
	if drained {
		q.cond.Broadcast()
	}
}

// Close wakes every blocked Pop and makes further Pops fail.
func (q *WorkQueue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

// Len returns the number of waiting tasks.
func (q *WorkQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.stack)
}
