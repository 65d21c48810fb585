// Package scheduler is the simulation's deferred-task queue. Tasks fire at a
// point of simulation time, not wall-clock time, so they freeze with the game
// on pause and speed up with the game-speed multiplier.
package scheduler

import (
	"container/heap"
	"time"
)

// Task is a callback due at a point of simulation time.
type Task struct {
	Due   time.Duration
	Label string
	Fn    func()
	seq   uint64
}

// taskHeap orders tasks by due time, then by scheduling order.
type taskHeap []*Task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].Due != h[j].Due {
		return h[i].Due < h[j].Due
	}
	return h[i].seq < h[j].seq
}
func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *taskHeap) Push(x any) {
	*h = append(*h, x.(*Task))
}
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Queue is not safe for concurrent use; the owner serializes access.
type Queue struct {
	now   time.Duration
	seq   uint64
	tasks taskHeap
}

func NewQueue() *Queue {
	q := &Queue{}
	heap.Init(&q.tasks)
	return q
}

// Now is the current simulation time as seen by the queue.
func (q *Queue) Now() time.Duration {
	return q.now
}

// After schedules fn to run once simulation time reaches Now()+delay.
// Negative delays are treated as zero.
func (q *Queue) After(delay time.Duration, label string, fn func()) {
	if delay < 0 {
		delay = 0
	}
	q.seq++
	heap.Push(&q.tasks, &Task{Due: q.now + delay, Label: label, Fn: fn, seq: q.seq})
}

// AdvanceTo moves the clock forward to t and runs every task due at or before t,
// in due order. Tasks scheduled by a running task that are already due run in
// the same call. Returns the number of tasks run.
func (q *Queue) AdvanceTo(t time.Duration) int {
	if t > q.now {
		q.now = t
	}
	ran := 0
	for q.tasks.Len() > 0 && q.tasks[0].Due <= q.now {
		task := heap.Pop(&q.tasks).(*Task)
		task.Fn()
		ran++
	}
	return ran
}

// Advance moves the clock forward by dt.
func (q *Queue) Advance(dt time.Duration) int {
	return q.AdvanceTo(q.now + dt)
}

// Len is the number of pending tasks.
func (q *Queue) Len() int {
	return q.tasks.Len()
}

// Pending returns the labels of pending tasks in due order.
func (q *Queue) Pending() []string {
	sorted := append(taskHeap(nil), q.tasks...)
	labels := make([]string, 0, len(sorted))
	for sorted.Len() > 0 {
		labels = append(labels, heap.Pop(&sorted).(*Task).Label)
	}
	return labels
}

// Reset drops every pending task and rewinds the clock to zero.
func (q *Queue) Reset() {
	q.tasks = nil
	q.now = 0
	q.seq = 0
}

// State is an opaque copy of the queue used to roll back a failed tick.
type State struct {
	now   time.Duration
	seq   uint64
	tasks taskHeap
}

// Save captures the queue. Tasks are immutable once scheduled, so a shallow copy suffices.
func (q *Queue) Save() State {
	return State{now: q.now, seq: q.seq, tasks: append(taskHeap(nil), q.tasks...)}
}

// Restore rewinds the queue to a saved state.
func (q *Queue) Restore(s State) {
	q.now = s.now
	q.seq = s.seq
	q.tasks = append(taskHeap(nil), s.tasks...)
}
