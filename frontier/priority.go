package frontier

import (
	"container/heap"
	"slices"
)

// Priority is a min-priority queue ordered by Ranker.Less. Elements of equal
// rank leave in insertion order. The zero value is ready to use.
type Priority[T Ranker[T]] struct {
	h   entryHeap[T]
	seq uint64 // insertion counter used as tie-breaker
}

// NewPriority returns an empty priority queue.
func NewPriority[T Ranker[T]]() *Priority[T] {
	return &Priority[T]{}
}

// Len returns the number of queued elements.
func (q *Priority[T]) Len() int { return q.h.Len() }

// Enqueue inserts x according to its rank.
func (q *Priority[T]) Enqueue(x T) {
	heap.Push(&q.h, entry[T]{value: x, seq: q.seq})
	q.seq++
}

// Dequeue removes and returns the lowest-ranked element.
func (q *Priority[T]) Dequeue() (T, error) {
	if q.h.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return heap.Pop(&q.h).(entry[T]).value, nil
}

// Remove deletes the element equal to x that would be dequeued first among
// all equal elements, and reports whether one was found.
func (q *Priority[T]) Remove(x T) bool {
	idx := -1
	for i := range q.h {
		if !q.h[i].value.Equal(x) {
			continue
		}
		if idx < 0 || q.h.Less(i, idx) {
			idx = i
		}
	}
	if idx < 0 {
		return false
	}
	heap.Remove(&q.h, idx)

	return true
}

// Items returns a copy of the queued elements in dequeue order.
func (q *Priority[T]) Items() []T {
	sorted := slices.Clone(q.h)
	slices.SortFunc(sorted, func(a, b entry[T]) int { return a.compare(b) })
	out := make([]T, len(sorted))
	for i, e := range sorted {
		out[i] = e.value
	}

	return out
}

// String renders the queue as Priority[a,b,c] in dequeue order.
func (q *Priority[T]) String() string { return format("Priority", q.Items()) }

// entry pairs a queued value with its insertion sequence number.
type entry[T Ranker[T]] struct {
	value T
	seq   uint64
}

// compare orders entries by rank, then by insertion sequence.
func (e entry[T]) compare(o entry[T]) int {
	switch {
	case e.value.Less(o.value):
		return -1
	case o.value.Less(e.value):
		return 1
	case e.seq < o.seq:
		return -1
	case e.seq > o.seq:
		return 1
	}

	return 0
}

// entryHeap implements heap.Interface over entries.
type entryHeap[T Ranker[T]] []entry[T]

func (h entryHeap[T]) Len() int           { return len(h) }
func (h entryHeap[T]) Less(i, j int) bool { return h[i].compare(h[j]) < 0 }
func (h entryHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = entry[T]{}
	*h = old[:n-1]

	return it
}
