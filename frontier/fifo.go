package frontier

// compactAfter is the number of consumed head slots after which FIFO
// shifts its live elements back to the start of the backing slice.
const compactAfter = 64

// FIFO is a first-in-first-out queue that also supports removal of an
// arbitrary element. The zero value is ready to use.
type FIFO[T Equaler[T]] struct {
	items []T // items[head:] are live, oldest first
	head  int
}

// NewFIFO returns an empty FIFO queue.
func NewFIFO[T Equaler[T]]() *FIFO[T] {
	return &FIFO[T]{}
}

// Len returns the number of queued elements.
func (q *FIFO[T]) Len() int { return len(q.items) - q.head }

// Enqueue appends x at the back of the queue.
func (q *FIFO[T]) Enqueue(x T) {
	q.items = append(q.items, x)
}

// Dequeue removes and returns the element at the front of the queue.
func (q *FIFO[T]) Dequeue() (T, error) {
	var zero T
	if q.Len() == 0 {
		return zero, ErrEmpty
	}
	x := q.items[q.head]
	q.items[q.head] = zero // drop the reference for the GC
	q.head++
	q.compact()

	return x, nil
}

// Remove scans front-to-back and deletes the first element equal to x.
// The order of the remaining elements is unchanged.
func (q *FIFO[T]) Remove(x T) bool {
	for i := q.head; i < len(q.items); i++ {
		if !q.items[i].Equal(x) {
			continue
		}
		last := len(q.items) - 1
		copy(q.items[i:], q.items[i+1:])
		var zero T
		q.items[last] = zero
		q.items = q.items[:last]
		q.compact()

		return true
	}

	return false
}

// Items returns a copy of the queued elements, front first.
func (q *FIFO[T]) Items() []T {
	out := make([]T, q.Len())
	copy(out, q.items[q.head:])

	return out
}

// String renders the queue as FIFO[a,b,c], front first.
func (q *FIFO[T]) String() string { return format("FIFO", q.Items()) }

// compact reclaims consumed head slots once they dominate the slice.
func (q *FIFO[T]) compact() {
	switch {
	case q.head == len(q.items):
		q.items = q.items[:0]
		q.head = 0
	case q.head >= compactAfter && 2*q.head >= len(q.items):
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
}
