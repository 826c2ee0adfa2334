package frontier

// LIFO is a last-in-first-out stack that also supports removal of an
// arbitrary element. The zero value is ready to use.
type LIFO[T Equaler[T]] struct {
	items []T // top of the stack is the last element
}

// NewLIFO returns an empty LIFO queue.
func NewLIFO[T Equaler[T]]() *LIFO[T] {
	return &LIFO[T]{}
}

// Len returns the number of queued elements.
func (q *LIFO[T]) Len() int { return len(q.items) }

// Enqueue pushes x on top of the stack.
func (q *LIFO[T]) Enqueue(x T) {
	q.items = append(q.items, x)
}

// Dequeue pops the element on top of the stack.
func (q *LIFO[T]) Dequeue() (T, error) {
	var zero T
	n := len(q.items)
	if n == 0 {
		return zero, ErrEmpty
	}
	x := q.items[n-1]
	q.items[n-1] = zero
	q.items = q.items[:n-1]

	return x, nil
}

// Remove scans from the top of the stack downwards and deletes the first
// element equal to x. The stack order of the remaining elements is kept.
func (q *LIFO[T]) Remove(x T) bool {
	for i := len(q.items) - 1; i >= 0; i-- {
		if !q.items[i].Equal(x) {
			continue
		}
		last := len(q.items) - 1
		copy(q.items[i:], q.items[i+1:])
		var zero T
		q.items[last] = zero
		q.items = q.items[:last]

		return true
	}

	return false
}

// Items returns a copy of the queued elements, top of the stack first.
func (q *LIFO[T]) Items() []T {
	out := make([]T, len(q.items))
	for i, x := range q.items {
		out[len(q.items)-1-i] = x
	}

	return out
}

// String renders the stack as LIFO[top,...,bottom].
func (q *LIFO[T]) String() string { return format("LIFO", q.Items()) }
