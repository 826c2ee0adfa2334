package frontier

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmpty is returned by Dequeue when the queue holds no elements.
var ErrEmpty = errors.New("frontier: dequeue from empty queue")

// Equaler is implemented by elements that can be matched by Remove.
type Equaler[T any] interface {
	Equal(other T) bool
}

// Ranker is implemented by elements that can be held in a Priority queue.
// Less reports whether the receiver must leave the queue before other.
type Ranker[T any] interface {
	Equaler[T]
	Less(other T) bool
}

// Queue is the contract shared by all frontier disciplines.
type Queue[T any] interface {
	// Len returns the number of queued elements.
	Len() int

	// Enqueue adds x according to the queue discipline.
	Enqueue(x T)

	// Dequeue removes and returns the next element, or ErrEmpty.
	Dequeue() (T, error)

	// Remove deletes the first element equal to x and reports whether
	// one was found.
	Remove(x T) bool
}

// format renders a queue as Name[a,b,c] in dequeue order.
func format[T any](name string, items []T) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('[')
	for i, it := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprint(&b, it)
	}
	b.WriteByte(']')

	return b.String()
}
