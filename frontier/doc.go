// Package frontier provides the queue disciplines used to hold not-yet-expanded
// search nodes: first-in-first-out, last-in-first-out and priority order.
//
// What
//
//   - Queue[T] is the common contract: Len, Enqueue, Dequeue and Remove.
//   - FIFO returns the earliest enqueued element first (breadth-first order).
//   - LIFO returns the most recently enqueued element first (depth-first order).
//   - Priority returns the element with the smallest rank first; equal ranks leave
//     in insertion order, so two runs over the same input are identical.
//   - Remove deletes the first element Equal to its argument and keeps the
//     relative order of everything else.
//
// Why
//
//	A frontier is a "queue" for Enqueue/Dequeue, but some strategies also need to
//	evict an arbitrary element (for instance a node dominated by a cheaper one).
//	Remove is a linear scan; in uninformed search it is rare compared to
//	Enqueue/Dequeue, so no index is maintained for it.
//
// Element contract
//
//	Elements compare themselves: FIFO and LIFO need Equaler[T], Priority needs
//	Ranker[T] (Equal plus Less). Equality and ordering are independent: search
//	nodes are equal when their configurations match and ordered by path cost.
//
// Complexity (n = elements currently queued)
//
//   - FIFO / LIFO: Enqueue O(1) amortized, Dequeue O(1), Remove O(n).
//   - Priority:    Enqueue O(log n), Dequeue O(log n), Remove O(n).
//
// Errors
//
//   - ErrEmpty  Dequeue on an empty queue. Callers are expected to check Len
//     first, so seeing this error means a caller broke that contract.
//
// Usage
//
//	q := frontier.NewFIFO[job]()
//	q.Enqueue(a)
//	q.Enqueue(b)
//	for q.Len() > 0 {
//		next, _ := q.Dequeue()
//		// ...
//	}
package frontier
