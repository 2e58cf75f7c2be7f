// Package pqueue implements the indexed binary min-heap priority queue
// that orders SearchNodes by f (ties broken by larger g). It wraps
// container/heap exactly the way the teacher's dijkstra package does for
// its own lazy-decrease-key heap, but here each SearchNode caches its own
// heap slot so DecreaseKey runs heap.Fix in true O(log n) instead of
// pushing a duplicate entry.
package pqueue
