package pqueue

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/nodepool"
)

// Queue is a binary min-heap of *nodepool.SearchNode ordered by
// nodepool.Less (smaller f first, ties broken by larger g).
type Queue struct {
	items []*nodepool.SearchNode
	ops   uint64 // push + decrease-key + pop invocations
}

// New returns an empty Queue with capacity pre-reserved.
func New(capacityHint int) *Queue {
	return &Queue{items: make([]*nodepool.SearchNode, 0, capacityHint)}
}

// --- container/heap.Interface ---

func (q *Queue) Len() int { return len(q.items) }

func (q *Queue) Less(i, j int) bool {
	return nodepool.Less(q.items[i], q.items[j])
}

func (q *Queue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].SetHeapIndex(i)
	q.items[j].SetHeapIndex(j)
}

// Push appends x; callers use Queue.PushNode, not this directly (it exists to
// satisfy heap.Interface for heap.Push/heap.Fix).
func (q *Queue) Push(x interface{}) {
	n := x.(*nodepool.SearchNode)
	n.SetHeapIndex(len(q.items))
	q.items = append(q.items, n)
}

// Pop removes and returns the last element; callers use Queue.PopMin, not
// this directly (it exists to satisfy heap.Interface for heap.Pop).
func (q *Queue) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]
	item.SetHeapIndex(-1)

	return item
}

// --- public API ---

// PushNode pushes n onto the heap in O(log n).
func (q *Queue) PushNode(n *nodepool.SearchNode) {
	heap.Push(q, n)
	q.ops++
}

// PopMin removes and returns the minimum-f node in O(log n).
func (q *Queue) PopMin() *nodepool.SearchNode {
	n := heap.Pop(q).(*nodepool.SearchNode)
	q.ops++

	return n
}

// Peek returns the minimum-f node without removing it, or nil if empty.
func (q *Queue) Peek() *nodepool.SearchNode {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}

// Size returns the number of nodes currently in the queue.
func (q *Queue) Size() int { return len(q.items) }

// Clear empties the queue without affecting any node's stored g/f/ub.
func (q *Queue) Clear() {
	for _, n := range q.items {
		n.SetHeapIndex(-1)
	}
	q.items = q.items[:0]
}

// Contains reports whether n is currently in this queue.
func (q *Queue) Contains(n *nodepool.SearchNode) bool {
	i := n.HeapIndex()
	return i >= 0 && i < len(q.items) && q.items[i] == n
}

// DecreaseKey restores the heap invariant after n's key (f, then g) has
// decreased, in O(log n), using n's cached heap slot.
func (q *Queue) DecreaseKey(n *nodepool.SearchNode) {
	heap.Fix(q, n.HeapIndex())
	q.ops++
}

// HeapOps returns the cumulative count of push + decrease-key + pop
// invocations, for the search metrics record.
func (q *Queue) HeapOps() uint64 { return q.ops }
