package nodepool

import "math"

// ID is a padded-cell id, the key space every SearchNode and NodePool is
// indexed by. Callers convert their map-specific id type (gridmap.PaddedID,
// weightedgrid.PaddedID) to ID at the ExpansionPolicy boundary.
type ID uint64

// NoID is the sentinel "none" id, used for SearchNode.Parent before a node
// has a parent.
const NoID ID = ^ID(0)

// freshSearchID marks a node that has never been touched by any search.
const freshSearchID uint32 = math.MaxUint32

// SearchNode is a fixed-size record keyed by its own padded id. It is
// allocated once by a NodePool and reused across every search that touches
// its cell; SearchID distinguishes "belongs to the current search" from
// stale data left over from a previous one.
type SearchNode struct {
	ID       ID
	Parent   ID
	G        float64
	F        float64
	UB       float64
	Expanded bool
	SearchID uint32

	// heapIndex caches this node's slot in a pqueue.Queue, letting
	// decrease-key run in O(log n) instead of a linear search. -1 means
	// "not currently in any heap".
	heapIndex int
}

// HeapIndex returns the node's cached heap slot, or -1 if it is not in a heap.
func (n *SearchNode) HeapIndex() int { return n.heapIndex }

// SetHeapIndex is called by pqueue.Queue to keep the cache current; callers
// outside pqueue should never call this directly.
func (n *SearchNode) SetHeapIndex(i int) { n.heapIndex = i }

// initFresh sets the block-allocation-time state of a node that has never
// been touched by any search: its own id, sentinel parent, infinite
// g/f/ub, unexpanded, and the fresh-node search-id sentinel. The search
// package re-initialises SearchID/G/F/UB/Parent again the first time a
// particular search touches the node (§4.8's node-initialisation step);
// this is deliberately a separate, later step since it needs the
// heuristic and the problem instance, neither of which NodePool knows about.
func (n *SearchNode) initFresh(id ID) {
	n.ID = id
	n.Parent = NoID
	n.G = math.Inf(1)
	n.F = math.Inf(1)
	n.UB = math.Inf(1)
	n.Expanded = false
	n.SearchID = freshSearchID
	n.heapIndex = -1
}

// Less orders nodes for the priority queue: smaller F first, ties broken
// by larger G.
func Less(a, b *SearchNode) bool {
	if a.F != b.F {
		return a.F < b.F
	}
	return a.G > b.G
}
