package expansion

import "github.com/katalvlaran/gridpath/nodepool"

// Successor is one edge out of the node currently being expanded.
type Successor struct {
	Node *nodepool.SearchNode
	Cost float64
}

// Policy is the ExpansionPolicy capability §4.7 describes: successor
// generation, packed/padded id conversion, and start/target node
// construction, backed by a single shared NodePool per policy instance.
type Policy interface {
	// Expand returns current's successors. The returned slice is owned
	// by the policy and reused on the next call — callers must finish
	// consuming it (or copy what they need) before expanding again.
	Expand(current *nodepool.SearchNode) []Successor

	// GenerateStart and GenerateTarget return the pool-backed node for
	// a packed (logical) cell id, or nil if that cell is impassable.
	GenerateStart(packed uint64) *nodepool.SearchNode
	GenerateTarget(packed uint64) *nodepool.SearchNode

	// ToPadded/ToPacked convert between a map's logical id space and
	// the padded id space SearchNode.ID lives in.
	ToPadded(packed uint64) nodepool.ID
	ToPacked(padded nodepool.ID) uint64

	// Lookup returns the node already allocated for a padded id, or nil
	// if it has never been touched — used during path reconstruction to
	// walk parent pointers (§9: "raw-pointer back-edges... model as
	// padded ids, never as owning references; the NodePool owns all
	// nodes").
	Lookup(padded nodepool.ID) *nodepool.SearchNode

	// PoolSize reports the backing NodePool's approximate memory use
	// (get_nodes_pool_size in §4.7).
	PoolSize() int
}
