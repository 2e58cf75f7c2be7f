// Package nodepool implements the lazily block-allocated pool of
// SearchNode records that every expansion policy owns. Nodes are indexed by
// padded cell id, allocated in fixed-size blocks on first touch, and never
// freed; each node is re-initialised the first time a new search (a new
// monotonically increasing search id) touches it.
package nodepool
