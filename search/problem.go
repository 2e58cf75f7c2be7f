package search

// ProblemInstance identifies one (start, target) query within a Scope. ID
// distinguishes this search's touches on shared NodePool state from any
// other search's — see nodepool.SearchNode.SearchID.
type ProblemInstance struct {
	ID     uint32
	Start  uint64 // packed id
	Target uint64 // packed id
}
