package search

import "sync/atomic"

// Scope is a process-wide search-instance counter (§9's redesign note:
// "replace the global instance counter with an atomic counter owned by a
// process-level search scope value that the driver constructs once and
// threads through problem creation"). A single Scope is shared by every
// search issued during one driver run.
type Scope struct {
	next atomic.Uint32
}

// NewScope returns a fresh Scope whose first issued id is 0.
func NewScope() *Scope { return &Scope{} }

// NewProblem issues the next search id and returns a ProblemInstance for
// the given packed start/target cells. Ids are never reused within a
// process's lifetime short of wrapping past 2^32 problems, at which point
// an id could in principle collide with nodepool's fresh-node sentinel;
// no real driver run approaches that count.
func (s *Scope) NewProblem(start, target uint64) ProblemInstance {
	return ProblemInstance{
		ID:     s.next.Add(1) - 1,
		Start:  start,
		Target: target,
	}
}
