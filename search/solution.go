package search

import (
	"math"
	"time"

	"github.com/katalvlaran/gridpath/nodepool"
)

// Solution is the result of one UnidirectionalSearch run: the incumbent
// node (nil if none was ever feasible) and the metrics record §4.8/§4.9
// require for the driver's per-query row.
type Solution struct {
	Incumbent      *nodepool.SearchNode
	SumOfEdgeCosts float64

	Expanded     uint64
	Generated    uint64
	Reopened     uint64
	NodesSurplus uint64
	HeapOps      uint64
	Elapsed      time.Duration
}

// newSolution returns a Solution with no incumbent yet, sum_of_edge_costs
// = +Inf per §7's "absence of a solution is a sentinel +Inf".
func newSolution() *Solution {
	return &Solution{SumOfEdgeCosts: math.Inf(1)}
}

// Found reports whether the search produced any feasible incumbent.
func (s *Solution) Found() bool { return s.Incumbent != nil }
